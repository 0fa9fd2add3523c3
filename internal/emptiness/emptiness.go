package emptiness

import (
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/twagraph"
)

// Reachable decides whether the sub-automaton g induces on states (treating
// every universal destination of an alternating edge as an ordinary
// successor, per spec.md §4.F's edge-case note) contains a reachable,
// non-trivial cycle whose marks satisfy formula.
//
// It tries each DNF clause of formula in turn. For a clause with Fin sets F
// and a single Inf set I, a cycle satisfies the clause iff it never crosses
// an edge marked with any set in F and its marks cover I infinitely often —
// so we discard every edge marked with a set in F and ask whether the
// surviving graph still has a non-trivial strongly connected component
// whose accumulated intra-component marks are a superset of I. The
// automaton's language (restricted to states) is nonempty iff some clause
// answers yes.
func Reachable(g *twagraph.Graph, states []int, formula *acceptance.Formula) (bool, error) {
	dnf, err := formula.ToDNF()
	if err != nil {
		return false, err
	}

	inSet := make(map[int]bool, len(states))
	for _, s := range states {
		inSet[s] = true
	}

	for _, cl := range dnfClauses(dnf) {
		if sccHasAcceptingCycle(g, states, inSet, cl.fin, cl.inf) {
			return true, nil
		}
	}

	return false, nil
}

type clause struct {
	fin, inf mark.Mark
}

// dnfClauses returns one clause per DNF disjunct of f ("f" may itself be a
// single clause, a bare Inf/Fin leaf, or a constant). A Fin leaf over several
// sets holds once any one of them stops recurring, so it contributes one
// single-set Fin clause per member.
func dnfClauses(f *acceptance.Formula) []clause {
	if f.IsF() {
		return nil
	}
	kids := []*acceptance.Formula{f}
	if f.Kind() == acceptance.KindOr {
		kids = f.Kids()
	}
	out := make([]clause, 0, len(kids))
	for _, k := range kids {
		if k.Kind() == acceptance.KindFin {
			for _, s := range k.Mark().Sets() {
				sm, _ := mark.New(s)
				out = append(out, clause{fin: sm})
			}

			continue
		}
		fin, inf := clauseMasks(k)
		out = append(out, clause{fin: fin, inf: inf})
	}

	return out
}

func clauseMasks(c *acceptance.Formula) (fin, inf mark.Mark) {
	switch c.Kind() {
	case acceptance.KindInf:
		return mark.Empty(), c.Mark()
	case acceptance.KindFin:
		return c.Mark(), mark.Empty()
	case acceptance.KindAnd:
		for _, k := range c.Kids() {
			switch k.Kind() {
			case acceptance.KindFin:
				fin = fin.Union(k.Mark())
			case acceptance.KindInf:
				inf = inf.Union(k.Mark())
			}
		}

		return fin, inf
	default:
		return mark.Empty(), mark.Empty()
	}
}

type edgeRef struct {
	dst   int
	marks mark.Mark
}

// sccHasAcceptingCycle reports whether, after discarding every edge marked
// with a set in finMask, some non-trivial SCC of the induced subgraph on
// states has an intra-component mark union covering infMask.
func sccHasAcceptingCycle(g *twagraph.Graph, states []int, inSet map[int]bool, finMask, infMask mark.Mark) bool {
	adj := make(map[int][]edgeRef, len(states))
	for _, s := range states {
		for _, e := range g.Out(s) {
			if !e.Marks.Intersect(finMask).IsEmpty() {
				continue
			}
			for _, d := range g.UnivDests(e) {
				if !inSet[d] {
					continue
				}
				adj[s] = append(adj[s], edgeRef{dst: d, marks: e.Marks})
			}
		}
	}

	for _, scc := range tarjanSCCs(states, adj) {
		memberSet := make(map[int]bool, len(scc))
		for _, s := range scc {
			memberSet[s] = true
		}

		trivial := len(scc) == 1
		var markUnion mark.Mark
		for _, s := range scc {
			for _, e := range adj[s] {
				if !memberSet[e.dst] {
					continue
				}
				if e.dst == s {
					trivial = false
				}
				markUnion = markUnion.Union(e.marks)
			}
		}

		if !trivial && infMask.Subset(markUnion) {
			return true
		}
	}

	return false
}

// tarjanSCCs is a plain recursive Tarjan decomposition over the given node
// set and adjacency map; it exists so this package does not have to depend
// on sccinfo (which will itself depend on this package for refinement).
func tarjanSCCs(states []int, adj map[int][]edgeRef) [][]int {
	index := make(map[int]int, len(states))
	low := make(map[int]int, len(states))
	onStack := make(map[int]bool, len(states))
	var stack []int
	var sccs [][]int
	counter := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, e := range adj[v] {
			w := e.dst
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] {
				if index[w] < low[v] {
					low[v] = index[w]
				}
			}
		}

		if low[v] == index[v] {
			var scc []int
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for _, s := range states {
		if _, seen := index[s]; !seen {
			strongconnect(s)
		}
	}

	return sccs
}
