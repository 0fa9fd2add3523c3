package sccinfo

import (
	"sort"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/twagraph"
)

// Node describes one strongly connected component of an automaton's
// reachable part.
type Node struct {
	// States lists the component's members, ascending.
	States []int

	// Succ lists the indices of distinct successor components this one
	// has an edge into, in the order they were first encountered while
	// scanning States' out-edges.
	Succ []int

	// Marks is the union of marks on every edge with both endpoints in
	// this component (a universal edge contributes once per destination
	// that also lies in the component).
	Marks mark.Mark

	// Trivial is true for a single-state component with no self-loop.
	Trivial bool

	// Accepting is true once some intra-component cycle is known to
	// satisfy the acceptance formula. May be false alongside Rejecting
	// when the formula mixes Fin and Inf and RefineUnknown has not yet
	// run.
	Accepting bool

	// Rejecting is true once no intra-component cycle can satisfy the
	// acceptance formula.
	Rejecting bool

	// Useful is true once DetermineUsefulness has run and found this
	// component non-rejecting or reachable to a non-rejecting one.
	Useful bool
}

// Info is the decomposition of one automaton's reachable states into SCCs,
// numbered in reverse topological order: for an edge from component i to
// component j with i != j, i > j.
type Info struct {
	sccOf []int // state -> component index, sized to the largest visited state+1
	nodes []Node
}

// SCCOf returns the component index of state s, or (0, false) if s was not
// part of the decomposition's reachable part.
func (info *Info) SCCOf(s int) (int, bool) {
	if s < 0 || s >= len(info.sccOf) {
		return 0, false
	}
	idx := info.sccOf[s]
	if idx < 0 {
		return 0, false
	}

	return idx, true
}

// NumSCCs returns the number of components.
func (info *Info) NumSCCs() int { return len(info.nodes) }

// Node returns component idx.
func (info *Info) Node(idx int) Node { return info.nodes[idx] }

// Nodes returns every component, index order.
func (info *Info) Nodes() []Node { return info.nodes }

type tarjanFrame struct {
	v        int
	succs    []int
	childIdx int
}

// Build decomposes a's reachable part (from its initial state) into
// strongly connected components via an iterative Tarjan walk, computing
// each component's intra-component mark union and provisional
// accepting/rejecting bits. Alternating automata are decomposed treating
// every universal destination as an ordinary successor, per spec.md §4.F's
// edge-case note.
func Build(a *automaton.Automaton) *Info {
	g := a.Graph()
	formula := a.Acceptance()
	initial := a.InitialState()

	n := g.NumStates()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	sccOf := make([]int, n)
	for i := range sccOf {
		sccOf[i] = -1
	}

	var nodeStack []int
	var callStack []tarjanFrame
	var nodes []Node
	counter := 0

	push := func(v int) {
		index[v] = counter
		low[v] = counter
		counter++
		visited[v] = true
		nodeStack = append(nodeStack, v)
		onStack[v] = true
		callStack = append(callStack, tarjanFrame{v: v, succs: flatSuccessors(g, v)})
	}

	push(initial)
	for len(callStack) > 0 {
		top := &callStack[len(callStack)-1]
		if top.childIdx < len(top.succs) {
			w := top.succs[top.childIdx]
			top.childIdx++
			if !visited[w] {
				push(w)

				continue
			}
			if onStack[w] && index[w] < low[top.v] {
				low[top.v] = index[w]
			}

			continue
		}

		v := top.v
		vLow := low[v]
		callStack = callStack[:len(callStack)-1]
		if len(callStack) > 0 {
			parent := &callStack[len(callStack)-1]
			if vLow < low[parent.v] {
				low[parent.v] = vLow
			}
		}

		if vLow == index[v] {
			var scc []int
			for {
				last := len(nodeStack) - 1
				w := nodeStack[last]
				nodeStack = nodeStack[:last]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sort.Ints(scc)
			nodes = append(nodes, buildNode(g, formula, sccOf, len(nodes), scc))
		}
	}

	return &Info{sccOf: sccOf, nodes: nodes}
}

func flatSuccessors(g *twagraph.Graph, v int) []int {
	var out []int
	for _, e := range g.Out(v) {
		out = append(out, g.UnivDests(e)...)
	}

	return out
}

func buildNode(g *twagraph.Graph, formula *acceptance.Formula, sccOf []int, idx int, scc []int) Node {
	member := make(map[int]bool, len(scc))
	for _, s := range scc {
		member[s] = true
		sccOf[s] = idx
	}

	var marks mark.Mark
	trivial := len(scc) == 1
	accepting := false
	succSeen := make(map[int]bool)
	var succ []int

	for _, s := range scc {
		for _, e := range g.Out(s) {
			for _, d := range g.UnivDests(e) {
				if !member[d] {
					if other, ok := lookupSCC(sccOf, d); ok && !succSeen[other] {
						succSeen[other] = true
						succ = append(succ, other)
					}

					continue
				}
				marks = marks.Union(e.Marks)
				if d == s {
					trivial = false
					if formula.Accepting(e.Marks) {
						accepting = true
					}
				}
			}
		}
	}

	if formula.Accepting(marks) {
		accepting = true
	}
	rejecting := trivial || !formula.InfSatisfiable(marks)

	return Node{
		States:    scc,
		Succ:      succ,
		Marks:     marks,
		Trivial:   trivial,
		Accepting: accepting,
		Rejecting: rejecting,
	}
}

func lookupSCC(sccOf []int, s int) (int, bool) {
	if s < 0 || s >= len(sccOf) || sccOf[s] < 0 {
		return 0, false
	}

	return sccOf[s], true
}
