package determinize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/sccinfo"
	"github.com/wautomata/omega/twagraph"
)

// noColor marks a transition that emits neither a red nor a green brace
// event: it is still output, just without an acceptance mark.
const noColor = -1

// safraState is one output state: a finite mapping from input-automaton
// states to an ordered, monotonically nested list of brace indices, plus
// the per-brace bookkeeping (live member count, green eligibility) needed
// to color the transition that produced it.
type safraState struct {
	nodes    map[int][]int // input state -> braces, outermost first
	nbBraces []int         // live member count per brace index
	green    []bool        // green-eligibility per brace index
}

// newInitialSafraState seeds the construction: the input automaton's
// initial state, with a single top-level brace already open if that state
// starts inside an accepting SCC (mirroring a fresh accepting edge having
// just been taken into it).
func newInitialSafraState(initState int, acceptingSCC bool) *safraState {
	if !acceptingSCC {
		return &safraState{nodes: map[int][]int{initState: {}}}
	}

	return &safraState{
		nodes:    map[int][]int{initState: {0}},
		nbBraces: []int{1},
		green:    []bool{true},
	}
}

// newWorkingSafraState starts the next step's result: brace bookkeeping of
// size n (matching the current state's brace count before the step),
// freshly green and empty, ready to receive updateSucc calls.
func newWorkingSafraState(n int) *safraState {
	green := make([]bool, n)
	for i := range green {
		green[i] = true
	}

	return &safraState{nodes: map[int][]int{}, nbBraces: make([]int, n), green: green}
}

// sortedStates returns ss's member input-states in ascending order, the
// deterministic iteration order a Go map can't give directly.
func (ss *safraState) sortedStates() []int {
	out := make([]int, 0, len(ss.nodes))
	for s := range ss.nodes {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// key canonicalizes ss's (state -> braces) mapping into a string, used both
// to deduplicate output states and, for the stutter-invariance loop, to
// detect when a repeated application of the successor step has cycled.
func (ss *safraState) key() string {
	var b strings.Builder
	for _, s := range ss.sortedStates() {
		b.WriteString(strconv.Itoa(s))
		b.WriteByte(':')
		for _, br := range ss.nodes[s] {
			b.WriteString(strconv.Itoa(br))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}

	return b.String()
}

// nestingCmp reports whether lhs has a strictly smaller nesting pattern
// than rhs: compared position by position, the first differing brace index
// decides; if one is a strict prefix of the other, the longer (more deeply
// nested) one is considered smaller. Equal sequences compare as not-less.
func nestingCmp(lhs, rhs []int) bool {
	m := len(lhs)
	if len(rhs) < m {
		m = len(rhs)
	}
	for i := 0; i < m; i++ {
		if lhs[i] != rhs[i] {
			return lhs[i] < rhs[i]
		}
	}

	return len(lhs) > len(rhs)
}

// updateSucc folds one input transition (src's braces, reached via an edge
// accepting iff accepting) into ss's in-progress node for dst: an
// accepting edge opens a fresh innermost brace (step A1 of spec.md §4.J's
// successor step); if dst was already reached this step, only the smaller
// nesting pattern survives (step A2), since it represents the more
// recently (more tightly) tracked accepting history.
func (ss *safraState) updateSucc(braces []int, dst int, accepting bool) {
	cp := append([]int(nil), braces...)
	if accepting {
		b := len(ss.nbBraces)
		cp = append(cp, b)
		ss.nbBraces = append(ss.nbBraces, 0)
		ss.green = append(ss.green, true)
	}

	if existing, ok := ss.nodes[dst]; ok {
		if !nestingCmp(cp, existing) {
			return
		}
		for _, b := range existing {
			ss.nbBraces[b]--
		}
	}
	ss.nodes[dst] = cp
	for _, b := range cp {
		ss.nbBraces[b]++
	}
}

// ungreenifyLastBrace implements step A4's precondition: the innermost
// brace of every node can never itself emit green, since green requires
// surrounding at least one other brace.
func (ss *safraState) ungreenifyLastBrace() {
	for _, braces := range ss.nodes {
		if len(braces) > 0 {
			ss.green[braces[len(braces)-1]] = false
		}
	}
}

// truncateBraces finds the first brace of braces that is in remSuccOf (a
// green brace that just fired), keeps it, and drops every brace after it
// (nested inside it), decrementing nbBraces for each brace thereby
// discarded.
func truncateBraces(braces []int, remSuccOf []int, nbBraces []int) []int {
	for idx, br := range braces {
		found := false
		for _, s := range remSuccOf {
			if br == s {
				found = true

				break
			}
		}
		if found {
			for i := idx + 1; i < len(braces); i++ {
				nbBraces[braces[i]]--
			}

			return append([]int(nil), braces[:idx+1]...)
		}
	}

	return braces
}

// finalizeConstruction runs steps A3-A5: a brace with no surviving members
// emits red (color 2*brace); a brace whose members are all still green
// emits green (color 2*brace+1) and has every brace nested inside it
// dropped; remaining braces are compacted to a dense prefix. Returns the
// minimum of every red/green color generated this step, or noColor if
// neither fired.
func (ss *safraState) finalizeConstruction() int {
	red, green := noColor, noColor
	var remSuccOf []int
	for i := range ss.green {
		switch {
		case ss.nbBraces[i] == 0:
			if c := 2 * i; red == noColor || c < red {
				red = c
			}
		case ss.green[i]:
			if c := 2*i + 1; green == noColor || c < green {
				green = c
			}
			remSuccOf = append(remSuccOf, i)
		}
	}

	for s, braces := range ss.nodes {
		ss.nodes[s] = truncateBraces(braces, remSuccOf, ss.nbBraces)
	}

	decrBy := make([]int, len(ss.nbBraces))
	compacted := make([]int, 0, len(ss.nbBraces))
	decr := 0
	for i, n := range ss.nbBraces {
		if n == 0 {
			decr++
		} else {
			compacted = append(compacted, n)
		}
		decrBy[i] = decr
	}
	ss.nbBraces = compacted
	for _, braces := range ss.nodes {
		for i := range braces {
			braces[i] -= decrBy[braces[i]]
		}
	}

	switch {
	case red == noColor:
		return green
	case green == noColor:
		return red
	case red < green:
		return red
	default:
		return green
	}
}

// stepCtx bundles the read-only context a successor step needs: the input
// graph, its optional SCC decomposition (for the enter-accepting-SCC /
// enter-rejecting-SCC shortcut), and an optional simulation witness for the
// merge-redundant-states pass.
type stepCtx struct {
	g      *twagraph.Graph
	info   *sccinfo.Info
	useSCC bool
	impl   map[int]bddlabel.Label
	reach  [][]bool
}

// labelImplies reports whether letter implies cond as Boolean functions
// (letter ∧ ¬cond is unsatisfiable).
func labelImplies(letter, cond bddlabel.Label) (bool, error) {
	conj, err := letter.And(cond.Not())
	if err != nil {
		return false, err
	}

	return conj.IsFalse(), nil
}

// step applies the successor construction once, on letter, to ss: for each
// member state and each of its out-edges whose label is implied by letter,
// fold the destination into the result (discarding or seeding braces at an
// SCC boundary per spec.md §4.J step 1), then merge redundant states (if a
// simulation witness was supplied), un-greenify, and finalize.
func (ss *safraState) step(ctx *stepCtx, letter bddlabel.Label) (*safraState, int, error) {
	next := newWorkingSafraState(len(ss.nbBraces))
	for _, st := range ss.sortedStates() {
		braces := ss.nodes[st]
		for _, e := range ctx.g.Out(st) {
			implies, err := labelImplies(letter, e.Label)
			if err != nil {
				return nil, 0, err
			}
			if !implies {
				continue
			}
			for _, d := range ctx.g.UnivDests(e) {
				if ctx.useSCC {
					srcSCC, _ := ctx.info.SCCOf(st)
					dstSCC, _ := ctx.info.SCCOf(d)
					if srcSCC != dstSCC {
						next.updateSucc(nil, d, ctx.info.Node(dstSCC).Accepting)

						continue
					}
				}
				next.updateSucc(braces, d, !e.Marks.IsEmpty())
			}
		}
	}
	if ctx.impl != nil {
		next.mergeRedundant(ctx.info, ctx.reach, ctx.impl)
	}
	next.ungreenifyLastBrace()
	color := next.finalizeConstruction()

	return next, color, nil
}

// mergeRedundant drops every member state x for which some other member y
// language-subsumes x (ctx.impl[x] ⇒ ctx.impl[y]) while x's own SCC cannot
// reach y's, per spec.md §4.J step 2: x can never need to distinguish
// itself from y again, since it can't reach anywhere y doesn't already
// cover.
func (ss *safraState) mergeRedundant(info *sccinfo.Info, reach [][]bool, impl map[int]bddlabel.Label) {
	states := ss.sortedStates()
	var toRemove []int
	for _, x := range states {
		implX, ok := impl[x]
		if !ok {
			continue
		}
		sccX, _ := info.SCCOf(x)
		for _, y := range states {
			if x == y {
				continue
			}
			implY, ok := impl[y]
			if !ok {
				continue
			}
			sccY, _ := info.SCCOf(y)
			if reach[sccX][sccY] {
				continue
			}
			subsumed, err := labelImplies(implX, implY)
			if err != nil || !subsumed {
				continue
			}
			toRemove = append(toRemove, x)

			break
		}
	}
	for _, x := range toRemove {
		for _, b := range ss.nodes[x] {
			ss.nbBraces[b]--
		}
		delete(ss.nodes, x)
	}
}

// stutterSucc repeats step on the same letter until the Safra state
// recurs, returning the lexicographically smallest state on that cycle and
// the minimum color emitted along it, per spec.md §4.J's stutter-invariance
// optimisation.
func stutterSucc(ctx *stepCtx, start *safraState, letter bddlabel.Label) (*safraState, int, error) {
	seenIndex := map[string]int{start.key(): 0}
	sequence := []*safraState{start}
	var colors []int
	cur := start
	for {
		next, color, err := cur.step(ctx, letter)
		if err != nil {
			return nil, 0, err
		}
		colors = append(colors, color)
		k := next.key()
		if idx, ok := seenIndex[k]; ok {
			minColor := noColor
			for _, c := range colors[idx:] {
				if c != noColor && (minColor == noColor || c < minColor) {
					minColor = c
				}
			}
			best := sequence[idx]
			for _, s := range sequence[idx+1:] {
				if s.key() < best.key() {
					best = s
				}
			}

			return best, minColor, nil
		}
		seenIndex[k] = len(sequence)
		sequence = append(sequence, next)
		cur = next
	}
}
