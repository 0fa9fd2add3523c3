package determinize

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/degen"
	"github.com/wautomata/omega/internal/emptiness"
	"github.com/wautomata/omega/mark"
	"github.com/wautomata/omega/sccinfo"
	"github.com/wautomata/omega/transform"
	"github.com/wautomata/omega/twagraph"
)

// pendingEdge buffers one output transition until the full construction
// finishes and the final color ceiling (numSets) is known, mirroring the
// original construction's two-phase new_edge-then-remove_dead_acc.
type pendingEdge struct {
	src, dst int
	label    bddlabel.Label
	color    int
}

// Determinize builds an equivalent deterministic min-parity automaton from
// a: a transition-based Büchi precondition is established first (already
// Büchi is used as-is, generalized Büchi is degeneralized, anything else
// has its Fin eliminated), then the Safra-state construction runs over
// that automaton's reachable part. If a is already flagged deterministic,
// it is returned unchanged; if its language is empty, the result is a
// single non-accepting state. See spec.md §4.J.
func Determinize(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	if a.Flags().Deterministic == automaton.True {
		return a, nil
	}
	o := newOptions(opts)

	buchi, err := prepareBuchi(a, o.logger)
	if err != nil {
		return nil, fmt.Errorf("determinize: Determinize: %w", err)
	}

	g := buchi.Graph()
	allStates := reachableStates(g, buchi.InitialState())

	hasAccepting, err := emptiness.Reachable(g, allStates, buchi.Acceptance())
	if err != nil {
		return nil, fmt.Errorf("determinize: Determinize: %w", err)
	}
	if !hasAccepting {
		out := automaton.New(a.Dict())
		out.SetDeterministic(automaton.True)

		return out, nil
	}

	var info *sccinfo.Info
	if o.useSCC {
		info = sccinfo.Build(buchi)
	}

	letters, err := collectLetters(g, allStates)
	if err != nil {
		return nil, fmt.Errorf("determinize: Determinize: %w", err)
	}

	var reach [][]bool
	if o.implications != nil && info != nil {
		reach = sccReachability(info)
	}
	ctx := &stepCtx{g: g, info: info, useSCC: o.useSCC, impl: o.implications, reach: reach}

	initAccepting := false
	if o.useSCC {
		if scc, ok := info.SCCOf(buchi.InitialState()); ok {
			initAccepting = info.Node(scc).Accepting
		}
	}
	init := newInitialSafraState(buchi.InitialState(), initAccepting)

	out := automaton.New(a.Dict())
	if err := out.CopyAPOf(buchi); err != nil {
		return nil, fmt.Errorf("determinize: Determinize: %w", err)
	}

	indexOf := map[string]int{init.key(): 0}
	states := []*safraState{init}
	work := []int{0}

	var pending []pendingEdge
	numSets := 0

	o.logger.Trace("determinize: starting Safra construction", "letters", len(letters))

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		ss := states[idx]

		for _, letter := range letters {
			var (
				next  *safraState
				color int
			)
			if o.useStutter && a.Flags().StutterInvariant == automaton.True {
				next, color, err = stutterSucc(ctx, ss, letter)
			} else {
				next, color, err = ss.step(ctx, letter)
			}
			if err != nil {
				return nil, fmt.Errorf("determinize: Determinize: %w", err)
			}
			if len(next.nodes) == 0 {
				continue
			}

			k := next.key()
			dstIdx, ok := indexOf[k]
			if !ok {
				dstIdx = len(states)
				indexOf[k] = dstIdx
				states = append(states, next)
				work = append(work, dstIdx)
			}
			if color != noColor && color+1 > numSets {
				numSets = color + 1
			}
			pending = append(pending, pendingEdge{src: idx, dst: dstIdx, label: letter, color: color})
		}
	}

	if numSets > mark.Width {
		return nil, fmt.Errorf("determinize: Determinize: %d colors: %w", numSets, ErrCapacityExceeded)
	}

	if len(states) > 1 {
		out.Graph().NewStates(len(states) - 1)
	}
	for _, pe := range pending {
		marks := mark.Empty()
		if pe.color != noColor && pe.color < numSets {
			var err error
			marks, err = mark.New(pe.color)
			if err != nil {
				return nil, fmt.Errorf("determinize: Determinize: %w", err)
			}
		}
		if _, err := out.Graph().NewEdge(pe.src, pe.dst, pe.label, marks); err != nil {
			return nil, fmt.Errorf("determinize: Determinize: %w", err)
		}
	}

	if numSets == 0 {
		if err := out.SetAcceptance(0, acceptance.F()); err != nil {
			return nil, fmt.Errorf("determinize: Determinize: %w", err)
		}
	} else if err := out.SetAcceptance(numSets, acceptance.ParityMin(numSets, true)); err != nil {
		return nil, fmt.Errorf("determinize: Determinize: %w", err)
	}
	out.SetDeterministic(automaton.True)

	o.logger.Trace("determinize: finished", "states", len(states), "colors", numSets)

	return out, nil
}

// prepareBuchi establishes Determinize's transition-based-Büchi
// precondition by composing already-built components rather than
// re-deriving degeneralization or Fin-elimination locally: a already-Büchi
// condition is used as-is, a generalized-Büchi (pure Inf conjunction)
// condition is degeneralized, and anything else (a condition mixing Fin and
// Inf) has its Fin eliminated first.
func prepareBuchi(a *automaton.Automaton, logger hclog.Logger) (*automaton.Automaton, error) {
	formula := a.Acceptance()
	switch {
	case formula.IsBuchi():
		return a, nil
	case formula.IsGeneralizedBuchi():
		logger.Trace("determinize: degeneralizing before Safra construction")

		return degen.Build(a)
	default:
		logger.Trace("determinize: eliminating Fin before Safra construction")

		return transform.EliminateFin(a)
	}
}

// reachableStates returns every state reachable from init via g's edges
// (existential or universal), in discovery order.
func reachableStates(g *twagraph.Graph, init int) []int {
	seen := map[int]bool{init: true}
	queue := []int{init}
	out := []int{init}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range g.Out(s) {
			if e.Dead() {
				continue
			}
			for _, d := range g.UnivDests(e) {
				if !seen[d] {
					seen[d] = true
					out = append(out, d)
					queue = append(queue, d)
				}
			}
		}
	}

	return out
}
