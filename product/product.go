package product

import (
	"fmt"

	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/automaton"
)

// pairKey interns a (sL, sR) pair into one product state id.
type pairKey struct {
	l, r int
}

// Build constructs the synchronous product of l and r: states are the
// reachable pairs (sL, sR), an edge (sL,lblL,marksL,tL) paired with
// (sR,lblR,marksR,tR) yields a product edge to (tL,tR) labelled lblL∧lblR
// and marked marksL ∪ shift(marksR, l.NumSets()), discarding any pair whose
// conjunction is unsatisfiable. The returned automaton's acceptance is
// `l.Acceptance() ∧ shift(r.Acceptance(), l.NumSets())` over
// `l.NumSets()+r.NumSets()` sets. Construction is on-the-fly: a work-list
// drives state creation and pair interning guarantees each reachable pair
// yields exactly one product state.
func Build(l, r *automaton.Automaton, opts ...automaton.Option) (*automaton.Automaton, error) {
	if l.Dict() != r.Dict() {
		return nil, ErrDictMismatch
	}

	shift := l.NumSets()
	prod := automaton.New(l.Dict(), opts...)
	if err := prod.SetAcceptance(l.NumSets()+r.NumSets(), acceptance.And(l.Acceptance(), shiftFormula(r.Acceptance(), shift))); err != nil {
		return nil, fmt.Errorf("product: Build: %w", err)
	}
	for _, idx := range l.RegisteredAPs() {
		if name, err := l.Dict().APName(idx); err == nil {
			if _, err := prod.RegisterAP(name); err != nil {
				return nil, fmt.Errorf("product: Build: %w", err)
			}
		}
	}
	for _, idx := range r.RegisteredAPs() {
		if name, err := r.Dict().APName(idx); err == nil {
			if _, err := prod.RegisterAP(name); err != nil {
				return nil, fmt.Errorf("product: Build: %w", err)
			}
		}
	}

	ids := make(map[pairKey]int)
	initKey := pairKey{l.InitialState(), r.InitialState()}
	ids[initKey] = prod.InitialState() // automaton.New already allocated state 0 as initial

	worklist := []pairKey{initKey}
	for len(worklist) > 0 {
		k := worklist[0]
		worklist = worklist[1:]
		src := ids[k]

		for _, eL := range l.Graph().Out(k.l) {
			for _, dL := range l.Graph().UnivDests(eL) {
				for _, eR := range r.Graph().Out(k.r) {
					lbl, err := eL.Label.And(eR.Label)
					if err != nil {
						return nil, fmt.Errorf("product: Build: %w", err)
					}
					if lbl.IsFalse() {
						continue
					}
					for _, dR := range r.Graph().UnivDests(eR) {
						dstKey := pairKey{dL, dR}
						dst, ok := ids[dstKey]
						if !ok {
							dst = prod.Graph().NewState()
							ids[dstKey] = dst
							worklist = append(worklist, dstKey)
						}
						marks := eL.Marks.Union(eR.Marks.ShiftLeft(shift))
						if _, err := prod.Graph().NewEdge(src, dst, lbl, marks); err != nil {
							return nil, fmt.Errorf("product: Build: %w", err)
						}
					}
				}
			}
		}
	}

	return prod, nil
}
