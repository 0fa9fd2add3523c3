package determinize

import (
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/twagraph"
)

// collectLetters builds a finite alphabet of mutually exclusive Boolean
// regions, jointly covering the whole assignment space, such that every
// out-edge label among states' transitions is fully decided (implied or
// refuted) by every region: starting from the single region "true", each
// distinct edge label in turn splits every current region R into R ∧ label
// and R ∧ ¬label, discarding whichever conjunct is unsatisfiable. A region
// built this way can never straddle an edge's boundary, so later
// implication checks against it are exact rather than merely sound. This is
// the Boolean-partition analogue of the original construction's
// bdd_satoneset sweep over the automaton's unioned AP support, expressed
// with this package's And/Not/IsFalse instead of a dedicated minterm walk.
func collectLetters(g *twagraph.Graph, states []int) ([]bddlabel.Label, error) {
	var dict *bddlabel.Dict
	seenLabels := map[int32]bool{}
	var labels []bddlabel.Label
	for _, s := range states {
		for _, e := range g.Out(s) {
			if e.Dead() {
				continue
			}
			if dict == nil {
				dict = e.Label.Dict()
			}
			if h := e.Label.Handle(); !seenLabels[h] {
				seenLabels[h] = true
				labels = append(labels, e.Label)
			}
		}
	}
	if dict == nil {
		return nil, nil
	}

	regions := []bddlabel.Label{dict.True()}
	for _, lbl := range labels {
		notLbl := lbl.Not()
		next := make([]bddlabel.Label, 0, 2*len(regions))
		for _, r := range regions {
			pos, err := r.And(lbl)
			if err != nil {
				return nil, err
			}
			if !pos.IsFalse() {
				next = append(next, pos)
			}
			neg, err := r.And(notLbl)
			if err != nil {
				return nil, err
			}
			if !neg.IsFalse() {
				next = append(next, neg)
			}
		}
		regions = next
	}

	return regions, nil
}
