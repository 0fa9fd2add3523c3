package product

import "github.com/wautomata/omega/acceptance"

// shiftFormula renumbers every acceptance-set index f references upward by
// off, leaving its connective structure untouched. Used to relocate the
// right-hand automaton's acceptance formula past the left-hand automaton's
// declared universe when building the combined product formula.
func shiftFormula(f *acceptance.Formula, off int) *acceptance.Formula {
	if off == 0 {
		return f
	}

	switch f.Kind() {
	case acceptance.KindT:
		return acceptance.T()
	case acceptance.KindF:
		return acceptance.F()
	case acceptance.KindInf:
		return acceptance.Inf(f.Mark().ShiftLeft(off))
	case acceptance.KindFin:
		return acceptance.Fin(f.Mark().ShiftLeft(off))
	case acceptance.KindAnd:
		kids := f.Kids()
		shifted := make([]*acceptance.Formula, len(kids))
		for i, k := range kids {
			shifted[i] = shiftFormula(k, off)
		}

		return acceptance.And(shifted...)
	case acceptance.KindOr:
		kids := f.Kids()
		shifted := make([]*acceptance.Formula, len(kids))
		for i, k := range kids {
			shifted[i] = shiftFormula(k, off)
		}

		return acceptance.Or(shifted...)
	default:
		return f
	}
}
