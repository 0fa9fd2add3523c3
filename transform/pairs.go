package transform

import (
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/mark"
)

// streettPair is one conjunct of a Streett-like condition: either a genuine
// (Fin, Inf) pair, or a standalone Inf leaf with no paired Fin (hasFin
// false), which spec.md §4.I calls out as remaining permanently pending.
type streettPair struct {
	fin    mark.Mark
	inf    mark.Mark
	hasFin bool
}

// extractStreettPairs decomposes f's top-level conjuncts (f itself if f is
// not an And) into streettPairs. It accepts exactly the same pair shape
// acceptance.Formula.IsStreett checks for, relaxed to allow a non-singleton
// Inf side and to allow a bare Inf leaf standing in for a pair with no Fin.
func extractStreettPairs(f *acceptance.Formula) ([]streettPair, bool) {
	clauses := []*acceptance.Formula{f}
	if f.Kind() == acceptance.KindAnd {
		clauses = f.Kids()
	}

	pairs := make([]streettPair, 0, len(clauses))
	for _, c := range clauses {
		switch c.Kind() {
		case acceptance.KindInf:
			pairs = append(pairs, streettPair{inf: c.Mark()})
		case acceptance.KindOr:
			kids := c.Kids()
			if len(kids) != 2 {
				return nil, false
			}
			a, b := kids[0], kids[1]
			switch {
			case a.Kind() == acceptance.KindFin && b.Kind() == acceptance.KindInf:
				pairs = append(pairs, streettPair{fin: a.Mark(), inf: b.Mark(), hasFin: true})
			case a.Kind() == acceptance.KindInf && b.Kind() == acceptance.KindFin:
				pairs = append(pairs, streettPair{fin: b.Mark(), inf: a.Mark(), hasFin: true})
			default:
				return nil, false
			}
		default:
			return nil, false
		}
	}

	return pairs, true
}

// rabinPair is one disjunct of a Rabin-like condition: Fin(fin) ∧ Inf(inf).
type rabinPair struct {
	fin mark.Mark
	inf mark.Mark
}

// extractRabinPairs decomposes f's top-level disjuncts (f itself if f is
// not an Or) into rabinPairs, matching the shape
// acceptance.Formula.IsGeneralizedRabin checks for (Fin singleton, Inf any
// non-empty set) but returning the pairs themselves instead of just a count.
func extractRabinPairs(f *acceptance.Formula) ([]rabinPair, bool) {
	clauses := []*acceptance.Formula{f}
	if f.Kind() == acceptance.KindOr {
		clauses = f.Kids()
	}

	pairs := make([]rabinPair, 0, len(clauses))
	for _, c := range clauses {
		if c.Kind() != acceptance.KindAnd || len(c.Kids()) != 2 {
			return nil, false
		}
		a, b := c.Kids()[0], c.Kids()[1]
		var fin, inf mark.Mark
		switch {
		case a.Kind() == acceptance.KindFin && b.Kind() == acceptance.KindInf:
			fin, inf = a.Mark(), b.Mark()
		case a.Kind() == acceptance.KindInf && b.Kind() == acceptance.KindFin:
			fin, inf = b.Mark(), a.Mark()
		default:
			return nil, false
		}
		if fin.Count() != 1 || inf.IsEmpty() {
			return nil, false
		}
		pairs = append(pairs, rabinPair{fin: fin, inf: inf})
	}

	return pairs, true
}

// dnfTerm is one disjunct of a formula in DNF shape: an And of Fin
// singletons (unioned into fin) plus at most one combined Inf leaf.
type dnfTerm struct {
	fin    mark.Mark
	inf    mark.Mark
	hasInf bool
}

// dnfTerms decomposes a DNF formula's top-level disjuncts into dnfTerms.
func dnfTerms(f *acceptance.Formula) []dnfTerm {
	if f.IsF() {
		return nil
	}
	clauses := []*acceptance.Formula{f}
	if f.Kind() == acceptance.KindOr {
		clauses = f.Kids()
	}

	terms := make([]dnfTerm, 0, len(clauses))
	for _, c := range clauses {
		terms = append(terms, extractDNFTerm(c))
	}

	return terms
}

func extractDNFTerm(c *acceptance.Formula) dnfTerm {
	var t dnfTerm
	switch c.Kind() {
	case acceptance.KindT:
		// a constant-true term carries no Fin and is vacuously always
		// witnessed, same as Inf(∅) under the package's own convention.
		t.hasInf = true
	case acceptance.KindInf:
		t.inf, t.hasInf = c.Mark(), true
	case acceptance.KindFin:
		t.fin = c.Mark()
	case acceptance.KindAnd:
		for _, k := range c.Kids() {
			switch k.Kind() {
			case acceptance.KindFin:
				t.fin = t.fin.Union(k.Mark())
			case acceptance.KindInf:
				t.inf = t.inf.Union(k.Mark())
				t.hasInf = true
			}
		}
	}

	return t
}
