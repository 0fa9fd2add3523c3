package acceptance

import "github.com/wautomata/omega/mark"

// Accepting evaluates f against the visited-marks set v: Inf(M) holds iff
// M ⊆ v, Fin(M) holds iff M ⊄ v, t/f are constants, ∧/∨ are Boolean.
func (f *Formula) Accepting(v mark.Mark) bool {
	return f.eval(v, false)
}

// InfSatisfiable evaluates f against v treating every Fin node as true; it
// tests whether a cycle whose marks are v could possibly satisfy some
// tightening of the formula, used by the SCC analyzer to provisionally
// classify an SCC before the full emptiness-based refinement runs.
func (f *Formula) InfSatisfiable(v mark.Mark) bool {
	return f.eval(v, true)
}

func (f *Formula) eval(v mark.Mark, finAlwaysTrue bool) bool {
	switch f.kind {
	case KindT:
		return true
	case KindF:
		return false
	case KindInf:
		return f.m.Subset(v)
	case KindFin:
		if finAlwaysTrue {
			return true
		}

		return !f.m.Subset(v)
	case KindAnd:
		for _, k := range f.kids {
			if !k.eval(v, finAlwaysTrue) {
				return false
			}
		}

		return true
	case KindOr:
		for _, k := range f.kids {
			if k.eval(v, finAlwaysTrue) {
				return true
			}
		}

		return false
	}

	return false
}

// UsedSets returns the union of every mark referenced by any Inf/Fin leaf.
func (f *Formula) UsedSets() mark.Mark {
	inf, fin := f.UsedInfFinSets()

	return inf.Union(fin)
}

// UsedInfFinSets returns the marks referenced by Inf leaves and by Fin
// leaves, separately.
func (f *Formula) UsedInfFinSets() (inf, fin mark.Mark) {
	var walk func(*Formula)
	walk = func(x *Formula) {
		switch x.kind {
		case KindInf:
			inf = inf.Union(x.m)
		case KindFin:
			fin = fin.Union(x.m)
		case KindAnd, KindOr:
			for _, k := range x.kids {
				walk(k)
			}
		}
	}
	walk(f)

	return inf, fin
}

// Complement returns the structural De Morgan dual of f: ∧↔∨, Inf↔Fin.
func (f *Formula) Complement() *Formula {
	switch f.kind {
	case KindT:
		return sharedF
	case KindF:
		return sharedT
	case KindInf:
		return Fin(f.m)
	case KindFin:
		return Inf(f.m)
	case KindAnd:
		kids := make([]*Formula, len(f.kids))
		for i, k := range f.kids {
			kids[i] = k.Complement()
		}

		return Or(kids...)
	case KindOr:
		kids := make([]*Formula, len(f.kids))
		for i, k := range f.kids {
			kids[i] = k.Complement()
		}

		return And(kids...)
	}

	return sharedF
}

// IsDNF reports whether f is already in the DNF shape ToDNF would produce:
// an Or of clauses, each clause an And of Fin-singletons plus one Inf term.
func (f *Formula) IsDNF() bool {
	if f.IsT() || f.IsF() || f.kind == KindInf || f.kind == KindFin {
		return true
	}
	clauses := f.kids
	top := f
	if f.kind != KindOr {
		clauses = []*Formula{f}
	} else {
		top = f
	}
	_ = top
	for _, c := range clauses {
		if !isDNFClause(c) {
			return false
		}
	}

	return true
}

func isDNFClause(c *Formula) bool {
	if c.kind == KindInf || c.kind == KindFin {
		return true
	}
	if c.kind != KindAnd {
		return false
	}
	infCount := 0
	for _, k := range c.kids {
		switch k.kind {
		case KindFin:
			if k.m.Count() != 1 {
				return false
			}
		case KindInf:
			infCount++
		default:
			return false
		}
	}

	return infCount <= 1
}

// IsCNF reports whether f is already in the CNF shape ToCNF would produce:
// an And of clauses, each clause an Or of Inf-singletons plus one Fin term.
func (f *Formula) IsCNF() bool {
	if f.IsT() || f.IsF() || f.kind == KindInf || f.kind == KindFin {
		return true
	}
	clauses := []*Formula{f}
	if f.kind == KindAnd {
		clauses = f.kids
	}
	for _, c := range clauses {
		if !isCNFClause(c) {
			return false
		}
	}

	return true
}

func isCNFClause(c *Formula) bool {
	if c.kind == KindInf || c.kind == KindFin {
		return true
	}
	if c.kind != KindOr {
		return false
	}
	finCount := 0
	for _, k := range c.kids {
		switch k.kind {
		case KindInf:
			if k.m.Count() != 1 {
				return false
			}
		case KindFin:
			finCount++
		default:
			return false
		}
	}

	return finCount <= 1
}
