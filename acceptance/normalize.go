package acceptance

import (
	"sort"

	"github.com/wautomata/omega/mark"
)

// varAllocation maps used acceptance-set indices to dense BDD variable
// numbers [0, len(sets)), the "one Boolean variable per used set" detour
// spec.md §4.B describes.
type varAllocation struct {
	setOf []int       // var -> set index
	varOf map[int]int // set index -> var
}

func allocateVars(used mark.Mark) (*varAllocation, error) {
	sets := used.Sets()
	if len(sets) > maxBDDVars {
		return nil, ErrCapacityExceeded
	}
	va := &varAllocation{setOf: sets, varOf: make(map[int]int, len(sets))}
	for i, s := range sets {
		va.varOf[s] = i
	}

	return va, nil
}

// toBDD compiles f into the robdd b, interpreting Inf(s) as var(s) and
// Fin(s) as ¬var(s), per spec.md §4.B's to_dnf/to_cnf strategy.
func toBDD(b *robdd, va *varAllocation, f *Formula) int32 {
	switch f.kind {
	case KindT:
		return robddTrue
	case KindF:
		return robddFalse
	case KindInf:
		res := robddTrue
		for _, s := range f.m.Sets() {
			res = b.and(res, b.varNode(va.varOf[s]))
		}

		return res
	case KindFin:
		res := robddFalse
		for _, s := range f.m.Sets() {
			res = b.or(res, b.not(b.varNode(va.varOf[s])))
		}

		return res
	case KindAnd:
		res := robddTrue
		for _, k := range f.kids {
			res = b.and(res, toBDD(b, va, k))
		}

		return res
	case KindOr:
		res := robddFalse
		for _, k := range f.kids {
			res = b.or(res, toBDD(b, va, k))
		}

		return res
	}

	return robddFalse
}

// ToDNF returns the canonical disjunctive normal form of f: an Or of
// clauses, each clause an And of Fin-singletons plus one combined Inf term.
func (f *Formula) ToDNF() (*Formula, error) {
	if f.IsT() || f.IsF() || f.kind == KindInf || f.kind == KindFin {
		return f, nil
	}
	va, err := allocateVars(f.UsedSets())
	if err != nil {
		return nil, err
	}
	b := newROBDD()
	res := toBDD(b, va, f)
	if res == robddTrue {
		return sharedT, nil
	}
	if res == robddFalse {
		return sharedF, nil
	}

	var terms []*Formula
	for _, c := range b.cubesToTrue(res) {
		var inf mark.Mark
		var ands []*Formula
		for v, val := range c {
			s := va.setOf[v]
			sm, _ := mark.New(s)
			if val {
				inf = inf.Union(sm)
			} else {
				ands = append(ands, Fin(sm))
			}
		}
		ands = append(ands, Inf(inf))
		terms = append(terms, And(ands...))
	}

	return Or(terms...), nil
}

// ToCNF returns the canonical conjunctive normal form of f: an And of
// clauses, each clause an Or of Inf-singletons plus one combined Fin term.
func (f *Formula) ToCNF() (*Formula, error) {
	if f.IsT() || f.IsF() || f.kind == KindInf || f.kind == KindFin {
		return f, nil
	}
	va, err := allocateVars(f.UsedSets())
	if err != nil {
		return nil, err
	}
	b := newROBDD()
	res := toBDD(b, va, f)
	if res == robddTrue {
		return sharedT, nil
	}
	if res == robddFalse {
		return sharedF, nil
	}

	var clauses []*Formula
	for _, c := range b.cubesToTrue(b.not(res)) {
		var fin mark.Mark
		var ors []*Formula
		for v, val := range c {
			s := va.setOf[v]
			sm, _ := mark.New(s)
			if !val {
				ors = append(ors, Inf(sm))
			} else {
				fin = fin.Union(sm)
			}
		}
		ors = append(ors, Fin(fin))
		clauses = append(clauses, Or(ors...))
	}

	return And(clauses...), nil
}

// UnsatMark returns (true, V) for some visited-marks set V making f false,
// or (false, ∅) if f is a tautology (t, or equivalent to it).
func (f *Formula) UnsatMark() (bool, mark.Mark, error) {
	if f.IsT() {
		return false, mark.Empty(), nil
	}
	if f.IsF() {
		return true, mark.Empty(), nil
	}
	va, err := allocateVars(f.UsedSets())
	if err != nil {
		return false, mark.Empty(), err
	}
	b := newROBDD()
	res := toBDD(b, va, f)
	if res == robddTrue {
		return false, mark.Empty(), nil
	}
	if res == robddFalse {
		return true, mark.Empty(), nil
	}

	c, ok := b.pickOneCube(b.not(res))
	if !ok {
		return false, mark.Empty(), nil
	}
	var v mark.Mark
	for varIdx, val := range c {
		if val {
			sm, _ := mark.New(va.setOf[varIdx])
			v = v.Union(sm)
		}
	}

	return true, v, nil
}

// Missing describes how a cycle that has already visited v can be closed so
// that it gets the desired verdict (accepting or not). The result is a
// conjunction of clauses, each clause a disjunction of signed mark indices:
// an entry s >= 0 means set s must be visited, an entry -s-1 means set s
// must not be. A nil result means every extension of v already has the
// verdict; a single empty clause means no extension of v can reach it. Used
// by SAT-based minimization to enumerate how a candidate cycle can be forced
// to a verdict.
func (f *Formula) Missing(v mark.Mark, accepting bool) ([][]int, error) {
	if f.IsT() {
		if accepting {
			return nil, nil
		}

		return [][]int{{}}, nil
	}
	if f.IsF() {
		if accepting {
			return [][]int{{}}, nil
		}

		return nil, nil
	}

	used := f.UsedSets()
	va, err := allocateVars(used)
	if err != nil {
		return nil, err
	}
	b := newROBDD()
	res := toBDD(b, va, f)

	known := make(map[int]bool, used.Count())
	for _, s := range used.Sets() {
		if v.Has(s) {
			known[va.varOf[s]] = true
		}
	}
	restricted := b.restrict(res, known)
	if accepting {
		restricted = b.not(restricted)
	}
	if restricted == robddFalse {
		return nil, nil
	}
	if restricted == robddTrue {
		return [][]int{{}}, nil
	}

	var clauses [][]int
	for _, c := range b.cubesToTrue(restricted) {
		var clause []int
		for varIdx, val := range c {
			// c is an assignment giving the wrong verdict; the clause is its
			// negation.
			s := va.setOf[varIdx]
			if val {
				clause = append(clause, -s-1)
			} else {
				clause = append(clause, s)
			}
		}
		sort.Slice(clause, func(i, j int) bool { return abs(clause[i]) < abs(clause[j]) })
		clauses = append(clauses, clause)
	}

	return clauses, nil
}

func abs(i int) int {
	if i < 0 {
		return -i - 1
	}

	return i
}

// Strip removes the acceptance sets in rem and shifts remaining indices
// down. If missing is true, removed sets are treated as permanently absent
// (Inf collapses to f, Fin to t, whenever the leaf's mark overlaps rem); if
// false, removed sets are treated as permanently present (stripping an Inf
// leaf's mark down to ∅ naturally yields t via the Inf(∅)=t canonicalization,
// and symmetrically for Fin).
func (f *Formula) Strip(rem mark.Mark, missing bool) *Formula {
	switch f.kind {
	case KindT, KindF:
		return f
	case KindFin:
		if missing && !f.m.Intersect(rem).IsEmpty() {
			return sharedT
		}

		return Fin(f.m.Strip(rem))
	case KindInf:
		if missing && !f.m.Intersect(rem).IsEmpty() {
			return sharedF
		}

		return Inf(f.m.Strip(rem))
	case KindAnd:
		kids := make([]*Formula, len(f.kids))
		for i, k := range f.kids {
			kids[i] = k.Strip(rem, missing)
		}

		return And(kids...)
	case KindOr:
		kids := make([]*Formula, len(f.kids))
		for i, k := range f.kids {
			kids[i] = k.Strip(rem, missing)
		}

		return Or(kids...)
	}

	return f
}
