package acceptance

import "github.com/wautomata/omega/mark"

// Buchi returns Inf({0}), the plain Büchi acceptance condition.
func Buchi() *Formula {
	m, _ := mark.New(0)

	return Inf(m)
}

// CoBuchi returns Fin({0}), the plain co-Büchi acceptance condition.
func CoBuchi() *Formula {
	m, _ := mark.New(0)

	return Fin(m)
}

// GeneralizedBuchi returns the conjunction Inf(0) ∧ Inf(1) ∧ ... ∧ Inf(n-1),
// which the And constructor canonicalizes into a single Inf({0,...,n-1}).
func GeneralizedBuchi(n int) (*Formula, error) {
	m, err := rangeMark(n)
	if err != nil {
		return nil, err
	}

	return Inf(m), nil
}

// GeneralizedCoBuchi returns Fin(0) ∨ Fin(1) ∨ ... ∨ Fin(n-1), canonicalized
// into a single Fin({0,...,n-1}).
func GeneralizedCoBuchi(n int) (*Formula, error) {
	m, err := rangeMark(n)
	if err != nil {
		return nil, err
	}

	return Fin(m), nil
}

func rangeMark(n int) (mark.Mark, error) {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = i
	}

	return mark.New(idx...)
}

// Rabin builds the glossary's ⋁ᵢ (Fin(2i) ∧ Inf(2i+1)) condition over pairs
// pair sets.
func Rabin(pairs int) (*Formula, error) {
	clauses := make([]*Formula, pairs)
	for i := 0; i < pairs; i++ {
		fm, err := mark.New(2 * i)
		if err != nil {
			return nil, err
		}
		im, err := mark.New(2*i + 1)
		if err != nil {
			return nil, err
		}
		clauses[i] = And(Fin(fm), Inf(im))
	}

	return Or(clauses...), nil
}

// Streett builds the De Morgan dual of Rabin: ⋀ᵢ (Fin(2i) ∨ Inf(2i+1)).
func Streett(pairs int) (*Formula, error) {
	clauses := make([]*Formula, pairs)
	for i := 0; i < pairs; i++ {
		fm, err := mark.New(2 * i)
		if err != nil {
			return nil, err
		}
		im, err := mark.New(2*i + 1)
		if err != nil {
			return nil, err
		}
		clauses[i] = Or(Fin(fm), Inf(im))
	}

	return And(clauses...), nil
}

// ParityMax builds the standard recursive max-parity formula over numSets
// colors 0..numSets-1: accept iff the maximum color visited infinitely
// often has the parity selected by odd.
func ParityMax(numSets int, odd bool) *Formula {
	good := 0
	if odd {
		good = 1
	}

	return buildParityDesc(numSets-1, good)
}

// ParityMin builds the standard recursive min-parity formula over numSets
// colors 0..numSets-1: accept iff the minimum color visited infinitely
// often has the parity selected by odd.
func ParityMin(numSets int, odd bool) *Formula {
	good := 0
	if odd {
		good = 1
	}

	return buildParityAsc(0, numSets, good)
}

func buildParityDesc(hi, good int) *Formula {
	if hi < 0 {
		return sharedF
	}
	m, _ := mark.New(hi)
	rest := buildParityDesc(hi-1, good)
	if hi%2 == good {
		return Or(Inf(m), And(Fin(m), rest))
	}

	return And(Fin(m), rest)
}

func buildParityAsc(lo, n, good int) *Formula {
	if lo >= n {
		return sharedF
	}
	m, _ := mark.New(lo)
	rest := buildParityAsc(lo+1, n, good)
	if lo%2 == good {
		return Or(Inf(m), And(Fin(m), rest))
	}

	return And(Fin(m), rest)
}

// IsBuchi reports whether f is exactly Inf({0}).
func (f *Formula) IsBuchi() bool {
	if f.kind != KindInf {
		return false
	}
	want, _ := mark.New(0)

	return f.m.Equal(want)
}

// IsCoBuchi reports whether f is exactly Fin({0}).
func (f *Formula) IsCoBuchi() bool {
	if f.kind != KindFin {
		return false
	}
	want, _ := mark.New(0)

	return f.m.Equal(want)
}

// IsGeneralizedBuchi reports whether f is a (possibly singleton) Inf node —
// the canonical shape any conjunction of Inf conditions reduces to.
func (f *Formula) IsGeneralizedBuchi() bool {
	return f.kind == KindInf
}

// IsGeneralizedCoBuchi reports whether f is a (possibly singleton) Fin node.
func (f *Formula) IsGeneralizedCoBuchi() bool {
	return f.kind == KindFin
}

func rabinPair(c *Formula) (finSet, infSet mark.Mark, ok bool) {
	if c.kind == KindAnd && len(c.kids) == 2 {
		a, bb := c.kids[0], c.kids[1]
		if a.kind == KindFin && bb.kind == KindInf {
			return a.m, bb.m, true
		}
		if a.kind == KindInf && bb.kind == KindFin {
			return bb.m, a.m, true
		}
	}

	return mark.Empty(), mark.Empty(), false
}

func streettPair(c *Formula) (finSet, infSet mark.Mark, ok bool) {
	if c.kind == KindOr && len(c.kids) == 2 {
		a, bb := c.kids[0], c.kids[1]
		if a.kind == KindFin && bb.kind == KindInf {
			return a.m, bb.m, true
		}
		if a.kind == KindInf && bb.kind == KindFin {
			return bb.m, a.m, true
		}
	}

	return mark.Empty(), mark.Empty(), false
}

// IsRabin reports whether f is a disjunction of Rabin pairs
// (Fin(singleton) ∧ Inf(singleton)), returning the pair count, or -1 if f
// does not have this shape.
func (f *Formula) IsRabin() int {
	return rabinLikeCount(f, true)
}

// IsGeneralizedRabin reports whether f is a disjunction of generalized Rabin
// pairs (Fin(singleton) ∧ Inf(anyNonEmpty)), returning the pair count, or -1
// otherwise.
func (f *Formula) IsGeneralizedRabin() int {
	return rabinLikeCount(f, false)
}

func rabinLikeCount(f *Formula, requireSingletonInf bool) int {
	clauses := []*Formula{f}
	if f.kind == KindOr {
		clauses = f.kids
	}
	count := 0
	for _, c := range clauses {
		fin, inf, ok := rabinPair(c)
		if !ok || fin.Count() != 1 || inf.IsEmpty() {
			return -1
		}
		if requireSingletonInf && inf.Count() != 1 {
			return -1
		}
		count++
	}

	return count
}

// IsStreett reports whether f is a conjunction of Streett pairs
// (Fin(singleton) ∨ Inf(singleton)), returning the pair count, or -1.
func (f *Formula) IsStreett() int {
	clauses := []*Formula{f}
	if f.kind == KindAnd {
		clauses = f.kids
	}
	count := 0
	for _, c := range clauses {
		fin, inf, ok := streettPair(c)
		if !ok || fin.Count() != 1 || inf.Count() != 1 {
			return -1
		}
		count++
	}

	return count
}

// IsParity reports whether f matches the canonical ParityMax/ParityMin
// formula for f's own used-set count, under the requested max/odd polarity.
// When equiv is true, equivalence is checked semantically (by brute-force
// enumeration over all visited-mark subsets, bounded to small universes)
// rather than requiring syntactic identity.
func (f *Formula) IsParity(max, odd, equiv bool) bool {
	n := f.UsedSets().MaxSet()
	var candidate *Formula
	if max {
		candidate = ParityMax(n, odd)
	} else {
		candidate = ParityMin(n, odd)
	}
	if !equiv {
		return f.Equal(candidate)
	}

	return semanticallyEqual(f, candidate, n)
}

// semanticallyEqual brute-forces equivalence over every subset of marks
// [0,n) when n is small enough to enumerate; for larger n it falls back to
// the syntactic check, which is always sound but may reject some
// equivalent-but-differently-shaped formulas.
func semanticallyEqual(a, b *Formula, n int) bool {
	const maxBruteForce = 20
	if n > maxBruteForce {
		return a.Equal(b)
	}
	total := 1 << uint(n)
	for i := 0; i < total; i++ {
		var v mark.Mark
		for bit := 0; bit < n; bit++ {
			if i&(1<<uint(bit)) != 0 {
				v, _ = v.Set(bit)
			}
		}
		if a.Accepting(v) != b.Accepting(v) {
			return false
		}
	}

	return true
}
