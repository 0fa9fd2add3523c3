package mark

import (
	"math/bits"
	"strconv"
)

// Mark is a value type representing a set of acceptance-set indices in
// [0, Width). The zero value is the empty set.
type Mark struct {
	bits uint64
}

// New builds a Mark from the given indices, returning ErrOutOfRange if any
// index falls outside [0, Width).
func New(indices ...int) (Mark, error) {
	var m Mark
	for _, i := range indices {
		if i < 0 || i >= Width {
			return Mark{}, ErrOutOfRange
		}
		m.bits |= 1 << uint(i)
	}

	return m, nil
}

// Empty returns the empty Mark; equivalent to the zero value but explicit
// at call sites that build up a set incrementally.
func Empty() Mark { return Mark{} }

// Has reports whether i is a member of m.
func (m Mark) Has(i int) bool {
	if i < 0 || i >= Width {
		return false
	}

	return m.bits&(1<<uint(i)) != 0
}

// Set returns a new Mark with i added. Returns ErrOutOfRange if i is out of
// range; the returned Mark is then the zero value.
func (m Mark) Set(i int) (Mark, error) {
	if i < 0 || i >= Width {
		return Mark{}, ErrOutOfRange
	}

	return Mark{bits: m.bits | (1 << uint(i))}, nil
}

// Clear returns a new Mark with i removed. Out-of-range indices are simply
// absent already, so Clear never errors.
func (m Mark) Clear(i int) Mark {
	if i < 0 || i >= Width {
		return m
	}

	return Mark{bits: m.bits &^ (1 << uint(i))}
}

// Count returns the population count (number of set indices) of m.
func (m Mark) Count() int {
	return bits.OnesCount64(m.bits)
}

// IsEmpty reports whether m has no members.
func (m Mark) IsEmpty() bool {
	return m.bits == 0
}

// MaxSet returns 0 if m is empty, else the highest set index plus one —
// i.e. the smallest universe size under which m is representable.
func (m Mark) MaxSet() int {
	if m.bits == 0 {
		return 0
	}

	return bits.Len64(m.bits)
}

// Lowest returns the singleton Mark containing only the lowest set bit of m,
// or the empty Mark if m is empty.
func (m Mark) Lowest() Mark {
	return Mark{bits: m.bits & (-m.bits)}
}

// LowestIndex returns the index of the lowest set bit and true, or (0,
// false) if m is empty.
func (m Mark) LowestIndex() (int, bool) {
	if m.bits == 0 {
		return 0, false
	}

	return bits.TrailingZeros64(m.bits), true
}

// Union returns m ∪ o.
func (m Mark) Union(o Mark) Mark { return Mark{bits: m.bits | o.bits} }

// Intersect returns m ∩ o.
func (m Mark) Intersect(o Mark) Mark { return Mark{bits: m.bits & o.bits} }

// Diff returns m \ o.
func (m Mark) Diff(o Mark) Mark { return Mark{bits: m.bits &^ o.bits} }

// SymDiff returns the symmetric difference m Δ o.
func (m Mark) SymDiff(o Mark) Mark { return Mark{bits: m.bits ^ o.bits} }

// Subset reports whether m ⊆ o.
func (m Mark) Subset(o Mark) bool { return m.bits&o.bits == m.bits }

// Complement returns the complement of m with respect to a declared universe
// size. Bits at or above universe are never set on the result.
func (m Mark) Complement(universe int) Mark {
	if universe <= 0 {
		return Mark{}
	}
	if universe > Width {
		universe = Width
	}
	var full uint64
	if universe == Width {
		full = ^uint64(0)
	} else {
		full = (uint64(1) << uint(universe)) - 1
	}

	return Mark{bits: ^m.bits & full}
}

// Strip removes the bits selected by mask and compacts the remaining bits
// downward, so that a hole at index i shifts every higher index down by one
// per bit removed below it. The caller is responsible for tracking that the
// result's universe shrinks by mask.Count().
func (m Mark) Strip(maskToRemove Mark) Mark {
	if maskToRemove.bits == 0 {
		return m
	}
	var result uint64
	var outBit uint
	for i := 0; i < Width; i++ {
		bitIsRemoved := maskToRemove.bits&(1<<uint(i)) != 0
		if bitIsRemoved {
			continue
		}
		if m.bits&(1<<uint(i)) != 0 {
			result |= 1 << outBit
		}
		outBit++
	}

	return Mark{bits: result}
}

// ShiftLeft renumbers every member of m upward by off, i.e. index i becomes
// i+off. Indices that would land at or beyond Width are dropped silently,
// mirroring the fixed-width contract (callers needing CapacityExceeded
// semantics should check MaxSet()+off <= Width beforehand).
func (m Mark) ShiftLeft(off int) Mark {
	if off <= 0 {
		if off == 0 {
			return m
		}

		return m.ShiftRight(-off)
	}
	if off >= Width {
		return Mark{}
	}

	return Mark{bits: m.bits << uint(off)}
}

// ShiftRight renumbers every member of m downward by off; members below off
// are dropped.
func (m Mark) ShiftRight(off int) Mark {
	if off <= 0 {
		if off == 0 {
			return m
		}

		return m.ShiftLeft(-off)
	}
	if off >= Width {
		return Mark{}
	}

	return Mark{bits: m.bits >> uint(off)}
}

// Equal reports structural equality of m and o.
func (m Mark) Equal(o Mark) bool { return m.bits == o.bits }

// Less implements the lexicographic total order over the bit pattern,
// required by spec.md §3 ("equality and total order are the lexicographic
// order of the underlying bit pattern").
func (m Mark) Less(o Mark) bool { return m.bits < o.bits }

// Sets returns the members of m in ascending order.
func (m Mark) Sets() []int {
	out := make([]int, 0, m.Count())
	rest := m.bits
	for rest != 0 {
		i := bits.TrailingZeros64(rest)
		out = append(out, i)
		rest &= rest - 1
	}

	return out
}

// Raw exposes the underlying bit pattern, primarily for hashing/map-key use
// and for the BDD/mark interplay in the acceptance-to-BDD detour.
func (m Mark) Raw() uint64 { return m.bits }

// FromRaw reconstructs a Mark from a previously obtained Raw() value.
func FromRaw(bits uint64) Mark { return Mark{bits: bits} }

// String renders m as "{i,j,k}" in ascending order, e.g. "{0,2,5}".
func (m Mark) String() string {
	sets := m.Sets()
	out := make([]byte, 0, 2+4*len(sets))
	out = append(out, '{')
	for i, s := range sets {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, strconv.Itoa(s)...)
	}
	out = append(out, '}')

	return string(out)
}
