package acceptance

import (
	"sort"
	"strings"

	"github.com/wautomata/omega/mark"
)

// Kind discriminates the node types of the acceptance grammar.
type Kind int

const (
	KindT Kind = iota
	KindF
	KindInf
	KindFin
	KindAnd
	KindOr
)

// Formula is an immutable, structurally-canonical acceptance expression.
// Two Formula values represent commutative/associative-equal trees iff
// Equal reports true (their canonical keys match) after passing through the
// package constructors; the constructors allocate fresh nodes, so pointer ==
// is not a test of equality. Callers should never construct a Formula
// literal directly.
type Formula struct {
	kind Kind
	m    mark.Mark   // populated for KindInf / KindFin
	kids []*Formula  // canonically sorted, populated for KindAnd / KindOr
	key  string      // memoized canonical key, used for Equal/map keys
}

var (
	sharedT = &Formula{kind: KindT, key: "t"}
	sharedF = &Formula{kind: KindF, key: "f"}
)

// T returns the constant-true formula.
func T() *Formula { return sharedT }

// F returns the constant-false formula.
func F() *Formula { return sharedF }

// Inf builds Inf(m). Per spec.md §3, Inf(∅) canonicalizes to t().
func Inf(m mark.Mark) *Formula {
	if m.IsEmpty() {
		return sharedT
	}

	return &Formula{kind: KindInf, m: m, key: "i" + m.String()}
}

// Fin builds Fin(m). Per spec.md §3, Fin(∅) canonicalizes to f().
func Fin(m mark.Mark) *Formula {
	if m.IsEmpty() {
		return sharedF
	}

	return &Formula{kind: KindFin, m: m, key: "n" + m.String()}
}

// IsT reports whether f is the constant-true formula.
func (f *Formula) IsT() bool { return f.kind == KindT }

// IsF reports whether f is the constant-false formula.
func (f *Formula) IsF() bool { return f.kind == KindF }

// Kind exposes the node's discriminant.
func (f *Formula) Kind() Kind { return f.kind }

// Mark returns the mark carried by an Inf/Fin leaf; zero value otherwise.
func (f *Formula) Mark() mark.Mark { return f.m }

// Kids returns the canonical children of an And/Or node; nil otherwise. The
// returned slice must not be mutated.
func (f *Formula) Kids() []*Formula { return f.kids }

// Key returns the canonical structural key; equal formulas always share
// equal keys and vice versa.
func (f *Formula) Key() string { return f.key }

// Equal reports structural equality modulo commutativity/associativity,
// which — because every constructor normalizes — reduces to key equality.
func (f *Formula) Equal(o *Formula) bool { return f.key == o.key }

// And builds the conjunction of fs, applying short-circuit and the
// neighbouring-Inf merge rule, and flattening nested And nodes so that
// equality remains structural regardless of how the caller associated calls.
func And(fs ...*Formula) *Formula { return buildConn(KindAnd, fs) }

// Or builds the disjunction of fs, applying short-circuit and the
// neighbouring-Fin merge rule, with the same flattening guarantee as And.
func Or(fs ...*Formula) *Formula { return buildConn(KindOr, fs) }

func buildConn(kind Kind, fs []*Formula) *Formula {
	shortCircuit, absorb := KindF, KindT
	if kind == KindOr {
		shortCircuit, absorb = KindT, KindF
	}

	// 1) Flatten nested nodes of the same kind; drop absorbing identity leaves.
	flat := make([]*Formula, 0, len(fs))
	var flatten func(*Formula)
	flatten = func(x *Formula) {
		if x.kind == shortCircuit {
			return // marker handled below via sentinel scan
		}
		if x.kind == absorb {
			return
		}
		if x.kind == kind {
			for _, k := range x.kids {
				flatten(k)
			}

			return
		}
		flat = append(flat, x)
	}
	for _, x := range fs {
		if x.kind == shortCircuit {
			if kind == KindAnd {
				return sharedF
			}

			return sharedT
		}
	}
	for _, x := range fs {
		flatten(x)
	}

	// 2) Merge neighbouring Inf (under And) or Fin (under Or) leaves into one.
	mergeKind := KindInf
	if kind == KindOr {
		mergeKind = KindFin
	}
	var mergedMark mark.Mark
	haveMerged := false
	rest := make([]*Formula, 0, len(flat))
	for _, x := range flat {
		if x.kind == mergeKind {
			mergedMark = mergedMark.Union(x.m)
			haveMerged = true

			continue
		}
		rest = append(rest, x)
	}
	if haveMerged {
		var merged *Formula
		if mergeKind == KindInf {
			merged = Inf(mergedMark)
		} else {
			merged = Fin(mergedMark)
		}
		if merged.kind != absorb { // Inf(∅)=t under And is the absorbing id; skip if reduced away.
			rest = append(rest, merged)
		}
	}

	// 3) Dedupe identical sub-formulas by canonical key.
	seen := make(map[string]*Formula, len(rest))
	order := make([]*Formula, 0, len(rest))
	for _, x := range rest {
		if _, ok := seen[x.key]; ok {
			continue
		}
		seen[x.key] = x
		order = append(order, x)
	}

	// 4) Canonical sort for structural (commutative/associative) equality.
	sort.Slice(order, func(i, j int) bool { return order[i].key < order[j].key })

	if len(order) == 0 {
		return identityFor(kind)
	}
	if len(order) == 1 {
		return order[0]
	}

	keys := make([]string, len(order))
	for i, x := range order {
		keys[i] = x.key
	}
	opByte := "&"
	if kind == KindOr {
		opByte = "|"
	}

	return &Formula{kind: kind, kids: order, key: "(" + strings.Join(keys, opByte) + ")"}
}

func identityFor(kind Kind) *Formula {
	if kind == KindAnd {
		return sharedT
	}

	return sharedF
}
