package bddlabel

import "sort"

// Label is an opaque, reference-counted handle to a Boolean function over
// the atomic propositions registered in its owning Dict. The zero Label is
// not valid; obtain one from Dict.True, Dict.False, Dict.Var, or another
// Label's methods.
type Label struct {
	dict *Dict
	id   int32
}

// True returns the constant-true label, owned by the caller.
func (d *Dict) True() Label {
	return Label{dict: d, id: bddTrue}
}

// False returns the constant-false label, owned by the caller.
func (d *Dict) False() Label {
	return Label{dict: d, id: bddFalse}
}

// Var returns the label for the single positive literal of the given
// registered AP index.
func (d *Dict) Var(apIndex int) (Label, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if apIndex < 0 || apIndex >= len(d.apNames) {
		return Label{}, ErrUnknownAP
	}

	return Label{dict: d, id: d.varNode(int32(apIndex))}, nil
}

// Dict returns the Dict that owns l.
func (l Label) Dict() *Dict { return l.dict }

// IsTrue reports whether l is the constant-true function.
func (l Label) IsTrue() bool { return l.id == bddTrue }

// IsFalse reports whether l is the constant-false function.
func (l Label) IsFalse() bool { return l.id == bddFalse }

// Equal reports whether l and o denote the same Boolean function. Because
// the underlying representation is a reduced, structurally-hashed BDD,
// semantic equality always coincides with handle identity.
func (l Label) Equal(o Label) bool {
	return l.dict == o.dict && l.id == o.id
}

// Handle returns an implementation-defined integer that uniquely identifies
// the Boolean function l denotes within its Dict, for as long as l (or an
// equal Label) stays referenced. It exists purely to give callers outside
// this package a deterministic sort/grouping key and carries no meaning
// across different Dicts.
func (l Label) Handle() int32 { return l.id }

func (l Label) sameDict(o Label) error {
	if l.dict != o.dict {
		return ErrDictMismatch
	}

	return nil
}

// Ref adds one owned reference to l's underlying node, so that a caller
// holding onto a Label beyond the scope that produced it keeps it alive.
func (l Label) Ref() Label {
	l.dict.mu.Lock()
	l.dict.ref(l.id)
	l.dict.mu.Unlock()

	return l
}

// Unref releases one owned reference. Once every reference to a node is
// released, the node is reclaimed and its id may be reused by a
// structurally-different future node.
func (l Label) Unref() {
	l.dict.mu.Lock()
	l.dict.unref(l.id)
	l.dict.mu.Unlock()
}

// Not returns ¬l.
func (l Label) Not() Label {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	return Label{dict: l.dict, id: l.dict.not(l.id)}
}

// And returns l ∧ o.
func (l Label) And(o Label) (Label, error) {
	if err := l.sameDict(o); err != nil {
		return Label{}, err
	}
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	return Label{dict: l.dict, id: l.dict.and(l.id, o.id)}, nil
}

// Or returns l ∨ o.
func (l Label) Or(o Label) (Label, error) {
	if err := l.sameDict(o); err != nil {
		return Label{}, err
	}
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	return Label{dict: l.dict, id: l.dict.or(l.id, o.id)}, nil
}

// Xor returns l ⊕ o.
func (l Label) Xor(o Label) (Label, error) {
	if err := l.sameDict(o); err != nil {
		return Label{}, err
	}
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	return Label{dict: l.dict, id: l.dict.xor(l.id, o.id)}, nil
}

// Exists returns ∃ aps. l, the existential quantification of l over the
// given atomic-proposition indices.
func (l Label) Exists(aps []int) (Label, error) {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	set, err := toVarSet(l.dict, aps)
	if err != nil {
		return Label{}, err
	}

	return Label{dict: l.dict, id: l.dict.quantify(l.id, set, true)}, nil
}

// Forall returns ∀ aps. l, the universal quantification of l over the
// given atomic-proposition indices.
func (l Label) Forall(aps []int) (Label, error) {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	set, err := toVarSet(l.dict, aps)
	if err != nil {
		return Label{}, err
	}

	return Label{dict: l.dict, id: l.dict.quantify(l.id, set, false)}, nil
}

// Restrict substitutes each AP in assignment with its fixed Boolean value
// and returns the resulting label.
func (l Label) Restrict(assignment map[int]bool) (Label, error) {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	lits := make(map[int32]bool, len(assignment))
	for ap, val := range assignment {
		if ap < 0 || ap >= len(l.dict.apNames) {
			return Label{}, ErrUnknownAP
		}
		lits[int32(ap)] = val
	}

	return Label{dict: l.dict, id: l.dict.restrict(l.id, lits)}, nil
}

// Support returns the sorted atomic-proposition indices l's Boolean function
// actually depends on.
func (l Label) Support() []int {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	var out []int
	l.dict.support(l.id, make(map[int32]bool), &out)
	sort.Ints(out)

	return out
}

// PickOneCube extracts one satisfying assignment of l, restricted to the
// atomic propositions in aps: the returned map only carries entries for
// those APs ("restricted to a variable subset" in spec.md §3.C), with the
// remaining variables treated as don't-cares. The second result is false if
// l is unsatisfiable. A nil aps selects every variable the function visits.
func (l Label) PickOneCube(aps []int) (map[int]bool, bool, error) {
	l.dict.mu.Lock()
	defer l.dict.mu.Unlock()

	var restrict map[int32]bool
	if aps != nil {
		restrict = make(map[int32]bool, len(aps))
		for _, ap := range aps {
			if ap < 0 || ap >= len(l.dict.apNames) {
				return nil, false, ErrUnknownAP
			}
			restrict[int32(ap)] = true
		}
	}
	cube, ok := l.dict.pickOneCube(l.id, restrict)

	return cube, ok, nil
}

func toVarSet(d *Dict, aps []int) (map[int32]bool, error) {
	set := make(map[int32]bool, len(aps))
	for _, ap := range aps {
		if ap < 0 || ap >= len(d.apNames) {
			return nil, ErrUnknownAP
		}
		set[int32(ap)] = true
	}

	return set, nil
}
