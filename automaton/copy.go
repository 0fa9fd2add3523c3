package automaton

import "fmt"

// CopyAcceptanceOf replaces a's acceptance universe size and formula with
// other's.
func (a *Automaton) CopyAcceptanceOf(other *Automaton) {
	other.mu.RLock()
	numSets, acc := other.numSets, other.acc
	other.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.numSets = numSets
	a.acc = acc
}

// CopyAPOf replaces a's registered atomic-proposition list with other's.
// Both automata must share the same BDD dictionary, since variable indices
// are only meaningful within one dictionary.
func (a *Automaton) CopyAPOf(other *Automaton) error {
	if a.dict != other.dict {
		return fmt.Errorf("automaton: CopyAPOf: %w", ErrDictMismatch)
	}

	other.mu.RLock()
	order := make([]int, len(other.apOrder))
	copy(order, other.apOrder)
	other.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.apOrder = order
	a.apSeen = make(map[int]struct{}, len(order))
	for _, v := range order {
		a.apSeen[v] = struct{}{}
	}

	return nil
}

// PropSelection chooses which groups of three-valued flags PropCopy copies
// from the source automaton; unselected groups are reset to Unknown.
type PropSelection struct {
	StateBased     bool
	InherentlyWeak bool
	Deterministic  bool
	StutterInv     bool
}

// PropCopy bulk-copies the flag groups sel selects from other, resetting
// the rest to Unknown. The inherently-weak group bundles InherentlyWeak,
// Weak, and Terminal together (they only ever move together under the
// implication chain SetWeak/SetTerminal/SetInherentlyWeak enforce), and the
// deterministic group bundles Deterministic with Unambiguous, per spec.md
// §4.E's selection record `{state_based, inherently_weak, deterministic,
// stutter_inv}`.
func (a *Automaton) PropCopy(other *Automaton, sel PropSelection) {
	other.mu.RLock()
	src := other.flags
	other.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if sel.StateBased {
		a.flags.StateBasedAcceptance = src.StateBasedAcceptance
	} else {
		a.flags.StateBasedAcceptance = Unknown
	}
	if sel.InherentlyWeak {
		a.flags.InherentlyWeak = src.InherentlyWeak
		a.flags.Weak = src.Weak
		a.flags.Terminal = src.Terminal
	} else {
		a.flags.InherentlyWeak = Unknown
		a.flags.Weak = Unknown
		a.flags.Terminal = Unknown
	}
	if sel.Deterministic {
		a.flags.Deterministic = src.Deterministic
		a.flags.Unambiguous = src.Unambiguous
	} else {
		a.flags.Deterministic = Unknown
		a.flags.Unambiguous = Unknown
	}
	if sel.StutterInv {
		a.flags.StutterInvariant = src.StutterInvariant
	} else {
		a.flags.StutterInvariant = Unknown
	}
}
