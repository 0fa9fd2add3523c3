package automaton

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the structural invariants the rest of this module relies
// on: the initial state is in range, every set the acceptance formula
// references falls below the declared universe (state-based acceptance has
// no universe to check against), and every edge's label shares this
// automaton's BDD dictionary. Every violation found is reported via
// go-multierror, not just the first, since the point of a bulk structural
// check is to surface everything wrong in one pass.
func (a *Automaton) Validate() error {
	a.mu.RLock()
	initial := a.initial
	numSets := a.numSets
	acc := a.acc
	n := a.graph.NumStates()
	a.mu.RUnlock()

	var result *multierror.Error

	if initial < 0 || initial >= n {
		result = multierror.Append(result, fmt.Errorf("automaton: Validate: initial state %d out of range [0,%d): %w", initial, n, ErrStateOutOfRange))
	}

	if numSets > 0 {
		if used := acc.UsedSets(); used.MaxSet() > numSets {
			result = multierror.Append(result, fmt.Errorf("automaton: Validate: %w", ErrAcceptanceSetOutOfRange))
		}
	}

	for _, e := range a.graph.Edges() {
		if e.Label.Dict() != a.dict {
			result = multierror.Append(result, fmt.Errorf("automaton: Validate: edge %d: %w", e.ID, ErrDictMismatch))
		}
	}

	return result.ErrorOrNil()
}
