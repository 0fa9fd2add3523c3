package automaton

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/twagraph"
)

// Automaton is component E: a labelled digraph, an acceptance formula over
// a declared universe size, an ordered list of registered atomic
// propositions, an initial state, a three-valued property-flag record, and
// a typed named-property registry. Safe for concurrent use, though spec.md
// §5 treats the core as single-threaded cooperative beyond read-only access
// to the shared BDD dictionary; the locking here is a safety net, not a
// substitute for that contract.
type Automaton struct {
	mu sync.RWMutex

	dict  *bddlabel.Dict
	graph *twagraph.Graph

	numSets int
	acc     *acceptance.Formula

	apOrder []int
	apSeen  map[int]struct{}

	initial int

	flags Flags
	named map[string]namedPropEntry

	logger hclog.Logger
}

// Option configures an Automaton at construction time.
type Option func(*Automaton)

// WithLogger attaches a logger used for Trace/Debug progress notes by
// long-running algorithms (determinization, Fin-elimination, Rabin→Büchi
// splitting). The default is a null logger, so production use pays
// nothing.
func WithLogger(l hclog.Logger) Option {
	return func(a *Automaton) { a.logger = l }
}

// New returns an empty automaton with a single state (state 0, also the
// initial state), constant-false acceptance over a zero-set universe, and
// no registered atomic propositions, backed by the given shared BDD
// dictionary.
func New(dict *bddlabel.Dict, opts ...Option) *Automaton {
	a := &Automaton{
		dict:   dict,
		graph:  twagraph.New(),
		acc:    acceptance.F(),
		apSeen: make(map[int]struct{}),
		named:  make(map[string]namedPropEntry),
		logger: hclog.NewNullLogger(),
	}
	a.graph.NewState()
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Dict returns the shared BDD dictionary backing this automaton's edge
// labels and registered atomic propositions.
func (a *Automaton) Dict() *bddlabel.Dict { return a.dict }

// Graph returns the underlying labelled digraph.
func (a *Automaton) Graph() *twagraph.Graph { return a.graph }

// Logger returns the automaton's logger.
func (a *Automaton) Logger() hclog.Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.logger
}

// InitialState returns the index of the initial state.
func (a *Automaton) InitialState() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.initial
}

// SetInitialState designates s as the initial state.
func (a *Automaton) SetInitialState(s int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s < 0 || s >= a.graph.NumStates() {
		return fmt.Errorf("automaton: SetInitialState: %w", ErrStateOutOfRange)
	}
	a.initial = s

	return nil
}

// NumSets returns the acceptance universe size; 0 means state-based
// acceptance.
func (a *Automaton) NumSets() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.numSets
}

// Acceptance returns the current acceptance formula.
func (a *Automaton) Acceptance() *acceptance.Formula {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.acc
}

// SetAcceptance atomically sets the acceptance universe size and formula.
// numSets == 0 implies state-based acceptance and sets that flag true.
func (a *Automaton) SetAcceptance(numSets int, formula *acceptance.Formula) error {
	if numSets < 0 {
		return fmt.Errorf("automaton: SetAcceptance: %w", ErrNegativeNumSets)
	}
	if formula == nil {
		return fmt.Errorf("automaton: SetAcceptance: %w", ErrNilFormula)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.numSets = numSets
	a.acc = formula
	if numSets == 0 {
		a.flags.SetStateBasedAcceptance(True)
	}

	return nil
}

// RegisteredAPs returns the atomic-proposition variable indices registered
// on this automaton, in registration order.
func (a *Automaton) RegisteredAPs() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]int, len(a.apOrder))
	copy(out, a.apOrder)

	return out
}

// RegisterAP idempotently registers name with the shared dictionary and
// records its variable index in this automaton's ordered AP list,
// returning that index.
func (a *Automaton) RegisterAP(name string) (int, error) {
	varID, err := a.dict.RegisterAP(name)
	if err != nil {
		return 0, fmt.Errorf("automaton: RegisterAP: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.apSeen[varID]; !ok {
		a.apSeen[varID] = struct{}{}
		a.apOrder = append(a.apOrder, varID)
	}

	return varID, nil
}

// RemoveUnusedAP scans every live edge label's support, computes the
// union, and drops from this automaton's registered AP list any variable
// not in that union. It does not unregister the AP from the shared
// dictionary, since other automata may still reference it there.
func (a *Automaton) RemoveUnusedAP() {
	used := make(map[int]struct{})
	for _, e := range a.graph.Edges() {
		for _, v := range e.Label.Support() {
			used[v] = struct{}{}
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	kept := make([]int, 0, len(a.apOrder))
	seen := make(map[int]struct{}, len(used))
	for _, v := range a.apOrder {
		if _, ok := used[v]; ok {
			kept = append(kept, v)
			seen[v] = struct{}{}
		}
	}
	a.apOrder = kept
	a.apSeen = seen
}

// Flags returns a copy of the automaton's current property-flag record.
func (a *Automaton) Flags() Flags {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.flags
}

// SetStateBasedAcceptance sets the flag.
func (a *Automaton) SetStateBasedAcceptance(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetStateBasedAcceptance(v)
}

// SetStutterInvariant sets the flag.
func (a *Automaton) SetStutterInvariant(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetStutterInvariant(v)
}

// SetTerminal sets the flag, propagating terminal ⇒ weak ⇒ inherently weak.
func (a *Automaton) SetTerminal(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetTerminal(v)
}

// SetWeak sets the flag, propagating weak ⇒ inherently weak and ¬weak ⇒
// ¬terminal.
func (a *Automaton) SetWeak(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetWeak(v)
}

// SetInherentlyWeak sets the flag, propagating ¬inherently-weak ⇒ ¬weak ∧
// ¬terminal.
func (a *Automaton) SetInherentlyWeak(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetInherentlyWeak(v)
}

// SetDeterministic sets the flag, propagating deterministic ⇒ unambiguous.
func (a *Automaton) SetDeterministic(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetDeterministic(v)
}

// SetUnambiguous sets the flag, propagating ¬unambiguous ⇒ ¬deterministic.
func (a *Automaton) SetUnambiguous(v Tri) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flags.SetUnambiguous(v)
}
