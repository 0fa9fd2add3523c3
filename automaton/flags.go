package automaton

// Tri is a three-valued property flag: Unknown, True, or False.
type Tri int8

const (
	Unknown Tri = 0
	True    Tri = 1
	False   Tri = -1
)

// String renders t as "unknown", "true", or "false".
func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Flags holds the seven three-valued automaton properties spec.md §3
// tracks. Use the Set* methods rather than assigning fields directly: they
// enforce the implications between flags (terminal ⇒ weak ⇒ inherently
// weak; ¬inherently-weak ⇒ ¬weak ∧ ¬terminal; deterministic ⇒ unambiguous;
// ¬unambiguous ⇒ ¬deterministic) so the record can never represent a
// contradictory combination.
type Flags struct {
	StateBasedAcceptance Tri
	InherentlyWeak       Tri
	Weak                 Tri
	Terminal             Tri
	Deterministic        Tri
	Unambiguous          Tri
	StutterInvariant     Tri
}

// SetStateBasedAcceptance sets the flag; no other flag depends on it.
func (f *Flags) SetStateBasedAcceptance(v Tri) { f.StateBasedAcceptance = v }

// SetStutterInvariant sets the flag; no other flag depends on it.
func (f *Flags) SetStutterInvariant(v Tri) { f.StutterInvariant = v }

// SetTerminal sets Terminal and, when setting it true, propagates terminal
// ⇒ weak ⇒ inherently weak.
func (f *Flags) SetTerminal(v Tri) {
	f.Terminal = v
	if v == True {
		f.SetWeak(True)
	}
}

// SetWeak sets Weak, propagating weak ⇒ inherently weak on true and the
// contrapositive ¬weak ⇒ ¬terminal on false.
func (f *Flags) SetWeak(v Tri) {
	f.Weak = v
	switch v {
	case True:
		f.InherentlyWeak = True
	case False:
		f.Terminal = False
	}
}

// SetInherentlyWeak sets InherentlyWeak, propagating the contrapositive
// ¬inherently-weak ⇒ ¬weak ∧ ¬terminal on false.
func (f *Flags) SetInherentlyWeak(v Tri) {
	f.InherentlyWeak = v
	if v == False {
		f.Weak = False
		f.Terminal = False
	}
}

// SetDeterministic sets Deterministic, propagating deterministic ⇒
// unambiguous on true.
func (f *Flags) SetDeterministic(v Tri) {
	f.Deterministic = v
	if v == True {
		f.Unambiguous = True
	}
}

// SetUnambiguous sets Unambiguous, propagating the contrapositive
// ¬unambiguous ⇒ ¬deterministic on false.
func (f *Flags) SetUnambiguous(v Tri) {
	f.Unambiguous = v
	if v == False {
		f.Deterministic = False
	}
}
