package domain

// Default values used by editors when a blank transition row is added.
const (
	DefaultState = "IDLE"
	DefaultGuard = "1"
)

// Transition defines a rule to move from one state to another.
type Transition struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Guard is an opaque boolean expression in the target HDL, e.g. "pi_data == 1'b1".
	// It is substituted verbatim into the generated code.
	Guard string `json:"guard" yaml:"guard"`

	// Actions is a comma or semicolon separated list of "signal = value" assignments.
	Actions string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// NewTransition returns the row an editor inserts when the user adds a blank transition.
func NewTransition() Transition {
	return Transition{
		Source: DefaultState,
		Target: DefaultState,
		Guard:  DefaultGuard,
	}
}

// Key returns the (source, guard) pair used for conflict detection.
func (t Transition) Key() ConflictKey {
	return ConflictKey{Source: t.Source, Guard: t.Guard}
}

// ConflictKey identifies transitions that are mutually non-deterministic.
type ConflictKey struct {
	Source string
	Guard  string
}
