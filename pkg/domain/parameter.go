package domain

// Parameter is a named constant definition, independent of the transitions.
// Value is an opaque literal such as "8'hFF".
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// NewParameter returns the row an editor inserts when the user adds a blank parameter.
func NewParameter() Parameter {
	return Parameter{Name: "NAME", Value: "0"}
}
