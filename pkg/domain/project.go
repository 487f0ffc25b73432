package domain

// Project is a snapshot of everything the user edits: both tables, the reset
// selection and the encoding scheme.
type Project struct {
	Transitions []Transition `json:"transitions"`
	Parameters  []Parameter  `json:"parameters"`
	Reset       string       `json:"reset"`
	Encoding    Encoding     `json:"encoding"`
}

// Clone returns a deep copy so stores and callers never share row slices.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Transitions = append([]Transition(nil), p.Transitions...)
	c.Parameters = append([]Parameter(nil), p.Parameters...)
	return &c
}
