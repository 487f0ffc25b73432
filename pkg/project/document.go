// Package project reads and writes the persisted project document:
//
//	{
//	    "reset": "S_IDLE",
//	    "enc": "Binary",
//	    "fsm": [["S_IDLE", "S_ONE", "pi_data == DIN_ONE", "po_match=0"]],
//	    "params": [["DIN_ONE", "1'b1", "Input 1"]]
//	}
//
// Rows are positional string arrays. A missing "enc" means Binary. Short rows
// are completed with the editor defaults for the missing cells.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a document cannot be mapped onto a project.
var ErrMalformed = errors.New("malformed project document")

// Format selects the on-disk syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Document mirrors the persisted layout.
type Document struct {
	Reset  string     `json:"reset" yaml:"reset" mapstructure:"reset"`
	Enc    string     `json:"enc" yaml:"enc" mapstructure:"enc"`
	FSM    [][]string `json:"fsm" yaml:"fsm" mapstructure:"fsm"`
	Params [][]string `json:"params" yaml:"params" mapstructure:"params"`
}

// FromProject converts a project into its persisted form.
func FromProject(p *domain.Project) Document {
	doc := Document{
		Reset:  p.Reset,
		Enc:    p.Encoding.String(),
		FSM:    make([][]string, 0, len(p.Transitions)),
		Params: make([][]string, 0, len(p.Parameters)),
	}
	for _, t := range p.Transitions {
		doc.FSM = append(doc.FSM, []string{t.Source, t.Target, t.Guard, t.Actions})
	}
	for _, prm := range p.Parameters {
		doc.Params = append(doc.Params, []string{prm.Name, prm.Value, prm.Note})
	}
	return doc
}

// Project converts the document into the domain model.
func (d Document) Project() (*domain.Project, error) {
	enc, err := domain.ParseEncoding(d.Enc)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		Reset:       d.Reset,
		Encoding:    enc,
		Transitions: make([]domain.Transition, 0, len(d.FSM)),
		Parameters:  make([]domain.Parameter, 0, len(d.Params)),
	}

	def := domain.NewTransition()
	for i, row := range d.FSM {
		if len(row) > 4 {
			return nil, fmt.Errorf("%w: fsm row %d has %d cells, want at most 4", ErrMalformed, i, len(row))
		}
		cells := pad(row, def.Source, def.Target, def.Guard, def.Actions)
		p.Transitions = append(p.Transitions, domain.Transition{
			Source: cells[0], Target: cells[1], Guard: cells[2], Actions: cells[3],
		})
	}

	defParam := domain.NewParameter()
	for i, row := range d.Params {
		if len(row) > 3 {
			return nil, fmt.Errorf("%w: params row %d has %d cells, want at most 3", ErrMalformed, i, len(row))
		}
		cells := pad(row, defParam.Name, defParam.Value, defParam.Note)
		p.Parameters = append(p.Parameters, domain.Parameter{Name: cells[0], Value: cells[1], Note: cells[2]})
	}

	return p, nil
}

func pad(row []string, defaults ...string) []string {
	out := append([]string(nil), defaults...)
	copy(out, row)
	return out
}

// Decode parses a document in the given format. Cells may be any scalar;
// numbers and booleans are converted to their text form.
func Decode(data []byte, format Format) (*domain.Project, error) {
	var raw map[string]any
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return doc.Project()
}

// Encode serialises p in the given format. JSON output is indented by four spaces.
func Encode(p *domain.Project, format Format) ([]byte, error) {
	doc := FromProject(p)
	if format == YAML {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "    ")
}

// Load reads a project file; the format follows the file extension.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}
	p, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return p, nil
}

// Save writes a project file; the format follows the file extension.
func Save(path string, p *domain.Project) error {
	data, err := Encode(p, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure project directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}
