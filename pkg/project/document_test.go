package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fsmgen/pkg/domain"
	"github.com/aretw0/fsmgen/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
    "reset": "S_IDLE",
    "enc": "One-hot",
    "fsm": [
        ["S_IDLE", "S_ONE", "pi_data == DIN_ONE", "po_match=0"],
        ["S_ONE", "S_IDLE", "pi_data == DIN_ZERO", ""]
    ],
    "params": [
        ["DIN_ONE", "1'b1", "Input 1"]
    ]
}`

func TestDecode_JSON(t *testing.T) {
	p, err := project.Decode([]byte(sampleJSON), project.JSON)
	require.NoError(t, err)

	assert.Equal(t, "S_IDLE", p.Reset)
	assert.Equal(t, domain.OneHot, p.Encoding)
	assert.Equal(t, []domain.Transition{
		{Source: "S_IDLE", Target: "S_ONE", Guard: "pi_data == DIN_ONE", Actions: "po_match=0"},
		{Source: "S_ONE", Target: "S_IDLE", Guard: "pi_data == DIN_ZERO"},
	}, p.Transitions)
	assert.Equal(t, []domain.Parameter{{Name: "DIN_ONE", Value: "1'b1", Note: "Input 1"}}, p.Parameters)
}

func TestDecode_MissingEncDefaultsToBinary(t *testing.T) {
	p, err := project.Decode([]byte(`{"reset": "", "fsm": [["A","B","1",""]], "params": []}`), project.JSON)
	require.NoError(t, err)
	assert.Equal(t, domain.Binary, p.Encoding)
	assert.Len(t, p.Transitions, 1)
}

func TestDecode_ShortRowsUseEditorDefaults(t *testing.T) {
	p, err := project.Decode([]byte(`{"fsm": [["A"], ["B", "C", "go"]], "params": [["P"], []]}`), project.JSON)
	require.NoError(t, err)

	assert.Equal(t, []domain.Transition{
		{Source: "A", Target: "IDLE", Guard: "1"},
		{Source: "B", Target: "C", Guard: "go"},
	}, p.Transitions)
	assert.Equal(t, []domain.Parameter{{Name: "P", Value: "0"}, {Name: "NAME", Value: "0"}}, p.Parameters)
}

func TestDecode_NumericCellsBecomeText(t *testing.T) {
	p, err := project.Decode([]byte(`{"fsm": [["A", "B", 1, "x=2"]], "params": [["W", 8, ""]]}`), project.JSON)
	require.NoError(t, err)
	assert.Equal(t, "1", p.Transitions[0].Guard)
	assert.Equal(t, "8", p.Parameters[0].Value)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"not json", `{`, project.ErrMalformed},
		{"wrong shape", `{"fsm": [{"a": 1}]}`, project.ErrMalformed},
		{"row too long", `{"fsm": [["a","b","c","d","e"]]}`, project.ErrMalformed},
		{"param row too long", `{"params": [["a","b","c","d"]]}`, project.ErrMalformed},
		{"unknown encoding", `{"enc": "Johnson"}`, domain.ErrUnknownEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := project.Decode([]byte(tt.data), project.JSON)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecode_YAML(t *testing.T) {
	data := `
reset: IDLE
enc: Gray
fsm:
  - [IDLE, RUN, start, "busy=1"]
  - [RUN, IDLE, stop]
params:
  - [WIDTH, 8, data width]
`
	p, err := project.Decode([]byte(data), project.YAML)
	require.NoError(t, err)
	assert.Equal(t, domain.Gray, p.Encoding)
	assert.Equal(t, "IDLE", p.Reset)
	assert.Equal(t, domain.Transition{Source: "RUN", Target: "IDLE", Guard: "stop"}, p.Transitions[1])
	assert.Equal(t, domain.Parameter{Name: "WIDTH", Value: "8", Note: "data width"}, p.Parameters[0])
}

func TestEncode_RoundTripBothFormats(t *testing.T) {
	p := &domain.Project{
		Transitions: []domain.Transition{{Source: "A", Target: "B", Guard: "g", Actions: "o=1"}},
		Parameters:  []domain.Parameter{{Name: "P", Value: "1'b1", Note: "n"}},
		Reset:       "A",
		Encoding:    domain.Gray,
	}

	for _, format := range []project.Format{project.JSON, project.YAML} {
		data, err := project.Encode(p, format)
		require.NoError(t, err)
		back, err := project.Decode(data, format)
		require.NoError(t, err)
		assert.Equal(t, p, back, string(format))
	}
}

func TestEncode_JSONLayout(t *testing.T) {
	data, err := project.Encode(&domain.Project{Encoding: domain.OneHot}, project.JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":"","enc":"One-hot","fsm":[],"params":[]}`, string(data))
	assert.Contains(t, string(data), "\n    \"enc\"")
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	p := &domain.Project{
		Transitions: []domain.Transition{{Source: "X", Target: "Y", Guard: "1"}},
		Reset:       "X",
	}

	jsonPath := filepath.Join(dir, "nested", "design.json")
	require.NoError(t, project.Save(jsonPath, p))
	loaded, err := project.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, p.Transitions, loaded.Transitions)

	yamlPath := filepath.Join(dir, "design.yaml")
	require.NoError(t, project.Save(yamlPath, p))
	raw, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "reset: X")

	_, err = project.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, project.YAML, project.FormatFromPath("a/b.YML"))
	assert.Equal(t, project.YAML, project.FormatFromPath("b.yaml"))
	assert.Equal(t, project.JSON, project.FormatFromPath("b.json"))
	assert.Equal(t, project.JSON, project.FormatFromPath("noext"))
}
