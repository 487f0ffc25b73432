package http

import (
	"github.com/aretw0/fsmgen"
	"github.com/aretw0/fsmgen/pkg/conflict"
	"github.com/aretw0/fsmgen/pkg/domain"
)

// CodeResponse is one encoded state.
type CodeResponse struct {
	State   string `json:"state"`
	Bits    string `json:"bits"`
	Literal string `json:"literal"`
}

// EncodingResponse is the encoder output.
type EncodingResponse struct {
	Scheme string         `json:"scheme"`
	Width  int            `json:"width"`
	Codes  []CodeResponse `json:"codes"`
}

// ConflictResponse is one group of rows sharing source and guard.
type ConflictResponse struct {
	Source string `json:"source"`
	Guard  string `json:"guard"`
	Rows   []int  `json:"rows"`
}

// AnalysisResponse is the body of POST /analyze and of every SSE event.
type AnalysisResponse struct {
	States    []string           `json:"states"`
	Reset     string             `json:"reset"`
	Conflicts []bool             `json:"conflicts"`
	Groups    []ConflictResponse `json:"groups"`
	Encoding  EncodingResponse   `json:"encoding"`
	Text      string             `json:"text"`
}

// CreatedResponse is returned by POST /projects.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ListResponse is returned by GET /projects.
type ListResponse struct {
	Projects []string `json:"projects"`
}

func mapAnalysis(p *domain.Project, res fsmgen.Result) AnalysisResponse {
	a := AnalysisResponse{
		States:    orEmpty(res.States),
		Reset:     res.Reset,
		Conflicts: orEmpty(res.Conflicts),
		Groups:    []ConflictResponse{},
		Encoding: EncodingResponse{
			Scheme: p.Encoding.String(),
			Width:  res.Encoded.Width,
			Codes:  make([]CodeResponse, len(res.Encoded.Codes)),
		},
		Text: res.Text,
	}
	for i, c := range res.Encoded.Codes {
		a.Encoding.Codes[i] = CodeResponse{State: c.State, Bits: c.Bits, Literal: c.Literal}
	}
	for _, g := range conflict.Groups(p.Transitions) {
		a.Groups = append(a.Groups, ConflictResponse{Source: g.Key.Source, Guard: g.Key.Guard, Rows: g.Rows})
	}
	return a
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
