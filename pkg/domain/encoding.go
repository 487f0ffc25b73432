package domain

import (
	"fmt"
	"strings"
)

// Encoding selects how states are mapped to bit patterns.
// It applies uniformly to every state of a generation pass.
type Encoding int

const (
	Binary Encoding = iota
	OneHot
	Gray
)

var encodingNames = [...]string{
	Binary: "Binary",
	OneHot: "One-hot",
	Gray:   "Gray",
}

// Encodings lists the supported schemes in presentation order.
func Encodings() []Encoding {
	return []Encoding{Binary, OneHot, Gray}
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding converts a persisted scheme name into an Encoding.
// An empty name yields Binary. Matching is case-insensitive and also accepts "onehot".
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "binary":
		return Binary, nil
	case "one-hot", "onehot", "one_hot":
		return OneHot, nil
	case "gray":
		return Gray, nil
	}
	return Binary, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(encodingNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
