// Package encoding maps registry states to fixed-width Verilog literals.
//
// Codes are aligned with the registry order: index 0 is registry[0] and so on.
//
//   - Binary: width max(1, ceil(log2(n))), value i.
//   - One-hot: width n, bit i set (bit 0 is the rightmost).
//   - Gray: width max(1, ceil(log2(n))), value i ^ (i >> 1).
//
// Gray codes are the reflected code of each index. No attempt is made to keep
// single-bit steps when n is not a power of two.
package encoding

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/aretw0/fsmgen/pkg/domain"
)

// ErrNoStates is returned when the registry is empty. Callers are expected
// to short-circuit before encoding in that case.
var ErrNoStates = errors.New("no states to encode")

// Code is the encoded value of one state.
type Code struct {
	State string
	// Bits is the zero-padded bit pattern, most significant bit first.
	Bits string
	// Literal is the sized Verilog literal, e.g. "2'd3" or "4'b0100".
	Literal string
}

// Result holds the codes of every state for a single scheme.
type Result struct {
	Scheme domain.Encoding
	Width  int
	Codes  []Code
}

// Literal returns the literal of the named state, if encoded.
func (r Result) Literal(state string) (string, bool) {
	for _, c := range r.Codes {
		if c.State == state {
			return c.Literal, true
		}
	}
	return "", false
}

// Width returns the register width needed for n states under scheme.
func Width(scheme domain.Encoding, n int) int {
	if scheme == domain.OneHot {
		return max(1, n)
	}
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// Encode assigns a code to every state in registry order.
func Encode(states []string, scheme domain.Encoding) (Result, error) {
	n := len(states)
	if n == 0 {
		return Result{}, ErrNoStates
	}

	w := Width(scheme, n)
	res := Result{Scheme: scheme, Width: w, Codes: make([]Code, n)}

	for i, state := range states {
		var c Code
		switch scheme {
		case domain.Binary:
			c = sized(w, uint64(i))
		case domain.Gray:
			c = sized(w, uint64(i^(i>>1)))
		case domain.OneHot:
			c = oneHot(w, i)
		default:
			return Result{}, fmt.Errorf("%w: %d", domain.ErrUnknownEncoding, int(scheme))
		}
		c.State = state
		res.Codes[i] = c
	}

	return res, nil
}

// sized renders v as a sized decimal literal.
func sized(w int, v uint64) Code {
	return Code{
		Bits:    fmt.Sprintf("%0*b", w, v),
		Literal: fmt.Sprintf("%d'd%d", w, v),
	}
}

// oneHot builds the pattern as text so any number of states fits.
func oneHot(w, i int) Code {
	b := strings.Repeat("0", w-1-i) + "1" + strings.Repeat("0", i)
	return Code{
		Bits:    b,
		Literal: fmt.Sprintf("%d'b%s", w, b),
	}
}
