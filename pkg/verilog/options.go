package verilog

// Identifiers used when no option overrides them.
const (
	DefaultClock    = "sys_clk"
	DefaultReset    = "sys_rst_n"
	DefaultRegister = "state"

	// FallbackState is the reset target when no valid reset state is selected,
	// and the target of the default case branch. It may not be a declared state.
	FallbackState = "IDLE"
)

type options struct {
	clock    string
	reset    string
	register string
}

// Option configures the generated identifiers.
type Option func(*options)

// WithClock sets the clock signal name (default "sys_clk").
func WithClock(name string) Option {
	return func(o *options) {
		if name != "" {
			o.clock = name
		}
	}
}

// WithReset sets the active-low asynchronous reset name (default "sys_rst_n").
func WithReset(name string) Option {
	return func(o *options) {
		if name != "" {
			o.reset = name
		}
	}
}

// WithRegister sets the state register name (default "state").
func WithRegister(name string) Option {
	return func(o *options) {
		if name != "" {
			o.register = name
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		clock:    DefaultClock,
		reset:    DefaultReset,
		register: DefaultRegister,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
