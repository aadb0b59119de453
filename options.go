package jsonly

// Mode controls compatibility vs strict parsing behavior.
type Mode int

const (
	ModeCompat Mode = iota
	ModeStrict
)

// SeparatorPolicy controls object entry separator handling.
type SeparatorPolicy int

const (
	// LenientSeparators consumes any single non '}' byte after an entry as
	// "more entries follow", matching the reference decoder.
	LenientSeparators SeparatorPolicy = iota
	// StrictSeparators requires a literal ',' between object entries.
	StrictSeparators
)

// LiteralPolicy controls how true/false/null tokens are matched.
type LiteralPolicy int

const (
	// GreedyLiterals accumulates every byte drawn from the literal's
	// alphabet before the final equality check, so "truee" is absorbed as
	// one token and rejected.
	GreedyLiterals LiteralPolicy = iota
	// ExactLiterals matches the keyword directly and leaves trailing bytes
	// unconsumed.
	ExactLiterals
)

const strictModeMaxDepth = 10000

// Options carries decoder configuration.
type Options struct {
	Mode      Mode
	Separator SeparatorPolicy
	Literal   LiteralPolicy
	// MaxDepth bounds nesting; 0 leaves recursion unbounded.
	MaxDepth int

	setSeparator bool
	setLiteral   bool
	setMaxDepth  bool
}

// Option mutates decoder Options.
type Option interface {
	apply(*Options)
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithMode applies a policy preset. ModeStrict selects strict separators,
// exact literals and a bounded nesting depth unless overridden.
func WithMode(mode Mode) Option {
	return optionFn(func(o *Options) { o.Mode = mode })
}

func WithSeparatorPolicy(policy SeparatorPolicy) Option {
	return optionFn(func(o *Options) {
		o.Separator = policy
		o.setSeparator = true
	})
}

func WithLiteralPolicy(policy LiteralPolicy) Option {
	return optionFn(func(o *Options) {
		o.Literal = policy
		o.setLiteral = true
	})
}

func WithMaxDepth(depth int) Option {
	return optionFn(func(o *Options) {
		o.MaxDepth = depth
		o.setMaxDepth = true
	})
}

func resolveOptions(opts []Option) *Options {
	resolved := &Options{}
	for _, opt := range opts {
		opt.apply(resolved)
	}
	if resolved.Mode == ModeStrict {
		if !resolved.setSeparator {
			resolved.Separator = StrictSeparators
		}
		if !resolved.setLiteral {
			resolved.Literal = ExactLiterals
		}
		if !resolved.setMaxDepth {
			resolved.MaxDepth = strictModeMaxDepth
		}
	}
	return resolved
}
