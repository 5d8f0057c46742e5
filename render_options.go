package mdh

// Option configures parsing and rendering behavior.
type Option func(*renderConfig)

type renderConfig struct {
	maxInput    int
	maxDepth    int
	frontMatter bool
}

const (
	defaultMaxInputSize    = 10 << 20
	defaultMaxNestingDepth = 32
)

func newConfig(opts []Option) renderConfig {
	cfg := renderConfig{
		maxInput:    defaultMaxInputSize,
		maxDepth:    defaultMaxNestingDepth,
		frontMatter: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMaxInputSize caps the accepted source size in bytes. Zero or negative
// removes the cap.
func WithMaxInputSize(n int) Option {
	return func(cfg *renderConfig) {
		cfg.maxInput = n
	}
}

// WithMaxNestingDepth caps list nesting and emphasis recursion. Inline spans
// past the ceiling degrade to literal text; list markers past it fail the
// call with ErrNestingTooDeep.
func WithMaxNestingDepth(n int) Option {
	return func(cfg *renderConfig) {
		if n > 0 {
			cfg.maxDepth = n
		}
	}
}

// WithFrontMatter controls whether YAML or TOML front matter is stripped
// before parsing. Enabled by default.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *renderConfig) {
		cfg.frontMatter = enabled
	}
}
