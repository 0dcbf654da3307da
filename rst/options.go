package rst

// DefaultTabWidth is the tab stop width used when expanding tabs.
const DefaultTabWidth = 4

// Option configures conversion.
type Option func(*config)

type config struct {
	tabWidth int
}

// WithTabWidth sets the tab stop width used to expand tabs before parsing.
// Non-positive widths remove tabs entirely.
func WithTabWidth(width int) Option {
	return func(cfg *config) {
		cfg.tabWidth = width
	}
}

func newConfig(opts []Option) config {
	cfg := config{tabWidth: DefaultTabWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
