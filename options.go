package cookbook

import "github.com/opengeos/pyqgis-cookbook/rst"

// Option configures conversion behavior.
type Option func(*convertConfig)

type convertConfig struct {
	tabWidth    int
	randomIDs   bool
	validate    bool
	frontMatter bool
}

func newConvertConfig(opts []Option) convertConfig {
	cfg := convertConfig{
		tabWidth:    rst.DefaultTabWidth,
		frontMatter: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTabWidth sets the tab stop used to expand tabs before parsing.
func WithTabWidth(width int) Option {
	return func(cfg *convertConfig) {
		cfg.tabWidth = width
	}
}

// WithRandomCellIDs gives notebook cells random ids instead of ids derived
// from the document title.
func WithRandomCellIDs(enabled bool) Option {
	return func(cfg *convertConfig) {
		cfg.randomIDs = enabled
	}
}

// WithNotebookValidation checks the encoded notebook against the nbformat
// schema.
func WithNotebookValidation(enabled bool) Option {
	return func(cfg *convertConfig) {
		cfg.validate = enabled
	}
}

// WithFrontMatter enables or disables front matter detection.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *convertConfig) {
		cfg.frontMatter = enabled
	}
}
