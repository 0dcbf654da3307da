// Package batch converts a tree of RST documents into mirrored Markdown and
// notebook trees.
package batch

import (
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	cookbook "github.com/opengeos/pyqgis-cookbook"
	"github.com/opengeos/pyqgis-cookbook/rst"
)

// Cell id modes accepted by Config.CellIDs.
const (
	CellIDsStable = "stable"
	CellIDsRandom = "random"
)

// Text codes attached to batch errors.
const (
	TextCodeConfigInvalid       = "CONFIG_INVALID"
	TextCodeRootMissing         = "RST_DIR_MISSING"
	TextCodeNoDocuments         = "RST_NONE_FOUND"
	TextCodeReadFailed          = "RST_READ_FAILED"
	TextCodeConvertFailed       = "RST_CONVERT_FAILED"
	TextCodeMarkdownWriteFailed = "MARKDOWN_WRITE_FAILED"
	TextCodeNotebookWriteFailed = "NOTEBOOK_WRITE_FAILED"
)

// Config describes one batch run. The toml tags name the keys accepted by
// LoadConfig.
type Config struct {
	RSTDir      string `toml:"rst_dir"`
	MarkdownDir string `toml:"markdown_dir"`
	NotebookDir string `toml:"notebook_dir"`
	// Pattern is matched against the base name of every file below RSTDir,
	// or against the slash separated relative path when it contains a slash.
	Pattern  string `toml:"pattern"`
	TabWidth int    `toml:"tab_width"`
	Workers  int    `toml:"workers"`
	CellIDs  string `toml:"cell_ids"`
	// ValidateNotebooks checks every encoded notebook against the nbformat
	// schema.
	ValidateNotebooks bool `toml:"validate"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// DefaultConfig returns the layout used when nothing is configured:
// rst/ is converted into markdown/ and notebook/.
func DefaultConfig() Config {
	return Config{
		RSTDir:      "rst",
		MarkdownDir: "markdown",
		NotebookDir: "notebook",
		Pattern:     "*.rst",
		TabWidth:    rst.DefaultTabWidth,
		Workers:     runtime.NumCPU(),
		CellIDs:     CellIDsStable,
		LogLevel:    "info",
	}
}

// LoadConfig decodes the TOML file at p over base. Keys missing from the file
// keep their value from base; unknown keys are an error.
func LoadConfig(p string, base Config) (Config, error) {
	cfg := base
	meta, err := toml.DecodeFile(p, &cfg)
	if err != nil {
		return base, goerrors.Wrap(err, goerrors.CategoryBadInput, "load config "+p).
			WithTextCode(TextCodeConfigInvalid)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return base, goerrors.New(
			fmt.Sprintf("config %s: unknown keys: %s", p, strings.Join(keys, ", ")),
			goerrors.CategoryValidation,
		).WithTextCode(TextCodeConfigInvalid)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	if err := goerrors.ValidateWithOzzo(c.validateFields, "invalid batch configuration"); err != nil {
		return err.WithTextCode(TextCodeConfigInvalid)
	}
	return nil
}

func (c Config) validateFields() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RSTDir, validation.Required),
		validation.Field(&c.MarkdownDir, validation.Required, validation.By(c.distinctFromRoot)),
		validation.Field(&c.NotebookDir, validation.Required, validation.By(c.distinctFromRoot)),
		validation.Field(&c.Pattern, validation.Required, validation.By(validPattern)),
		validation.Field(&c.TabWidth, validation.Required, validation.Min(1), validation.Max(16)),
		validation.Field(&c.Workers, validation.Required, validation.Min(1)),
		validation.Field(&c.CellIDs, validation.Required, validation.In(CellIDsStable, CellIDsRandom)),
	)
}

func (c Config) distinctFromRoot(value any) error {
	dir, _ := value.(string)
	if dir != "" && filepath.Clean(dir) == filepath.Clean(c.RSTDir) {
		return validation.NewError("batch.config.same_as_rst_dir", "must differ from the rst directory")
	}
	return nil
}

func validPattern(value any) error {
	pattern, _ := value.(string)
	if _, err := path.Match(pattern, ""); err != nil {
		return validation.NewError("batch.config.pattern", "is not a valid glob pattern")
	}
	return nil
}

// ConvertOptions maps the configuration onto conversion options.
func (c Config) ConvertOptions() []cookbook.Option {
	return []cookbook.Option{
		cookbook.WithTabWidth(c.TabWidth),
		cookbook.WithRandomCellIDs(c.CellIDs == CellIDsRandom),
		cookbook.WithNotebookValidation(c.ValidateNotebooks),
	}
}
