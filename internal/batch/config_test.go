package batch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarkdownDir = "rst/"
	cfg.Pattern = "[.rst"
	cfg.TabWidth = 40
	cfg.Workers = 0
	cfg.CellIDs = "sequential"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var gerr *goerrors.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerrors.Error, got %T", err)
	}
	if gerr.Category != goerrors.CategoryValidation {
		t.Fatalf("category = %q", gerr.Category)
	}
	if gerr.TextCode != TextCodeConfigInvalid {
		t.Fatalf("text code = %q", gerr.TextCode)
	}
	fields := gerr.ValidationMap()
	for _, name := range []string{"MarkdownDir", "Pattern", "TabWidth", "Workers", "CellIDs"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing validation error for %s in %v", name, fields)
		}
	}
	if _, ok := fields["NotebookDir"]; ok {
		t.Errorf("unexpected NotebookDir error: %v", fields)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "rst2nb.toml")
	body := strings.Join([]string{
		`rst_dir = "docs/source"`,
		`workers = 3`,
		`cell_ids = "random"`,
		`validate = true`,
		``,
	}, "\n")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(p, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RSTDir != "docs/source" || cfg.Workers != 3 || cfg.CellIDs != CellIDsRandom || !cfg.ValidateNotebooks {
		t.Fatalf("decoded config = %+v", cfg)
	}
	if cfg.MarkdownDir != "markdown" || cfg.NotebookDir != "notebook" || cfg.Pattern != "*.rst" {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "rst2nb.toml")
	if err := os.WriteFile(p, []byte("rst_dir = \"a\"\nthreads = 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(p, DefaultConfig())
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "threads") {
		t.Fatalf("error does not name the key: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	base := DefaultConfig()
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), base)
	if err == nil {
		t.Fatalf("expected error")
	}
	var gerr *goerrors.Error
	if !errors.As(err, &gerr) || gerr.TextCode != TextCodeConfigInvalid {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if cfg != base {
		t.Fatalf("base config not returned on error")
	}
}

func TestConvertOptions(t *testing.T) {
	if got := len(DefaultConfig().ConvertOptions()); got != 3 {
		t.Fatalf("options = %d, want 3", got)
	}
}
