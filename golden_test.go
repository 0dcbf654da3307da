package cookbook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func TestConvertGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.rst"))
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no rst files found under testdata")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			doc, err := ConvertBytes(src, FallbackTitle(path), WithNotebookValidation(true))
			if err != nil {
				t.Fatalf("convert %s: %v", path, err)
			}
			base := strings.TrimSuffix(path, ".rst")

			var md bytes.Buffer
			if err := doc.WriteMarkdown(&md); err != nil {
				t.Fatalf("write markdown: %v", err)
			}
			compareGolden(t, base+".md.golden", md.String())

			var nb bytes.Buffer
			if err := doc.WriteNotebook(&nb); err != nil {
				t.Fatalf("write notebook: %v", err)
			}
			compareGolden(t, base+".ipynb.golden", nb.String())
		})
	}
}

func compareGolden(t *testing.T, goldenPath, got string) {
	t.Helper()
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden %s: %v", goldenPath, err)
	}
	if string(want) == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(got),
		FromFile: goldenPath,
		ToFile:   "got",
		Context:  3,
	})
	t.Fatalf("golden mismatch %s\n%s", goldenPath, diff)
}
