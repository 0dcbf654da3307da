package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cookbook "github.com/opengeos/pyqgis-cookbook"
)

// Regenerates testdata/<name>.md.golden and testdata/<name>.ipynb.golden for
// every testdata/<name>.rst. Run from the repository root.
func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".rst") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no rst files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		doc, err := cookbook.ConvertBytes(src, cookbook.FallbackTitle(path))
		if err != nil {
			fatalf("convert %s: %v", path, err)
		}
		base := strings.TrimSuffix(path, ".rst")
		writeGolden(base+".md.golden", doc.WriteMarkdown)
		writeGolden(base+".ipynb.golden", doc.WriteNotebook)
	}
}

func writeGolden(path string, write func(io.Writer) error) {
	var out bytes.Buffer
	if err := write(&out); err != nil {
		fatalf("render %s: %v", path, err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
