package batch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrNoDocuments is returned by Discover when nothing under the root matches.
var ErrNoDocuments = errors.New("no documents found")

// Target pairs a source document with the two files generated from it.
type Target struct {
	// Rel is the slash separated path of the source relative to the rst
	// directory.
	Rel      string
	Source   string
	Markdown string
	Notebook string
}

// Target mirrors rel from the rst directory into the markdown and notebook
// directories: a/b.rst becomes a/b.md and a/b.ipynb.
func (c Config) Target(rel string) Target {
	rel = filepath.ToSlash(rel)
	stem := strings.TrimSuffix(rel, path.Ext(rel))
	return Target{
		Rel:      rel,
		Source:   filepath.Join(c.RSTDir, filepath.FromSlash(rel)),
		Markdown: filepath.Join(c.MarkdownDir, filepath.FromSlash(stem+".md")),
		Notebook: filepath.Join(c.NotebookDir, filepath.FromSlash(stem+".ipynb")),
	}
}

// Discover walks root and returns the relative, slash separated paths of the
// regular files matching pattern, sorted.
func Discover(ctx context.Context, root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryNotFound, "rst directory "+root).
			WithTextCode(TextCodeRootMissing)
	}
	if !info.IsDir() {
		return nil, goerrors.New("rst directory "+root+" is not a directory", goerrors.CategoryNotFound).
			WithTextCode(TextCodeRootMissing)
	}

	var found []string
	walkErr := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if matches(pattern, p) {
			found = append(found, p)
		}
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, goerrors.Wrap(walkErr, goerrors.CategoryInternal, "walk "+root).
			WithTextCode(TextCodeReadFailed)
	}
	if len(found) == 0 {
		return nil, goerrors.Wrap(ErrNoDocuments, goerrors.CategoryNotFound, "no "+pattern+" files under "+root).
			WithTextCode(TextCodeNoDocuments)
	}

	sort.Strings(found)
	return found, nil
}

func matches(pattern, rel string) bool {
	target := path.Base(rel)
	if strings.Contains(pattern, "/") {
		target = rel
	}
	ok, err := path.Match(pattern, target)
	return err == nil && ok
}
