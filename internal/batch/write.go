package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// staged is an output written to a temporary file next to its destination.
type staged struct {
	tmp string
	dst string
}

// stage writes the output for dst into a temporary file in dst's directory,
// creating the directory when needed. Nothing is left behind on error.
func stage(dst string, write func(io.Writer) error) (staged, error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return staged{}, fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return staged{}, fmt.Errorf("create temp for %s: %w", dst, err)
	}
	s := staged{tmp: f.Name(), dst: dst}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(s.tmp)
		return staged{}, fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(s.tmp)
		return staged{}, fmt.Errorf("close %s: %w", dst, err)
	}
	if err := os.Chmod(s.tmp, 0o644); err != nil {
		os.Remove(s.tmp)
		return staged{}, fmt.Errorf("chmod %s: %w", dst, err)
	}
	return s, nil
}

// commit renames the temporary file over its destination.
func (s staged) commit() error {
	if err := os.Rename(s.tmp, s.dst); err != nil {
		os.Remove(s.tmp)
		return fmt.Errorf("rename %s: %w", s.dst, err)
	}
	return nil
}

// discard removes the temporary file. It is safe on a zero staged.
func (s staged) discard() {
	if s.tmp != "" {
		os.Remove(s.tmp)
	}
}

// Output is one file produced from a converted document.
type Output struct {
	Path  string
	Write func(io.Writer) error
}

// WriteFiles stages every output before renaming any of them into place. When
// a write fails no destination is touched.
func WriteFiles(outputs ...Output) error {
	pending := make([]staged, 0, len(outputs))
	for _, out := range outputs {
		s, err := stage(out.Path, out.Write)
		if err != nil {
			for _, p := range pending {
				p.discard()
			}
			return err
		}
		pending = append(pending, s)
	}
	for i, s := range pending {
		if err := s.commit(); err != nil {
			for _, rest := range pending[i+1:] {
				rest.discard()
			}
			return err
		}
	}
	return nil
}
