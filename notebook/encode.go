package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	formatMajor = 4
	formatMinor = 5
)

// ErrNilNotebook is returned when encoding a nil notebook.
var ErrNilNotebook = errors.New("notebook: nil notebook")

// The file types mirror nbformat's JSON layout. Fields are declared in
// alphabetical key order so the output matches nbformat's sorted keys.
type fileNotebook struct {
	Cells         []any    `json:"cells"`
	Metadata      Metadata `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

type fileCodeCell struct {
	CellType       string   `json:"cell_type"`
	ExecutionCount *int     `json:"execution_count"`
	ID             string   `json:"id"`
	Metadata       struct{} `json:"metadata"`
	Outputs        []any    `json:"outputs"`
	Source         []string `json:"source"`
}

type fileMarkdownCell struct {
	CellType string   `json:"cell_type"`
	ID       string   `json:"id"`
	Metadata struct{} `json:"metadata"`
	Source   []string `json:"source"`
}

// Marshal encodes nb as nbformat 4.5 JSON with one-space indentation and a
// trailing newline. Cells without an id get a stable id from nb.Title.
func Marshal(nb *Notebook) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, nb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes nb to w. See Marshal.
func Encode(w io.Writer, nb *Notebook) error {
	if nb == nil {
		return ErrNilNotebook
	}
	ids := StableIDs(nb.Title)
	file := fileNotebook{
		Cells:         make([]any, 0, len(nb.Cells)),
		Metadata:      nb.Metadata,
		NBFormat:      formatMajor,
		NBFormatMinor: formatMinor,
	}
	for i, c := range nb.Cells {
		id := c.ID
		if id == "" {
			id = ids(i, c)
		}
		source := SplitSource(c.Source)
		if c.Kind == Code {
			file.Cells = append(file.Cells, fileCodeCell{
				CellType: c.Kind.String(),
				ID:       id,
				Outputs:  []any{},
				Source:   source,
			})
			continue
		}
		file.Cells = append(file.Cells, fileMarkdownCell{
			CellType: c.Kind.String(),
			ID:       id,
			Source:   source,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("notebook: encode: %w", err)
	}
	return nil
}

// SplitSource splits a cell source into lines that keep their newline, the
// list form nbformat writes. The last line has no newline.
func SplitSource(source string) []string {
	lines := make([]string, 0, strings.Count(source, "\n")+1)
	for source != "" {
		i := strings.IndexByte(source, '\n')
		if i < 0 {
			lines = append(lines, source)
			break
		}
		lines = append(lines, source[:i+1])
		source = source[i+1:]
	}
	return lines
}
