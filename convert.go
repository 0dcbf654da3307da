package cookbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/opengeos/pyqgis-cookbook/notebook"
	"github.com/opengeos/pyqgis-cookbook/rst"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader io.Reader
	// Name is the source file name. It provides the fallback title when
	// Title is empty and the document has no front matter title.
	Name string
	// Title overrides the title derived from Name.
	Title   string
	Options []Option
}

// Document is the result of one conversion. Markdown and NotebookJSON are
// fully computed before Convert returns, so writing them cannot fail halfway
// through a conversion.
type Document struct {
	Title        string
	Markdown     string
	Notebook     *notebook.Notebook
	NotebookJSON []byte
}

// Convert reads an RST document and converts it to Markdown and a notebook.
func Convert(req ConvertRequest) (*Document, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("convert: %w", ErrNilReader)
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("convert: read: %w", err)
	}
	title := req.Title
	if title == "" {
		title = FallbackTitle(req.Name)
	}
	return ConvertBytes(src, title, req.Options...)
}

// ConvertBytes converts an in-memory RST document. title is used unless the
// document's front matter names one.
func ConvertBytes(src []byte, title string, opts ...Option) (*Document, error) {
	cfg := newConvertConfig(opts)
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	src = trimBOM(src)
	if cfg.frontMatter {
		var meta frontMatter
		meta, src = splitFrontMatter(src)
		if t := strings.TrimSpace(meta.Title); t != "" {
			title = t
		}
	}

	markdown := rst.Convert(string(src), rst.WithTabWidth(cfg.tabWidth))
	nb := notebook.Segment(markdown, title)
	if cfg.randomIDs {
		nb.AssignIDs(notebook.RandomIDs())
	} else {
		nb.AssignIDs(notebook.StableIDs(title))
	}
	data, err := notebook.Marshal(nb)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	if cfg.validate {
		if err := notebook.Validate(data); err != nil {
			return nil, fmt.Errorf("convert: %w", err)
		}
	}
	return &Document{
		Title:        title,
		Markdown:     markdown,
		Notebook:     nb,
		NotebookJSON: data,
	}, nil
}

// WriteMarkdown writes the Markdown text followed by a newline. An empty
// document writes nothing.
func (d *Document) WriteMarkdown(w io.Writer) error {
	if d.Markdown == "" {
		return nil
	}
	if _, err := io.WriteString(w, d.Markdown+"\n"); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// WriteNotebook writes the encoded notebook.
func (d *Document) WriteNotebook(w io.Writer) error {
	if _, err := w.Write(d.NotebookJSON); err != nil {
		return fmt.Errorf("write notebook: %w", err)
	}
	return nil
}
