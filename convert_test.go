package cookbook

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/opengeos/pyqgis-cookbook/notebook"
)

func TestConvertRequest(t *testing.T) {
	src := "Title\n=====\n\nIntro.\n\n.. code-block:: python\n\n    print(1)\n"
	doc, err := Convert(ConvertRequest{
		Reader: strings.NewReader(src),
		Name:   "rst/using_layers.rst",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if doc.Title != "Using Layers" {
		t.Fatalf("Title = %q, want %q", doc.Title, "Using Layers")
	}
	wantMD := "## Title\n\nIntro.\n\n```python\nprint(1)\n```"
	if doc.Markdown != wantMD {
		t.Fatalf("Markdown = %q, want %q", doc.Markdown, wantMD)
	}
	if len(doc.Notebook.Cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(doc.Notebook.Cells))
	}
	if doc.Notebook.Cells[0].ID != "using-layers-0" || doc.Notebook.Cells[1].ID != "using-layers-1" {
		t.Fatalf("unexpected ids %q, %q", doc.Notebook.Cells[0].ID, doc.Notebook.Cells[1].ID)
	}
	if err := notebook.Validate(doc.NotebookJSON); err != nil {
		t.Fatalf("notebook does not validate: %v", err)
	}
}

func TestConvertExplicitTitle(t *testing.T) {
	doc, err := Convert(ConvertRequest{
		Reader: strings.NewReader(""),
		Name:   "ignored.rst",
		Title:  "Demo",
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := doc.Notebook.Cells[0].Source; got != "# Demo" {
		t.Fatalf("empty document heading = %q, want %q", got, "# Demo")
	}
	var md bytes.Buffer
	if err := doc.WriteMarkdown(&md); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if md.Len() != 0 {
		t.Fatalf("empty document wrote markdown %q", md.String())
	}
}

func TestConvertNilReader(t *testing.T) {
	_, err := Convert(ConvertRequest{})
	if !errors.Is(err, ErrNilReader) {
		t.Fatalf("expected ErrNilReader, got %v", err)
	}
}

func TestConvertReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Convert(ConvertRequest{Reader: iotest.ErrReader(boom)})
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestConvertRejectsBinary(t *testing.T) {
	_, err := ConvertBytes([]byte("text\x00more"), "T")
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	_, err = ConvertBytes([]byte{0xff, 0xfe}, "T")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestConvertRandomIDs(t *testing.T) {
	doc, err := ConvertBytes([]byte("Text\n\n.. testcode::\n\n    x = 1\n"), "T",
		WithRandomCellIDs(true), WithNotebookValidation(true))
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	for _, c := range doc.Notebook.Cells {
		if len(c.ID) != 8 {
			t.Fatalf("random id %q has length %d", c.ID, len(c.ID))
		}
	}
}

func TestConvertTabWidth(t *testing.T) {
	src := ".. code-block:: python\n\n\tif x:\n\t\ty = 1\n"
	doc, err := ConvertBytes([]byte(src), "T", WithTabWidth(2))
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	want := "```python\nif x:\n  y = 1\n```"
	if doc.Markdown != want {
		t.Fatalf("Markdown = %q, want %q", doc.Markdown, want)
	}
}

func TestConvertStripsBOM(t *testing.T) {
	doc, err := ConvertBytes([]byte("\xef\xbb\xbfTitle\n=====\n"), "T")
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	if doc.Markdown != "## Title" {
		t.Fatalf("Markdown = %q", doc.Markdown)
	}
}

func TestConvertFrontMatterTitle(t *testing.T) {
	src := "---\ntitle: Working with Rasters\n---\n\nBody text.\n"
	doc, err := ConvertBytes([]byte(src), "Fallback")
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	if doc.Title != "Working with Rasters" {
		t.Fatalf("Title = %q", doc.Title)
	}
	if doc.Markdown != "Body text." {
		t.Fatalf("Markdown = %q", doc.Markdown)
	}
	if doc.Notebook.Cells[0].ID != "working-with-rasters-0" {
		t.Fatalf("id = %q", doc.Notebook.Cells[0].ID)
	}

	doc, err = ConvertBytes([]byte(src), "Fallback", WithFrontMatter(false))
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	if doc.Title != "Fallback" || !strings.Contains(doc.Markdown, "title: Working with Rasters") {
		t.Fatalf("front matter handled while disabled: %q %q", doc.Title, doc.Markdown)
	}
}

func TestWriteNotebook(t *testing.T) {
	doc, err := ConvertBytes([]byte("Hello\n"), "Hi")
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	var buf bytes.Buffer
	if err := doc.WriteNotebook(&buf); err != nil {
		t.Fatalf("WriteNotebook: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), doc.NotebookJSON) {
		t.Fatalf("WriteNotebook wrote different bytes")
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Fatalf("notebook does not end with a newline: %q", buf.String())
	}
}
