// Package mdstat summarizes the structure of converted Markdown.
package mdstat

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX or setext heading.
type Heading struct {
	Level int
	Text  string
}

// Outline counts the block and link structure of a Markdown document.
type Outline struct {
	Headings   []Heading
	CodeBlocks int
	// Languages counts fenced blocks by info string; untagged blocks count
	// under "".
	Languages map[string]int
	Links     int
	Images    int
}

// Analyze parses markdown with goldmark's CommonMark parser and collects its
// outline. Analyze never fails; unparseable input has an empty outline.
func Analyze(markdown []byte) Outline {
	out := Outline{Languages: map[string]int{}}
	doc := goldmark.DefaultParser().Parse(text.NewReader(markdown))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			out.Headings = append(out.Headings, Heading{
				Level: node.Level,
				Text:  strings.TrimSpace(string(node.Text(markdown))),
			})
		case *ast.FencedCodeBlock:
			out.CodeBlocks++
			out.Languages[string(node.Language(markdown))]++
		case *ast.CodeBlock:
			out.CodeBlocks++
		case *ast.Link, *ast.AutoLink:
			out.Links++
		case *ast.Image:
			out.Images++
		}
		return ast.WalkContinue, nil
	})
	return out
}

// Title returns the text of the first top level heading, falling back to the
// first heading of any level.
func (o Outline) Title() string {
	for _, h := range o.Headings {
		if h.Level == 1 {
			return h.Text
		}
	}
	if len(o.Headings) > 0 {
		return o.Headings[0].Text
	}
	return ""
}

// LanguageList returns the fence languages in sorted order, untagged blocks
// listed as "none".
func (o Outline) LanguageList() []string {
	langs := make([]string, 0, len(o.Languages))
	for lang := range o.Languages {
		if lang == "" {
			lang = "none"
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
