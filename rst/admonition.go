package rst

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// admonitionIndent is the body indentation RST uses under ".. note::".
const admonitionIndent = 3

func handleFigure(c *converter, i int, l line) int {
	path := strings.TrimSpace(reFigure.FindStringSubmatch(l.stripped)[1])
	caption := ""
	j := i + 1
	for ; j < len(c.lines) && ExtentFigure.Contains(c.lines[j], 0); j++ {
		s := strings.TrimSpace(c.lines[j])
		if s != "" && !strings.HasPrefix(s, ":") {
			caption = s
		}
	}
	c.emit("", "!["+caption+"]("+path+")")
	if caption != "" {
		c.emit("*" + caption + "*")
	}
	c.emit("")
	return j
}

// handleAdmonition flattens a note-like directive into one bold-labelled
// paragraph. Nested testcode blocks are lifted out and emitted as fenced
// python blocks after the paragraph.
func handleAdmonition(c *converter, i int, l line) int {
	m := reAdmonition.FindStringSubmatch(l.stripped)
	kind, lead := m[1], strings.TrimSpace(m[2])
	base := l.indent + admonitionIndent

	var (
		text []string
		code [][]string
	)
	j := i + 1
	for j < len(c.lines) {
		raw := c.lines[j]
		if !ExtentAdmonition.Contains(raw, base) {
			break
		}
		s := strings.TrimSpace(raw)
		if reTestcode.MatchString(s) {
			body, next := c.codeBody(skipBlankAndOptions(c.lines, j+1), Indent(raw))
			if len(body) > 0 {
				code = append(code, body)
			}
			j = next
			continue
		}
		if s != "" {
			text = append(text, strings.TrimSpace(trimIndent(raw, base)))
		}
		j++
	}

	parts := make([]string, 0, len(text)+1)
	if lead != "" {
		parts = append(parts, lead)
	}
	parts = append(parts, text...)
	label := capitalize(kind)
	if len(parts) == 0 {
		c.emit("", "**"+label+"**", "")
	} else {
		c.emit("", "**"+label+":** "+strings.Join(parts, " "), "")
	}
	for _, body := range code {
		c.emit("```" + defaultLanguage)
		c.emit(body...)
		c.emit("```", "")
	}
	return j
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
