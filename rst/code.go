package rst

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	defaultCodeIndent = 4
	defaultLanguage   = "python"
)

var (
	reINISection  = regexp.MustCompile(`(?m)^\[.*\]`)
	reINIComment  = regexp.MustCompile(`(?m)^;\s*`)
	reINIKey      = regexp.MustCompile(`(?m)^\w+\s*=\s*\w`)
	reCodeKeyword = regexp.MustCompile(`(?m)^\s*(def|class|import|from|if|for|while|try|with)\s`)
)

func handleTestcode(c *converter, i int, l line) int {
	body, next := c.codeBody(skipBlankAndOptions(c.lines, i+1), l.indent)
	c.emitFence(defaultLanguage, body)
	return next
}

func handleCodeBlock(c *converter, i int, l line) int {
	lang := defaultLanguage
	if m := reCodeBlock.FindStringSubmatch(l.stripped); m[1] != "" {
		lang = m[1]
	}
	body, next := c.codeBody(skipBlankAndOptions(c.lines, i+1), l.indent)
	c.emitFence(lang, body)
	return next
}

// codeBody collects a directive body starting at i. Its base indentation is
// that of the first line, which must be indented past the directive itself;
// otherwise the body is empty and i is returned unchanged.
func (c *converter) codeBody(i, directiveIndent int) ([]string, int) {
	base := defaultCodeIndent
	if i < len(c.lines) {
		base = Indent(c.lines[i])
		if base <= directiveIndent {
			return nil, i
		}
	}
	return collectCode(c.lines, i, base)
}

// collectCode gathers the lines of a code body with base indentation,
// removes that indentation and drops trailing blank lines.
func collectCode(lines []string, start, base int) ([]string, int) {
	end := ExtentBelowBase.End(lines, start, base)
	body := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		if isBlank(l) {
			body = append(body, "")
			continue
		}
		body = append(body, trimIndent(l, base))
	}
	return trimTrailingBlank(body), end
}

func matchLiteral(_ *converter, _ int, l line) bool {
	return strings.HasSuffix(l.stripped, "::") && !strings.HasPrefix(l.stripped, "..")
}

// handleLiteral turns "text::" followed by an indented body into a paragraph
// ending in a single colon and a fenced block. Without an indented body the
// line is an ordinary paragraph line.
func handleLiteral(c *converter, i int, l line) int {
	j := skipBlank(c.lines, i+1)
	if j >= len(c.lines) || !literalIndented(c.lines[j]) {
		return handlePlain(c, i, l)
	}
	prefix := strings.TrimRightFunc(strings.TrimSuffix(l.stripped, "::"), unicode.IsSpace)
	if prefix != "" {
		c.emit(prefix + ":")
	}
	body, next := collectCode(c.lines, j, Indent(c.lines[j]))
	c.emitFence(LiteralLanguage(body), body)
	return next
}

func literalIndented(s string) bool {
	return strings.HasPrefix(s, "  ") || strings.HasPrefix(s, "\t")
}

// LiteralLanguage guesses the fence language of a literal block body. Bodies
// that look like INI files are tagged "ini" unless a Python statement keyword
// starts one of their lines; everything else is "python".
func LiteralLanguage(body []string) string {
	content := strings.Join(body, "\n")
	ini := reINISection.MatchString(content) ||
		reINIComment.MatchString(content) ||
		reINIKey.MatchString(content)
	if ini && !reCodeKeyword.MatchString(content) {
		return "ini"
	}
	return defaultLanguage
}
