package rst

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Indent returns the width of the leading whitespace of line in runes.
// Lines that are blank after trimming report 0, so a blank line never ends a
// block through the width test alone.
func Indent(line string) int {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if rest == "" {
		return 0
	}
	return utf8.RuneCountInString(line[:len(line)-len(rest)])
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width. The
// column restarts after every newline. Non-positive widths drop tabs.
func ExpandTabs(text string, width int) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	col := 0
	for _, r := range text {
		switch r {
		case '\t':
			if width <= 0 {
				continue
			}
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// BlockExtent names the rule that decides where an indentation-delimited
// block ends. Each construct keeps the continuation test it has always used;
// the variants differ on purpose.
type BlockExtent uint8

const (
	// ExtentColumn continues while lines are blank, indented past base, or
	// start with a space. Used by test fixture and html-only directives.
	ExtentColumn BlockExtent = iota
	// ExtentIndented continues while lines are blank or start with a space.
	// Used by index directives.
	ExtentIndented
	// ExtentOptions continues over blank lines and indented ":option:" lines
	// only. Used by highlight directives.
	ExtentOptions
	// ExtentBelowBase continues until a non-blank line is indented less than
	// base. Used by code bodies. A directive code body whose first line is
	// not indented past the directive is empty, and that line is converted
	// as ordinary text.
	ExtentBelowBase
	// ExtentAdmonition continues until a non-blank line is indented less than
	// base and does not start with a space.
	ExtentAdmonition
	// ExtentFigure continues while lines are blank or start with three spaces.
	ExtentFigure
	// ExtentDeeper continues while lines are blank or indented past base.
	// Used by unknown directives.
	ExtentDeeper
)

// Contains reports whether line continues a block with base indentation.
func (e BlockExtent) Contains(line string, base int) bool {
	if isBlank(line) {
		return true
	}
	switch e {
	case ExtentColumn:
		return Indent(line) > base || strings.HasPrefix(line, " ")
	case ExtentIndented:
		return strings.HasPrefix(line, " ")
	case ExtentOptions:
		return strings.HasPrefix(line, " ") && strings.HasPrefix(strings.TrimSpace(line), ":")
	case ExtentBelowBase:
		return Indent(line) >= base
	case ExtentAdmonition:
		return Indent(line) >= base || strings.HasPrefix(line, " ")
	case ExtentFigure:
		return strings.HasPrefix(line, "   ")
	case ExtentDeeper:
		return Indent(line) > base
	}
	return false
}

// End returns the index of the first line at or after start that is outside
// the block. It returns len(lines) when the block runs to the end.
func (e BlockExtent) End(lines []string, start, base int) int {
	i := start
	for i < len(lines) && e.Contains(lines[i], base) {
		i++
	}
	return i
}

func (e BlockExtent) String() string {
	switch e {
	case ExtentColumn:
		return "column"
	case ExtentIndented:
		return "indented"
	case ExtentOptions:
		return "options"
	case ExtentBelowBase:
		return "below-base"
	case ExtentAdmonition:
		return "admonition"
	case ExtentFigure:
		return "figure"
	case ExtentDeeper:
		return "deeper"
	}
	return "unknown"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// trimIndent removes at most n leading whitespace runes from line.
func trimIndent(line string, n int) string {
	i := 0
	for i < len(line) && n > 0 {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
		n--
	}
	return line[i:]
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && isBlank(lines[i]) {
		i++
	}
	return i
}

func skipBlankAndOptions(lines []string, i int) int {
	for i < len(lines) && (isBlank(lines[i]) || strings.HasPrefix(strings.TrimSpace(lines[i]), ":")) {
		i++
	}
	return i
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}
