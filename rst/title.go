package rst

import (
	"strings"
	"unicode/utf8"
)

const adornmentChars = "=-~*+^\"'"

var headingLevels = map[rune]int{
	'*': 1,
	'=': 2,
	'-': 3,
	'~': 4,
	'+': 5,
	'^': 6,
}

const defaultHeadingLevel = 2

func matchTitle(c *converter, i int, l line) bool {
	if l.stripped == "" || i+1 >= len(c.lines) {
		return false
	}
	_, ok := adornment(c.lines[i+1])
	return ok
}

// adornment reports the repeated character of a section underline or
// overline: at least three copies of one character from adornmentChars.
func adornment(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 3 {
		return 0, false
	}
	ch, ok := repeated(s)
	if !ok || !strings.ContainsRune(adornmentChars, ch) {
		return 0, false
	}
	return ch, true
}

// repeated reports whether s is non-empty and made of a single rune.
func repeated(s string) (rune, bool) {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, false
	}
	for _, r := range s[size:] {
		if r != first {
			return 0, false
		}
	}
	return first, true
}

func handleTitle(c *converter, i int, l line) int {
	ch, _ := adornment(c.lines[i+1])
	level, ok := headingLevels[ch]
	if !ok {
		level = defaultHeadingLevel
	}
	if c.retractOverline(ch) {
		level = 1
	}
	c.emit("", strings.Repeat("#", level)+" "+l.stripped, "")
	return i + 2
}

// retractOverline drops the last emitted line when it is an overline made of
// ch. Overlined titles are always top level.
func (c *converter) retractOverline(ch rune) bool {
	if len(c.out) == 0 {
		return false
	}
	prev := strings.TrimSpace(c.out[len(c.out)-1])
	if got, ok := repeated(prev); !ok || got != ch {
		return false
	}
	c.out = c.out[:len(c.out)-1]
	return true
}
