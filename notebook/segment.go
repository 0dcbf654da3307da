package notebook

import (
	"regexp"
	"strings"
)

const (
	quotedFence  = "> ```"
	untitled     = "Untitled"
	proseFenceAs = "text"
)

var reFenceOpen = regexp.MustCompile("^(`{3,})\\s*(\\w*)$")

// Segment partitions markdown into notebook cells. fallbackTitle is used for
// the single heading cell of an empty document and seeds stable cell ids.
func Segment(markdown, fallbackTitle string) *Notebook {
	s := &segmenter{}
	for _, line := range strings.Split(markdown, "\n") {
		s.feed(line)
	}
	s.finish()

	cells := mergeProse(s.cells)
	if len(cells) == 0 {
		title := strings.TrimSpace(fallbackTitle)
		if title == "" {
			title = untitled
		}
		cells = []Cell{{Kind: Prose, Source: "# " + title}}
	}
	return New(fallbackTitle, cells...)
}

// segmenter is outside any fence, inside a plain fence (fence != "") or
// inside a quoted fence (quoted).
type segmenter struct {
	cells   []Cell
	pending []string

	fence  string
	lang   string
	opener string
	body   []string

	quoted bool
}

func (s *segmenter) feed(line string) {
	switch {
	case s.fence != "":
		if strings.TrimSpace(line) == s.fence {
			s.closeFence()
			return
		}
		s.body = append(s.body, line)
	case s.quoted:
		s.pending = append(s.pending, line)
		if strings.HasPrefix(line, quotedFence) {
			s.quoted = false
		}
	case strings.HasPrefix(line, quotedFence):
		s.pending = append(s.pending, line)
		s.quoted = true
	default:
		if m := reFenceOpen.FindStringSubmatch(line); m != nil {
			s.flushProse()
			s.fence, s.lang, s.opener = m[1], m[2], line
			s.body = s.body[:0]
			return
		}
		s.pending = append(s.pending, line)
	}
}

func (s *segmenter) closeFence() {
	content := strings.Join(trimBlankLines(s.body), "\n")
	if strings.TrimSpace(content) != "" {
		switch Classify(s.lang, content) {
		case Code:
			s.cells = append(s.cells, Cell{Kind: Code, Source: content})
		default:
			tag := s.lang
			if tag == "" {
				tag = proseFenceAs
			}
			s.cells = append(s.cells, Cell{
				Kind:   Prose,
				Source: s.fence + tag + "\n" + content + "\n" + s.fence,
			})
		}
	}
	s.fence, s.lang, s.opener = "", "", ""
	s.body = s.body[:0]
}

// finish flushes pending prose. An unterminated fence is prose, opener
// included, whatever its tag.
func (s *segmenter) finish() {
	if s.fence != "" {
		s.pending = append(append(s.pending, s.opener), s.body...)
		s.fence, s.lang, s.opener = "", "", ""
		s.body = nil
	}
	s.flushProse()
}

func (s *segmenter) flushProse() {
	content := strings.TrimSpace(strings.Join(s.pending, "\n"))
	if content != "" {
		s.cells = append(s.cells, Cell{Kind: Prose, Source: content})
	}
	s.pending = s.pending[:0]
}

// mergeProse joins runs of adjacent prose cells with a blank line. Code cells
// are never merged.
func mergeProse(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if n := len(out); n > 0 && c.Kind == Prose && out[n-1].Kind == Prose {
			out[n-1].Source += "\n\n" + c.Source
			continue
		}
		out = append(out, c)
	}
	return out
}

func trimBlankLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
