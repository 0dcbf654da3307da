package notebook

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shurcooL/sanitized_anchor_name"
)

// maxAnchor keeps stable ids inside nbformat's 64 character limit.
const maxAnchor = 48

// IDFunc returns the id of the cell at position i.
type IDFunc func(i int, c Cell) string

// StableIDs derives ids from the anchor of title and the cell position, so
// regenerating a notebook from the same source yields the same ids.
func StableIDs(title string) IDFunc {
	anchor := asciiAnchor(sanitized_anchor_name.Create(title))
	return func(i int, _ Cell) string {
		return anchor + "-" + strconv.Itoa(i)
	}
}

// RandomIDs returns 8 hex character ids the way Jupyter generates them. Ids
// are unique within one IDFunc.
func RandomIDs() IDFunc {
	seen := make(map[string]struct{})
	return func(int, Cell) string {
		for {
			id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				return id
			}
		}
	}
}

// AssignIDs fills empty cell ids using f.
func (nb *Notebook) AssignIDs(f IDFunc) {
	for i := range nb.Cells {
		if nb.Cells[i].ID == "" {
			nb.Cells[i].ID = f(i, nb.Cells[i])
		}
	}
}

// asciiAnchor reduces an anchor to the characters nbformat allows in ids.
func asciiAnchor(anchor string) string {
	var b strings.Builder
	for _, r := range anchor {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > maxAnchor {
		s = strings.TrimRight(s[:maxAnchor], "-")
	}
	if s == "" {
		return "cell"
	}
	return s
}
