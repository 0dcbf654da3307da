package rst

import "strings"

// Assemble joins converted lines into Markdown text. Runs of blank lines
// collapse to one and leading and trailing blank lines are removed.
func Assemble(lines []string) string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		blank := isBlank(l)
		if blank && prevBlank {
			continue
		}
		out = append(out, l)
		prevBlank = blank
	}
	for len(out) > 0 && isBlank(out[0]) {
		out = out[1:]
	}
	return strings.Join(trimTrailingBlank(out), "\n")
}
