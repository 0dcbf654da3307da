package cookbook

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackTitle derives a notebook title from a file name: the extension is
// dropped, underscores become spaces and every word is title cased, so
// "vector_layers.rst" becomes "Vector Layers". Names that are empty or "-"
// yield "".
func FallbackTitle(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(name)
	if name == "" || base == "-" || base == "." || base == "/" {
		return ""
	}
	stem := strings.TrimSuffix(base, path.Ext(base))
	stem = strings.TrimSpace(strings.ReplaceAll(stem, "_", " "))
	return cases.Title(language.Und).String(stem)
}
