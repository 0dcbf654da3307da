package cookbook

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// frontMatter holds the keys read from a document's front matter.
type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// splitFrontMatter removes a leading YAML (---), TOML (+++) or JSON (;;;)
// front matter block from src. The block is only considered when its first
// line looks like metadata; anything that fails to decode is kept as body.
func splitFrontMatter(src []byte) (frontMatter, []byte) {
	var meta frontMatter
	if !frontMatterLikely(src) {
		return meta, src
	}
	rest, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return frontMatter{}, src
	}
	return meta, rest
}

func frontMatterLikely(src []byte) bool {
	open, next := nextLine(src, 0)
	if !openingDelimiter(open) {
		return false
	}
	if next >= len(src) {
		return false
	}
	second, _ := nextLine(src, next)
	return metadataLikely(second)
}

func nextLine(src []byte, start int) ([]byte, int) {
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func openingDelimiter(line []byte) bool {
	switch string(bytes.TrimSpace(line)) {
	case "---", "+++", ";;;":
		return true
	}
	return false
}

// metadataLikely separates metadata from a three-character RST overline.
func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
