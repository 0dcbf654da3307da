package rst

import (
	"regexp"
	"strings"
)

type blockKind uint8

const (
	blockSkipTest blockKind = iota
	blockSkipHighlight
	blockSkipOnlyHTML
	blockSkipIndex
	blockSkipTarget
	blockTitle
	blockTestcode
	blockCodeBlock
	blockLiteral
	blockFigure
	blockAdmonition
	blockSkipDirective
	blockPlain
)

var blockNames = [...]string{
	blockSkipTest:      "skip-test-directive",
	blockSkipHighlight: "skip-highlight",
	blockSkipOnlyHTML:  "skip-html-only",
	blockSkipIndex:     "skip-index",
	blockSkipTarget:    "skip-target-def",
	blockTitle:         "title",
	blockTestcode:      "testcode-block",
	blockCodeBlock:     "code-block-directive",
	blockLiteral:       "literal-block",
	blockFigure:        "figure",
	blockAdmonition:    "admonition",
	blockSkipDirective: "skip-unknown-directive",
	blockPlain:         "plain-line",
}

func (k blockKind) String() string {
	if int(k) < len(blockNames) {
		return blockNames[k]
	}
	return "unknown"
}

var (
	reSkipTest   = regexp.MustCompile(`^\.\.\s+(testsetup|testcleanup|testoutput)::`)
	reHighlight  = regexp.MustCompile(`^\.\.\s+highlight::`)
	reOnlyHTML   = regexp.MustCompile(`^\.\.\s+only::\s+html`)
	reIndex      = regexp.MustCompile(`^\.\.\s+index::`)
	reTarget     = regexp.MustCompile(`^\.\.\s+_[\p{L}\p{N}_-]+:\s*$`)
	reTestcode   = regexp.MustCompile(`^\.\.\s+testcode::`)
	reCodeBlock  = regexp.MustCompile(`^\.\.\s+code-block::\s*(\w+)?`)
	reFigure     = regexp.MustCompile(`^\.\.\s+figure::\s*(.+)`)
	reAdmonition = regexp.MustCompile(`^\.\.\s+(hint|note|warning|tip|important)::\s*(.*)`)
	reDirective  = regexp.MustCompile(`^\.\.\s+\w+::`)
)

// line caches the per-position facts every block test needs.
type line struct {
	raw      string
	stripped string
	indent   int
}

type blockRule struct {
	kind   blockKind
	match  func(c *converter, i int, l line) bool
	handle func(c *converter, i int, l line) int
}

// blockRules is evaluated in order; the first match owns the cursor. The last
// rule matches every line.
var blockRules = []blockRule{
	{blockSkipTest, matchRegexp(reSkipTest), skipExtent(ExtentColumn)},
	{blockSkipHighlight, matchRegexp(reHighlight), skipHighlight},
	{blockSkipOnlyHTML, matchRegexp(reOnlyHTML), skipExtent(ExtentColumn)},
	{blockSkipIndex, matchRegexp(reIndex), skipIndex},
	{blockSkipTarget, matchRegexp(reTarget), skipLine},
	{blockTitle, matchTitle, handleTitle},
	{blockTestcode, matchRegexp(reTestcode), handleTestcode},
	{blockCodeBlock, matchRegexp(reCodeBlock), handleCodeBlock},
	{blockLiteral, matchLiteral, handleLiteral},
	{blockFigure, matchRegexp(reFigure), handleFigure},
	{blockAdmonition, matchRegexp(reAdmonition), handleAdmonition},
	{blockSkipDirective, matchUnknownDirective, skipExtent(ExtentDeeper)},
	{blockPlain, matchAny, handlePlain},
}

// Convert converts an RST document to Markdown.
func Convert(text string, opts ...Option) string {
	cfg := newConfig(opts)
	c := newConverter(Lines(text, cfg.tabWidth))
	c.run()
	return Assemble(c.out)
}

// Lines normalizes line endings, expands tabs and splits text into lines.
func Lines(text string, tabWidth int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(ExpandTabs(text, tabWidth), "\n")
}

type converter struct {
	lines []string
	out   []string
}

func newConverter(lines []string) *converter {
	return &converter{
		lines: lines,
		out:   make([]string, 0, len(lines)),
	}
}

func (c *converter) run() {
	for i := 0; i < len(c.lines); {
		i = c.step(i)
	}
}

func (c *converter) step(i int) int {
	l := c.lineAt(i)
	rule := c.classify(i, l)
	return rule.handle(c, i, l)
}

func (c *converter) classify(i int, l line) blockRule {
	for _, rule := range blockRules {
		if rule.match(c, i, l) {
			return rule
		}
	}
	return blockRules[len(blockRules)-1]
}

func (c *converter) lineAt(i int) line {
	raw := c.lines[i]
	return line{raw: raw, stripped: strings.TrimSpace(raw), indent: Indent(raw)}
}

func (c *converter) emit(lines ...string) {
	c.out = append(c.out, lines...)
}

func (c *converter) emitFence(lang string, body []string) {
	c.emit("", "```"+lang)
	c.emit(body...)
	c.emit("```", "")
}

func matchRegexp(re *regexp.Regexp) func(*converter, int, line) bool {
	return func(_ *converter, _ int, l line) bool {
		return re.MatchString(l.stripped)
	}
}

func matchUnknownDirective(_ *converter, _ int, l line) bool {
	return reDirective.MatchString(l.stripped) && !strings.HasPrefix(l.stripped, ".. code")
}

func matchAny(*converter, int, line) bool { return true }

func handlePlain(c *converter, i int, l line) int {
	c.emit(RewriteInline(l.raw))
	return i + 1
}
