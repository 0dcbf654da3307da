package rst

import "regexp"

type inlineRule struct {
	re   *regexp.Regexp
	repl string
}

// Rules with a <target> form run before the bare form of the same role.
var inlineRules = []inlineRule{
	{regexp.MustCompile(":(?:file|command|data|const|envvar):`([^`]+)`"), "`${1}`"},
	{regexp.MustCompile(":(?:menuselection|guilabel):`([^`]+)`"), "**${1}**"},
	{regexp.MustCompile(":kbd:`([^`]+)`"), "<kbd>${1}</kbd>"},
	{regexp.MustCompile(":(?:class|meth|func|attr):`([^<`]+?)\\s*<[^>]+>`"), "`${1}`"},
	{regexp.MustCompile(":(?:class|meth|func|attr|mod):`([^`]+)`"), "`${1}`"},
	{regexp.MustCompile(":ref:`([^`]+)`"), "*${1}*"},
	{regexp.MustCompile(":doc:`([^<`]+?)\\s*<[^>]+>`"), "*${1}*"},
	{regexp.MustCompile(":doc:`([^`]+)`"), "*${1}*"},
	{regexp.MustCompile(":(?:api|pyqgis):`([^<`]*?)\\s*<[^>]*>`"), "${1}"},
	{regexp.MustCompile(":source:`([^<`]+?)\\s*<([^>]+)>`"), "[${1}](${2})"},
	{regexp.MustCompile("``([^`]+)``"), "`${1}`"},
	{regexp.MustCompile("`([^`<]+?)\\s*<([^>]+)>`_+"), "[${1}](${2})"},
}

// RewriteInline converts the inline roles and markup of one line to Markdown.
// Bare `text`_ references are left untouched. Applying RewriteInline to its
// own output does not change it further.
func RewriteInline(line string) string {
	for _, rule := range inlineRules {
		line = rule.re.ReplaceAllString(line, rule.repl)
	}
	return line
}
