package notebook

import "regexp"

// nonCodeSignatures mark an untagged fenced body as something other than
// Python. One matching line anywhere in the body is enough. The assignment
// rule is case-sensitive; the rest ignore case.
var nonCodeSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[A-Z_]+\s*=`),
	regexp.MustCompile(`(?im)^\s*#.*bin/`),
	regexp.MustCompile(`(?im)^\s*<`),
	regexp.MustCompile(`(?im)^\s*\[.*\]`),
	regexp.MustCompile(`(?im)^export\s+`),
	regexp.MustCompile(`(?im)^set\s+`),
	regexp.MustCompile(`(?im)^call\s+`),
	regexp.MustCompile(`(?im)^@echo`),
	regexp.MustCompile(`(?im)^path\s+`),
	regexp.MustCompile(`(?im)^start\s+`),
	regexp.MustCompile(`(?im)^\s*initialize the`),
	regexp.MustCompile(`(?im)^\s*create the`),
	regexp.MustCompile(`(?im)^\s*the main`),
	regexp.MustCompile(`(?im)^\s*for each`),
}

// Executable reports whether a fence tag names the notebook's language.
func Executable(lang string) bool {
	return lang == "python" || lang == "py"
}

// Classify decides the kind of a fenced block from its tag and body. Tagged
// blocks are code only for python or py. Untagged blocks are code unless a
// line matches one of the non-code signatures.
func Classify(lang, body string) Kind {
	if lang != "" {
		if Executable(lang) {
			return Code
		}
		return Prose
	}
	if NonCode(body) {
		return Prose
	}
	return Code
}

// NonCode reports whether any line of body matches a non-code signature.
func NonCode(body string) bool {
	for _, re := range nonCodeSignatures {
		if re.MatchString(body) {
			return true
		}
	}
	return false
}
