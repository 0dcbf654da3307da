// Package rst converts reStructuredText documents into Markdown.
//
// The converter is line oriented. Each cursor position is classified into one
// block kind, tested in a fixed priority order: skipped directives (test
// fixtures, highlight, html-only, index, link targets), section titles,
// testcode and code-block directives, literal blocks, figures, admonitions,
// unknown directives and finally plain lines. Plain lines pass through the
// inline role rewriter, everything else is handled by a block handler that
// consumes a contiguous run of lines.
//
// Only a fixed set of constructs is recognized; everything else is passed
// through verbatim. Conversion is total: any input produces Markdown.
//
// Example:
//
//	md := rst.Convert("Title\n=====\n\nSee :class:`QgsProject`.\n")
//	// ## Title
//	//
//	// See `QgsProject`.
package rst
