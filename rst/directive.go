package rst

func skipExtent(extent BlockExtent) func(*converter, int, line) int {
	return func(c *converter, i int, l line) int {
		return extent.End(c.lines, i+1, l.indent)
	}
}

func skipHighlight(c *converter, i int, _ line) int {
	return ExtentOptions.End(c.lines, i+1, 0)
}

func skipIndex(c *converter, i int, _ line) int {
	return ExtentIndented.End(c.lines, i+1, 0)
}

func skipLine(_ *converter, i int, _ line) int {
	return i + 1
}
