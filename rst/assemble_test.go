package rst

import "testing"

func TestAssemble(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{"nil", nil, ""},
		{"all blank", []string{"", "  ", ""}, ""},
		{"collapse and trim", []string{"", "", "a", "", "", "b", "", ""}, "a\n\nb"},
		{"whitespace-only counts as blank", []string{"a", "   ", "", "b"}, "a\n   \nb"},
		{"no blanks", []string{"a", "b"}, "a\nb"},
	}
	for _, tc := range cases {
		if got := Assemble(tc.lines); got != tc.want {
			t.Errorf("%s: Assemble(%q) = %q, want %q", tc.name, tc.lines, got, tc.want)
		}
	}
}
