package notebook

import (
	"regexp"
	"testing"
)

var reCellID = regexp.MustCompile(`^[a-zA-Z0-9-_]{1,64}$`)

func TestStableIDs(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Vector Layers", "vector-layers-3"},
		{"Using ``QgsProject``!", "using-qgsproject-3"},
		{"", "cell-3"},
		{"Ωμέγα", "cell-3"},
		{"Çà et là", "et-l-3"},
		{"Über Layers", "ber-layers-3"},
	}
	for _, tc := range cases {
		got := StableIDs(tc.title)(3, Cell{})
		if got != tc.want {
			t.Errorf("StableIDs(%q)(3) = %q, want %q", tc.title, got, tc.want)
		}
		if !reCellID.MatchString(got) {
			t.Errorf("StableIDs(%q) produced invalid id %q", tc.title, got)
		}
	}
}

func TestStableIDsLongTitle(t *testing.T) {
	title := "A very long document title that keeps going well past the nbformat id length limit"
	id := StableIDs(title)(123, Cell{})
	if !reCellID.MatchString(id) {
		t.Fatalf("invalid id %q (len %d)", id, len(id))
	}
}

func TestRandomIDs(t *testing.T) {
	f := RandomIDs()
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := f(i, Cell{})
		if len(id) != 8 || !reCellID.MatchString(id) {
			t.Fatalf("invalid random id %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestAssignIDs(t *testing.T) {
	nb := New("Demo", prose("a"), code("b"))
	nb.Cells[0].ID = "keep"
	nb.AssignIDs(StableIDs(nb.Title))
	if nb.Cells[0].ID != "keep" || nb.Cells[1].ID != "demo-1" {
		t.Fatalf("ids = %q, %q", nb.Cells[0].ID, nb.Cells[1].ID)
	}
}
