package cookbook

import "testing"

func TestFallbackTitle(t *testing.T) {
	cases := map[string]string{
		"vector_layers.rst":         "Vector Layers",
		"rst/sub/raster.rst":        "Raster",
		"rst\\win\\crs_support.rst": "Crs Support",
		"QGIS_intro.rst":            "Qgis Intro",
		"intro":                     "Intro",
		"":                          "",
		"-":                         "",
		"https://example.com/a.rst": "A",
	}
	for name, want := range cases {
		if got := FallbackTitle(name); got != want {
			t.Errorf("FallbackTitle(%q) = %q, want %q", name, got, want)
		}
	}
}
