package rst

import (
	"strings"
	"testing"
)

var inlineTests = []struct {
	name  string
	input string
	want  string
}{
	{"file", ":file:`a/b.txt`", "`a/b.txt`"},
	{"command", "run :command:`make`", "run `make`"},
	{"data", ":data:`sys.path`", "`sys.path`"},
	{"const", ":const:`True`", "`True`"},
	{"envvar", ":envvar:`QGIS_PREFIX_PATH`", "`QGIS_PREFIX_PATH`"},
	{"menuselection", ":menuselection:`Plugins --> Python Console`", "**Plugins --> Python Console**"},
	{"guilabel", "press :guilabel:`OK`", "press **OK**"},
	{"kbd", ":kbd:`Ctrl+Alt+P`", "<kbd>Ctrl+Alt+P</kbd>"},
	{"class with target", ":class:`QgsProject <qgis.core.QgsProject>`", "`QgsProject`"},
	{"class bare", ":class:`QgsProject`", "`QgsProject`"},
	{"meth with target", ":meth:`instance() <qgis.core.QgsProject.instance>`", "`instance()`"},
	{"func bare", ":func:`iface`", "`iface`"},
	{"attr with target", ":attr:`id <Layer.id>`", "`id`"},
	{"mod", ":mod:`qgis.core`", "`qgis.core`"},
	{"ref keeps label verbatim", ":ref:`Loading Layers <loadlayer>`", "*Loading Layers <loadlayer>*"},
	{"doc with target", ":doc:`Vectors <vector>`", "*Vectors*"},
	{"doc bare", ":doc:`vector`", "*vector*"},
	{"api", ":api:`QgsFeature <classQgsFeature>`", "QgsFeature"},
	{"pyqgis", ":pyqgis:`addMapLayer() <qgis.core.QgsProject.addMapLayer>`", "addMapLayer()"},
	{"pyqgis empty display", ":pyqgis:`<qgis.core>`", ""},
	{"source", ":source:`plugin.py <python/plugins/plugin.py>`", "[plugin.py](python/plugins/plugin.py)"},
	{"double backticks", "use ``iface.activeLayer()`` here", "use `iface.activeLayer()` here"},
	{"external link", "`QGIS <https://qgis.org>`_", "[QGIS](https://qgis.org)"},
	{"anonymous link", "`anon <https://x.org>`__", "[anon](https://x.org)"},
	{"link after code span", "`a` and `QGIS <https://qgis.org>`_", "`a` and [QGIS](https://qgis.org)"},
	{"bare reference preserved", "see `Target`_ below", "see `Target`_ below"},
	{"plain text untouched", "nothing to do: a < b > c", "nothing to do: a < b > c"},
	{
		"mixed",
		"Use :class:`QgsVectorLayer <qgis.core.QgsVectorLayer>` with :meth:`getFeatures` and ``request``.",
		"Use `QgsVectorLayer` with `getFeatures` and `request`.",
	},
}

func TestRewriteInline(t *testing.T) {
	for _, test := range inlineTests {
		if got := RewriteInline(test.input); got != test.want {
			t.Errorf("%s: RewriteInline(%q) = %q, want %q", test.name, test.input, got, test.want)
		}
	}
}

func TestRewriteInlineIdempotent(t *testing.T) {
	for _, test := range inlineTests {
		once := RewriteInline(test.input)
		twice := RewriteInline(once)
		if once != twice {
			t.Errorf("%s: second pass changed %q to %q", test.name, once, twice)
		}
	}
	line := "Call `layer.id()` and `feature.geometry()` then `x`."
	got := RewriteInline(line)
	if got != line {
		t.Fatalf("single backtick spans changed: %q", got)
	}
	if strings.Contains(got, "``") {
		t.Fatalf("double backticks introduced: %q", got)
	}
}
