// Package cookbook converts reStructuredText documents into Markdown and
// Jupyter notebooks.
//
// A conversion runs in three steps. The RST source is validated and any
// leading front matter is removed. The rst package then transpiles the body
// to Markdown line by line. Finally the notebook package splits that Markdown
// into prose and code cells and encodes the nbformat 4.5 document.
//
// Example:
//
//	f, err := os.Open("rst/vector.rst")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//	doc, err := cookbook.Convert(cookbook.ConvertRequest{
//		Reader: f,
//		Name:   "vector.rst",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Markdown)
//
// The conversion can be customized with Options such as WithTabWidth and
// WithRandomCellIDs.
package cookbook
