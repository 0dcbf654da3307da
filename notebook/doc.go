// Package notebook splits converted Markdown into Jupyter notebook cells and
// encodes them as nbformat 4.5 JSON.
//
// Segment walks the Markdown line by line. Text outside fenced blocks becomes
// prose; fenced blocks become code cells when they are tagged python or py,
// or when they are untagged and do not look like shell, INI, markup or plain
// English. Every other fenced block stays prose, re-fenced so it still renders
// as a block. Adjacent prose cells are merged.
//
//	nb := notebook.Segment(markdown, "Vector Layers")
//	if err := notebook.Encode(w, nb); err != nil {
//		return err
//	}
package notebook
