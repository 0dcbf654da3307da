package notebook

// Kind tags a cell as prose or executable code.
type Kind uint8

const (
	Prose Kind = iota
	Code
)

// String returns the nbformat cell_type of k.
func (k Kind) String() string {
	if k == Code {
		return "code"
	}
	return "markdown"
}

// Cell is one notebook cell. ID may be empty until the notebook is encoded.
type Cell struct {
	Kind   Kind
	Source string
	ID     string
}

// Notebook is an ordered cell sequence with fixed kernel metadata. Title is
// the document title the cells were segmented with; it seeds stable cell ids
// and is not serialized.
type Notebook struct {
	Cells    []Cell
	Metadata Metadata
	Title    string
}

// Metadata is the notebook-level metadata block. Fields are declared in
// alphabetical JSON key order.
type Metadata struct {
	KernelSpec   KernelSpec   `json:"kernelspec"`
	LanguageInfo LanguageInfo `json:"language_info"`
}

type KernelSpec struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

type LanguageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DefaultMetadata describes a Python 3 kernel.
func DefaultMetadata() Metadata {
	return Metadata{
		KernelSpec: KernelSpec{
			DisplayName: "Python 3",
			Language:    "python",
			Name:        "python3",
		},
		LanguageInfo: LanguageInfo{
			Name:    "python",
			Version: "3.9.0",
		},
	}
}

// New returns a notebook with the default metadata holding cells.
func New(title string, cells ...Cell) *Notebook {
	return &Notebook{
		Cells:    cells,
		Metadata: DefaultMetadata(),
		Title:    title,
	}
}

// Counts returns the number of prose and code cells.
func (nb *Notebook) Counts() (prose, code int) {
	for _, c := range nb.Cells {
		if c.Kind == Code {
			code++
		} else {
			prose++
		}
	}
	return prose, code
}
