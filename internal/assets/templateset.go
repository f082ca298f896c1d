package assets

// TemplateSet holds the html/template sources for one book layout.
type TemplateSet struct {
	Name      string // Identifier (name or directory path)
	Cover     string // Cover page fragment
	Copyright string // Copyright page fragment
	TOC       string // Table of contents fragment
	Document  string // Document shell wrapping all fragments
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in style sheet.
const DefaultStyleName = "book"

// Template file names inside a template set directory.
const (
	coverFile     = "cover.html"
	copyrightFile = "copyright.html"
	tocFile       = "toc.html"
	documentFile  = "document.html"
)

// templateFiles lists every file a complete set provides, in a stable order.
var templateFiles = []string{coverFile, copyrightFile, tocFile, documentFile}

// set stores content read for file into the matching field.
func (ts *TemplateSet) set(file, content string) {
	switch file {
	case coverFile:
		ts.Cover = content
	case copyrightFile:
		ts.Copyright = content
	case tocFile:
		ts.TOC = content
	case documentFile:
		ts.Document = content
	}
}
