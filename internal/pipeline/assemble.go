package pipeline

import (
	"html"
	"html/template"
	"strings"
)

// ChapterFragment is one loaded chapter body ready for assembly.
type ChapterFragment struct {
	ID   string
	HTML string
}

// AssembleInput carries every fragment of the book, already rendered.
type AssembleInput struct {
	Title     string
	Lang      string
	Cover     string
	Copyright string
	TOC       string
	Chapters  []ChapterFragment // Load order
}

// Assembler concatenates fragments inside the document shell template.
type Assembler struct {
	tmpl *template.Template
}

// NewAssembler parses the document shell template. The shell receives
// Title, Lang and Body, where Body is trusted HTML.
func NewAssembler(src string) (*Assembler, error) {
	tmpl, err := parseTemplate("document", src)
	if err != nil {
		return nil, err
	}
	return &Assembler{tmpl: tmpl}, nil
}

// Assemble builds the full document: cover, copyright, TOC, then each
// chapter wrapped in <div class="chapter" id="ID">. Output depends only on in.
func (a *Assembler) Assemble(in AssembleInput) (string, error) {
	var body strings.Builder
	for _, part := range []string{in.Cover, in.Copyright, in.TOC} {
		body.WriteString(part)
		body.WriteByte('\n')
	}
	for _, ch := range in.Chapters {
		body.WriteString(WrapChapter(ch.ID, ch.HTML))
		body.WriteByte('\n')
	}

	return execute(a.tmpl, struct {
		Title string
		Lang  string
		Body  template.HTML
	}{
		Title: in.Title,
		Lang:  in.Lang,
		Body:  template.HTML(body.String()), // #nosec G203 -- fragments are rendered by this package
	})
}

// WrapChapter wraps a chapter body in its addressable container.
func WrapChapter(id, body string) string {
	return `<div class="chapter" id="` + html.EscapeString(id) + `">` + body + `</div>`
}
