package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-md2book/internal/assets"
	"github.com/alnah/go-md2book/internal/dateutil"
	"github.com/alnah/go-md2book/internal/fileutil"
)

// Sentinel errors for section templates.
var (
	ErrTemplateParse = errors.New("template parsing failed")
	ErrSectionRender = errors.New("section rendering failed")
)

// Metadata is the descriptive information printed on the copyright page
// and used as the document title.
type Metadata struct {
	Title     string
	Subtitle  string
	Author    string
	Publisher string
	Year      string
	Version   string
}

// TOCEntry is one line of the table of contents.
type TOCEntry struct {
	ID    string // Anchor target, the chapter identifier
	Title string // Display title
}

// parseTemplate parses src under name, wrapping failures in ErrTemplateParse.
func parseTemplate(name, src string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}
	return tmpl, nil
}

// execute renders tmpl with data, wrapping failures in ErrSectionRender.
func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSectionRender, tmpl.Name(), err)
	}
	return buf.String(), nil
}

// ---------------------------------------------------------------------------
// Cover
// ---------------------------------------------------------------------------

// CoverGenerator renders the cover page.
type CoverGenerator struct {
	tmpl   *template.Template
	exists func(path string) bool
}

// NewCoverGenerator parses the cover template.
func NewCoverGenerator(src string) (*CoverGenerator, error) {
	tmpl, err := parseTemplate("cover", src)
	if err != nil {
		return nil, err
	}
	return &CoverGenerator{tmpl: tmpl, exists: fileutil.FileExists}, nil
}

// Generate renders the cover. The image is referenced by absolute file://
// URL only when coverImagePath exists; otherwise the container is empty.
func (g *CoverGenerator) Generate(coverImagePath string) (string, error) {
	data := struct{ ImageURL template.URL }{}
	if coverImagePath != "" && g.exists(coverImagePath) {
		u, err := fileutil.PathToFileURL(coverImagePath)
		if err != nil {
			return "", fmt.Errorf("%w: cover: %v", ErrSectionRender, err)
		}
		// html/template only trusts http(s) and mailto URLs by default.
		data.ImageURL = template.URL(u) // #nosec G203 -- URL built from a local path
	}
	return execute(g.tmpl, data)
}

// ---------------------------------------------------------------------------
// Copyright
// ---------------------------------------------------------------------------

// CopyrightGenerator renders the copyright page.
type CopyrightGenerator struct {
	tmpl       *template.Template
	dateFormat string
}

// NewCopyrightGenerator parses the copyright template. dateFormat uses the
// dateutil tokens (YYYY, MM, DD...) and is validated here.
func NewCopyrightGenerator(src, dateFormat string) (*CopyrightGenerator, error) {
	if _, err := dateutil.Layout(dateFormat); err != nil {
		return nil, err
	}
	tmpl, err := parseTemplate("copyright", src)
	if err != nil {
		return nil, err
	}
	return &CopyrightGenerator{tmpl: tmpl, dateFormat: dateFormat}, nil
}

// Generate renders every metadata field, the fixed notices and generatedAt.
func (g *CopyrightGenerator) Generate(meta Metadata, generatedAt time.Time) (string, error) {
	stamp, err := dateutil.Format(generatedAt, g.dateFormat)
	if err != nil {
		return "", err
	}
	return execute(g.tmpl, struct {
		Metadata
		GeneratedAt string
	}{Metadata: meta, GeneratedAt: stamp})
}

// ---------------------------------------------------------------------------
// Table of contents
// ---------------------------------------------------------------------------

// TOCGenerator renders the table of contents.
type TOCGenerator struct {
	tmpl *template.Template
}

// NewTOCGenerator parses the TOC template.
func NewTOCGenerator(src string) (*TOCGenerator, error) {
	tmpl, err := parseTemplate("toc", src)
	if err != nil {
		return nil, err
	}
	return &TOCGenerator{tmpl: tmpl}, nil
}

// Generate renders one link per entry, in the given order.
// Entries are not checked against loaded chapters.
func (g *TOCGenerator) Generate(entries []TOCEntry) (string, error) {
	return execute(g.tmpl, struct{ Entries []TOCEntry }{Entries: entries})
}

// ---------------------------------------------------------------------------
// Bundle
// ---------------------------------------------------------------------------

// Sections groups the generators and the assembler built from one template set.
type Sections struct {
	Cover     *CoverGenerator
	Copyright *CopyrightGenerator
	TOC       *TOCGenerator
	Assembler *Assembler
}

// NewSections parses every template of ts.
func NewSections(ts *assets.TemplateSet, dateFormat string) (*Sections, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrTemplateParse)
	}
	cover, err := NewCoverGenerator(ts.Cover)
	if err != nil {
		return nil, err
	}
	copyright, err := NewCopyrightGenerator(ts.Copyright, dateFormat)
	if err != nil {
		return nil, err
	}
	toc, err := NewTOCGenerator(ts.TOC)
	if err != nil {
		return nil, err
	}
	assembler, err := NewAssembler(ts.Document)
	if err != nil {
		return nil, err
	}
	return &Sections{Cover: cover, Copyright: copyright, TOC: toc, Assembler: assembler}, nil
}
