package md2book

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2book/internal/pipeline"
)

// Defaults applied by Book.withDefaults.
const (
	DefaultCoverImage          = "book-cover.png"
	DefaultDebugFileName       = "book.html"
	DefaultLang                = "ko"
	DefaultCopyrightDateFormat = "YYYY년 MM월 DD일"
)

// Metadata describes the book. It is printed on the copyright page and
// titles the document.
type Metadata = pipeline.Metadata

// Manifest is the ordered list of chapter identifiers (file names inside
// the chapter directory). Build order is manifest order.
type Manifest []string

// Book is the immutable description of one build.
type Book struct {
	Metadata Metadata
	Manifest Manifest
	Titles   map[string]string // Chapter identifier to display title

	ChapterDir string
	ImageDir   string
	OutputDir  string

	CoverImage          string // Relative to ImageDir unless absolute
	DebugFileName       string // HTML dump written next to the PDF
	Slug                string // Default PDF name prefix; derived from the title when empty
	Lang                string // Document language attribute
	CopyrightDateFormat string // dateutil pattern for the generation date
}

// TitleFor returns the display title of a chapter, or id itself when the
// book defines none.
func (b *Book) TitleFor(id string) string {
	if t, ok := b.Titles[id]; ok && t != "" {
		return t
	}
	return id
}

// CoverImagePath returns the cover image location.
func (b *Book) CoverImagePath() string {
	if filepath.IsAbs(b.CoverImage) {
		return b.CoverImage
	}
	return filepath.Join(b.ImageDir, b.CoverImage)
}

// Validate checks that the book can be built.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Metadata.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if len(b.Manifest) == 0 {
		return fmt.Errorf("%w: manifest is empty", ErrInvalidBook)
	}
	for i, id := range b.Manifest {
		if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
			return fmt.Errorf("%w: manifest entry %d: %q is not a file name", ErrInvalidBook, i, id)
		}
		if slices.Contains(b.Manifest[:i], id) {
			return fmt.Errorf("%w: manifest entry %q is listed twice", ErrInvalidBook, id)
		}
	}
	if b.ChapterDir == "" {
		return fmt.Errorf("%w: chapter directory is required", ErrInvalidBook)
	}
	if b.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidBook)
	}
	if strings.ContainsAny(b.DebugFileName, `/\`) {
		return fmt.Errorf("%w: debug file %q must be a file name", ErrInvalidBook, b.DebugFileName)
	}
	return nil
}

// withDefaults returns a copy of b with empty optional fields filled.
// Slices and maps are copied so later changes by the caller do not leak in.
func (b Book) withDefaults() Book {
	b.Manifest = slices.Clone(b.Manifest)
	titles := make(map[string]string, len(b.Titles))
	for k, v := range b.Titles {
		titles[k] = v
	}
	b.Titles = titles

	if b.ImageDir == "" {
		b.ImageDir = filepath.Join(filepath.Dir(filepath.Clean(b.ChapterDir)), "images")
	}
	if b.CoverImage == "" {
		b.CoverImage = DefaultCoverImage
	}
	if b.DebugFileName == "" {
		b.DebugFileName = DefaultDebugFileName
	}
	if b.Lang == "" {
		b.Lang = DefaultLang
	}
	if b.CopyrightDateFormat == "" {
		b.CopyrightDateFormat = DefaultCopyrightDateFormat
	}
	if b.Slug == "" {
		b.Slug = b.Metadata.Title
	}
	b.Slug = Slug(b.Slug)
	return b
}

// Chapter is one loaded chapter. Chapters exist only for manifest entries
// whose file was found.
type Chapter struct {
	ID    string // Manifest identifier, also the container id
	Title string // Display title
	HTML  string // Transformed body
}

// Document is the assembled book.
type Document struct {
	HTML       string   // Full HTML5 document, without the style sheet
	ChapterIDs []string // Chapter container ids in body order
	TOCAnchors []string // Table of contents targets in listed order
}

// Dangling returns table of contents targets with no chapter container.
func (d *Document) Dangling() []string {
	return pipeline.MissingTargets(d.ChapterIDs, d.TOCAnchors)
}

// Result describes the files written by Render.
type Result struct {
	PDFPath   string
	DebugPath string
	PDFSize   int64
	Document  *Document
}
