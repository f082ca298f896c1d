package md2book

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2book/internal/assets"
	"github.com/alnah/go-md2book/internal/fileutil"
	"github.com/alnah/go-md2book/internal/pipeline"
)

// Builder turns a Book into an HTML document and a PDF.
// Create with NewBuilder, call Render, and Close when done.
type Builder struct {
	book        Book
	cfg         builderConfig
	assetLoader assets.AssetLoader
	transformer pipeline.Transformer
	sections    *pipeline.Sections
	paginator   Paginator
	style       string
	progress    io.Writer
	now         func() time.Time
}

// NewBuilder validates book, loads the style sheet and templates, and
// prepares the pipeline. No chapter is read yet.
func NewBuilder(book Book, opts ...Option) (*Builder, error) {
	b := &Builder{
		book:        book.withDefaults(),
		cfg:         builderConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
		progress:    io.Discard,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.book.Validate(); err != nil {
		return nil, err
	}

	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assetLoader = resolver
	}

	if err := b.resolveStyle(); err != nil {
		return nil, err
	}

	setName := b.cfg.templateSet
	if setName == "" {
		setName = assets.DefaultTemplateSetName
	}
	ts, err := b.assetLoader.LoadTemplateSet(setName)
	if err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", setName, err)
	}
	b.sections, err = pipeline.NewSections(ts, b.book.CopyrightDateFormat)
	if err != nil {
		return nil, fmt.Errorf("initializing sections: %w", err)
	}

	if b.transformer == nil {
		b.transformer, err = pipeline.NewMarkupTransformer(b.book.ImageDir)
		if err != nil {
			return nil, fmt.Errorf("initializing transformer: %w", err)
		}
	}

	if b.paginator == nil {
		b.paginator = newRodPaginator(b.cfg.timeout)
	}

	return b, nil
}

// Book returns the book with defaults applied.
func (b *Builder) Book() Book {
	return b.book
}

// Style returns the resolved style sheet, highlight rules included.
func (b *Builder) Style() string {
	return b.style
}

// resolveStyle loads the style sheet from a file path or by asset name and
// appends the code highlighting rules.
func (b *Builder) resolveStyle() error {
	input := b.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	var css string
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		css = string(content)
	} else {
		loaded, err := b.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, err)
		}
		css = loaded
	}

	highlight, err := pipeline.HighlightCSS(pipeline.DefaultHighlightStyle)
	if err != nil {
		return err
	}
	b.style = css + "\n" + highlight
	return nil
}

// Build loads the chapters and assembles the document. generatedAt is
// printed on the copyright page. Nothing is written to disk.
func (b *Builder) Build(ctx context.Context, generatedAt time.Time) (*Document, error) {
	loader := &ChapterLoader{
		Dir:         b.book.ChapterDir,
		Transformer: b.transformer,
		TitleFor:    b.book.TitleFor,
		Progress:    b.progress,
	}
	chapters, err := loader.Load(ctx, b.book.Manifest)
	if err != nil {
		return nil, err
	}

	cover, err := b.sections.Cover.Generate(b.book.CoverImagePath())
	if err != nil {
		return nil, err
	}
	copyright, err := b.sections.Copyright.Generate(b.book.Metadata, generatedAt)
	if err != nil {
		return nil, err
	}

	// Every manifest entry is listed, loaded or not.
	entries := make([]pipeline.TOCEntry, len(b.book.Manifest))
	for i, id := range b.book.Manifest {
		entries[i] = pipeline.TOCEntry{ID: id, Title: b.book.TitleFor(id)}
	}
	toc, err := b.sections.TOC.Generate(entries)
	if err != nil {
		return nil, err
	}

	fragments := make([]pipeline.ChapterFragment, len(chapters))
	for i, ch := range chapters {
		fragments[i] = pipeline.ChapterFragment{ID: ch.ID, HTML: ch.HTML}
	}
	html, err := b.sections.Assembler.Assemble(pipeline.AssembleInput{
		Title:     b.book.Metadata.Title,
		Lang:      b.book.Lang,
		Cover:     cover,
		Copyright: copyright,
		TOC:       toc,
		Chapters:  fragments,
	})
	if err != nil {
		return nil, err
	}

	ids, anchors, err := pipeline.Outline(html)
	if err != nil {
		return nil, fmt.Errorf("reading document outline: %w", err)
	}

	return &Document{HTML: html, ChapterIDs: ids, TOCAnchors: anchors}, nil
}

// Render builds the document, writes the HTML dump, paginates and writes
// the PDF. An empty pdfPath selects DefaultPDFPath in the output directory.
// When no chapter loads, nothing is written.
func (b *Builder) Render(ctx context.Context, pdfPath string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.timeout)
	defer cancel()

	generatedAt := b.now()

	doc, err := b.Build(ctx, generatedAt)
	if err != nil {
		return nil, err
	}
	for _, id := range doc.Dangling() {
		fmt.Fprintf(b.progress, "warning: table of contents links to missing chapter %s\n", id)
	}

	if pdfPath == "" {
		pdfPath = DefaultPDFPath(b.book.OutputDir, b.book.Slug, generatedAt)
	}

	if err := os.MkdirAll(b.book.OutputDir, fileutil.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", ErrWriteOutput, b.book.OutputDir, err)
	}
	debugPath := filepath.Join(b.book.OutputDir, b.book.DebugFileName)
	if err := fileutil.WriteFile(debugPath, []byte(doc.HTML)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(b.progress, "HTML saved: %s\n", debugPath)

	pdf, err := b.paginator.Paginate(ctx, doc.HTML, b.style)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	if err := fileutil.WriteFile(pdfPath, pdf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return &Result{
		PDFPath:   pdfPath,
		DebugPath: debugPath,
		PDFSize:   int64(len(pdf)),
		Document:  doc,
	}, nil
}

// Close releases the paginator (headless Chrome).
func (b *Builder) Close() error {
	if b.paginator != nil {
		return b.paginator.Close()
	}
	return nil
}
