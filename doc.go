// Package md2book builds a PDF book from an ordered list of markdown chapters.
//
// # Quick Start
//
// Describe the book, create a builder, render, and close when done:
//
//	b, err := md2book.NewBuilder(md2book.Book{
//	    Metadata:   md2book.Metadata{Title: "Go in Practice"},
//	    Manifest:   md2book.Manifest{"01-intro.md", "02-setup.md"},
//	    ChapterDir: "chapters",
//	    ImageDir:   "images",
//	    OutputDir:  "output",
//	}, md2book.WithProgress(os.Stderr))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	res, err := b.Render(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.PDFPath)
//
// # Build Pipeline
//
// A build runs these stages in order:
//
//  1. Load chapters in manifest order; missing files are reported and skipped
//  2. Rewrite image references and convert markdown via Goldmark
//  3. Render the cover, copyright and table of contents pages
//  4. Assemble one HTML document and write it to the output directory
//  5. Paginate with headless Chrome (go-rod) and write the PDF
//
// The table of contents always lists every manifest entry, so a missing
// chapter leaves a link with no target. Such links are reported as warnings.
//
// # Page Layout
//
// Layout lives in the style sheet: @page size and margins, named pages for
// the cover and the table of contents, running headers and page counters in
// margin boxes. The built-in "book" style is A4. Supply another with
// WithStyle.
//
// # Timestamps
//
// The generation time printed on the copyright page and used in the default
// PDF name is read once per Render from the clock set with WithNow, so two
// renders at the same instant produce identical documents.
package md2book
