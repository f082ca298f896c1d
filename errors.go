package md2book

import (
	"errors"

	"github.com/alnah/go-md2book/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Content errors.
	ErrNoChapters  = errors.New("no chapters loaded")
	ErrReadChapter = errors.New("failed to read chapter")
	ErrInvalidBook = errors.New("invalid book")

	// Conversion errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrSectionRender  = pipeline.ErrSectionRender
	ErrTemplateParse  = pipeline.ErrTemplateParse

	// Renderer errors.
	ErrRendererUnavailable = errors.New("PDF renderer not available")
	ErrBrowserConnect      = errors.New("failed to connect to browser")
	ErrPageCreate          = errors.New("failed to create browser page")
	ErrPageLoad            = errors.New("failed to load page")
	ErrPDFGeneration       = errors.New("PDF generation failed")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
