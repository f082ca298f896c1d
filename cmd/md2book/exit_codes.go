package main

import (
	"errors"
	"os"

	md2book "github.com/alnah/go-md2book"
	"github.com/alnah/go-md2book/internal/assets"
	"github.com/alnah/go-md2book/internal/config"
	"github.com/alnah/go-md2book/internal/dateutil"
)

// Exit codes for the md2book CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Book written
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid arguments or book file
	ExitIO       = 3 // Missing chapters, unreadable or unwritable files
	ExitRenderer = 4 // Browser missing or failing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, md2book.ErrRendererUnavailable) ||
		errors.Is(err, md2book.ErrBrowserConnect) ||
		errors.Is(err, md2book.ErrPageCreate) ||
		errors.Is(err, md2book.ErrPageLoad) ||
		errors.Is(err, md2book.ErrPDFGeneration) {
		return ExitRenderer
	}

	// Usage/config errors (exit 2), checked before I/O: a missing book
	// file is a configuration problem.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrInvalidManifest) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, md2book.ErrInvalidBook) ||
		errors.Is(err, md2book.ErrInvalidAssetPath) ||
		errors.Is(err, md2book.ErrTemplateParse) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, md2book.ErrNoChapters) ||
		errors.Is(err, md2book.ErrReadChapter) ||
		errors.Is(err, md2book.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
