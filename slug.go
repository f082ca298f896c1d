package md2book

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-md2book/internal/dateutil"
)

// fallbackSlug names the PDF when the title has no usable characters.
const fallbackSlug = "book"

// Slug turns a title into a file name prefix: NFC normalized, whitespace
// runs replaced by '_', characters reserved on common filesystems removed.
// Letters of any script are kept, so "바로 써먹는 Spring AI" becomes
// "바로_써먹는_Spring_AI".
func Slug(title string) string {
	title = norm.NFC.String(title)

	var b strings.Builder
	pendingSep := false
	for _, r := range title {
		switch {
		case unicode.IsSpace(r):
			pendingSep = b.Len() > 0
		case strings.ContainsRune(`<>:"/\|?*`, r), unicode.IsControl(r):
			continue
		default:
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}

	s := strings.Trim(b.String(), "._")
	if s == "" {
		return fallbackSlug
	}
	return s
}

// DefaultPDFPath returns <outputDir>/<slug>_<YYYYMMDD>.pdf for the given time.
func DefaultPDFPath(outputDir, slug string, at time.Time) string {
	return filepath.Join(outputDir, slug+"_"+dateutil.Stamp(at)+".pdf")
}
