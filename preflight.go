package md2book

import (
	"fmt"
	"os"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-md2book/internal/fileutil"
)

// LookPathFunc locates a Chrome or Chromium binary.
type LookPathFunc func() (path string, found bool)

// DefaultLookPath searches the usual install locations.
var DefaultLookPath LookPathFunc = launcher.LookPath

// CheckRenderer verifies that a browser is available before any file is
// read or written. ROD_BROWSER_BIN, when set, must name an existing file.
// Returns the browser path or ErrRendererUnavailable.
func CheckRenderer(lookPath LookPathFunc) (string, error) {
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		if !fileutil.FileExists(bin) {
			return "", fmt.Errorf("%w: ROD_BROWSER_BIN=%s does not exist", ErrRendererUnavailable, bin)
		}
		return bin, nil
	}

	if lookPath == nil {
		lookPath = DefaultLookPath
	}
	path, found := lookPath()
	if !found {
		return "", fmt.Errorf("%w: Chrome or Chromium not found", ErrRendererUnavailable)
	}
	return path, nil
}
