// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-md2book/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// installCommands lists how to get a Chrome/Chromium binary per GOOS.
var installCommands = map[string][]string{
	"darwin": {
		"brew install --cask google-chrome",
		"or brew install --cask chromium",
	},
	"linux": {
		"apt-get install chromium (Debian/Ubuntu)",
		"dnf install chromium (Fedora)",
		"apk add chromium (Alpine)",
	},
	"windows": {
		"winget install Google.Chrome",
	},
}

// ForMissingRenderer returns installation hints for the headless Chrome
// renderer on the given platform (runtime.GOOS), one hint line per option.
func ForMissingRenderer(goos string) string {
	var b strings.Builder
	cmds, ok := installCommands[goos]
	if !ok {
		b.WriteString(format("install Chrome or Chromium from https://www.google.com/chrome/"))
	}
	for _, c := range cmds {
		b.WriteString(format("install: " + c))
	}
	b.WriteString(format("or set ROD_BROWSER_BIN to an existing Chrome binary"))
	return b.String()
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the render timeout.
func ForTimeout() string {
	return format("for large books, raise MD2BOOK_TIMEOUT (e.g. MD2BOOK_TIMEOUT=5m)")
}

// ForNoChapters returns a hint for runs where no manifest file was found.
func ForNoChapters(chapterDir string) string {
	return format("chapter files are read from " + chapterDir + "; check the manifest in book.yaml")
}

// ForConfigNotFound returns a hint for a missing book file.
func ForConfigNotFound() string {
	return format("set MD2BOOK_CONFIG to the book file or create book.yaml in the project root")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
