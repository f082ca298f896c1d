package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2book [output.pdf]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the book in the project root into one PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  output.pdf    PDF path (default: output/<title>_<YYYYMMDD>.pdf)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs:")
	fmt.Fprintln(w, "  book.yaml     Metadata, chapter manifest and paths (optional)")
	fmt.Fprintln(w, "  chapters/     Markdown chapters listed in the manifest")
	fmt.Fprintln(w, "  images/       Images referenced as ../images/x.png or images/x.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2BOOK_CONFIG    Book file path")
	fmt.Fprintln(w, "  MD2BOOK_ROOT      Project root (default: current directory)")
	fmt.Fprintln(w, "  MD2BOOK_STYLE     Style name or CSS file path")
	fmt.Fprintln(w, "  MD2BOOK_TIMEOUT   Render timeout, e.g. 90s, 5m (default: 2m)")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN   Chrome or Chromium binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX    Set to 1 in containers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 error, 2 usage or config, 3 I/O or no chapters, 4 renderer")
}
