package md2book

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2book/internal/fileutil"
	"github.com/alnah/go-md2book/internal/pipeline"
	"github.com/alnah/go-md2book/internal/process"
)

// Paginator renders an HTML document with a style sheet to PDF bytes.
type Paginator interface {
	Paginate(ctx context.Context, doc, css string) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ Paginator   = (*rodPaginator)(nil)
	_ pdfRenderer = (*rodRenderer)(nil)
)

// rodRenderer implements pdfRenderer using go-rod.
type rodRenderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given page load timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Prefer an explicit or locally installed browser over rod's download.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	} else if bin, ok := launcher.LookPath(); ok {
		l = l.Bin(bin)
	}

	// Chrome's sandbox does not start in most CI runners and containers.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close closes the browser, then kills what is left of its process tree
// (Chrome helpers survive a failed or interrupted print).
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		if pid := r.launcher.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
// Page size and margins come from the document's @page rules.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	fileURL, err := fileutil.PathToFileURL(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	// WaitLoad also waits for the style sheet's web fonts.
	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.Context(ctx).PDF(printOptions())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// printOptions keeps Chrome's own header and footer off so the @page margin
// boxes of the style sheet are the only running content.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PreferCSSPageSize:   true,
		PrintBackground:     true,
		DisplayHeaderFooter: false,
	}
}

// rodPaginator injects the style sheet and renders through a temp file,
// so relative and file:// references resolve the same way as in the dump.
type rodPaginator struct {
	renderer pdfRenderer
	injector pipeline.StyleInjector
}

// newRodPaginator creates a paginator backed by headless Chrome.
func newRodPaginator(timeout time.Duration) *rodPaginator {
	return &rodPaginator{
		renderer: newRodRenderer(timeout),
		injector: pipeline.CSSInjection{},
	}
}

// Paginate renders doc styled by css to PDF bytes.
func (p *rodPaginator) Paginate(ctx context.Context, doc, css string) ([]byte, error) {
	styled := p.injector.InjectStyle(doc, css)

	tmpPath, cleanup, err := fileutil.WriteTempFile(styled, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return p.renderer.RenderFromFile(ctx, tmpPath)
}

// Close releases browser resources.
func (p *rodPaginator) Close() error {
	if p.renderer != nil {
		return p.renderer.Close()
	}
	return nil
}
