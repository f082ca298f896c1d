package md2book

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

// Notes:
// - rodRenderer.RenderFromFile needs a real browser and is not covered here.
// - ensureBrowser launch paths depend on the host Chrome install.
// These are acceptable gaps: the paginator's own logic is tested with a mock renderer.

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result     []byte
	Err        error
	CalledWith string
	Content    string // File content at render time
	Closed     bool
}

func (m *mockRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	m.CalledWith = filePath
	data, err := os.ReadFile(filePath)
	if err == nil {
		m.Content = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.Closed = true
	return nil
}

// ---------------------------------------------------------------------------
// TestRodPaginator_Paginate - Style injection and temp file handling
// ---------------------------------------------------------------------------

func TestRodPaginator_Paginate(t *testing.T) {
	t.Parallel()

	t.Run("styles the document before rendering", func(t *testing.T) {
		t.Parallel()

		mock := &mockRenderer{Result: []byte("%PDF-1.7")}
		p := &rodPaginator{renderer: mock, injector: newTestInjector()}

		got, err := p.Paginate(context.Background(), "<html><head></head><body>x</body></html>", "@page { size: A4; }")
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}
		if string(got) != "%PDF-1.7" {
			t.Errorf("Paginate() = %q", got)
		}
		if !strings.Contains(mock.Content, "<style>@page { size: A4; }</style></head>") {
			t.Errorf("rendered file not styled: %q", mock.Content)
		}
		if !strings.HasSuffix(mock.CalledWith, ".html") {
			t.Errorf("temp file %q has no .html extension", mock.CalledWith)
		}
		if _, err := os.Stat(mock.CalledWith); !os.IsNotExist(err) {
			t.Errorf("temp file %q not removed", mock.CalledWith)
		}
	})

	t.Run("renderer error propagates", func(t *testing.T) {
		t.Parallel()

		mock := &mockRenderer{Err: ErrPageLoad}
		p := &rodPaginator{renderer: mock, injector: newTestInjector()}

		_, err := p.Paginate(context.Background(), "<html></html>", "")
		if !errors.Is(err, ErrPageLoad) {
			t.Errorf("Paginate() error = %v, want ErrPageLoad", err)
		}
	})

	t.Run("close releases renderer", func(t *testing.T) {
		t.Parallel()

		mock := &mockRenderer{}
		p := &rodPaginator{renderer: mock, injector: newTestInjector()}
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if !mock.Closed {
			t.Error("renderer not closed")
		}
	})
}

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	opts := printOptions()
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be set so @page rules decide the size")
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be set for the cover gradient")
	}
	if opts.DisplayHeaderFooter {
		t.Error("Chrome header and footer should stay off")
	}
	if opts.PaperWidth != nil || opts.MarginTop != nil {
		t.Error("paper size and margins should come from CSS")
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	if err := newRodRenderer(0).Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRodRenderer(0).RenderFromFile(ctx, "/nonexistent.html")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
}
