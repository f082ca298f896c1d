package md2book

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/go-md2book/internal/pipeline"
)

// fixedNow is the generation time used by every test build.
var fixedNow = time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

func newTestInjector() pipeline.StyleInjector { return pipeline.CSSInjection{} }

// mockPaginator implements Paginator without a browser.
type mockPaginator struct {
	Result []byte
	Err    error
	Calls  int
	Doc    string
	CSS    string
	Closed bool
}

func (m *mockPaginator) Paginate(_ context.Context, doc, css string) ([]byte, error) {
	m.Calls++
	m.Doc = doc
	m.CSS = css
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return []byte("%PDF-1.7 test"), nil
	}
	return m.Result, nil
}

func (m *mockPaginator) Close() error {
	m.Closed = true
	return nil
}

// project is a temporary book project layout.
type project struct {
	Root     string
	Chapters string
	Images   string
	Output   string
}

// newProject creates chapters/ and images/ under a temp root and writes the
// given chapter files.
func newProject(t *testing.T, chapters map[string]string) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		Root:     root,
		Chapters: filepath.Join(root, "chapters"),
		Images:   filepath.Join(root, "images"),
		Output:   filepath.Join(root, "output"),
	}
	for _, dir := range []string{p.Chapters, p.Images} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatal(err)
		}
	}
	for name, content := range chapters {
		if err := os.WriteFile(filepath.Join(p.Chapters, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

// book returns a Book for the project with the given manifest.
func (p project) book(manifest ...string) Book {
	return Book{
		Metadata:   Metadata{Title: "테스트 책", Author: "Kim", Year: "2026", Version: "1.0"},
		Manifest:   manifest,
		ChapterDir: p.Chapters,
		ImageDir:   p.Images,
		OutputDir:  p.Output,
	}
}

// exists reports whether path exists.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
