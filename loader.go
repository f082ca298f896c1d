package md2book

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2book/internal/pipeline"
)

// ChapterLoader reads manifest entries from a directory and transforms them.
type ChapterLoader struct {
	Dir         string
	Transformer pipeline.Transformer
	TitleFor    func(id string) string // nil uses the identifier
	Progress    io.Writer              // nil discards progress lines
}

// LoadChapters loads manifest entries from dir in order. See ChapterLoader.Load.
func LoadChapters(ctx context.Context, manifest Manifest, dir string, tr pipeline.Transformer, progress io.Writer) ([]Chapter, error) {
	l := &ChapterLoader{Dir: dir, Transformer: tr, Progress: progress}
	return l.Load(ctx, manifest)
}

// Load reads each manifest entry in order. A missing file is reported on
// Progress and skipped. Any other read or transform failure stops the load.
// Returns ErrNoChapters when nothing was loaded.
func (l *ChapterLoader) Load(ctx context.Context, manifest Manifest) ([]Chapter, error) {
	progress := l.Progress
	if progress == nil {
		progress = io.Discard
	}
	titleFor := l.TitleFor
	if titleFor == nil {
		titleFor = func(id string) string { return id }
	}

	chapters := make([]Chapter, 0, len(manifest))
	for _, id := range manifest {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(progress, "loading %s\n", id)
		path := filepath.Join(l.Dir, id)
		content, err := os.ReadFile(path) // #nosec G304 -- manifest entries are plain file names
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(progress, "warning: %s not found, skipping\n", id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadChapter, id, err)
		}

		body, err := l.Transformer.Transform(ctx, string(content))
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", id, err)
		}

		chapters = append(chapters, Chapter{ID: id, Title: titleFor(id), HTML: body})
	}

	if len(chapters) == 0 {
		return nil, fmt.Errorf("%w: none of %d manifest entries found in %s", ErrNoChapters, len(manifest), l.Dir)
	}
	return chapters, nil
}
