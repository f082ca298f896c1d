package md2book

import (
	"io"
	"time"

	"github.com/alnah/go-md2book/internal/pipeline"
)

// Default timeout for a whole render, Chrome included.
const defaultTimeout = 2 * time.Minute

// builderConfig holds settings applied by options.
type builderConfig struct {
	timeout     time.Duration
	assetPath   string
	styleInput  string
	templateSet string
}

// Option configures a Builder.
type Option func(*Builder)

// WithTimeout bounds each Render call. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(b *Builder) {
		if d > 0 {
			b.cfg.timeout = d
		}
	}
}

// WithProgress sets the writer receiving progress and warning lines.
func WithProgress(w io.Writer) Option {
	return func(b *Builder) {
		if w != nil {
			b.progress = w
		}
	}
}

// WithNow sets the clock read once per Render for the generation timestamp.
func WithNow(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithPaginator replaces the headless Chrome paginator.
func WithPaginator(p Paginator) Option {
	return func(b *Builder) {
		b.paginator = p
	}
}

// WithTransformer replaces the markdown transformer (image rewrite + goldmark).
func WithTransformer(t pipeline.Transformer) Option {
	return func(b *Builder) {
		b.transformer = t
	}
}

// WithAssetPath adds a directory searched for styles and template sets
// before the embedded ones.
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = path
	}
}

// WithStyle selects the style sheet: an asset name such as "book", or a
// path to a CSS file when the value contains a path separator.
func WithStyle(nameOrPath string) Option {
	return func(b *Builder) {
		b.cfg.styleInput = nameOrPath
	}
}

// WithTemplateSet selects the template set by name.
func WithTemplateSet(name string) Option {
	return func(b *Builder) {
		b.cfg.templateSet = name
	}
}
