package pipeline

import (
	"context"
	"strings"

	"github.com/alnah/go-md2book/internal/fileutil"
)

// Link-target prefixes that refer to the project image directory.
const (
	parentImagesPrefix = "](../images/"
	imagesPrefix       = "](images/"
)

// ImageRewriter rewrites relative image references in raw markdown to
// absolute file:// URLs of the image directory.
//
// The rewrite is a text substitution on link targets: "](../images/" and
// "](images/" become "](<image dir URL>/". Everything else, including
// references that are already absolute, is left untouched, so applying it
// twice gives the same result as applying it once.
type ImageRewriter struct {
	baseURL  string
	replacer *strings.Replacer
}

// NewImageRewriter creates a rewriter pointing at imageDir.
// Relative directories are resolved against the working directory.
func NewImageRewriter(imageDir string) (*ImageRewriter, error) {
	u, err := fileutil.PathToFileURL(imageDir)
	if err != nil {
		return nil, err
	}
	u = strings.TrimSuffix(u, "/")
	target := "](" + u + "/"
	return &ImageRewriter{
		baseURL:  u,
		replacer: strings.NewReplacer(parentImagesPrefix, target, imagesPrefix, target),
	}, nil
}

// BaseURL returns the file:// URL of the image directory, without trailing slash.
func (r *ImageRewriter) BaseURL() string {
	return r.baseURL
}

// Rewrite applies the image reference substitution to md.
func (r *ImageRewriter) Rewrite(md string) string {
	return r.replacer.Replace(md)
}

// Transformer turns one chapter's markdown into an HTML fragment.
type Transformer interface {
	Transform(ctx context.Context, md string) (string, error)
}

// MarkupTransformer rewrites image references then converts to HTML.
type MarkupTransformer struct {
	Images    *ImageRewriter
	Converter HTMLConverter
}

// NewMarkupTransformer creates a transformer for images under imageDir
// using the default goldmark converter.
func NewMarkupTransformer(imageDir string) (*MarkupTransformer, error) {
	images, err := NewImageRewriter(imageDir)
	if err != nil {
		return nil, err
	}
	return &MarkupTransformer{Images: images, Converter: NewGoldmarkConverter()}, nil
}

// Transform rewrites image references in md and converts it to HTML.
func (t *MarkupTransformer) Transform(ctx context.Context, md string) (string, error) {
	if t.Images != nil {
		md = t.Images.Rewrite(md)
	}
	return t.Converter.ToHTML(ctx, md)
}

// Compile-time interface check.
var _ Transformer = (*MarkupTransformer)(nil)
