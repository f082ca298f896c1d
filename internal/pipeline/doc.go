// Package pipeline implements the content stages of the book build.
//
// Stages, leaf to root:
//   - Image reference rewrite on raw markdown (ImageRewriter)
//   - Markdown to HTML fragment conversion via Goldmark (GoldmarkConverter)
//   - Cover, copyright and table of contents fragments (section generators)
//   - Assembly of all fragments into one HTML5 document (Assembler)
//   - Style sheet injection before pagination (CSSInjection)
//
// Pagination is handled by the root md2book package using headless Chrome
// (go-rod). Nothing in this package touches the filesystem except the cover
// generator, which checks whether the cover image exists.
package pipeline
