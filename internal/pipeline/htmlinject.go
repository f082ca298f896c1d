package pipeline

import "strings"

// StyleInjector places a style sheet inside an HTML document.
type StyleInjector interface {
	InjectStyle(doc, css string) string
}

// CSSInjection injects CSS as a <style> block.
type CSSInjection struct{}

// InjectStyle inserts a <style> block before </head>, or right after the
// opening <body> tag when there is no head, or at the very start of doc.
// Empty CSS returns doc unchanged.
func (CSSInjection) InjectStyle(doc, css string) string {
	if css == "" {
		return doc
	}

	block := "<style>" + sanitizeCSS(css) + "</style>"
	lower := strings.ToLower(doc)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return doc[:idx] + block + doc[idx:]
	}
	if pos := afterOpenTag(doc, lower, "<body"); pos != -1 {
		return doc[:pos] + block + doc[pos:]
	}
	return block + doc
}

// afterOpenTag returns the index just past the '>' closing the first
// occurrence of tag in doc, or -1. lower is doc lowercased.
func afterOpenTag(doc, lower, tag string) int {
	idx := strings.Index(lower, tag)
	if idx == -1 {
		return -1
	}
	closeIdx := strings.IndexByte(doc[idx:], '>')
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}

// sanitizeCSS escapes "</" so the sheet cannot close its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface check.
var _ StyleInjector = CSSInjection{}
