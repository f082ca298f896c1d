package pipeline

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Outline lists the chapter container ids and the table of contents anchor
// targets of an assembled document, both in document order.
func Outline(doc string) (chapterIDs, tocAnchors []string, err error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, nil, err
	}
	walkOutline(root, false, &chapterIDs, &tocAnchors)
	return chapterIDs, tocAnchors, nil
}

// walkOutline collects chapter ids and, below a toc-page element, hrefs of
// the form "#target".
func walkOutline(n *html.Node, inTOC bool, ids, anchors *[]string) {
	if n.Type == html.ElementNode {
		switch {
		case hasClass(n, "chapter"):
			if id, ok := attr(n, "id"); ok {
				*ids = append(*ids, id)
			}
		case hasClass(n, "toc-page"):
			inTOC = true
		case inTOC && n.Data == "a":
			if href, ok := attr(n, "href"); ok && strings.HasPrefix(href, "#") {
				target := strings.TrimPrefix(href, "#")
				// Templates percent-encode non-ASCII identifiers.
				if decoded, err := url.PathUnescape(target); err == nil {
					target = decoded
				}
				*anchors = append(*anchors, target)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkOutline(c, inTOC, ids, anchors)
	}
}

// MissingTargets returns the anchors with no matching id, in anchor order.
// Applied to Outline's result it lists the dangling table of contents links.
func MissingTargets(ids, anchors []string) []string {
	var missing []string
	for _, a := range anchors {
		if !slices.Contains(ids, a) {
			missing = append(missing, a)
		}
	}
	return missing
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	return ok && slices.Contains(strings.Fields(v), class)
}
