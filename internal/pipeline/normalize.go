package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// StripSandboxMarkup removes preview-only decoration from a page so preview
// and export builds can be compared byte for byte:
//   - elements carrying data-sandbox-only are dropped with their subtree
//   - the data-unit-mode attribute is dropped from every element
//
// The result is re-serialized by the html package, so both sides of a
// comparison must go through this function.
func StripSandboxMarkup(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	stripNode(doc)

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// stripNode walks the tree, removing sandbox-only elements and mode attributes.
func stripNode(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && hasAttr(c, SandboxOnlyAttr) {
			n.RemoveChild(c)
			// The banner is injected with a leading newline; drop it too.
			if next != nil && next.Type == html.TextNode && strings.TrimSpace(next.Data) == "" {
				following := next.NextSibling
				n.RemoveChild(next)
				next = following
			}
			c = next
			continue
		}
		if c.Type == html.ElementNode {
			removeAttr(c, ModeAttr)
		}
		stripNode(c)
		c = next
	}
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}
