package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrHTMLParse indicates the HTML document could not be parsed.
var ErrHTMLParse = errors.New("HTML parse failed")

// ParseBody parses an HTML document and returns its <body> element.
// html.Parse always synthesizes html/head/body, so a missing body only
// occurs on truly malformed input.
func ParseBody(content string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("%w: no body element", ErrHTMLParse)
	}
	return body, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Text returns the concatenated text content of the node's subtree.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
