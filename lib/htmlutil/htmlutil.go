package htmlutil

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// bound against pathological nesting, well-formed markup never
// comes close to this
const maxUnwrapDepth = 32

// LowestChild follows first-element-child links until it reaches an
// element with no element children, unwrapping nested formatting
// wrappers down to the text-bearing node.
func LowestChild(sel *goquery.Selection) *goquery.Selection {
	for i := 0; i < maxUnwrapDepth; i++ {
		child := sel.Children().First()
		if child.Length() == 0 {
			return sel
		}
		sel = child
	}
	return sel
}

// InnerHtml is goquery's Selection.Html() without the error return,
// yielding "" on serialization failure.
func InnerHtml(sel *goquery.Selection) string {
	markup, err := sel.Html()
	if err != nil {
		return ""
	}
	return markup
}
