package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func docFromString(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetText(t *testing.T) {
	doc := docFromString(t, `<div>hello <span>nested <b>world</b></span></div>`)
	nodes := doc.Find("div").Nodes
	require.Len(t, nodes, 1)
	require.Equal(t, "hello nested world", GetText(nodes[0]))
}

func TestLowestChild(t *testing.T) {
	testCases := []struct {
		name     string
		markup   string
		expected string
	}{
		{
			name:     "nested wrappers",
			markup:   `<td><div><p><span>600</span></p></div></td>`,
			expected: "600",
		},
		{
			name:     "no children",
			markup:   `<td>600</td>`,
			expected: "600",
		},
		{
			name:     "first child chain only",
			markup:   `<td><div><span>left</span><span>right</span></div></td>`,
			expected: "left",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := docFromString(t, "<table><tbody><tr>"+test.markup+"</tr></tbody></table>")
			leaf := LowestChild(doc.Find("td"))
			require.Equal(t, test.expected, InnerHtml(leaf))
		})
	}
}
