package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/stretchr/testify/assert"
)

// buildFromHTML parses an HTML fragment with golang.org/x/net/html and
// rebuilds it as a dom.Node tree, purely as a convenient test fixture
// builder — production code never parses HTML (spec.md's Non-goals; see
// SPEC_FULL.md's dependency table, "never imported from non-test files").
func buildFromHTML(t *testing.T, src string) Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parsing fixture HTML: %v", err)
	}
	root := NewDocument()
	var convert func(n *html.Node, parent Node)
	convert = func(n *html.Node, parent Node) {
		var built Node
		switch n.Type {
		case html.ElementNode:
			attrs := make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}
			built = NewElement(n.Data, n.Namespace, attrs)
		case html.TextNode:
			built = NewText(n.Data)
		case html.CommentNode:
			built = NewComment(n.Data)
		default:
			// DoctypeNode and the synthetic root DocumentNode carry no
			// useful content for style/layout purposes; recurse through
			// them without emitting a dom.Node of their own.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				convert(c, parent)
			}
			return
		}
		AppendChild(parent, built)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			convert(c, built)
		}
	}
	convert(doc, root)
	return root
}

func findElement(n Node, tag string) Node {
	if n.Kind() == Element && n.LocalName() == tag {
		return n
	}
	for _, c := range n.Children() {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildFromHTMLProducesMatchableTree(t *testing.T) {
	tree := buildFromHTML(t, `<html><body><p id="greeting" class="lead">Hello</p></body></html>`)
	p := findElement(tree, "p")
	if !assert.NotNil(t, p) {
		return
	}
	sel := AsSelectable(p)
	assert.Equal(t, "p", sel.TagName())
	assert.Equal(t, "greeting", sel.ID())
	assert.Equal(t, []string{"lead"}, sel.ClassList())
	assert.Equal(t, "Hello", p.TextContent())
}
