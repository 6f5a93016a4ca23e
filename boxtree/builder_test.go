package boxtree

import (
	"testing"

	"corebrowser/css/cascade"
	"corebrowser/css/style"
	"corebrowser/css/syntax"
	"corebrowser/dom"

	"github.com/stretchr/testify/assert"
)

func computerFor(t *testing.T, css string) *cascade.StyleComputer {
	t.Helper()
	sheet := cascade.Sheet{Stylesheet: syntax.Parse(css), Origin: cascade.OriginAuthor, Index: 0}
	return cascade.NewStyleComputer([]cascade.Sheet{sheet})
}

// buildSpanDivSpan wires up <span>a<div>b</div>c</span> as plain dom.Node values.
func buildSpanDivSpan(t *testing.T) dom.Node {
	t.Helper()
	root := dom.NewDocument()
	span := dom.NewElement("span", "", nil)
	dom.AppendChild(root, span)
	dom.AppendChild(span, dom.NewText("a"))
	div := dom.NewElement("div", "", nil)
	dom.AppendChild(span, div)
	dom.AppendChild(div, dom.NewText("b"))
	dom.AppendChild(span, dom.NewText("c"))
	return root
}

// TestAnonymousBlockWrapsSplitInlineBox verifies the S6 end-to-end
// scenario (spec.md §8): `div { display: block } span { display: inline }`
// over `<span>a<div>b</div>c</span>` produces an anonymous block wrapping
// inline `a`, an in-flow block containing `b`, and an anonymous block
// wrapping inline `c` — with the `<span>` split across all three.
func TestAnonymousBlockWrapsSplitInlineBox(t *testing.T) {
	computer := computerFor(t, "div { display: block } span { display: inline }")
	root := buildSpanDivSpan(t)

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.False(t, result.IsIFC, "mixed inline/block siblings must not surface as a lone IFC")
	assert.Len(t, result.Boxes, 3)

	first, second, third := result.Boxes[0], result.Boxes[1], result.Boxes[2]

	assert.True(t, first.IsAnonymous())
	assert.Equal(t, style.Initial(), first.Style, "anonymous wrapper must carry the enclosing block container's style")
	assert.True(t, first.Content.IsIFC)
	assert.Len(t, first.Content.IFC, 1)
	assert.Equal(t, InlineBoxKind, first.Content.IFC[0].Kind)
	assert.Equal(t, "span", first.Content.IFC[0].Node.LocalName())
	assert.Len(t, first.Content.IFC[0].Children, 1)
	assert.Equal(t, "a", first.Content.IFC[0].Children[0].Text)

	assert.False(t, second.IsAnonymous())
	assert.Equal(t, "div", second.Node.LocalName())
	assert.Equal(t, InFlow, second.Kind)
	assert.True(t, second.Content.IsIFC)
	assert.Equal(t, "b", second.Content.IFC[0].Text)

	assert.True(t, third.IsAnonymous())
	assert.Equal(t, style.Initial(), third.Style, "anonymous wrapper must carry the enclosing block container's style")
	assert.True(t, third.Content.IsIFC)
	assert.Equal(t, "span", third.Content.IFC[0].Node.LocalName())
	assert.Equal(t, "c", third.Content.IFC[0].Children[0].Text)
}

// TestAnonymousBlockUsesOwnContainerStyleAtAnyInlineDepth guards against a
// stale-style regression: an anonymous block wrapping inline content split
// by a block nested two or more inline levels deep must take the style of
// the block container that owns that inline run, not the innermost inline
// ancestor's style at the recursion depth where the split happened.
func TestAnonymousBlockUsesOwnContainerStyleAtAnyInlineDepth(t *testing.T) {
	computer := computerFor(t, "div { display: block } span { display: inline }")
	root := dom.NewDocument()
	outer := dom.NewElement("div", "", nil)
	dom.AppendChild(root, outer)
	span1 := dom.NewElement("span", "", nil)
	dom.AppendChild(outer, span1)
	span2 := dom.NewElement("span", "", nil)
	dom.AppendChild(span1, span2)
	inner := dom.NewElement("div", "", nil)
	dom.AppendChild(span2, inner)
	dom.AppendChild(inner, dom.NewText("x"))

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.Len(t, result.Boxes, 1)
	outerBox := result.Boxes[0]
	assert.Equal(t, "div", outerBox.Node.LocalName())
	assert.False(t, outerBox.Content.IsIFC)
	assert.Len(t, outerBox.Content.Boxes, 3)

	leftAnon, innerDiv, rightAnon := outerBox.Content.Boxes[0], outerBox.Content.Boxes[1], outerBox.Content.Boxes[2]
	assert.True(t, leftAnon.IsAnonymous())
	assert.True(t, rightAnon.IsAnonymous())
	assert.Equal(t, "div", innerDiv.Node.LocalName())

	assert.Same(t, outerBox.Style, leftAnon.Style,
		"anonymous wrapper must take the outer div's style, not the doubly-nested span's")
	assert.Same(t, outerBox.Style, rightAnon.Style,
		"anonymous wrapper must take the outer div's style, not the doubly-nested span's")
}

// TestUppercaseTypeSelectorMatchesHTMLElement verifies spec.md §4.3's
// case-insensitive-for-HTML matching policy actually gets wired into the
// box-tree builder: dom.NewElement's nodes carry an empty Namespace()
// (the HTML namespace), so an uppercase type selector like "DIV" must
// still match a lowercase "div" element.
func TestUppercaseTypeSelectorMatchesHTMLElement(t *testing.T) {
	computer := computerFor(t, "DIV { display: block } SPAN { color: red }")
	root := dom.NewDocument()
	div := dom.NewElement("div", "", nil)
	dom.AppendChild(root, div)

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.Len(t, result.Boxes, 1)
	assert.Equal(t, "div", result.Boxes[0].Node.LocalName())
}

// TestPureInlineSubtreeReturnsBareIFC verifies the "final flush" rule:
// when no block box ever interrupts the inline run, the builder returns
// the inline formatting context directly rather than wrapping it.
func TestPureInlineSubtreeReturnsBareIFC(t *testing.T) {
	computer := computerFor(t, "span { display: inline }")
	root := dom.NewDocument()
	span := dom.NewElement("span", "", nil)
	dom.AppendChild(root, span)
	dom.AppendChild(span, dom.NewText("hello"))

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.True(t, result.IsIFC)
	assert.Len(t, result.IFC, 1)
	assert.Equal(t, InlineBoxKind, result.IFC[0].Kind)
	assert.Equal(t, "hello", result.IFC[0].Children[0].Text)
}

// TestDisplayNoneSkipsSubtree verifies elements with display:none (and
// everything beneath them) are absent from the box tree entirely.
func TestDisplayNoneSkipsSubtree(t *testing.T) {
	computer := computerFor(t, "p { display: none } div { display: block }")
	root := dom.NewDocument()
	p := dom.NewElement("p", "", nil)
	dom.AppendChild(root, p)
	dom.AppendChild(p, dom.NewText("hidden"))
	div := dom.NewElement("div", "", nil)
	dom.AppendChild(root, div)
	dom.AppendChild(div, dom.NewText("visible"))

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.Len(t, result.Boxes, 1)
	assert.Equal(t, "div", result.Boxes[0].Node.LocalName())
}

// TestWhitespaceOnlyTextDoesNotGenerateInlineBox verifies text nodes that
// are entirely whitespace are skipped rather than producing an empty
// TextRun (spec.md §4.6).
func TestWhitespaceOnlyTextDoesNotGenerateInlineBox(t *testing.T) {
	computer := computerFor(t, "div { display: block }")
	root := dom.NewDocument()
	div := dom.NewElement("div", "", nil)
	dom.AppendChild(root, div)
	dom.AppendChild(div, dom.NewText("   \n\t  "))

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.Len(t, result.Boxes, 1)
	assert.True(t, result.Boxes[0].Content.Empty())
}

// TestFloatAndAbsolutePositionClassifyBlockLevelBox verifies the
// position/float classification (spec.md §4.6: AbsolutelyPositionedBox
// if position ∈ {absolute, fixed}; FloatingBox{side} if
// float ∈ {left, right}; InFlowBlockBox otherwise).
func TestFloatAndAbsolutePositionClassifyBlockLevelBox(t *testing.T) {
	computer := computerFor(t, `
		div { display: block }
		#floated { float: left }
		#positioned { position: absolute }
		#normal { }
	`)
	root := dom.NewDocument()
	for _, id := range []string{"floated", "positioned", "normal"} {
		el := dom.NewElement("div", "", map[string]string{"id": id})
		dom.AppendChild(root, el)
	}

	result := BuildBoxTree(root, computer, 16, 800, 600)

	assert.Len(t, result.Boxes, 3)
	assert.Equal(t, Float, result.Boxes[0].Kind)
	assert.Equal(t, AbsolutelyPositioned, result.Boxes[1].Kind)
	assert.Equal(t, InFlow, result.Boxes[2].Kind)
}
