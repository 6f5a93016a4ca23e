package style

import (
	"testing"

	"corebrowser/css/syntax"
	"corebrowser/css/token"
	"corebrowser/css/value"

	"github.com/stretchr/testify/assert"
)

// declMap parses a `prop: value;` declaration list and returns it keyed by
// PropertyID, the same shape the cascade hands to Resolve.
func declMap(t *testing.T, css string) map[PropertyID][]token.Token {
	t.Helper()
	sheet := syntax.Parse("x { " + css + " }")
	assert.Len(t, sheet.Rules, 1)
	out := map[PropertyID][]token.Token{}
	for _, d := range sheet.Rules[0].Declarations {
		id, ok := LookupProperty(d.Name)
		if !ok {
			t.Fatalf("unknown property %q in test fixture", d.Name)
		}
		out[id] = d.Value
	}
	return out
}

func TestInitialStyleDefaults(t *testing.T) {
	s := Initial()
	assert.Equal(t, DisplayInline, s.Display())
	assert.Equal(t, PositionStatic, s.Position())
	assert.Equal(t, FloatNone, s.Float())
	assert.Equal(t, value.Opaque(0, 0, 0), s.TextColor())
	assert.InDelta(t, 16.0, s.font.FontSize.Px(), 0.001)
}

func TestGetInheritedSharesOnlyInheritedAndFontGroups(t *testing.T) {
	root := Initial()
	child := root.GetInherited()

	assert.Same(t, root.font, child.font)
	assert.Same(t, root.inherited, child.inherited)
	assert.NotSame(t, root.box, child.box)
	assert.NotSame(t, root.surround, child.surround)
	assert.NotSame(t, root.background, child.background)
}

func TestCopyOnWriteIsolatesParentFromChild(t *testing.T) {
	root := Initial()
	child := Resolve(declMap(t, "display: block;"), root, 16, 800, 600)

	assert.Equal(t, DisplayBlock, child.Display())
	assert.Equal(t, DisplayInline, root.Display(), "mutating the child's box group must not affect the parent's")
}

func TestFontSizeAbsoluteKeyword(t *testing.T) {
	root := Initial()
	child := Resolve(declMap(t, "font-size: xx-large;"), root, 16, 800, 600)
	assert.InDelta(t, 24.0, child.font.FontSize.Px(), 0.001)
}

func TestFontSizeLargerSmallerRelativeToParent(t *testing.T) {
	root := Initial()
	root.cloneFont().FontSize = root.font.FontSize // no-op, keep 16px
	mid := Resolve(declMap(t, "font-size: 20px;"), root, 16, 800, 600)
	larger := Resolve(declMap(t, "font-size: larger;"), mid, 16, 800, 600)
	assert.InDelta(t, 24.0, larger.font.FontSize.Px(), 0.001)

	smaller := Resolve(declMap(t, "font-size: smaller;"), mid, 16, 800, 600)
	assert.InDelta(t, 20.0/1.2, smaller.font.FontSize.Px(), 0.001)
}

func TestFontSizePercentageOfParent(t *testing.T) {
	root := Initial() // 16px
	child := Resolve(declMap(t, "font-size: 150%;"), root, 16, 800, 600)
	assert.InDelta(t, 24.0, child.font.FontSize.Px(), 0.001)
}

func TestFontSizeEmUsesParentSize(t *testing.T) {
	root := Initial() // 16px
	child := Resolve(declMap(t, "font-size: 2em;"), root, 16, 800, 600)
	assert.InDelta(t, 32.0, child.font.FontSize.Px(), 0.001)
}

func TestFontSizeInheritsByDefaultWhenNotDeclared(t *testing.T) {
	root := Resolve(declMap(t, "font-size: 20px;"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "display: block;"), root, 16, 800, 600)
	assert.InDelta(t, 20.0, child.font.FontSize.Px(), 0.001)
}

func TestKeywordInheritCopiesParentValue(t *testing.T) {
	root := Resolve(declMap(t, "margin-left: 10px;"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "margin-left: inherit;"), root, 16, 800, 600)

	v, ok := child.surround.MarginLeft.Get()
	assert.True(t, ok)
	pxVal, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 10.0, pxVal.Num)
}

func TestKeywordInitialResetsToInitialValue(t *testing.T) {
	root := Resolve(declMap(t, "margin-left: 10px;"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "margin-left: initial;"), root, 16, 800, 600)

	v, ok := child.surround.MarginLeft.Get()
	assert.True(t, ok)
	pxVal, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.0, pxVal.Num, "initial margin is 0, unlike inherit")
}

func TestKeywordUnsetBehavesAsInheritForInheritedProperty(t *testing.T) {
	root := Resolve(declMap(t, "color: rgb(10, 20, 30);"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "color: unset;"), root, 16, 800, 600)
	assert.Equal(t, root.TextColor(), child.TextColor())
}

func TestKeywordUnsetBehavesAsInitialForNonInheritedProperty(t *testing.T) {
	root := Resolve(declMap(t, "display: block;"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "display: unset;"), root, 16, 800, 600)
	assert.Equal(t, DisplayInline, child.Display())
}

func TestColorNamedAndHex(t *testing.T) {
	child := Resolve(declMap(t, "color: blue;"), Initial(), 16, 800, 600)
	assert.Equal(t, uint8(255), child.TextColor().B)

	child2 := Resolve(declMap(t, "color: #ff0000;"), Initial(), 16, 800, 600)
	assert.Equal(t, uint8(255), child2.TextColor().R)
}

func TestCurrentColorOnColorPropertyActsAsInherit(t *testing.T) {
	root := Resolve(declMap(t, "color: rgb(1, 2, 3);"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "color: currentcolor;"), root, 16, 800, 600)
	assert.Equal(t, root.TextColor(), child.TextColor())
}

func TestCurrentColorOnBorderColorUsesResolvedTextColor(t *testing.T) {
	child := Resolve(declMap(t, "color: rgb(9, 8, 7); border-top-color: currentcolor;"), Initial(), 16, 800, 600)
	assert.Equal(t, child.TextColor(), child.surround.BorderTopColor)
}

func TestBorderWidthKeywordsAndLength(t *testing.T) {
	child := Resolve(declMap(t, "border-top-width: thick; border-left-width: 2px;"), Initial(), 16, 800, 600)
	assert.InDelta(t, 5.0, child.surround.BorderTopWidth.Px(), 0.001)
	assert.InDelta(t, 2.0, child.surround.BorderLeftWidth.Px(), 0.001)
}

func TestBorderStyleAndColorDecoding(t *testing.T) {
	child := Resolve(declMap(t, "border-top-style: dashed; border-top-color: #00ff00;"), Initial(), 16, 800, 600)
	assert.Equal(t, BorderStyleDashed, child.surround.BorderTopStyle)
	assert.Equal(t, uint8(255), child.surround.BorderTopColor.G)
}

func TestBackgroundColorResolution(t *testing.T) {
	child := Resolve(declMap(t, "background-color: rgba(0, 0, 0, 0.5);"), Initial(), 16, 800, 600)
	assert.Equal(t, uint8(127), child.BackgroundColor().A)
}

func TestWidthAutoAndPercentage(t *testing.T) {
	child := Resolve(declMap(t, "width: auto;"), Initial(), 16, 800, 600)
	_, ok := child.box.Width.Get()
	assert.False(t, ok)

	child2 := Resolve(declMap(t, "width: 50%;"), Initial(), 16, 800, 600)
	v, ok := child2.box.Width.Get()
	assert.True(t, ok)
	assert.True(t, v.IsPercentage)
}

func TestCursorInheritsByDefault(t *testing.T) {
	root := Resolve(declMap(t, "cursor: pointer;"), Initial(), 16, 800, 600)
	child := Resolve(declMap(t, "display: block;"), root, 16, 800, 600)
	assert.Equal(t, "pointer", child.inherited.Cursor)
}

func TestFontFamilyListDecoding(t *testing.T) {
	child := Resolve(declMap(t, `font-family: "Georgia", serif;`), Initial(), 16, 800, 600)
	assert.Equal(t, []string{"Georgia", "serif"}, child.font.FontFamily)
}
