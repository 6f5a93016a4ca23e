package cascade

import (
	"testing"

	"corebrowser/css/selector"
	"corebrowser/css/style"
	"corebrowser/css/syntax"

	"github.com/stretchr/testify/assert"
)

// plainElement is a minimal selector.Element fake with no DOM tree
// beneath it — every test here styles a single, parentless element.
type plainElement struct {
	tag     string
	id      string
	classes []string
}

func (e *plainElement) TagName() string               { return e.tag }
func (e *plainElement) ID() string                     { return e.id }
func (e *plainElement) ClassList() []string            { return e.classes }
func (e *plainElement) Attr(string) (string, bool)     { return "", false }
func (e *plainElement) Parent() selector.Element        { return nil }
func (e *plainElement) PrecedingSibling() selector.Element { return nil }

func sheet(css string, origin Origin, index int) Sheet {
	return Sheet{Stylesheet: syntax.Parse(css), Origin: origin, Index: index}
}

func TestSpecificityBeatsOrder(t *testing.T) {
	s := sheet(`#a { color: red; } .b { color: blue; }`, OriginAuthor, 0)
	el := &plainElement{tag: "p", id: "a", classes: []string{"b"}}
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().R)
	assert.Equal(t, uint8(0), result.TextColor().B)
}

func TestImportantAuthorBeatsNormalInline(t *testing.T) {
	s := sheet(`p { color: red !important; } p { color: blue; }`, OriginAuthor, 0)
	el := &plainElement{tag: "p"}
	inline := declarationsOf(t, `color: green;`)
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), inline, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().R)
}

func TestLaterRuleWinsAtEqualSpecificity(t *testing.T) {
	s := sheet(`p { color: red; } p { color: blue; }`, OriginAuthor, 0)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().B)
}

func TestUserAgentLosesToAuthorAtEqualSpecificity(t *testing.T) {
	ua := sheet(`p { color: red; }`, OriginUserAgent, 0)
	author := sheet(`p { color: blue; }`, OriginAuthor, 1)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{ua, author})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().B)
}

func TestImportantUserAgentBeatsImportantAuthor(t *testing.T) {
	ua := sheet(`p { color: red !important; }`, OriginUserAgent, 0)
	author := sheet(`p { color: blue !important; }`, OriginAuthor, 1)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{ua, author})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().R)
}

func TestMediaRuleBodyIsSplicedIn(t *testing.T) {
	s := sheet(`@media screen { p { color: red; } }`, OriginAuthor, 0)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().R)
}

func TestNonMatchingSelectorLeavesInitialValue(t *testing.T) {
	s := sheet(`.nope { color: red; }`, OriginAuthor, 0)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, style.Initial().TextColor(), result.TextColor())
}

func TestCaseInsensitiveMatchContextMatchesUppercaseTypeSelector(t *testing.T) {
	s := sheet(`DIV { color: red; }`, OriginAuthor, 0)
	el := &plainElement{tag: "div"}
	sc := NewStyleComputer([]Sheet{s})

	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{CaseInsensitiveNames: true})
	assert.Equal(t, uint8(255), result.TextColor().R)

	resultCaseSensitive := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, style.Initial().TextColor(), resultCaseSensitive.TextColor())
}

func TestRepeatedDeclarationInSameRuleUsesLastOne(t *testing.T) {
	s := sheet(`p { color: red; color: blue; }`, OriginAuthor, 0)
	el := &plainElement{tag: "p"}
	sc := NewStyleComputer([]Sheet{s})
	result := sc.ComputeStyle(el, style.Initial(), nil, 16, 800, 600, selector.MatchContext{})
	assert.Equal(t, uint8(255), result.TextColor().B)
}

func declarationsOf(t *testing.T, css string) []syntax.Declaration {
	t.Helper()
	sheet := syntax.Parse("x { " + css + " }")
	return sheet.Rules[0].Declarations
}
