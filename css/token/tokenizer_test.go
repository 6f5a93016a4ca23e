package token

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testconfig.QuickConfig(nil)
	gtrace.CoreTracer = tracing.RootTracer()
	m.Run()
}

func allTokens(src string) []Token {
	tz := New(src)
	var toks []Token
	for {
		tok := tz.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestIdentAndFunction(t *testing.T) {
	toks := allTokens("color: rgb(1,2,3)")
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "color", toks[0].Text())
	assert.Equal(t, Colon, toks[1].Kind)
	assert.Equal(t, Whitespace, toks[2].Kind)
	assert.Equal(t, Function, toks[3].Kind)
	assert.Equal(t, "rgb", toks[3].Text())
}

func TestNumberPercentageDimension(t *testing.T) {
	toks := allTokens("10px 50% -3.5em 1e2")
	assert.Equal(t, Dimension, toks[0].Kind)
	assert.Equal(t, 10.0, toks[0].Num)
	assert.Equal(t, "px", toks[0].Unit.String())
	assert.Equal(t, Percentage, toks[2].Kind)
	assert.Equal(t, 50.0, toks[2].Num)
	assert.Equal(t, Dimension, toks[4].Kind)
	assert.Equal(t, -3.5, toks[4].Num)
	assert.False(t, toks[4].IsInteger)
	assert.Equal(t, Number, toks[6].Kind)
	assert.Equal(t, 100.0, toks[6].Num)
}

func TestStringWithEscape(t *testing.T) {
	toks := allTokens(`"hello\20world"`)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Text())
}

func TestStringUnterminatedNewlineIsBadString(t *testing.T) {
	toks := allTokens("\"broken\nstring\"")
	assert.Equal(t, BadString, toks[0].Kind)
}

func TestHashFlags(t *testing.T) {
	toks := allTokens("#main #123")
	assert.Equal(t, Hash, toks[0].Kind)
	assert.True(t, toks[0].HashIsID)
	assert.Equal(t, Hash, toks[2].Kind)
	assert.False(t, toks[2].HashIsID)
}

func TestURLToken(t *testing.T) {
	toks := allTokens("url(foo.png)")
	assert.Equal(t, URL, toks[0].Kind)
	assert.Equal(t, "foo.png", toks[0].Text())
}

func TestURLTokenWithQuotedArgIsFunction(t *testing.T) {
	toks := allTokens(`url("foo.png")`)
	assert.Equal(t, Function, toks[0].Kind)
	assert.Equal(t, "url", toks[0].Text())
}

func TestBadURLRecovery(t *testing.T) {
	toks := allTokens("url(foo 'bar') next")
	assert.Equal(t, BadURL, toks[0].Kind)
	idx := 1
	for toks[idx].Kind == Whitespace {
		idx++
	}
	assert.Equal(t, Ident, toks[idx].Kind)
	assert.Equal(t, "next", toks[idx].Text())
}

func TestCDOCDC(t *testing.T) {
	toks := allTokens("<!-- -->")
	assert.Equal(t, CDO, toks[0].Kind)
	assert.Equal(t, CDC, toks[2].Kind)
}

func TestAtKeyword(t *testing.T) {
	toks := allTokens("@media screen")
	assert.Equal(t, AtKeyword, toks[0].Kind)
	assert.Equal(t, "media", toks[0].Text())
}

func TestComment(t *testing.T) {
	toks := allTokens("a/* comment */b")
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "a", toks[0].Text())
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "b", toks[1].Text())
}

func TestNegativeIdentVsNumber(t *testing.T) {
	toks := allTokens("-moz-foo -5px")
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, "-moz-foo", toks[0].Text())
	assert.Equal(t, Dimension, toks[2].Kind)
	assert.Equal(t, -5.0, toks[2].Num)
}

func TestSkipWhitespaceMode(t *testing.T) {
	tz := New("a   b")
	tz.SetSkipWhitespace(true)
	first := tz.Next()
	second := tz.Next()
	assert.Equal(t, Ident, first.Kind)
	assert.Equal(t, Ident, second.Kind)
	assert.Equal(t, "b", second.Text())
}

func TestPeekDoesNotConsume(t *testing.T) {
	tz := New("a b")
	tz.SetSkipWhitespace(true)
	p0 := tz.Peek(0)
	p1 := tz.Peek(1)
	assert.Equal(t, "a", p0.Text())
	assert.Equal(t, "b", p1.Text())
	n0 := tz.Next()
	assert.Equal(t, p0, n0)
}

// TestTokenizeRoundTripProperty is the §8.1 testable property: re-lexing
// punctuation, idents and numbers recovers the same token kinds regardless
// of interleaved whitespace/comments.
func TestTokenizeRoundTripProperty(t *testing.T) {
	srcs := []string{
		"h1, h2 { color: red; }",
		".foo > .bar::before { content: \"x\"; }",
		"@media (min-width: 100px) { a { color: blue } }",
	}
	for _, src := range srcs {
		tz := New(src)
		tz.SetSkipWhitespace(true)
		var kinds []Kind
		for {
			tok := tz.Next()
			kinds = append(kinds, tok.Kind)
			if tok.Kind == EOF {
				break
			}
		}
		assert.NotEmpty(t, kinds)
		assert.Equal(t, EOF, kinds[len(kinds)-1])
		padded := New(strings.ReplaceAll(src, " ", "  /* c */ "))
		padded.SetSkipWhitespace(true)
		for i, want := range kinds {
			assert.Equal(t, want, padded.Next().Kind, "token %d of %q", i, src)
		}
	}
}
