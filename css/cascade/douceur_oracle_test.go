package cascade

import (
	"testing"

	"corebrowser/css/syntax"

	douceurparser "github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParserAgreesWithDouceurOracle cross-checks css/syntax.Parse against
// github.com/aymerick/douceur/parser, the CSS parser the teacher itself
// depends on (engine/dom/xpath/xpath_test.go's douceuradapter.Wrap), on
// rule count, declaration count, property names and the !important flag.
// Selector text and declaration values aren't compared: this module's
// parser keeps selector preludes and declaration values as raw token runs
// rather than re-serialized strings, so only the shape douceur also
// exposes is checked.
func TestParserAgreesWithDouceurOracle(t *testing.T) {
	const css = `
		p, div.main { color: red !important; margin-left: 10px }
		#id { background-color: blue }
	`

	mine := syntax.Parse(css)
	theirs, err := douceurparser.Parse(css)
	require.NoError(t, err)

	require.Len(t, mine.Rules, len(theirs.Rules))
	for i, theirRule := range theirs.Rules {
		myRule := mine.Rules[i]
		require.Len(t, myRule.Declarations, len(theirRule.Declarations))
		for j, theirDecl := range theirRule.Declarations {
			myDecl := myRule.Declarations[j]
			assert.Equal(t, theirDecl.Property, myDecl.Name)
			assert.Equal(t, theirDecl.Important, myDecl.Important)
		}
	}
}
