package selector

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold is the ASCII/Unicode case folder used for HTML-style
// case-insensitive tag-name and attribute-value comparisons (spec.md §4.3):
// tag names are compared case-insensitively when the MatchContext asks for
// it, and the attribute-selector "i" modifier requests the same folding on
// the value being compared.
var fold = cases.Fold()

func foldEqual(a, b string) bool {
	return fold.String(a) == fold.String(b)
}

// Element is the minimal contract a DOM node must satisfy to be matched
// against a selector. The dom package's Node implements it; tests may
// supply lightweight fakes.
type Element interface {
	TagName() string // lower-cased local name, "" for non-elements
	ID() string
	ClassList() []string
	Attr(name string) (string, bool)
	Parent() Element          // nil at the document root
	PrecedingSibling() Element // nil if this is the first child
}

// MatchContext carries matching policy that isn't a property of the
// selector itself: whether tag-name comparisons are case-insensitive
// (spec.md §4.3: "case-sensitive for XML and ASCII case-insensitive for
// HTML per the target namespace"). Attribute names are looked up through
// Element.Attr as written; this flag does not affect that lookup.
type MatchContext struct {
	CaseInsensitiveNames bool
}

// Matches reports whether cs matches el under ctx, evaluating
// right-to-left per spec.md §4.3: the rightmost compound is checked
// first, and only on a match do we walk leftward searching the ancestor/
// sibling set the combinator dictates.
func (cs ComplexSelector) Matches(el Element, ctx MatchContext) bool {
	if len(cs.units) == 0 {
		return false
	}
	last := len(cs.units) - 1
	if !matchCompound(cs.units[last].Compound, el, ctx) {
		return false
	}
	return matchLeftward(cs.units, last, el, ctx)
}

// matchLeftward walks combinators from index i down to 0, each time
// searching the candidate set the combinator at units[i] dictates for at
// least one element against which the rest of the chain also matches.
func matchLeftward(units []complexUnit, i int, el Element, ctx MatchContext) bool {
	if i == 0 {
		return true
	}
	comb := units[i].Combinator
	prevCompound := units[i-1].Compound
	switch comb {
	case Child:
		parent := el.Parent()
		if parent == nil || !matchCompound(prevCompound, parent, ctx) {
			return false
		}
		return matchLeftward(units, i-1, parent, ctx)
	case Descendant:
		for anc := el.Parent(); anc != nil; anc = anc.Parent() {
			if matchCompound(prevCompound, anc, ctx) && matchLeftward(units, i-1, anc, ctx) {
				return true
			}
		}
		return false
	case NextSibling:
		sib := el.PrecedingSibling()
		if sib == nil || !matchCompound(prevCompound, sib, ctx) {
			return false
		}
		return matchLeftward(units, i-1, sib, ctx)
	case SubsequentSibling:
		for sib := el.PrecedingSibling(); sib != nil; sib = sib.PrecedingSibling() {
			if matchCompound(prevCompound, sib, ctx) && matchLeftward(units, i-1, sib, ctx) {
				return true
			}
		}
		return false
	case Column:
		// The column combinator relates a table cell to the <col> it
		// belongs to; matching it requires table grid knowledge the
		// Element contract (spec.md §3 Non-goals: table layout) doesn't
		// carry, so it parses but never matches. See DESIGN.md.
		return false
	}
	return false
}

func matchCompound(c CompoundSelector, el Element, ctx MatchContext) bool {
	if c.HasType && c.TypeName != "*" {
		if !nameEqual(c.TypeName, el.TagName(), ctx.CaseInsensitiveNames) {
			return false
		}
	}
	for _, sub := range c.Subs {
		if !matchSub(sub, el, ctx) {
			return false
		}
	}
	return true
}

func nameEqual(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return foldEqual(a, b)
	}
	return a == b
}

func matchSub(s SubSelector, el Element, ctx MatchContext) bool {
	switch s.Kind {
	case SubID:
		return el.ID() == s.Ident
	case SubClass:
		for _, c := range el.ClassList() {
			if c == s.Ident {
				return true
			}
		}
		return false
	case SubAttribute:
		return matchAttribute(s, el, ctx)
	case SubPseudoClass:
		// No pseudo-classes are implemented; they evaluate to false but
		// still contribute specificity (spec.md §4.3).
		return false
	}
	return false
}

// matchAttribute implements the attribute matcher policies, grounded on
// original_source's attribute_selector.rs AttributeMatcher::are_matching.
func matchAttribute(s SubSelector, el Element, ctx MatchContext) bool {
	val, ok := el.Attr(s.AttrName)
	if !ok {
		return false
	}
	if s.AttrMatcher == AttrExists {
		return true
	}
	want := s.AttrValue
	have := val
	if s.AttrCaseInsens {
		want = fold.String(want)
		have = fold.String(have)
	}
	switch s.AttrMatcher {
	case AttrEquals:
		return have == want
	case AttrIncludes:
		for _, tok := range strings.Fields(have) {
			if tok == want {
				return true
			}
		}
		return false
	case AttrDashMatch:
		return have == want || strings.HasPrefix(have, want+"-")
	case AttrPrefix:
		return strings.HasPrefix(have, want)
	case AttrSuffix:
		return strings.HasSuffix(have, want)
	case AttrSubstring:
		return strings.Contains(have, want)
	}
	return false
}

// MatchesAny reports whether any selector in the list matches el, and
// returns the specificity of the first one that does (spec.md §4.4 step 1
// collects "any selector in the rule matches").
func (l List) MatchesAny(el Element, ctx MatchContext) (Specificity, bool) {
	for _, cs := range l {
		if cs.Matches(el, ctx) {
			return cs.Specificity(), true
		}
	}
	return Specificity{}, false
}
