package cascade

import (
	"sort"

	"corebrowser/css/selector"
	"corebrowser/css/style"
	"corebrowser/css/syntax"
	"corebrowser/css/token"

	"github.com/emirpasic/gods/sets/hashset"
)

// maxSpecificity is what the element's inline "style" attribute cascades
// with: higher than any selector could ever produce (spec.md §4.4 step 1:
// "a reserved stylesheet index" and specificity "(∞, ∞, ∞)").
var maxSpecificity = selector.Specificity{ID: 1 << 30, Class: 1 << 30, Type: 1 << 30}

// inlineStyleIndex is the reserved stylesheet index an element's "style"
// attribute declarations are attributed to.
const inlineStyleIndex = -1

// matchingProperty is one declaration whose selector matched the element
// being styled, carrying everything compare needs (spec.md §4.4 step 1–3).
type matchingProperty struct {
	property        style.PropertyID
	value           []token.Token
	important       bool
	specificity     selector.Specificity
	stylesheetIndex int
	ruleIndex       int
	declIndex       int
	origin          Origin
}

// originAndImportanceGroup maps (origin, important) to one of six priority
// buckets numbered 1–6, lower numbers winning: grounded on
// original_source's stylecomputer.rs origin_and_importance_group, with its
// transition and animation buckets omitted (transitions/animations are
// unsupported).
func (m matchingProperty) originAndImportanceGroup() int {
	switch {
	case m.important && m.origin == OriginUserAgent:
		return 1
	case m.important && m.origin == OriginUser:
		return 2
	case m.important && m.origin == OriginAuthor:
		return 3
	case !m.important && m.origin == OriginAuthor:
		return 4
	case !m.important && m.origin == OriginUser:
		return 5
	case !m.important && m.origin == OriginUserAgent:
		return 6
	}
	return 6
}

// less implements the cascade comparator (spec.md §4.4 steps 2–3): origin
// and importance group first (lower group number wins), then specificity,
// then stylesheet index, then rule index, then declaration index — a
// strict weak (in fact total, since no two declarations share all five
// keys by construction) ordering.
// Note the numeric group order is inverted here: group 1 (important
// user-agent) is the highest real CSS priority, but winners are picked by
// scanning the ascending-sorted slice from the back, so the
// highest-priority group must sort last.
func less(a, b matchingProperty) bool {
	ag, bg := a.originAndImportanceGroup(), b.originAndImportanceGroup()
	if ag != bg {
		return ag > bg
	}
	if !a.specificity.Less(b.specificity) && !b.specificity.Less(a.specificity) {
		if a.stylesheetIndex != b.stylesheetIndex {
			return a.stylesheetIndex < b.stylesheetIndex
		}
		if a.ruleIndex != b.ruleIndex {
			return a.ruleIndex < b.ruleIndex
		}
		return a.declIndex < b.declIndex
	}
	return a.specificity.Less(b.specificity)
}

// StyleComputer matches an element against a fixed set of stylesheets and
// produces its ComputedStyle (spec.md §4.4; grounded on
// original_source's StyleComputer/get_computed_style).
type StyleComputer struct {
	sheets []Sheet
}

// NewStyleComputer builds a StyleComputer over sheets in the order given;
// callers are responsible for assigning each Sheet a distinct Index.
func NewStyleComputer(sheets []Sheet) *StyleComputer {
	return &StyleComputer{sheets: sheets}
}

// ComputeStyle computes el's ComputedStyle given its parent's, matching
// el against every rule in every loaded stylesheet and resolving the
// cascade winner per property. inlineStyle carries the (already
// tokenized) declarations of the element's own "style" attribute, if any
// — spec.md §4.4 step 1's "declarations synthesized from the element's
// style attribute". matchCtx carries the target-namespace matching
// policy (spec.md §4.3: case-sensitive for XML, ASCII case-insensitive
// for HTML) that callers derive from el's namespace.
func (sc *StyleComputer) ComputeStyle(el selector.Element, parent *style.ComputedStyle, inlineStyle []syntax.Declaration, rootFontSizePx, viewportW, viewportH float64, matchCtx selector.MatchContext) *style.ComputedStyle {
	matched := sc.collectMatchingProperties(el, matchCtx)

	for i, d := range inlineStyle {
		id, ok := style.LookupProperty(d.Name)
		if !ok {
			continue
		}
		matched = append(matched, matchingProperty{
			property:        id,
			value:           d.Value,
			important:       d.Important,
			specificity:     maxSpecificity,
			stylesheetIndex: inlineStyleIndex,
			ruleIndex:       0,
			declIndex:       i,
			origin:          OriginAuthor,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j]) })

	// Winners come from the back (highest priority last in ascending
	// order): walk in reverse, keep the first value seen per property
	// (spec.md §4.4: "repeated declarations within one rule are resolved
	// by declaration order", generalized across the whole matched set by
	// this total ordering).
	declared := map[style.PropertyID][]token.Token{}
	seen := hashset.New()
	for i := len(matched) - 1; i >= 0; i-- {
		m := matched[i]
		if seen.Contains(m.property) {
			continue
		}
		seen.Add(m.property)
		declared[m.property] = m.value
	}

	return style.Resolve(declared, parent, rootFontSizePx, viewportW, viewportH)
}

// collectMatchingProperties walks every stylesheet's rule tree (splicing
// the bodies of conditional at-rules like @media/@supports in
// unconditionally, per spec.md's non-goal of "@media evaluation beyond
// syntactic recognition") and records one matchingProperty per
// declaration of every rule that matches el.
func (sc *StyleComputer) collectMatchingProperties(el selector.Element, matchCtx selector.MatchContext) []matchingProperty {
	var out []matchingProperty
	for _, sheet := range sc.sheets {
		if sheet.Stylesheet == nil {
			continue
		}
		ruleIndex := 0
		sc.walkRules(sheet, sheet.Stylesheet.Rules, el, matchCtx, &ruleIndex, &out)
	}
	return out
}

func (sc *StyleComputer) walkRules(sheet Sheet, rules []syntax.Rule, el selector.Element, matchCtx selector.MatchContext, ruleIndex *int, out *[]matchingProperty) {
	for _, rule := range rules {
		switch rule.Kind {
		case syntax.QualifiedRule:
			idx := *ruleIndex
			*ruleIndex++
			sels, err := selector.Parse(rule.Prelude)
			if err != nil || len(sels) == 0 {
				continue
			}
			sp, ok := sels.MatchesAny(el, matchCtx)
			if !ok {
				continue
			}
			for di, d := range rule.Declarations {
				id, propOK := style.LookupProperty(d.Name)
				if !propOK {
					continue
				}
				*out = append(*out, matchingProperty{
					property:        id,
					value:           d.Value,
					important:       d.Important,
					specificity:     sp,
					stylesheetIndex: sheet.Index,
					ruleIndex:       idx,
					declIndex:       di,
					origin:          sheet.Origin,
				})
			}
		case syntax.AtRule:
			if len(rule.Rules) > 0 {
				sc.walkRules(sheet, rule.Rules, el, matchCtx, ruleIndex, out)
			}
		}
	}
}
