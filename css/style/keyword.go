package style

import (
	"corebrowser/css/token"

	"corebrowser/core/option"
)

// Keyword is one of the CSS-wide keywords applicable to every property
// (spec.md §4.5).
type Keyword uint8

const (
	NoKeyword Keyword = iota
	KeywordInherit
	KeywordInitial
	KeywordUnset
	KeywordRevert
)

// keywordOf wraps a Keyword so it can be dispatched through the teacher's
// option.Type matching idiom (core/option.Of{...}), the same pattern
// engine/dom/style/option.go uses for DimenT keyword matching.
type keywordOf Keyword

func (k keywordOf) Match(choices interface{}) (interface{}, error) {
	return option.Match(k, choices)
}

func (k keywordOf) Equals(other interface{}) bool {
	kw, ok := other.(Keyword)
	return ok && Keyword(k) == kw
}

func (k keywordOf) IsNone() bool {
	return Keyword(k) == NoKeyword
}

// DetectKeyword inspects a single-token declared value run and reports
// the CSS-wide keyword it names, if any.
func DetectKeyword(toks []token.Token) Keyword {
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		return NoKeyword
	}
	switch toks[0].Text() {
	case "inherit":
		return KeywordInherit
	case "initial":
		return KeywordInitial
	case "unset":
		return KeywordUnset
	case "revert":
		return KeywordRevert
	}
	return NoKeyword
}

// resolveKeyword implements spec.md §4.5's keyword resolution: inherit
// copies the parent value, initial yields the property's initial value,
// unset is inherit-if-inherited-else-initial, and revert (unsupported
// beyond falling back to the same rule, since no user-agent-origin
// override stack is modeled) behaves like unset.
//
// setInherit/setInitial are thunks the caller supplies because the concrete
// value type differs per property group; resolveKeyword only decides
// *which* thunk to call.
func resolveKeyword(kw Keyword, prop PropertyID, setInherit, setInitial func()) (handled bool) {
	choice, _ := keywordOf(kw).Match(option.Of{
		KeywordInherit: func(interface{}, option.MaybeOption) (interface{}, error) {
			setInherit()
			return nil, nil
		},
		KeywordInitial: func(interface{}, option.MaybeOption) (interface{}, error) {
			setInitial()
			return nil, nil
		},
		KeywordUnset: func(interface{}, option.MaybeOption) (interface{}, error) {
			if prop.IsInherited() {
				setInherit()
			} else {
				setInitial()
			}
			return nil, nil
		},
		KeywordRevert: func(interface{}, option.MaybeOption) (interface{}, error) {
			if prop.IsInherited() {
				setInherit()
			} else {
				setInitial()
			}
			return nil, nil
		},
		option.None: func(interface{}, option.MaybeOption) (interface{}, error) {
			return nil, nil
		},
	})
	_ = choice
	return kw != NoKeyword
}
