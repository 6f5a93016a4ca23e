package option

import "errors"

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

// MaybeOption tags the three outcomes a Type match dispatches to: a
// concrete value (Some), absence of one (None), or a matching failure
// (Error).
type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Of is a type used for matching of optional types. It first tries to
// match concrete values, and in case of no match falls back to a
// None/Some/Error dispatch — the shape css/style.Keyword dispatch uses
// to resolve the CSS-wide keywords (inherit/initial/unset/revert)
// against whichever concrete property value a declaration carries.
type Of map[interface{}]interface{}

// Type is the contract a value must satisfy to be matched against an Of
// map: css/style's keywordOf wraps a Keyword in one to reuse this
// dispatch rather than hand-rolling a switch per property group.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match dispatches o against choices, which must be an Of map. Any other
// kind of choices returns ErrNoSuchMatchPattern.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	of, ok := choices.(Of)
	if !ok {
		return nil, ErrNoSuchMatchPattern
	}
	return of.Match(o)
}

func (of Of) Match(o Type) (value interface{}, err error) {
	Tracer().Debugf("Match(Of) for %T", o)
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
		return value, err
	}
	err = ErrCannotMatchValue
	for k, expr := range of {
		if o.Equals(k) {
			value, err = valueOrExpr(expr, o, Some)
		}
	}
	if err != nil {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
		if err != nil {
			Tracer().Errorf(err.Error())
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	Tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}
