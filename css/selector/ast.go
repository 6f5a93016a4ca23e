package selector

// Combinator relates two compound selectors within a ComplexSelector.
type Combinator uint8

const (
	// Descendant is the implicit whitespace combinator.
	Descendant Combinator = iota
	Child              // >
	NextSibling        // +
	SubsequentSibling  // ~
	Column             // ||
)

// AttributeMatcher is the matching policy of an attribute selector
// (spec.md §4.3).
type AttributeMatcher uint8

const (
	AttrExists AttributeMatcher = iota
	AttrEquals
	AttrIncludes   // [attr~=val]: whitespace-separated token membership
	AttrDashMatch  // [attr|=val]: equal, or starts with "val-"
	AttrPrefix     // [attr^=val]
	AttrSuffix     // [attr$=val]
	AttrSubstring  // [attr*=val]
)

// SubSelector is one subclass/pseudo component of a CompoundSelector: an
// ID, class, attribute, or pseudo-class selector. Exactly one of the
// fields identified by Kind is meaningful.
type SubSelector struct {
	Kind SubSelectorKind

	// Class, ID, PseudoClass
	Ident string

	// Attribute
	AttrName        string
	AttrMatcher     AttributeMatcher
	AttrValue       string
	AttrCaseInsens  bool // the "[attr=val i]" modifier
}

type SubSelectorKind uint8

const (
	SubClass SubSelectorKind = iota
	SubID
	SubAttribute
	SubPseudoClass
)

// Specificity is the (id, class, type) 3-tuple (spec.md §4.3). Id
// selectors contribute (1,0,0); class/attribute/pseudo-class selectors
// (0,1,0); type selectors (0,0,1); the universal selector contributes
// nothing.
type Specificity struct {
	ID, Class, Type int
}

func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{s.ID + o.ID, s.Class + o.Class, s.Type + o.Type}
}

// Less reports whether s sorts before o: id first, then class, then type
// (CSS specificity comparison, spec.md §4.4 step 3).
func (s Specificity) Less(o Specificity) bool {
	if s.ID != o.ID {
		return s.ID < o.ID
	}
	if s.Class != o.Class {
		return s.Class < o.Class
	}
	return s.Type < o.Type
}

// CompoundSelector is a type selector plus any number of subclass
// selectors, with no combinator between them ("h1.foo#bar[attr]").
type CompoundSelector struct {
	TypeName string // "" means no type selector; "*" is the universal selector
	HasType  bool
	Subs     []SubSelector
}

func (c CompoundSelector) Specificity() Specificity {
	var sp Specificity
	if c.HasType && c.TypeName != "*" {
		sp.Type++
	}
	for _, s := range c.Subs {
		switch s.Kind {
		case SubID:
			sp.ID++
		default:
			sp.Class++
		}
	}
	return sp
}

// complexUnit pairs a CompoundSelector with the combinator that preceded
// it (Descendant for the first unit, meaningless there).
type complexUnit struct {
	Combinator Combinator
	Compound   CompoundSelector
}

// ComplexSelector is a sequence of compound selectors joined by
// combinators, e.g. "div.a > p.b ~ span".
type ComplexSelector struct {
	units []complexUnit // units[0].Combinator is unused
}

func (c ComplexSelector) Specificity() Specificity {
	var sp Specificity
	for _, u := range c.units {
		sp = sp.Add(u.Compound.Specificity())
	}
	return sp
}

// List is a comma-separated selector list ("h1, h2.foo").
type List []ComplexSelector
