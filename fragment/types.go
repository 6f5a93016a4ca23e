package fragment

import (
	"corebrowser/core/dimen"
	"corebrowser/css/style"
	"corebrowser/css/value"
	"corebrowser/dom"
	"corebrowser/platform"
)

// Kind discriminates the Fragment sum type: Box or Text (spec.md §3,
// §4.8: "Fragment ∈ {Box{...}, Text{...}}").
type Kind uint8

const (
	BoxKind Kind = iota
	TextKind
)

// Fragment is a concrete geometric realization of a box or a line's text
// run, in device pixels (spec.md §4.8). Box fields are meaningful when
// Kind == BoxKind; Text fields when Kind == TextKind.
type Fragment struct {
	Kind Kind

	// Box fields.
	Style       *style.ComputedStyle
	Node        dom.Node // nil for the synthetic document root and anonymous boxes
	MarginArea  dimen.Rect
	BorderArea  dimen.Rect
	PaddingArea dimen.Rect
	ContentArea dimen.Rect
	Children    []Fragment

	// Text fields.
	Text    string
	Area    dimen.Rect
	Color   value.Color
	Metrics platform.FontMetrics
}

// NewBoxFragment constructs a BoxKind fragment from its four box-model
// rectangles (spec.md §3 invariant: "margin_area ⊇ border_area ⊇
// padding_area ⊇ content_area").
func NewBoxFragment(s *style.ComputedStyle, node dom.Node, margin, border, padding, content dimen.Rect, children []Fragment) Fragment {
	return Fragment{
		Kind: BoxKind, Style: s, Node: node,
		MarginArea: margin, BorderArea: border, PaddingArea: padding, ContentArea: content,
		Children: children,
	}
}

// NewTextFragment constructs a TextKind fragment for one shaped word.
func NewTextFragment(text string, area dimen.Rect, color value.Color, metrics platform.FontMetrics) Fragment {
	return Fragment{Kind: TextKind, Text: text, Area: area, Color: color, Metrics: metrics}
}
