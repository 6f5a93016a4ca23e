package style

import (
	"corebrowser/core/dimen"
	"corebrowser/css/value"
)

// DisplayType is the computed `display` keyword.
type DisplayType uint8

const (
	DisplayInline DisplayType = iota
	DisplayBlock
	DisplayInlineBlock
	DisplayNone
)

// PositionType is the computed `position` keyword.
type PositionType uint8

const (
	PositionStatic PositionType = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// FloatType is the computed `float` keyword.
type FloatType uint8

const (
	FloatNone FloatType = iota
	FloatLeft
	FloatRight
)

// BorderStyle is the computed `border-*-style` keyword.
type BorderStyle uint8

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleSolid
	BorderStyleDashed
	BorderStyleDotted
)

// boxGroup holds the non-inherited box-model and layout-mode properties.
type boxGroup struct {
	Display  DisplayType
	Position PositionType
	Float    FloatType

	Width, Height             value.AutoOr[value.PercentageOr[value.Length]]
	MinWidth, MinHeight       value.PercentageOr[value.Length]
	MaxWidth, MaxHeight       value.AutoOr[value.PercentageOr[value.Length]]
}

// surroundGroup holds margins, padding and borders — the "surround" of
// the content box.
type surroundGroup struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft value.AutoOr[value.PercentageOr[value.Length]]
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft value.PercentageOr[value.Length]

	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth dimen.DU
	BorderTopStyle, BorderRightStyle, BorderBottomStyle, BorderLeftStyle BorderStyle
	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor value.Color
}

// backgroundGroup holds paint-only, non-inherited properties.
type backgroundGroup struct {
	BackgroundColor value.Color
}

// fontGroup holds the inherited font properties.
type fontGroup struct {
	FontSize   dimen.DU // always absolutized: other lengths resolve against it
	FontFamily []string
}

// inheritedGroup holds the remaining inherited properties.
type inheritedGroup struct {
	Color  value.Color
	Cursor string
}

// ComputedStyle is the flyweight bundle from spec.md §3: five groups,
// shared by pointer between a parent and child style until one of them
// needs to diverge (copy-on-write per group, not per style).
type ComputedStyle struct {
	box        *boxGroup
	surround   *surroundGroup
	background *backgroundGroup
	font       *fontGroup
	inherited  *inheritedGroup
}

// cloneBox replaces s's boxGroup with a fresh copy, leaving every other
// group shared, and returns that copy for the caller to mutate.
func (s *ComputedStyle) cloneBox() *boxGroup {
	cp := *s.box
	s.box = &cp
	return s.box
}

func (s *ComputedStyle) cloneSurround() *surroundGroup {
	cp := *s.surround
	s.surround = &cp
	return s.surround
}

func (s *ComputedStyle) cloneBackground() *backgroundGroup {
	cp := *s.background
	s.background = &cp
	return s.background
}

func (s *ComputedStyle) cloneFont() *fontGroup {
	cp := *s.font
	s.font = &cp
	return s.font
}

func (s *ComputedStyle) cloneInherited() *inheritedGroup {
	cp := *s.inherited
	s.inherited = &cp
	return s.inherited
}

// GetInherited returns a new ComputedStyle sharing the font and inherited
// groups with s, and initial box/surround/background groups — the
// starting point for a child element's style resolution (spec.md §3:
// "get_inherited() returns a new ComputedStyle containing only the
// inherited group, for child initialization").
func (s *ComputedStyle) GetInherited() *ComputedStyle {
	init := Initial()
	return &ComputedStyle{
		box:        init.box,
		surround:   init.surround,
		background: init.background,
		font:       s.font,
		inherited:  s.inherited,
	}
}

func (s *ComputedStyle) Display() DisplayType   { return s.box.Display }
func (s *ComputedStyle) Position() PositionType { return s.box.Position }
func (s *ComputedStyle) Float() FloatType       { return s.box.Float }
func (s *ComputedStyle) FontSizePx() dimen.DU   { return s.font.FontSize }
func (s *ComputedStyle) TextColor() value.Color { return s.inherited.Color }
func (s *ComputedStyle) BackgroundColor() value.Color {
	return s.background.BackgroundColor
}

// Width, Height, MinWidth/MaxWidth, MinHeight/MaxHeight expose the box
// group's sizing properties for the layout engine (spec.md §4.7).
func (s *ComputedStyle) Width() value.AutoOr[value.PercentageOr[value.Length]]  { return s.box.Width }
func (s *ComputedStyle) Height() value.AutoOr[value.PercentageOr[value.Length]] { return s.box.Height }
func (s *ComputedStyle) MinWidth() value.PercentageOr[value.Length]            { return s.box.MinWidth }
func (s *ComputedStyle) MinHeight() value.PercentageOr[value.Length]           { return s.box.MinHeight }
func (s *ComputedStyle) MaxWidth() value.AutoOr[value.PercentageOr[value.Length]]  { return s.box.MaxWidth }
func (s *ComputedStyle) MaxHeight() value.AutoOr[value.PercentageOr[value.Length]] { return s.box.MaxHeight }

// MarginTop/Right/Bottom/Left and PaddingTop/Right/Bottom/Left expose the
// surround group for the box model computation (spec.md §4.7).
func (s *ComputedStyle) MarginTop() value.AutoOr[value.PercentageOr[value.Length]] {
	return s.surround.MarginTop
}
func (s *ComputedStyle) MarginRight() value.AutoOr[value.PercentageOr[value.Length]] {
	return s.surround.MarginRight
}
func (s *ComputedStyle) MarginBottom() value.AutoOr[value.PercentageOr[value.Length]] {
	return s.surround.MarginBottom
}
func (s *ComputedStyle) MarginLeft() value.AutoOr[value.PercentageOr[value.Length]] {
	return s.surround.MarginLeft
}
func (s *ComputedStyle) PaddingTop() value.PercentageOr[value.Length]    { return s.surround.PaddingTop }
func (s *ComputedStyle) PaddingRight() value.PercentageOr[value.Length]  { return s.surround.PaddingRight }
func (s *ComputedStyle) PaddingBottom() value.PercentageOr[value.Length] { return s.surround.PaddingBottom }
func (s *ComputedStyle) PaddingLeft() value.PercentageOr[value.Length]   { return s.surround.PaddingLeft }

// BorderTopWidth etc. return the already-absolutized border widths
// (borders carry no percentage variant, spec.md §3).
func (s *ComputedStyle) BorderTopWidth() dimen.DU    { return s.surround.BorderTopWidth }
func (s *ComputedStyle) BorderRightWidth() dimen.DU  { return s.surround.BorderRightWidth }
func (s *ComputedStyle) BorderBottomWidth() dimen.DU { return s.surround.BorderBottomWidth }
func (s *ComputedStyle) BorderLeftWidth() dimen.DU   { return s.surround.BorderLeftWidth }

func (s *ComputedStyle) BorderTopStyle() BorderStyle    { return s.surround.BorderTopStyle }
func (s *ComputedStyle) BorderRightStyle() BorderStyle  { return s.surround.BorderRightStyle }
func (s *ComputedStyle) BorderBottomStyle() BorderStyle { return s.surround.BorderBottomStyle }
func (s *ComputedStyle) BorderLeftStyle() BorderStyle   { return s.surround.BorderLeftStyle }

func (s *ComputedStyle) BorderTopColor() value.Color    { return s.surround.BorderTopColor }
func (s *ComputedStyle) BorderRightColor() value.Color  { return s.surround.BorderRightColor }
func (s *ComputedStyle) BorderBottomColor() value.Color { return s.surround.BorderBottomColor }
func (s *ComputedStyle) BorderLeftColor() value.Color   { return s.surround.BorderLeftColor }

// FontFamily and Cursor expose the remaining inherited properties.
func (s *ComputedStyle) FontFamily() []string { return s.font.FontFamily }
func (s *ComputedStyle) Cursor() string       { return s.inherited.Cursor }
