package style

import (
	"corebrowser/core/dimen"
	"corebrowser/css/token"
	"corebrowser/css/value"
)

// Resolve computes a child element's ComputedStyle from its cascaded
// declared values and its parent's computed style (spec.md §4.5).
// declared carries, for each property the cascade produced a winning
// value for, the (whitespace-trimmed) declaration value token run.
func Resolve(declared map[PropertyID][]token.Token, parent *ComputedStyle, rootFontSizePx, viewportW, viewportH float64) *ComputedStyle {
	child := parent.GetInherited()

	// font-size is resolved first: every other length depends on it
	// (spec.md §4.5: "font-size is resolved first in a pinned order").
	resolveFontSize(child, declared[FontSize], parent, rootFontSizePx)

	rc := value.ResolutionContext{
		RootFontSize:      rootFontSizePx,
		InheritedFontSize: child.font.FontSize.Px(),
		ViewportWidth:     viewportW,
		ViewportHeight:    viewportH,
	}

	if toks, ok := declared[FontFamily]; ok {
		resolveFontFamily(child, toks, parent)
	}
	if toks, ok := declared[Color]; ok {
		resolveColorProperty(child, toks, parent)
	}
	if toks, ok := declared[Cursor]; ok {
		resolveCursor(child, toks, parent)
	}

	resolveBoxKeywordProperties(child, declared, parent)
	resolveLengthProperties(child, declared, parent, rc)
	resolveBorders(child, declared, parent, rc)
	if toks, ok := declared[BackgroundColor]; ok {
		resolveBackgroundColor(child, toks, parent)
	}

	return child
}

func resolveFontSize(child *ComputedStyle, toks []token.Token, parent *ComputedStyle, rootFontSizePx float64) {
	if toks == nil {
		return // inherited by default: child already carries parent's font group
	}
	kw := DetectKeyword(toks)
	parentPx := parent.font.FontSize.Px()
	setInherit := func() { child.cloneFont().FontSize = dimen.FromPx(parentPx) }
	setInitial := func() { child.cloneFont().FontSize = dimen.FromPx(value.Medium.Px()) }
	if resolveKeyword(kw, FontSize, setInherit, setInitial) {
		return
	}
	if text, ok := identText(toks); ok {
		switch text {
		case "larger":
			child.cloneFont().FontSize = dimen.FromPx(parentPx * value.RelativeFontSizeFactor)
			return
		case "smaller":
			child.cloneFont().FontSize = dimen.FromPx(parentPx / value.RelativeFontSizeFactor)
			return
		}
		if abs, ok := value.ParseAbsoluteFontSize(text); ok {
			child.cloneFont().FontSize = dimen.FromPx(abs.Px())
			return
		}
	}
	t := trimWS(toks)
	if len(t) == 1 && t[0].Kind == token.Percentage {
		child.cloneFont().FontSize = dimen.FromPx(parentPx * t[0].Num / 100)
		return
	}
	if len(t) == 1 {
		if l, ok := decodeLength(t[0]); ok {
			rc := value.ResolutionContext{RootFontSize: rootFontSizePx, InheritedFontSize: parentPx}
			child.cloneFont().FontSize = l.Absolutize(rc)
		}
	}
}

func resolveFontFamily(child *ComputedStyle, toks []token.Token, parent *ComputedStyle) {
	kw := DetectKeyword(toks)
	setInherit := func() { child.cloneFont().FontFamily = parent.font.FontFamily }
	setInitial := func() { child.cloneFont().FontFamily = []string{"serif"} }
	if resolveKeyword(kw, FontFamily, setInherit, setInitial) {
		return
	}
	var names []string
	for _, tok := range trimWS(toks) {
		switch tok.Kind {
		case token.Ident, token.String:
			names = append(names, tok.Text())
		}
	}
	if len(names) > 0 {
		child.cloneFont().FontFamily = names
	}
}

func resolveColorProperty(child *ComputedStyle, toks []token.Token, parent *ComputedStyle) {
	kw := DetectKeyword(toks)
	setInherit := func() { child.cloneInherited().Color = parent.inherited.Color }
	setInitial := func() { child.cloneInherited().Color = value.Opaque(0, 0, 0) }
	if resolveKeyword(kw, Color, setInherit, setInitial) {
		return
	}
	if c, ok := decodeColor(toks); ok {
		if c.CurrentColor {
			c = child.inherited.Color // currentcolor on `color` itself means inherited (no self-reference)
		}
		child.cloneInherited().Color = c
	}
}

func resolveCursor(child *ComputedStyle, toks []token.Token, parent *ComputedStyle) {
	kw := DetectKeyword(toks)
	setInherit := func() { child.cloneInherited().Cursor = parent.inherited.Cursor }
	setInitial := func() { child.cloneInherited().Cursor = "auto" }
	if resolveKeyword(kw, Cursor, setInherit, setInitial) {
		return
	}
	if text, ok := identText(toks); ok {
		child.cloneInherited().Cursor = text
	}
}

var displayNames = map[string]DisplayType{
	"inline":       DisplayInline,
	"block":        DisplayBlock,
	"inline-block": DisplayInlineBlock,
	"none":         DisplayNone,
}

var positionNames = map[string]PositionType{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
	"fixed":    PositionFixed,
}

var floatNames = map[string]FloatType{
	"none":  FloatNone,
	"left":  FloatLeft,
	"right": FloatRight,
}

// resolveBoxKeywordProperties resolves the three keyword-only,
// non-inherited box properties: display, position, float. None of them
// are ever "inherit" in practice but the CSS-wide keywords still apply.
func resolveBoxKeywordProperties(child *ComputedStyle, declared map[PropertyID][]token.Token, parent *ComputedStyle) {
	if toks, ok := declared[Display]; ok {
		kw := DetectKeyword(toks)
		setInherit := func() { child.cloneBox().Display = parent.box.Display }
		setInitial := func() { child.cloneBox().Display = DisplayInline }
		if !resolveKeyword(kw, Display, setInherit, setInitial) {
			if text, ok := identText(toks); ok {
				if d, ok := displayNames[text]; ok {
					child.cloneBox().Display = d
				}
			}
		}
	}
	if toks, ok := declared[Position]; ok {
		kw := DetectKeyword(toks)
		setInherit := func() { child.cloneBox().Position = parent.box.Position }
		setInitial := func() { child.cloneBox().Position = PositionStatic }
		if !resolveKeyword(kw, Position, setInherit, setInitial) {
			if text, ok := identText(toks); ok {
				if p, ok := positionNames[text]; ok {
					child.cloneBox().Position = p
				}
			}
		}
	}
	if toks, ok := declared[Float]; ok {
		kw := DetectKeyword(toks)
		setInherit := func() { child.cloneBox().Float = parent.box.Float }
		setInitial := func() { child.cloneBox().Float = FloatNone }
		if !resolveKeyword(kw, Float, setInherit, setInitial) {
			if text, ok := identText(toks); ok {
				if f, ok := floatNames[text]; ok {
					child.cloneBox().Float = f
				}
			}
		}
	}
}

// lenVal shorthand for the auto-or-percentage-or-length value shape
// shared by width/height/max-*/margin-*.
type lenVal = value.AutoOr[value.PercentageOr[value.Length]]

// lengthProp describes one such property for the resolver's table-driven
// loop: how to read it off a style (for `inherit`), its initial value,
// and how to write it onto the child.
type lengthProp struct {
	id      PropertyID
	initial lenVal
	get     func(*ComputedStyle) lenVal
	set     func(*ComputedStyle, lenVal)
}

func resolveLengthProperties(child *ComputedStyle, declared map[PropertyID][]token.Token, parent *ComputedStyle, rc value.ResolutionContext) {
	zero := value.Is(value.OfValue[value.Length](value.Length{}))
	props := []lengthProp{
		{id: Width, initial: initialAutoLen(),
			get: func(s *ComputedStyle) lenVal { return s.box.Width },
			set: func(s *ComputedStyle, v lenVal) { s.cloneBox().Width = v }},
		{id: Height, initial: initialAutoLen(),
			get: func(s *ComputedStyle) lenVal { return s.box.Height },
			set: func(s *ComputedStyle, v lenVal) { s.cloneBox().Height = v }},
		{id: MaxWidth, initial: initialAutoLen(),
			get: func(s *ComputedStyle) lenVal { return s.box.MaxWidth },
			set: func(s *ComputedStyle, v lenVal) { s.cloneBox().MaxWidth = v }},
		{id: MaxHeight, initial: initialAutoLen(),
			get: func(s *ComputedStyle) lenVal { return s.box.MaxHeight },
			set: func(s *ComputedStyle, v lenVal) { s.cloneBox().MaxHeight = v }},
		{id: MarginTop, initial: zero,
			get: func(s *ComputedStyle) lenVal { return s.surround.MarginTop },
			set: func(s *ComputedStyle, v lenVal) { s.cloneSurround().MarginTop = v }},
		{id: MarginRight, initial: zero,
			get: func(s *ComputedStyle) lenVal { return s.surround.MarginRight },
			set: func(s *ComputedStyle, v lenVal) { s.cloneSurround().MarginRight = v }},
		{id: MarginBottom, initial: zero,
			get: func(s *ComputedStyle) lenVal { return s.surround.MarginBottom },
			set: func(s *ComputedStyle, v lenVal) { s.cloneSurround().MarginBottom = v }},
		{id: MarginLeft, initial: zero,
			get: func(s *ComputedStyle) lenVal { return s.surround.MarginLeft },
			set: func(s *ComputedStyle, v lenVal) { s.cloneSurround().MarginLeft = v }},
	}
	for _, p := range props {
		toks, ok := declared[p.id]
		if !ok {
			continue
		}
		kw := DetectKeyword(toks)
		setInherit := func(p lengthProp) func() { return func() { p.set(child, p.get(parent)) } }(p)
		setInitial := func(p lengthProp) func() { return func() { p.set(child, p.initial) } }(p)
		if resolveKeyword(kw, p.id, setInherit, setInitial) {
			continue
		}
		v, ok := decodeAutoOrPercentageLength(toks)
		if !ok {
			continue
		}
		p.set(child, v)
	}

	// Non-auto properties: min-width/min-height and padding.
	type plainLenProp struct {
		id  PropertyID
		set func(*surroundGroup, value.PercentageOr[value.Length])
	}
	paddings := []plainLenProp{
		{PaddingTop, func(s *surroundGroup, v value.PercentageOr[value.Length]) { s.PaddingTop = v }},
		{PaddingRight, func(s *surroundGroup, v value.PercentageOr[value.Length]) { s.PaddingRight = v }},
		{PaddingBottom, func(s *surroundGroup, v value.PercentageOr[value.Length]) { s.PaddingBottom = v }},
		{PaddingLeft, func(s *surroundGroup, v value.PercentageOr[value.Length]) { s.PaddingLeft = v }},
	}
	for _, p := range paddings {
		toks, ok := declared[p.id]
		if !ok {
			continue
		}
		if v, ok := decodePercentageOrLength(toks); ok {
			p.set(child.cloneSurround(), v)
		}
	}
	if toks, ok := declared[MinWidth]; ok {
		if v, ok := decodePercentageOrLength(toks); ok {
			child.cloneBox().MinWidth = v
		}
	}
	if toks, ok := declared[MinHeight]; ok {
		if v, ok := decodePercentageOrLength(toks); ok {
			child.cloneBox().MinHeight = v
		}
	}
}

func initialAutoLen() value.AutoOr[value.PercentageOr[value.Length]] {
	return value.Auto[value.PercentageOr[value.Length]]()
}

func resolveBorders(child *ComputedStyle, declared map[PropertyID][]token.Token, parent *ComputedStyle, rc value.ResolutionContext) {
	type widthProp struct {
		id  PropertyID
		set func(*surroundGroup, dimen.DU)
	}
	widths := []widthProp{
		{BorderTopWidth, func(s *surroundGroup, d dimen.DU) { s.BorderTopWidth = d }},
		{BorderRightWidth, func(s *surroundGroup, d dimen.DU) { s.BorderRightWidth = d }},
		{BorderBottomWidth, func(s *surroundGroup, d dimen.DU) { s.BorderBottomWidth = d }},
		{BorderLeftWidth, func(s *surroundGroup, d dimen.DU) { s.BorderLeftWidth = d }},
	}
	for _, p := range widths {
		toks, ok := declared[p.id]
		if !ok {
			continue
		}
		if l, ok := decodeBorderWidth(toks); ok {
			p.set(child.cloneSurround(), l.Absolutize(rc))
		}
	}

	type styleProp struct {
		id  PropertyID
		set func(*surroundGroup, BorderStyle)
	}
	styles := []styleProp{
		{BorderTopStyle, func(s *surroundGroup, v BorderStyle) { s.BorderTopStyle = v }},
		{BorderRightStyle, func(s *surroundGroup, v BorderStyle) { s.BorderRightStyle = v }},
		{BorderBottomStyle, func(s *surroundGroup, v BorderStyle) { s.BorderBottomStyle = v }},
		{BorderLeftStyle, func(s *surroundGroup, v BorderStyle) { s.BorderLeftStyle = v }},
	}
	for _, p := range styles {
		toks, ok := declared[p.id]
		if !ok {
			continue
		}
		if v, ok := decodeBorderStyle(toks); ok {
			p.set(child.cloneSurround(), v)
		}
	}

	type colorProp struct {
		id  PropertyID
		set func(*surroundGroup, value.Color)
	}
	colors := []colorProp{
		{BorderTopColor, func(s *surroundGroup, v value.Color) { s.BorderTopColor = v }},
		{BorderRightColor, func(s *surroundGroup, v value.Color) { s.BorderRightColor = v }},
		{BorderBottomColor, func(s *surroundGroup, v value.Color) { s.BorderBottomColor = v }},
		{BorderLeftColor, func(s *surroundGroup, v value.Color) { s.BorderLeftColor = v }},
	}
	for _, p := range colors {
		toks, ok := declared[p.id]
		if !ok {
			continue
		}
		if c, ok := decodeColor(toks); ok {
			if c.CurrentColor {
				c = child.inherited.Color
			}
			p.set(child.cloneSurround(), c)
		}
	}
}

func resolveBackgroundColor(child *ComputedStyle, toks []token.Token, parent *ComputedStyle) {
	kw := DetectKeyword(toks)
	setInherit := func() { child.cloneBackground().BackgroundColor = parent.background.BackgroundColor }
	setInitial := func() { child.cloneBackground().BackgroundColor = value.Color{} }
	if resolveKeyword(kw, BackgroundColor, setInherit, setInitial) {
		return
	}
	if c, ok := decodeColor(toks); ok {
		if c.CurrentColor {
			c = child.inherited.Color
		}
		child.cloneBackground().BackgroundColor = c
	}
}
