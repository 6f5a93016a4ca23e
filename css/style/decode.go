package style

import (
	"corebrowser/core/percent"
	"corebrowser/css/token"
	"corebrowser/css/value"
)

// trimWS returns toks with leading/trailing Whitespace tokens stripped.
func trimWS(toks []token.Token) []token.Token {
	start := 0
	for start < len(toks) && toks[start].Kind == token.Whitespace {
		start++
	}
	end := len(toks)
	for end > start && toks[end-1].Kind == token.Whitespace {
		end--
	}
	return toks[start:end]
}

func identText(toks []token.Token) (string, bool) {
	t := trimWS(toks)
	if len(t) == 1 && t[0].Kind == token.Ident {
		return t[0].Text(), true
	}
	return "", false
}

// decodeLength decodes a single Dimension or Number token into a
// value.Length; a bare Number is only valid as an unadorned zero (CSS
// permits "0" without a unit for lengths). A Percentage token is not
// decoded here.
func decodeLength(tok token.Token) (value.Length, bool) {
	switch tok.Kind {
	case token.Dimension:
		unit, ok := value.ParseUnit(tok.Unit.String())
		if !ok {
			return value.Length{}, false
		}
		return value.Length{Num: tok.Num, Unit: unit}, true
	case token.Number:
		if tok.Num == 0 {
			return value.Length{Num: 0, Unit: value.UnitPx}, true
		}
	}
	return value.Length{}, false
}

// decodePercentageOrLength decodes "<percentage> | <length>".
func decodePercentageOrLength(toks []token.Token) (value.PercentageOr[value.Length], bool) {
	t := trimWS(toks)
	if len(t) != 1 {
		return value.PercentageOr[value.Length]{}, false
	}
	if t[0].Kind == token.Percentage {
		return value.Pct[value.Length](percent.FromFloat(t[0].Num)), true
	}
	if l, ok := decodeLength(t[0]); ok {
		return value.OfValue(l), true
	}
	return value.PercentageOr[value.Length]{}, false
}

// decodeAutoOrPercentageLength decodes "auto | <percentage> | <length>".
func decodeAutoOrPercentageLength(toks []token.Token) (value.AutoOr[value.PercentageOr[value.Length]], bool) {
	if kw, ok := identText(toks); ok && kw == "auto" {
		return value.Auto[value.PercentageOr[value.Length]](), true
	}
	pl, ok := decodePercentageOrLength(toks)
	if !ok {
		return value.AutoOr[value.PercentageOr[value.Length]]{}, false
	}
	return value.Is(pl), true
}

// decodeBorderWidth decodes a border width: a plain <length>, or one of
// the keywords thin/medium/thick.
func decodeBorderWidth(toks []token.Token) (value.Length, bool) {
	if kw, ok := identText(toks); ok {
		switch kw {
		case "thin":
			return value.Length{Num: 1, Unit: value.UnitPx}, true
		case "medium":
			return value.Length{Num: 3, Unit: value.UnitPx}, true
		case "thick":
			return value.Length{Num: 5, Unit: value.UnitPx}, true
		}
		return value.Length{}, false
	}
	t := trimWS(toks)
	if len(t) != 1 {
		return value.Length{}, false
	}
	return decodeLength(t[0])
}

var borderStyleNames = map[string]BorderStyle{
	"none":   BorderStyleNone,
	"hidden": BorderStyleHidden,
	"solid":  BorderStyleSolid,
	"dashed": BorderStyleDashed,
	"dotted": BorderStyleDotted,
}

func decodeBorderStyle(toks []token.Token) (BorderStyle, bool) {
	kw, ok := identText(toks)
	if !ok {
		return 0, false
	}
	s, ok := borderStyleNames[kw]
	return s, ok
}

// decodeColor decodes a <color> value out of raw declared-value tokens:
// a single ident (named color / currentcolor), a single hash token, or a
// legacy rgb()/rgba() function whose numeric/percentage channel tokens
// are collected directly (avoiding a string round-trip through the
// tokenizer).
func decodeColor(toks []token.Token) (value.Color, bool) {
	t := trimWS(toks)
	if len(t) == 1 {
		switch t[0].Kind {
		case token.Ident:
			c, err := value.ParseColor(t[0].Text())
			return c, err == nil
		case token.Hash:
			c, err := value.ParseColor("#" + t[0].Text())
			return c, err == nil
		}
	}
	if len(t) > 0 && t[0].Kind == token.Function &&
		(t[0].Text() == "rgb" || t[0].Text() == "rgba") {
		return decodeRGBFunctionTokens(t[1:])
	}
	return value.Color{}, false
}

func decodeRGBFunctionTokens(toks []token.Token) (value.Color, bool) {
	var chans []uint8
	var alpha = uint8(255)
	seenAlpha := false
	for _, tok := range toks {
		switch tok.Kind {
		case token.Whitespace, token.Comma, token.Delim:
			continue
		case token.ParenClose:
			// done
		case token.Number:
			if len(chans) < 3 {
				chans = append(chans, clampChannel(tok.Num))
			} else if !seenAlpha {
				alpha = clampChannel(tok.Num * 255)
				seenAlpha = true
			}
		case token.Percentage:
			if len(chans) < 3 {
				chans = append(chans, clampChannel(tok.Num*255/100))
			} else if !seenAlpha {
				alpha = clampChannel(tok.Num * 255 / 100)
				seenAlpha = true
			}
		}
	}
	if len(chans) != 3 {
		return value.Color{}, false
	}
	return value.Color{R: chans[0], G: chans[1], B: chans[2], A: alpha}, true
}

func clampChannel(f float64) uint8 {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f)
}
