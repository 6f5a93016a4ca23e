package value

import "corebrowser/core/dimen"

// Unit is a CSS length unit identifier (spec.md §3).
type Unit uint8

const (
	UnitPx Unit = iota
	UnitIn
	UnitCm
	UnitMm
	UnitQ
	UnitPt
	UnitPc

	UnitEm
	UnitRem
	UnitEx
	UnitCh

	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitSvw
	UnitSvh
	UnitLvw
	UnitLvh
	UnitDvw
	UnitDvh
)

// IsAbsolute reports whether u absolutizes via a fixed ratio, independent
// of any resolution context.
func (u Unit) IsAbsolute() bool {
	switch u {
	case UnitPx, UnitIn, UnitCm, UnitMm, UnitQ, UnitPt, UnitPc:
		return true
	}
	return false
}

// IsFontRelative reports whether u resolves against a font-size (its own
// element's, for em/ex/ch, or the root's, for rem).
func (u Unit) IsFontRelative() bool {
	switch u {
	case UnitEm, UnitRem, UnitEx, UnitCh:
		return true
	}
	return false
}

// unitNames maps the CSS unit identifier text to a Unit, used by
// css/syntax-adjacent code parsing a Dimension token's unit symbol.
var unitNames = map[string]Unit{
	"px": UnitPx, "in": UnitIn, "cm": UnitCm, "mm": UnitMm, "q": UnitQ,
	"pt": UnitPt, "pc": UnitPc,
	"em": UnitEm, "rem": UnitRem, "ex": UnitEx, "ch": UnitCh,
	"vw": UnitVw, "vh": UnitVh, "vmin": UnitVmin, "vmax": UnitVmax,
	"svw": UnitSvw, "svh": UnitSvh, "lvw": UnitLvw, "lvh": UnitLvh,
	"dvw": UnitDvw, "dvh": UnitDvh,
}

// ParseUnit resolves a unit identifier's lower-cased text to a Unit. ok is
// false for an unrecognized unit.
func ParseUnit(text string) (Unit, bool) {
	u, ok := unitNames[text]
	return u, ok
}

// Length is a single dimensioned CSS length, spec.md §3.
type Length struct {
	Num  float64
	Unit Unit
}

// ResolutionContext supplies everything a relative Length needs to become
// an absolute device-pixel value (spec.md §3, §4.5).
type ResolutionContext struct {
	// RootFontSize is the root element's computed font-size, in pixels;
	// used for `rem`.
	RootFontSize float64
	// InheritedFontSize is the current element's own computed font-size,
	// in pixels; used for `em`/`ex`/`ch` (ex/ch are approximated as
	// fractions of the font-size, since no shaped font metrics are
	// available at style-resolution time).
	InheritedFontSize float64
	// ViewportWidth, ViewportHeight are in pixels.
	ViewportWidth, ViewportHeight float64
}

// exFraction and chFraction approximate the ex/ch units as a fraction of
// the font-size, absent real font metrics at style-resolution time
// (grounded on original_source/.../values/length.rs's fallback when no
// font is loaded yet). Both are taken as 0.5 × font-size.
const (
	exFraction = 0.5
	chFraction = 0.5
)

// Absolutize converts l to device pixels using rc, per spec.md §4.5:
// "Lengths are absolutized to device pixels using the ResolutionContext".
func (l Length) Absolutize(rc ResolutionContext) dimen.DU {
	px := l.absolutizePx(rc)
	return dimen.FromPx(px)
}

func (l Length) absolutizePx(rc ResolutionContext) float64 {
	switch l.Unit {
	case UnitPx:
		return l.Num
	case UnitIn:
		return l.Num * dimen.IN.Px()
	case UnitCm:
		return l.Num * dimen.CM.Px()
	case UnitMm:
		return l.Num * dimen.MM.Px()
	case UnitQ:
		return l.Num * dimen.Q.Px()
	case UnitPt:
		return l.Num * dimen.PT.Px()
	case UnitPc:
		return l.Num * dimen.PC.Px()
	case UnitEm:
		return l.Num * rc.InheritedFontSize
	case UnitRem:
		return l.Num * rc.RootFontSize
	case UnitEx:
		return l.Num * rc.InheritedFontSize * exFraction
	case UnitCh:
		return l.Num * rc.InheritedFontSize * chFraction
	case UnitVw, UnitSvw, UnitLvw, UnitDvw:
		return l.Num * rc.ViewportWidth / 100
	case UnitVh, UnitSvh, UnitLvh, UnitDvh:
		return l.Num * rc.ViewportHeight / 100
	case UnitVmin:
		return l.Num * min(rc.ViewportWidth, rc.ViewportHeight) / 100
	case UnitVmax:
		return l.Num * max(rc.ViewportWidth, rc.ViewportHeight) / 100
	}
	return 0
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
