/*
Package dimen implements the device-pixel scaled integer unit used
throughout the layout and fragment trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"fmt"
	"math"
)

// DU is a 'design unit': a fixed-point pixel value scaled by 1<<16 (scaled
// points, in the sense of the original dimen package this one is adapted
// from). A scaled integer keeps box-containment and line-breaking
// arithmetic exact and avoids float drift across repeated additions in
// long fragment trees.
type DU int64

// Pre-defined absolute-unit ratios. CSS defines 1in == 96px, and the other
// absolute units are fixed ratios against the inch (CSS Values and Units
// Level 4 §6.2): 1pc == 16px, 1pt == 96/72 px, 1cm == 96/2.54 px.
const (
	Zero DU = 0
	SP   DU = 1 << 10 // scaled point, sub-pixel precision unit
	PX   DU = 1 << 16 // one CSS pixel
	IN   DU = 96 * PX
	PT   DU = IN / 72        // 1pt == 1/72in
	PC   DU = IN / 6         // 1pc == 1/6in == 16px
	CM   DU = IN * 100 / 254 // 1cm == 96/2.54 px
	MM   DU = CM / 10
	Q    DU = MM / 4 // quarter-millimeter
)

// Infinity is the largest dimension used for unconstrained available space
// during layout (e.g. an IFC with no line-wrap limit).
const Infinity DU = math.MaxInt32

func (d DU) String() string {
	return fmt.Sprintf("%.2fpx", d.Px())
}

// Px returns d as a floating point CSS pixel value.
func (d DU) Px() float64 {
	return float64(d) / float64(PX)
}

// FromPx constructs a DU from a floating point CSS pixel value.
func FromPx(px float64) DU {
	return DU(math.Round(px * float64(PX)))
}

// Min returns the smaller of two dimensions.
func Min(a, b DU) DU {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b DU) DU {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps d to the inclusive range [lo, hi]. If hi < lo (a
// contradictory min/max-width pair), hi wins, matching CSS 2.1 §10.4's
// "max overrides min" precedence.
func Clamp(d, lo, hi DU) DU {
	if hi < lo {
		return hi
	}
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// Point is a point in device-pixel space.
type Point struct {
	X, Y DU
}

// Shift translates p by vector and returns the result.
func (p Point) Shift(vector Point) Point {
	return Point{p.X + vector.X, p.Y + vector.Y}
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Size is a width/height pair.
type Size struct {
	W, H DU
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rect) Right() DU { return r.Origin.X + r.Size.W }

// Bottom returns the y-coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() DU { return r.Origin.Y + r.Size.H }

// Contains reports whether inner is fully contained within r along both
// axes (spec.md §8.6, strict form).
func (r Rect) Contains(inner Rect) bool {
	return inner.Origin.X >= r.Origin.X && inner.Origin.Y >= r.Origin.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// ContainsHorizontally reports horizontal containment only, allowing
// vertical overflow — the relaxed containment the fragment tree actually
// guarantees (spec.md §3 invariant 5).
func (r Rect) ContainsHorizontally(inner Rect) bool {
	return inner.Origin.X >= r.Origin.X && inner.Right() <= r.Right()
}
