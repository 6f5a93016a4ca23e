package layout

import (
	"corebrowser/core/dimen"
	"corebrowser/css/style"
	"corebrowser/css/value"
)

// resolvedHorizontal is the outcome of CSS 2.1 §10.3.3's width/margin
// resolution for a block-level, non-replaced, in-flow box.
type resolvedHorizontal struct {
	MarginLeft, MarginRight   dimen.DU
	BorderLeft, BorderRight   dimen.DU
	PaddingLeft, PaddingRight dimen.DU
	ContentWidth              dimen.DU
}

// resolveBlockWidth implements CSS 2.1 §10.3.3: margin-left +
// border-left + padding-left + width + padding-right + border-right +
// margin-right must equal the containing block's width. `auto` values
// absorb the remainder: width:auto sets auto margins to zero and lets
// width take the rest; a fixed width with both margins auto centers the
// box; a fixed width with one auto margin lets it absorb the remainder;
// with neither margin auto (over-constrained), margin-right absorbs the
// slack (spec.md §4.7).
func resolveBlockWidth(s *style.ComputedStyle, cbWidth dimen.DU, rc value.ResolutionContext) resolvedHorizontal {
	borderLeft := effectiveBorderWidth(s.BorderLeftStyle(), s.BorderLeftWidth())
	borderRight := effectiveBorderWidth(s.BorderRightStyle(), s.BorderRightWidth())
	paddingLeft := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingLeft(), cbWidth.Px(), rc))
	paddingRight := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingRight(), cbWidth.Px(), rc))
	fixedPart := borderLeft + borderRight + paddingLeft + paddingRight

	marginLeftAuto := s.MarginLeft().IsAuto
	marginRightAuto := s.MarginRight().IsAuto
	widthAuto := s.Width().IsAuto

	var marginLeft, marginRight dimen.DU
	if !marginLeftAuto {
		marginLeft = dimen.FromPx(value.ResolveLengthPercentage(s.MarginLeft().Value, cbWidth.Px(), rc))
	}
	if !marginRightAuto {
		marginRight = dimen.FromPx(value.ResolveLengthPercentage(s.MarginRight().Value, cbWidth.Px(), rc))
	}

	if widthAuto {
		contentWidth := cbWidth - fixedPart - marginLeft - marginRight
		if contentWidth < 0 {
			contentWidth = 0
		}
		return resolvedHorizontal{marginLeft, marginRight, borderLeft, borderRight, paddingLeft, paddingRight, contentWidth}
	}

	contentWidth := dimen.FromPx(value.ResolveLengthPercentage(s.Width().Value, cbWidth.Px(), rc))
	contentWidth = clampWidthToMinMax(s, contentWidth, cbWidth, rc)
	remainder := cbWidth - fixedPart - contentWidth

	switch {
	case marginLeftAuto && marginRightAuto:
		half := remainder / 2
		marginLeft, marginRight = half, remainder-half
	case marginLeftAuto:
		marginLeft = remainder - marginRight
	case marginRightAuto:
		marginRight = remainder - marginLeft
	default:
		// Over-constrained: margin-right absorbs the slack, the rule for
		// left-to-right writing modes (CSS 2.1 §10.3.3).
		marginRight = remainder - marginLeft
	}

	return resolvedHorizontal{marginLeft, marginRight, borderLeft, borderRight, paddingLeft, paddingRight, contentWidth}
}

func clampWidthToMinMax(s *style.ComputedStyle, w, cbWidth dimen.DU, rc value.ResolutionContext) dimen.DU {
	minW := dimen.FromPx(value.ResolveLengthPercentage(s.MinWidth(), cbWidth.Px(), rc))
	maxW := dimen.Infinity
	if mw, ok := s.MaxWidth().Get(); ok {
		maxW = dimen.FromPx(value.ResolveLengthPercentage(mw, cbWidth.Px(), rc))
	}
	return dimen.Clamp(w, minW, maxW)
}

// resolveMarginVertical resolves a vertical margin; percentages resolve
// against the containing block's *width* even for top/bottom (spec.md
// §4.7 "Percentage resolution"). Auto vertical margins default to zero —
// centering via auto margins is only a horizontal-axis behavior.
func resolveMarginVertical(m value.AutoOr[value.PercentageOr[value.Length]], cbWidth dimen.DU, rc value.ResolutionContext) dimen.DU {
	if m.IsAuto {
		return 0
	}
	return dimen.FromPx(value.ResolveLengthPercentage(m.Value, cbWidth.Px(), rc))
}

// resolveHeight resolves a box's own height: auto uses autoHeight (the
// height its content naturally occupies); a percentage resolves against
// the containing block's height only when it is definite, else it too
// falls back to auto (spec.md §4.7).
func resolveHeight(s *style.ComputedStyle, cb ContainingBlock, rc value.ResolutionContext, autoHeight dimen.DU) dimen.DU {
	h, ok := s.Height().Get()
	if !ok {
		return clampHeightToMinMax(s, autoHeight, cb, rc)
	}
	if h.IsPercentage && !cb.HeightIsDefinite {
		return clampHeightToMinMax(s, autoHeight, cb, rc)
	}
	resolved := dimen.FromPx(value.ResolveLengthPercentage(h, cb.Height.Px(), rc))
	return clampHeightToMinMax(s, resolved, cb, rc)
}

func clampHeightToMinMax(s *style.ComputedStyle, h dimen.DU, cb ContainingBlock, rc value.ResolutionContext) dimen.DU {
	basis := cb.Height.Px()
	var minH dimen.DU
	if minV := s.MinHeight(); !minV.IsPercentage || cb.HeightIsDefinite {
		minH = dimen.FromPx(value.ResolveLengthPercentage(minV, basis, rc))
	}
	maxH := dimen.Infinity
	if mh, ok := s.MaxHeight().Get(); ok {
		if !mh.IsPercentage || cb.HeightIsDefinite {
			maxH = dimen.FromPx(value.ResolveLengthPercentage(mh, basis, rc))
		}
	}
	return dimen.Clamp(h, minH, maxH)
}

// effectiveBorderWidth is the width a border edge actually occupies in the
// box model: a `none`/`hidden` style collapses it to zero regardless of
// the declared (or initial, non-zero "medium") border-width, matching
// fragment.Paint's own none/hidden skip (spec.md §4.7).
func effectiveBorderWidth(bs style.BorderStyle, w dimen.DU) dimen.DU {
	if bs == style.BorderStyleNone || bs == style.BorderStyleHidden {
		return 0
	}
	return w
}

// boxAreas holds the four nested rectangles of the CSS box model for one
// fragment (spec.md §3, §4.8).
type boxAreas struct {
	content, padding, border, margin dimen.Rect
}

// computeBoxAreas lays out the four box-model rectangles given the
// already-resolved margins, content box and containing block (spec.md
// §4.7: "a fragment whose margin/border/padding/content areas satisfy
// the CSS box model exactly").
func computeBoxAreas(s *style.ComputedStyle, origin dimen.Point, marginTop, marginLeft, marginRight, marginBottom, contentW, contentH dimen.DU, cb ContainingBlock, rc value.ResolutionContext) boxAreas {
	paddingTop := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingTop(), cb.Width.Px(), rc))
	paddingRight := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingRight(), cb.Width.Px(), rc))
	paddingBottom := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingBottom(), cb.Width.Px(), rc))
	paddingLeft := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingLeft(), cb.Width.Px(), rc))
	borderTop := effectiveBorderWidth(s.BorderTopStyle(), s.BorderTopWidth())
	borderRight := effectiveBorderWidth(s.BorderRightStyle(), s.BorderRightWidth())
	borderBottom := effectiveBorderWidth(s.BorderBottomStyle(), s.BorderBottomWidth())
	borderLeft := effectiveBorderWidth(s.BorderLeftStyle(), s.BorderLeftWidth())

	contentOrigin := dimen.Point{
		X: origin.X + marginLeft + borderLeft + paddingLeft,
		Y: origin.Y + marginTop + borderTop + paddingTop,
	}
	content := dimen.Rect{Origin: contentOrigin, Size: dimen.Size{W: contentW, H: contentH}}
	padding := dimen.Rect{
		Origin: dimen.Point{X: contentOrigin.X - paddingLeft, Y: contentOrigin.Y - paddingTop},
		Size:   dimen.Size{W: contentW + paddingLeft + paddingRight, H: contentH + paddingTop + paddingBottom},
	}
	border := dimen.Rect{
		Origin: dimen.Point{X: padding.Origin.X - borderLeft, Y: padding.Origin.Y - borderTop},
		Size:   dimen.Size{W: padding.Size.W + borderLeft + borderRight, H: padding.Size.H + borderTop + borderBottom},
	}
	margin := dimen.Rect{
		Origin: origin,
		Size:   dimen.Size{W: border.Size.W + marginLeft + marginRight, H: border.Size.H + marginTop + marginBottom},
	}
	return boxAreas{content, padding, border, margin}
}
