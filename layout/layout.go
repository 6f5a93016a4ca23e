package layout

import (
	"corebrowser/boxtree"
	"corebrowser/core/dimen"
	"corebrowser/css/style"
	"corebrowser/css/value"
	"corebrowser/dom"
	"corebrowser/fragment"
	"corebrowser/platform"
)

// replacedTagNames is the fixed set of element names this module treats
// as replaced elements (spec.md §4.7's "replaced elements" clause). The
// DOM consumer contract (spec.md §6) carries no explicit replaced-element
// flag, so tag name is the only signal available; this is recorded as an
// Open Question decision in DESIGN.md.
var replacedTagNames = map[string]bool{
	"img": true, "video": true, "canvas": true,
	"iframe": true, "embed": true, "object": true,
}

func isReplaced(node dom.Node) bool {
	return node != nil && replacedTagNames[node.LocalName()]
}

const (
	defaultReplacedWidth  = 300
	defaultReplacedHeight = 150
)

// pendingAbsolute records an absolutely-positioned box discovered during
// normal flow, deferred until the containing block it was collected
// under is fully sized (spec.md §4.7: "boxes are collected during normal
// layout but positioned after their containing block is known").
type pendingAbsolute struct {
	box    boxtree.BlockLevelBox
	origin dimen.Point
}

// Engine lays out a box tree into a fragment tree (spec.md §4.7, §4.8).
// The DOM consumer contract carries no top/left/right/bottom properties
// (spec.md §6's property set, mirrored in css/style's groups), so
// absolutely-positioned boxes are placed at their static position — the
// position flow would have given them — rather than offset by an
// explicit inset; this is recorded as an Open Question decision in
// DESIGN.md.
type Engine struct {
	FontFace                      platform.FontFace
	RootFontSizePx                float64
	ViewportWidth, ViewportHeight float64
}

// NewEngine constructs an Engine. fontFace may be nil, in which case a
// fixed advance-width approximation is used (mirroring
// platform.MonospaceFont's ratios).
func NewEngine(fontFace platform.FontFace, rootFontSizePx, viewportW, viewportH float64) *Engine {
	return &Engine{FontFace: fontFace, RootFontSizePx: rootFontSizePx, ViewportWidth: viewportW, ViewportHeight: viewportH}
}

// LayoutDocument lays out the whole box tree against the viewport and
// returns the root box fragment.
func (e *Engine) LayoutDocument(root boxtree.BlockContainer, rootStyle *style.ComputedStyle) fragment.Fragment {
	cb := ContainingBlock{Width: dimen.FromPx(e.ViewportWidth), Height: dimen.FromPx(e.ViewportHeight), HeightIsDefinite: true}
	children, contentHeight, absolutes := e.layoutContainer(root, cb, dimen.Origin)
	children = append(children, e.layoutAbsolutes(absolutes, cb)...)
	contentArea := dimen.Rect{Origin: dimen.Origin, Size: dimen.Size{W: cb.Width, H: contentHeight}}
	return fragment.NewBoxFragment(rootStyle, nil, contentArea, contentArea, contentArea, contentArea, children)
}

func (e *Engine) resolutionContextFor(s *style.ComputedStyle) value.ResolutionContext {
	return value.ResolutionContext{
		RootFontSize:      e.RootFontSizePx,
		InheritedFontSize: s.FontSizePx().Px(),
		ViewportWidth:     e.ViewportWidth,
		ViewportHeight:    e.ViewportHeight,
	}
}

// layoutContainer lays out one BlockContainer (spec.md §3): either an
// inline formatting context, or a sequence of block-level boxes stacked
// top to bottom. Floats shorten the containing width of the single
// block-level box immediately following them — an approximation of
// "shortened line widths for subsequent lines at the same vertical
// range" (spec.md §4.7) that covers the common float-then-paragraph
// pattern without a full per-line exclusion model.
func (e *Engine) layoutContainer(c boxtree.BlockContainer, cb ContainingBlock, origin dimen.Point) ([]fragment.Fragment, dimen.DU, []pendingAbsolute) {
	if c.IsIFC {
		frags, h := e.layoutInline(c.IFC, cb.Width, origin)
		return frags, h, nil
	}

	var children []fragment.Fragment
	var absolutes []pendingAbsolute
	var leftInset, rightInset dimen.DU
	y := dimen.Zero

	for _, box := range c.Boxes {
		if box.Kind == boxtree.AbsolutelyPositioned {
			absolutes = append(absolutes, pendingAbsolute{box: box, origin: dimen.Point{X: origin.X, Y: origin.Y + y}})
			continue
		}
		if box.Kind == boxtree.Float {
			floatOrigin, floatCB := e.floatPlacement(box, cb, origin, y, leftInset, rightInset)
			frag, _, childAbsolutes := e.layoutBlockBox(box, floatCB, floatOrigin)
			children = append(children, frag)
			absolutes = append(absolutes, childAbsolutes...)
			switch box.FloatSide {
			case style.FloatRight:
				rightInset += frag.MarginArea.Size.W
			default:
				leftInset += frag.MarginArea.Size.W
			}
			continue
		}

		childCB := cb
		childCB.Width = cb.Width - leftInset - rightInset
		childOrigin := dimen.Point{X: origin.X + leftInset, Y: origin.Y + y}
		frag, marginBoxHeight, childAbsolutes := e.layoutBlockBox(box, childCB, childOrigin)
		children = append(children, frag)
		absolutes = append(absolutes, childAbsolutes...)
		y += marginBoxHeight
		// A float only shortens the single in-flow box immediately
		// following it, not the rest of the flow.
		leftInset, rightInset = 0, 0
	}
	return children, y, absolutes
}

// floatPlacement previews a float's margin-box width (via
// resolveBlockWidth) so it can be anchored flush to the correct edge of
// the content area before the rest of its layout runs.
func (e *Engine) floatPlacement(box boxtree.BlockLevelBox, cb ContainingBlock, origin dimen.Point, y, leftInset, rightInset dimen.DU) (dimen.Point, ContainingBlock) {
	rc := e.resolutionContextFor(box.Style)
	available := cb.Width - leftInset - rightInset
	hz := resolveBlockWidth(box.Style, available, rc)
	marginBoxWidth := hz.ContentWidth + hz.PaddingLeft + hz.PaddingRight + hz.BorderLeft + hz.BorderRight + hz.MarginLeft + hz.MarginRight

	floatCB := ContainingBlock{Width: available}
	if box.FloatSide == style.FloatRight {
		return dimen.Point{X: origin.X + cb.Width - rightInset - marginBoxWidth, Y: origin.Y + y}, floatCB
	}
	return dimen.Point{X: origin.X + leftInset, Y: origin.Y + y}, floatCB
}

// layoutBlockBox lays out a single block-level box at origin against cb,
// returning its fragment, its margin-box height (for the caller's
// running offset), and a pending-absolute list that is always nil:
// absolutely-positioned descendants are resolved inside this call.
func (e *Engine) layoutBlockBox(box boxtree.BlockLevelBox, cb ContainingBlock, origin dimen.Point) (fragment.Fragment, dimen.DU, []pendingAbsolute) {
	s := box.Style
	rc := e.resolutionContextFor(s)

	if isReplaced(box.Node) {
		frag := e.layoutReplaced(box, cb, origin, rc)
		return frag, frag.MarginArea.Size.H, nil
	}

	hz := resolveBlockWidth(s, cb.Width, rc)
	marginTop := resolveMarginVertical(s.MarginTop(), cb.Width, rc)
	marginBottom := resolveMarginVertical(s.MarginBottom(), cb.Width, rc)

	paddingTop := dimen.FromPx(value.ResolveLengthPercentage(s.PaddingTop(), cb.Width.Px(), rc))
	contentOrigin := dimen.Point{
		X: origin.X + hz.MarginLeft + hz.BorderLeft + hz.PaddingLeft,
		Y: origin.Y + marginTop + effectiveBorderWidth(s.BorderTopStyle(), s.BorderTopWidth()) + paddingTop,
	}

	childCB := ContainingBlock{Width: hz.ContentWidth}
	if h, ok := s.Height().Get(); ok && (!h.IsPercentage || cb.HeightIsDefinite) {
		childCB.Height = dimen.FromPx(value.ResolveLengthPercentage(h, cb.Height.Px(), rc))
		childCB.HeightIsDefinite = true
	}

	children, autoHeight, absolutes := e.layoutContainer(box.Content, childCB, contentOrigin)
	contentHeight := resolveHeight(s, cb, rc, autoHeight)

	areas := computeBoxAreas(s, origin, marginTop, hz.MarginLeft, hz.MarginRight, marginBottom, hz.ContentWidth, contentHeight, cb, rc)
	ownCB := ContainingBlock{Width: hz.ContentWidth, Height: contentHeight, HeightIsDefinite: true}
	children = append(children, e.layoutAbsolutes(absolutes, ownCB)...)

	frag := fragment.NewBoxFragment(s, box.Node, areas.margin, areas.border, areas.padding, areas.content, children)
	return frag, areas.margin.Size.H, nil
}

// layoutReplaced sizes a replaced element: an intrinsic size (spec.md
// §6's IntrinsicSize) is used when width/height are auto, falling back
// to the 300×150 default (spec.md §4.7).
func (e *Engine) layoutReplaced(box boxtree.BlockLevelBox, cb ContainingBlock, origin dimen.Point, rc value.ResolutionContext) fragment.Fragment {
	s := box.Style
	width, height := float64(defaultReplacedWidth), float64(defaultReplacedHeight)
	if w, h, ok := box.Node.IntrinsicSize(); ok {
		width, height = w, h
	}
	if wv, ok := s.Width().Get(); ok {
		width = value.ResolveLengthPercentage(wv, cb.Width.Px(), rc)
	}
	if hv, ok := s.Height().Get(); ok {
		height = value.ResolveLengthPercentage(hv, cb.Height.Px(), rc)
	}

	marginTop := resolveMarginVertical(s.MarginTop(), cb.Width, rc)
	marginBottom := resolveMarginVertical(s.MarginBottom(), cb.Width, rc)
	marginLeft := resolveMarginVertical(s.MarginLeft(), cb.Width, rc)
	marginRight := resolveMarginVertical(s.MarginRight(), cb.Width, rc)

	areas := computeBoxAreas(s, origin, marginTop, marginLeft, marginRight, marginBottom, dimen.FromPx(width), dimen.FromPx(height), cb, rc)
	return fragment.NewBoxFragment(s, box.Node, areas.margin, areas.border, areas.padding, areas.content, nil)
}

// layoutAbsolutes resolves absolutely-positioned boxes once the
// containing block they were collected under is sized. Every block box
// is treated as establishing the containing block for its own
// absolutely-positioned descendants — an approximation of "nearest
// positioned ancestor" recorded as an Open Question decision in
// DESIGN.md.
func (e *Engine) layoutAbsolutes(pending []pendingAbsolute, cb ContainingBlock) []fragment.Fragment {
	frags := make([]fragment.Fragment, 0, len(pending))
	for _, p := range pending {
		// layoutBlockBox resolves any of its own descendants'
		// absolutely-positioned boxes internally (it always returns a
		// nil pendingAbsolute slice), so there is nothing left to
		// bubble up here.
		frag, _, _ := e.layoutBlockBox(p.box, cb, p.origin)
		frags = append(frags, frag)
	}
	return frags
}
