package fragment

import (
	"corebrowser/core/dimen"
	"corebrowser/css/style"
	"corebrowser/css/value"
	"corebrowser/dom"
	"corebrowser/platform"
)

// Paint walks root depth-first and feeds painter the display list
// spec.md §4.8 describes: the magic background first, then for every
// fragment, its own background fill, its borders, its text, then its
// children. Fragment coordinates are absolute (layout already baked every
// offset into each fragment's Area/ContentArea), so no running offset is
// carried; Paint only recurses in paint order.
func Paint(root Fragment, viewport dimen.Rect, painter platform.Painter) {
	color, promoted := magicBackgroundColor(root)
	tracer().Debugf("fragment: magic background promoted from %v", promoted)
	painter.PaintMagicBackground(viewport, color)
	paint(root, painter, promoted)
}

// magicBackgroundColor implements spec.md §4.8's HTML-root/body rule: if
// the root element paints a background, it covers the whole viewport;
// else the (first) body descendant's background is promoted instead.
// promoted identifies the fragment whose background was already painted
// as the magic background, so paint doesn't fill it a second time.
func magicBackgroundColor(root Fragment) (value.Color, dom.Node) {
	if root.Kind == BoxKind && !isTransparent(root.Style.BackgroundColor()) {
		return root.Style.BackgroundColor(), root.Node
	}
	if body, ok := findBody(root); ok {
		return body.Style.BackgroundColor(), body.Node
	}
	return value.Color{}, nil
}

func findBody(f Fragment) (Fragment, bool) {
	if f.Kind == BoxKind && f.Node != nil && f.Node.LocalName() == "body" {
		return f, true
	}
	for _, child := range f.Children {
		if found, ok := findBody(child); ok {
			return found, true
		}
	}
	return Fragment{}, false
}

func isTransparent(c value.Color) bool {
	return c.A == 0
}

func paint(f Fragment, painter platform.Painter, magicSource dom.Node) {
	switch f.Kind {
	case TextKind:
		painter.Text(f.Text, f.Area.Origin, f.Color, f.Metrics)
	case BoxKind:
		if f.Node == nil || f.Node != magicSource {
			if !isTransparent(f.Style.BackgroundColor()) {
				painter.Rect(f.PaddingArea, f.Style.BackgroundColor())
			}
		}
		paintBorders(f, painter)
		for _, child := range f.Children {
			paint(child, painter, magicSource)
		}
	}
}

// paintBorders emits the top/right/bottom/left border rectangles,
// skipping edges styled `none`/`hidden` (spec.md §4.8).
func paintBorders(f Fragment, painter platform.Painter) {
	s := f.Style
	border, padding := f.BorderArea, f.PaddingArea

	if paints(s.BorderTopStyle()) {
		top := dimen.Rect{
			Origin: border.Origin,
			Size:   dimen.Size{W: border.Size.W, H: padding.Origin.Y - border.Origin.Y},
		}
		painter.Rect(top, s.BorderTopColor())
	}
	if paints(s.BorderRightStyle()) {
		right := dimen.Rect{
			Origin: dimen.Point{X: padding.Right(), Y: border.Origin.Y},
			Size:   dimen.Size{W: border.Right() - padding.Right(), H: border.Size.H},
		}
		painter.Rect(right, s.BorderRightColor())
	}
	if paints(s.BorderBottomStyle()) {
		bottom := dimen.Rect{
			Origin: dimen.Point{X: border.Origin.X, Y: padding.Bottom()},
			Size:   dimen.Size{W: border.Size.W, H: border.Bottom() - padding.Bottom()},
		}
		painter.Rect(bottom, s.BorderBottomColor())
	}
	if paints(s.BorderLeftStyle()) {
		left := dimen.Rect{
			Origin: border.Origin,
			Size:   dimen.Size{W: padding.Origin.X - border.Origin.X, H: border.Size.H},
		}
		painter.Rect(left, s.BorderLeftColor())
	}
}

func paints(bs style.BorderStyle) bool {
	return bs != style.BorderStyleNone && bs != style.BorderStyleHidden
}
