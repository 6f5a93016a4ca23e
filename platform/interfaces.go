package platform

import (
	"context"

	"corebrowser/core/dimen"
	"corebrowser/css/value"
)

// ResourceLoader fetches an external resource (a stylesheet, an image)
// by URL. Network access itself is out of scope (spec.md's Non-goals);
// this interface is what document wiring is coded against.
type ResourceLoader interface {
	Fetch(ctx context.Context, url string) (Resource, error)
}

// Resource is a fetched resource's raw bytes plus the metadata needed to
// interpret them.
type Resource struct {
	Bytes   []byte
	MIME    string
	Headers map[string]string
}

// FontMetrics carries the vertical measurements layout needs to place a
// line box: ascent/descent above/below the baseline, and the
// recommended extra gap between lines.
type FontMetrics struct {
	AscentPx, DescentPx, LineGapPx float64
}

// FontFace measures text for a given font at a given pixel size. Actual
// glyph rasterization and shaping are out of scope (spec.md §6); layout
// only ever needs advance widths and vertical metrics.
type FontFace interface {
	ComputeRenderedWidth(text string, sizePx float64) float64
	Metrics(sizePx float64) FontMetrics
}

// Painter is the display-list sink the fragment tree feeds (spec.md
// §4.8); painting itself (rasterization, compositing) is out of scope.
type Painter interface {
	Rect(area dimen.Rect, color value.Color)
	Text(s string, pos dimen.Point, color value.Color, metrics FontMetrics)
	PaintMagicBackground(viewport dimen.Rect, color value.Color)
}
