package platform

import "unicode/utf8"

// MonospaceFont is a FontFace approximation requiring no system font
// lookup: every rune advances by a fixed fraction of the font size, and
// vertical metrics are the common 0.8/0.2/0.0 em ascent/descent/line-gap
// ratios. Useful for tests and for embedders with no font subsystem
// wired up yet.
type MonospaceFont struct {
	// AdvanceRatio is the advance width per rune, as a fraction of the
	// pixel size. 0 defaults to 0.6, a typical monospace aspect ratio.
	AdvanceRatio float64
}

func (f MonospaceFont) advanceRatio() float64 {
	if f.AdvanceRatio <= 0 {
		return 0.6
	}
	return f.AdvanceRatio
}

// ComputeRenderedWidth counts runes, not bytes, so multi-byte UTF-8 text
// is measured correctly.
func (f MonospaceFont) ComputeRenderedWidth(text string, sizePx float64) float64 {
	return float64(utf8.RuneCountInString(text)) * f.advanceRatio() * sizePx
}

func (f MonospaceFont) Metrics(sizePx float64) FontMetrics {
	return FontMetrics{
		AscentPx:  0.8 * sizePx,
		DescentPx: 0.2 * sizePx,
		LineGapPx: 0,
	}
}
