package platform

import (
	"fmt"
	"math"
	"os"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTFont is a FontFace backed by a real parsed SFNT/TrueType font,
// measuring actual advance widths and vertical metrics rather than
// approximating them. It stops short of shaping or rasterization
// (spec.md §6, out of scope): only the measurements layout needs.
//
// Grounded on core/locate/resources/resolve.go's FindLocalFont, which
// resolves a font-family name to a file path via the same
// github.com/flopp/go-findfont lookup NewSFNTFontByFamily uses here.
type SFNTFont struct {
	font   *sfnt.Font
	buffer sfnt.Buffer
}

// NewSFNTFont parses font file data into an SFNTFont.
func NewSFNTFont(data []byte) (*SFNTFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("platform: parsing SFNT font: %w", err)
	}
	return &SFNTFont{font: f}, nil
}

// NewSFNTFontByFamily resolves family to a font file installed on the
// host system (via github.com/flopp/go-findfont, the same library
// core/locate/resources/resolve.go's FindLocalFont falls back to) and
// parses it.
func NewSFNTFontByFamily(family string) (*SFNTFont, error) {
	path, err := findfont.Find(family)
	if err != nil {
		return nil, fmt.Errorf("platform: locating system font %q: %w", family, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("platform: reading font file %q: %w", path, err)
	}
	return NewSFNTFont(data)
}

func ppem(sizePx float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(sizePx * 64))
}

func fixedToPx(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ComputeRenderedWidth sums each rune's glyph advance at the given pixel
// size, falling back to zero width for glyphs the font has no outline
// for (e.g. unmapped runes) rather than failing the whole measurement.
func (f *SFNTFont) ComputeRenderedWidth(text string, sizePx float64) float64 {
	size := ppem(sizePx)
	var total float64
	for _, r := range text {
		idx, err := f.font.GlyphIndex(&f.buffer, r)
		if err != nil {
			continue
		}
		adv, err := f.font.GlyphAdvance(&f.buffer, idx, size, font.HintingNone)
		if err != nil {
			continue
		}
		total += fixedToPx(adv)
	}
	return total
}

func (f *SFNTFont) Metrics(sizePx float64) FontMetrics {
	m, err := f.font.Metrics(&f.buffer, ppem(sizePx), font.HintingNone)
	if err != nil {
		// Fall back to the same em-fraction approximation MonospaceFont
		// uses; a metrics lookup failure shouldn't abort layout.
		return FontMetrics{AscentPx: 0.8 * sizePx, DescentPx: 0.2 * sizePx}
	}
	return FontMetrics{
		AscentPx:  fixedToPx(m.Ascent),
		DescentPx: fixedToPx(m.Descent),
		LineGapPx: fixedToPx(m.Height) - fixedToPx(m.Ascent) - fixedToPx(m.Descent),
	}
}
