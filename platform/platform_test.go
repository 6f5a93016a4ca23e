package platform

import (
	"context"
	"testing"

	"corebrowser/core/dimen"
	"corebrowser/css/value"

	"github.com/stretchr/testify/assert"
)

func TestMonospaceFontWidthScalesWithRuneCountAndSize(t *testing.T) {
	f := MonospaceFont{}
	assert.Equal(t, 0.0, f.ComputeRenderedWidth("", 16))
	w := f.ComputeRenderedWidth("abc", 16)
	assert.InDelta(t, 3*0.6*16, w, 0.0001)
}

func TestMonospaceFontCountsRunesNotBytes(t *testing.T) {
	f := MonospaceFont{}
	ascii := f.ComputeRenderedWidth("abc", 16)
	multibyte := f.ComputeRenderedWidth("日本語", 16) // 3 runes, 9 bytes
	assert.InDelta(t, ascii, multibyte, 0.0001)
}

func TestMonospaceFontCustomAdvanceRatio(t *testing.T) {
	f := MonospaceFont{AdvanceRatio: 1.0}
	assert.InDelta(t, 16.0, f.ComputeRenderedWidth("a", 16), 0.0001)
}

func TestMonospaceFontMetrics(t *testing.T) {
	f := MonospaceFont{}
	m := f.Metrics(20)
	assert.InDelta(t, 16.0, m.AscentPx, 0.0001)
	assert.InDelta(t, 4.0, m.DescentPx, 0.0001)
}

func TestNewSFNTFontRejectsInvalidData(t *testing.T) {
	_, err := NewSFNTFont([]byte("not a font"))
	assert.Error(t, err)
}

// fakePainter and fakeLoader exist purely so the interface shapes are
// exercised by a compile-time check; the pipeline supplies real ones.
type fakePainter struct{ rects, texts, backgrounds int }

func (p *fakePainter) Rect(dimen.Rect, value.Color)                            { p.rects++ }
func (p *fakePainter) Text(string, dimen.Point, value.Color, FontMetrics)      { p.texts++ }
func (p *fakePainter) PaintMagicBackground(dimen.Rect, value.Color)           { p.backgrounds++ }

type fakeLoader struct{}

func (fakeLoader) Fetch(ctx context.Context, url string) (Resource, error) {
	return Resource{Bytes: []byte(url)}, nil
}

func TestPainterAndResourceLoaderInterfacesAreSatisfiable(t *testing.T) {
	var p Painter = &fakePainter{}
	var l ResourceLoader = fakeLoader{}

	p.Rect(dimen.Rect{}, value.Color{})
	p.Text("x", dimen.Point{}, value.Color{}, FontMetrics{})
	p.PaintMagicBackground(dimen.Rect{}, value.Color{})

	res, err := l.Fetch(context.Background(), "x://y")
	assert.NoError(t, err)
	assert.Equal(t, "x://y", string(res.Bytes))

	fp := p.(*fakePainter)
	assert.Equal(t, 1, fp.rects)
	assert.Equal(t, 1, fp.texts)
	assert.Equal(t, 1, fp.backgrounds)
}
