package layout

import (
	"strings"

	"corebrowser/boxtree"
	"corebrowser/core/dimen"
	"corebrowser/css/style"
	"corebrowser/fragment"
	"corebrowser/platform"
)

// inlineAtom is a single whitespace-delimited word within an inline
// formatting context, already measured against its own style's
// font-size (spec.md §4.7: the LineBreakIterator advances word by word).
type inlineAtom struct {
	text  string
	style *style.ComputedStyle
	width float64 // px
}

// flattenIFC walks an inline formatting context depth-first and splits
// every TextRun into its whitespace-separated words, discarding
// collapsible whitespace entirely (white-space:normal semantics).
// Grounded on the break-opportunity enumeration in
// original_source/crates/web/src/css/line_break.rs, simplified here to
// whitespace-only break points per spec.md's explicit wording.
func (e *Engine) flattenIFC(ifc boxtree.IFC) []inlineAtom {
	var atoms []inlineAtom
	var walk func(boxes []boxtree.InlineLevelBox)
	walk = func(boxes []boxtree.InlineLevelBox) {
		for _, b := range boxes {
			switch b.Kind {
			case boxtree.TextRunKind:
				atoms = append(atoms, e.wordsOf(b.Text, b.Style)...)
			case boxtree.InlineBoxKind:
				walk(b.Children)
			}
		}
	}
	walk(ifc)
	return atoms
}

func (e *Engine) wordsOf(text string, s *style.ComputedStyle) []inlineAtom {
	fields := strings.Fields(text)
	atoms := make([]inlineAtom, 0, len(fields))
	sizePx := s.FontSizePx().Px()
	for _, word := range fields {
		atoms = append(atoms, inlineAtom{text: word, style: s, width: e.renderedWidth(word, sizePx)})
	}
	return atoms
}

func (e *Engine) renderedWidth(text string, sizePx float64) float64 {
	if e.FontFace == nil {
		return float64(len([]rune(text))) * 0.6 * sizePx
	}
	return e.FontFace.ComputeRenderedWidth(text, sizePx)
}

func (e *Engine) spaceWidth(s *style.ComputedStyle) float64 {
	return e.renderedWidth(" ", s.FontSizePx().Px())
}

func (e *Engine) metricsFor(s *style.ComputedStyle) platform.FontMetrics {
	sizePx := s.FontSizePx().Px()
	if e.FontFace == nil {
		return platform.FontMetrics{AscentPx: 0.8 * sizePx, DescentPx: 0.2 * sizePx}
	}
	return e.FontFace.Metrics(sizePx)
}

// layoutInline breaks ifc into greedily-packed line boxes and positions
// each word's text fragment (spec.md §4.7): a line is emitted when
// adding the next word would exceed the available width, breaking at
// the last whitespace opportunity; a single word wider than the
// available width is still placed on its own line rather than being
// split (spec.md §8 testable property 7).
func (e *Engine) layoutInline(ifc boxtree.IFC, availableWidth dimen.DU, origin dimen.Point) ([]fragment.Fragment, dimen.DU) {
	atoms := e.flattenIFC(ifc)
	if len(atoms) == 0 {
		return nil, 0
	}
	avail := availableWidth.Px()

	var lines [][]inlineAtom
	var current []inlineAtom
	x := 0.0
	for _, atom := range atoms {
		advance := atom.width
		if len(current) > 0 {
			advance += e.spaceWidth(current[len(current)-1].style)
		}
		if len(current) > 0 && x+advance > avail {
			lines = append(lines, current)
			current = []inlineAtom{atom}
			x = atom.width
			continue
		}
		current = append(current, atom)
		x += advance
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	var frags []fragment.Fragment
	y := dimen.Zero
	for _, line := range lines {
		metrics := e.lineMetrics(line)
		lineHeight := dimen.FromPx(metrics.AscentPx + metrics.DescentPx + metrics.LineGapPx)
		cursorX := origin.X
		for i, atom := range line {
			if i > 0 {
				cursorX += dimen.FromPx(e.spaceWidth(line[i-1].style))
			}
			area := dimen.Rect{
				Origin: dimen.Point{X: cursorX, Y: origin.Y + y},
				Size:   dimen.Size{W: dimen.FromPx(atom.width), H: lineHeight},
			}
			frags = append(frags, fragment.NewTextFragment(atom.text, area, atom.style.TextColor(), e.metricsFor(atom.style)))
			cursorX += dimen.FromPx(atom.width)
		}
		y += lineHeight
	}
	return frags, y
}

func (e *Engine) lineMetrics(line []inlineAtom) platform.FontMetrics {
	var m platform.FontMetrics
	for _, atom := range line {
		fm := e.metricsFor(atom.style)
		m.AscentPx = max(m.AscentPx, fm.AscentPx)
		m.DescentPx = max(m.DescentPx, fm.DescentPx)
		m.LineGapPx = max(m.LineGapPx, fm.LineGapPx)
	}
	return m
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
