package document

import (
	"corebrowser/boxtree"
	"corebrowser/css/cascade"
	"corebrowser/css/style"
	"corebrowser/dom"
	"corebrowser/fragment"
	"corebrowser/layout"
	"corebrowser/platform"

	"github.com/google/uuid"
)

// Document is a single render of a DOM tree against a set of
// stylesheets: the entry point the rest of §4's pipeline stages are
// wired behind (spec.md §4: "tokenizer → parser → selector engine →
// cascade → style resolver → box-tree builder → layout engine →
// fragment tree & painter feed").
//
// Box trees and fragment trees are rebuilt on every Render call; spec.md
// §5 treats any DOM or stylesheet change as invalidating the whole
// document conservatively rather than tracking fine-grained dirtiness.
type Document struct {
	// ID is a stable per-Document debug identity, useful for
	// correlating trace output across re-renders of the same document.
	ID uuid.UUID

	Root   dom.Node
	Sheets []cascade.Sheet

	FontFace                      platform.FontFace
	RootFontSizePx                float64
	ViewportWidth, ViewportHeight float64
}

// New constructs a Document with a fresh debug identity.
func New(root dom.Node, sheets []cascade.Sheet, fontFace platform.FontFace, rootFontSizePx, viewportW, viewportH float64) *Document {
	return &Document{
		ID:              uuid.New(),
		Root:            root,
		Sheets:          sheets,
		FontFace:        fontFace,
		RootFontSizePx:  rootFontSizePx,
		ViewportWidth:   viewportW,
		ViewportHeight:  viewportH,
	}
}

// Render runs the full pipeline — cascade, box-tree construction, then
// layout — and returns the root fragment, ready for fragment.Paint.
func (d *Document) Render() fragment.Fragment {
	tracer().Debugf("document %s: rendering against viewport %gx%g", d.ID, d.ViewportWidth, d.ViewportHeight)
	computer := cascade.NewStyleComputer(d.Sheets)
	tree := boxtree.BuildBoxTree(d.Root, computer, d.RootFontSizePx, d.ViewportWidth, d.ViewportHeight)
	engine := layout.NewEngine(d.FontFace, d.RootFontSizePx, d.ViewportWidth, d.ViewportHeight)
	return engine.LayoutDocument(tree, style.Initial())
}

// Viewport returns the document's viewport as a device-pixel rectangle,
// the area fragment.Paint's magic background covers.
func (d *Document) Viewport() (w, h float64) {
	return d.ViewportWidth, d.ViewportHeight
}
