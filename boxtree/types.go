package boxtree

import (
	"corebrowser/css/style"
	"corebrowser/dom"
)

// BlockContainer is the "BlockLevelBoxes([BlockLevelBox]) |
// InlineFormattingContext(IFC)" sum type from spec.md §3, following the
// same plain-struct-with-discriminant idiom css/value uses for AutoOr
// and PercentageOr.
type BlockContainer struct {
	IsIFC bool
	Boxes []BlockLevelBox // meaningful when !IsIFC
	IFC   IFC             // meaningful when IsIFC
}

// BlockBoxes constructs the BlockLevelBoxes variant.
func BlockBoxes(boxes []BlockLevelBox) BlockContainer {
	return BlockContainer{Boxes: boxes}
}

// InlineContext constructs the InlineFormattingContext variant.
func InlineContext(ifc IFC) BlockContainer {
	return BlockContainer{IsIFC: true, IFC: ifc}
}

// Empty reports whether the container holds no content at all.
func (c BlockContainer) Empty() bool {
	if c.IsIFC {
		return len(c.IFC) == 0
	}
	return len(c.Boxes) == 0
}

// BlockLevelBoxKind discriminates the BlockLevelBox sum type: InFlow,
// Float, or AbsolutelyPositioned (spec.md §3).
type BlockLevelBoxKind uint8

const (
	InFlow BlockLevelBoxKind = iota
	Float
	AbsolutelyPositioned
)

// BlockLevelBox is a block-level box: an InFlowBlockBox, a
// FloatingBox{side}, or an AbsolutelyPositionedBox, distinguished by
// Kind (spec.md §3, §4.6). Node is nil for anonymous boxes (spec.md
// invariant 2: anonymous block boxes wrap an orphaned inline run, not a
// real DOM element).
type BlockLevelBox struct {
	Kind      BlockLevelBoxKind
	Style     *style.ComputedStyle
	Node      dom.Node
	Content   BlockContainer
	FloatSide style.FloatType // meaningful when Kind == Float
}

// IsAnonymous reports whether this box was synthesized by the builder
// rather than corresponding to a real DOM element (spec.md invariant 2).
func (b BlockLevelBox) IsAnonymous() bool {
	return b.Node == nil
}

// IFC is an inline formatting context: an ordered run of InlineLevelBox
// (spec.md §3, §4.7).
type IFC []InlineLevelBox

// InlineLevelBoxKind discriminates the InlineLevelBox sum type: an
// InlineBox (has children, may itself be split across block siblings)
// or a TextRun (a leaf carrying literal text).
type InlineLevelBoxKind uint8

const (
	InlineBoxKind InlineLevelBoxKind = iota
	TextRunKind
)

// InlineLevelBox is either an InlineBox{style, node, children} or a
// TextRun{text, style} (spec.md §3), distinguished by Kind.
type InlineLevelBox struct {
	Kind     InlineLevelBoxKind
	Style    *style.ComputedStyle
	Node     dom.Node         // meaningful when Kind == InlineBoxKind
	Children []InlineLevelBox // meaningful when Kind == InlineBoxKind
	Text     string           // meaningful when Kind == TextRunKind
}

func newTextRun(text string, computedStyle *style.ComputedStyle) InlineLevelBox {
	return InlineLevelBox{Kind: TextRunKind, Style: computedStyle, Text: text}
}
