package dom

import "strings"

// Kind tags the variant of a Node (spec.md §6).
type Kind int

const (
	Element Kind = iota
	Text
	Comment
	Document
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Document:
		return "document"
	}
	return "?"
}

// Node is the consumer contract the rest of the pipeline (selector
// matching, cascade, box-tree building) is built against, independent of
// how a document tree was produced (spec.md §6).
type Node interface {
	Kind() Kind
	LocalName() string // only meaningful for Element
	Namespace() string
	Attribute(name string) (string, bool)
	Children() []Node
	Parent() Node
	TextContent() string // only meaningful for Text
	IntrinsicSize() (w, h float64, ok bool)
}

// element is the in-memory Node implementation. NewDocument/NewElement/
// NewText/NewComment construct each kind.
type element struct {
	kind      Kind
	localName string
	namespace string
	attrs     map[string]string
	text      string

	parent   *element
	children []*element

	intrinsicW, intrinsicH float64
	hasIntrinsicSize       bool
}

// NewDocument returns the root node of a fresh, empty document.
func NewDocument() Node {
	return &element{kind: Document}
}

// NewElement constructs a detached Element node. attrs may be nil.
func NewElement(localName, namespace string, attrs map[string]string) Node {
	a := make(map[string]string, len(attrs))
	for k, v := range attrs {
		a[strings.ToLower(k)] = v
	}
	return &element{kind: Element, localName: localName, namespace: namespace, attrs: a}
}

// NewText constructs a detached Text node.
func NewText(text string) Node {
	return &element{kind: Text, text: text}
}

// NewComment constructs a detached Comment node.
func NewComment(text string) Node {
	return &element{kind: Comment, text: text}
}

// AppendChild attaches child to parent, detaching it from any previous
// parent first. Only Node values produced by this package are accepted;
// the panic on a foreign implementation is a programmer error, not a
// runtime condition callers are expected to handle.
func AppendChild(parent, child Node) {
	p, ok := parent.(*element)
	if !ok {
		panic("dom: AppendChild: parent is not a node produced by this package")
	}
	c, ok := child.(*element)
	if !ok {
		panic("dom: AppendChild: child is not a node produced by this package")
	}
	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = p
	p.children = append(p.children, c)
}

func (p *element) removeChild(c *element) {
	for i, ch := range p.children {
		if ch == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// SetIntrinsicSize records a replaced element's intrinsic dimensions
// (e.g. an image's natural width/height), consumed by layout's
// replaced-element sizing (spec.md §4.7).
func SetIntrinsicSize(n Node, w, h float64) {
	e, ok := n.(*element)
	if !ok {
		panic("dom: SetIntrinsicSize: not a node produced by this package")
	}
	e.intrinsicW, e.intrinsicH, e.hasIntrinsicSize = w, h, true
}

func (e *element) Kind() Kind         { return e.kind }
func (e *element) LocalName() string  { return e.localName }
func (e *element) Namespace() string  { return e.namespace }
func (e *element) TextContent() string {
	if e.kind == Text || e.kind == Comment {
		return e.text
	}
	var sb strings.Builder
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

func (e *element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

func (e *element) Children() []Node {
	out := make([]Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *element) IntrinsicSize() (w, h float64, ok bool) {
	return e.intrinsicW, e.intrinsicH, e.hasIntrinsicSize
}
