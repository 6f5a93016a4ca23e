package dom

import (
	"strings"

	"corebrowser/css/selector"
)

// AsSelectable adapts a Node into a css/selector.Element. A dedicated
// wrapper type is needed rather than having *element implement
// selector.Element directly: selector.Element.Parent() and
// Node.Parent() share a name but return different interface types
// (selector.Element vs. Node), which a single Go method cannot satisfy
// simultaneously. Wrapping keeps css/selector itself free of any
// dependency on this package (selector.Element only ever sees this
// adapter, never a dom.Node).
func AsSelectable(n Node) selector.Element {
	if n == nil {
		return nil
	}
	return selectable{n}
}

type selectable struct {
	n Node
}

func (s selectable) TagName() string {
	return strings.ToLower(s.n.LocalName())
}

func (s selectable) ID() string {
	v, _ := s.n.Attribute("id")
	return v
}

func (s selectable) ClassList() []string {
	v, ok := s.n.Attribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

func (s selectable) Attr(name string) (string, bool) {
	return s.n.Attribute(name)
}

func (s selectable) Parent() selector.Element {
	return AsSelectable(s.n.Parent())
}

func (s selectable) PrecedingSibling() selector.Element {
	parent := s.n.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children()
	for i, sib := range siblings {
		if sib == s.n {
			if i == 0 {
				return nil
			}
			return AsSelectable(siblings[i-1])
		}
	}
	return nil
}
