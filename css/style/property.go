package style

// PropertyID enumerates the minimum supported property set from spec.md
// §3.
type PropertyID uint8

const (
	Display PropertyID = iota
	Position
	Width
	Height
	MinWidth
	MaxWidth
	MinHeight
	MaxHeight
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderTopStyle
	BorderRightStyle
	BorderBottomStyle
	BorderLeftStyle
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	Color
	BackgroundColor
	FontSize
	FontFamily
	Float
	Cursor

	numProperties
)

var propertyNames = map[string]PropertyID{
	"display":              Display,
	"position":             Position,
	"width":                Width,
	"height":               Height,
	"min-width":            MinWidth,
	"max-width":            MaxWidth,
	"min-height":           MinHeight,
	"max-height":           MaxHeight,
	"margin-top":           MarginTop,
	"margin-right":         MarginRight,
	"margin-bottom":        MarginBottom,
	"margin-left":          MarginLeft,
	"padding-top":          PaddingTop,
	"padding-right":        PaddingRight,
	"padding-bottom":       PaddingBottom,
	"padding-left":         PaddingLeft,
	"border-top-width":     BorderTopWidth,
	"border-right-width":   BorderRightWidth,
	"border-bottom-width":  BorderBottomWidth,
	"border-left-width":    BorderLeftWidth,
	"border-top-style":     BorderTopStyle,
	"border-right-style":   BorderRightStyle,
	"border-bottom-style":  BorderBottomStyle,
	"border-left-style":    BorderLeftStyle,
	"border-top-color":     BorderTopColor,
	"border-right-color":   BorderRightColor,
	"border-bottom-color":  BorderBottomColor,
	"border-left-color":    BorderLeftColor,
	"color":                Color,
	"background-color":     BackgroundColor,
	// The "background" shorthand is accepted for its color component only;
	// any other value form fails to decode as a color and is dropped.
	"background":           BackgroundColor,
	"font-size":            FontSize,
	"font-family":          FontFamily,
	"float":                Float,
	"cursor":               Cursor,
}

// LookupProperty resolves a lower-cased CSS property name to a
// PropertyID. ok is false for an unsupported property (spec.md §11:
// only the listed subset is required; everything else is dropped
// silently by the cascade).
func LookupProperty(name string) (PropertyID, bool) {
	id, ok := propertyNames[name]
	return id, ok
}

// inheritedProperties is the set of properties that inherit by default
// (spec.md §3, §4.5), grounded on the teacher's own non-inherited set in
// engine/dom/style/defaults.go (there: display/position/flow-from/
// flow-into are non-inherited; here the same idea is generalized to the
// full CSS inheritance table: color/font-size/font-family/cursor inherit,
// the box model and display/position do not).
var inheritedProperties = map[PropertyID]bool{
	Color:      true,
	FontSize:   true,
	FontFamily: true,
	Cursor:     true,
}

// IsInherited reports whether p is in the inherited property group.
func (p PropertyID) IsInherited() bool {
	return inheritedProperties[p]
}
