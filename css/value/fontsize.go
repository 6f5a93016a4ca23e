package value

// AbsoluteFontSize is the CSS absolute font-size keyword scale (spec.md
// §4.5: "Absolute keywords map via a fixed factor table against medium =
// 16px"). Grounded on
// original_source/.../style/specified/font_size.rs's 8-entry scale.
type AbsoluteFontSize uint8

const (
	XXSmall AbsoluteFontSize = iota
	XSmall
	Small
	Medium
	Large
	XLarge
	XXLarge
	XXXLarge
)

// MediumPx is the reference size `medium` keyword resolves to.
const MediumPx = 16.0

// factors are the exact scale ratios against medium, grounded on
// original_source/.../style/specified/font_size.rs.
var factors = [...]float64{
	XXSmall:  0.6,
	XSmall:   0.75,
	Small:    0.89,
	Medium:   1.00,
	Large:    1.20,
	XLarge:   1.50,
	XXLarge:  2.00,
	XXXLarge: 3.00,
}

// Px returns the pixel size this keyword resolves to.
func (a AbsoluteFontSize) Px() float64 {
	return factors[a] * MediumPx
}

var absoluteFontSizeNames = map[string]AbsoluteFontSize{
	"xx-small":  XXSmall,
	"x-small":   XSmall,
	"small":     Small,
	"medium":    Medium,
	"large":     Large,
	"x-large":   XLarge,
	"xx-large":  XXLarge,
	"xxx-large": XXXLarge,
}

// ParseAbsoluteFontSize resolves an absolute-size keyword's text.
func ParseAbsoluteFontSize(text string) (AbsoluteFontSize, bool) {
	a, ok := absoluteFontSizeNames[text]
	return a, ok
}

// RelativeFontSizeFactor is the scale factor `larger`/`smaller` apply to
// the inherited font-size (spec.md §4.5: "larger/smaller scale the
// inherited size by 1.2").
const RelativeFontSizeFactor = 1.2
