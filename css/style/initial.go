package style

import (
	"corebrowser/core/dimen"
	"corebrowser/css/value"
)

// mediumBorderWidth is the UA-defined pixel width of the `medium`
// border-width keyword.
const mediumBorderWidth = 3 * dimen.PX

// Initial returns the ComputedStyle every property takes its `initial`
// keyword from (spec.md §4.5), and the starting point for the root
// element's style before any cascade is applied.
func Initial() *ComputedStyle {
	autoLen := value.Auto[value.PercentageOr[value.Length]]()
	zeroLen := value.OfValue[value.Length](value.Length{})
	return &ComputedStyle{
		box: &boxGroup{
			Display:  DisplayInline,
			Position: PositionStatic,
			Float:    FloatNone,
			Width:    autoLen,
			Height:   autoLen,
			MinWidth: zeroLen,
			MinHeight: zeroLen,
			MaxWidth:  value.Auto[value.PercentageOr[value.Length]](),
			MaxHeight: value.Auto[value.PercentageOr[value.Length]](),
		},
		surround: &surroundGroup{
			MarginTop: zeroLenAuto(), MarginRight: zeroLenAuto(),
			MarginBottom: zeroLenAuto(), MarginLeft: zeroLenAuto(),
			PaddingTop: zeroLen, PaddingRight: zeroLen,
			PaddingBottom: zeroLen, PaddingLeft: zeroLen,
			BorderTopWidth: mediumBorderWidth, BorderRightWidth: mediumBorderWidth,
			BorderBottomWidth: mediumBorderWidth, BorderLeftWidth: mediumBorderWidth,
			BorderTopStyle: BorderStyleNone, BorderRightStyle: BorderStyleNone,
			BorderBottomStyle: BorderStyleNone, BorderLeftStyle: BorderStyleNone,
			BorderTopColor: value.CurrentColorValue, BorderRightColor: value.CurrentColorValue,
			BorderBottomColor: value.CurrentColorValue, BorderLeftColor: value.CurrentColorValue,
		},
		background: &backgroundGroup{
			BackgroundColor: value.Color{}, // transparent
		},
		font: &fontGroup{
			FontSize:   dimen.FromPx(value.Medium.Px()),
			FontFamily: []string{"serif"},
		},
		inherited: &inheritedGroup{
			Color:  value.Opaque(0, 0, 0),
			Cursor: "auto",
		},
	}
}

func zeroLenAuto() value.AutoOr[value.PercentageOr[value.Length]] {
	return value.Is(value.OfValue[value.Length](value.Length{}))
}
