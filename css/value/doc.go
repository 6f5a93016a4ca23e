/*
Package value implements the CSS value types shared across style
resolution: lengths with their units, the AutoOr/PercentageOr sum types,
colors, and font-size keyword resolution — spec.md §3 and §4.5.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.value'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.value")
}
