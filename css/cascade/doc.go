/*
Package cascade implements the CSS cascade (spec.md §4.4): collecting
every declaration whose selector matches an element across all loaded
stylesheets, bucketing by origin and importance, and sorting within each
bucket by specificity then source order to decide, for each property,
which declared value wins. Winners feed css/style.Resolve to produce the
element's ComputedStyle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.cascade")
}
