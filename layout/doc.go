/*
Package layout turns a box tree (package boxtree) into a fragment tree
(package fragment): it resolves the CSS box model for every block-level
box, breaks inline formatting contexts into line boxes, and positions
floats and absolutely-positioned boxes (spec.md §4.7).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'corebrowser.layout'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.layout")
}
