/*
Package platform defines the narrow-interface external collaborators the
CSS/layout pipeline is built against, but never implements fully itself:
resource loading, font measurement, and painting (spec.md §6). Two
FontFace implementations are provided — a monospace approximation usable
without any system dependency, and a real SFNT-backed one — but
rasterization, shaping and the display-list painter remain out of scope
(spec.md's Non-goals).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package platform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.platform'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.platform")
}
