/*
Package dom defines the opaque DOM consumer contract the CSS pipeline is
built against (spec.md §6) — a minimal Node interface plus an in-memory
implementation of it. Nothing downstream of this package depends on how a
document was parsed; document/html parsing itself is out of scope
(spec.md's Non-goals).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.dom'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.dom")
}
