/*
Package document ties the DOM, stylesheets, and the style/box/layout
pipeline stages together into a single render entry point (spec.md §4,
§6).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'corebrowser.document'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.document")
}
