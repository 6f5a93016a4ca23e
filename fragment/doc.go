/*
Package fragment defines the paintable output of layout — a tree of
Box and Text fragments in device-pixel coordinates — and walks it to
feed an external painter (spec.md §4.8).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fragment

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'corebrowser.fragment'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.fragment")
}
