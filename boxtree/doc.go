/*
Package boxtree builds a CSS box tree from a DOM subtree and its computed
styles: block-level boxes, anonymous box insertion, and inline/block
splitting (spec.md §4.6).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.boxtree")
}
