/*
Package selector implements a Selectors Level 4 subset: parsing a selector
prelude's token run into a List, computing specificity, and
matching a ComplexSelector against a target DOM element right-to-left.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.selector'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.selector")
}
