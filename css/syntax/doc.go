/*
Package syntax implements the CSS Syntax Module Level 3 parser: it consumes
a token.Tokenizer and produces a Stylesheet of qualified and at-rules,
recovering from malformed constructs per the grammar's "forgiving" error
handling rather than aborting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.syntax")
}
