/*
Package token implements the CSS Syntax Module Level 3 tokenizer: a lazy
producer turning a UTF-8 byte stream into a sequence of Tokens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.token'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.token")
}
