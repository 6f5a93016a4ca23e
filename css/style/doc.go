/*
Package style implements computed-style resolution: turning a cascaded
declared value per property into a computed value, handling the CSS-wide
keywords (inherit/initial/unset/revert), unit absolutization, and
inheritance — spec.md §3 (ComputedStyle) and §4.5.

ComputedStyle is a flyweight of five shared groups (box, font, inherited,
surround, background); resolving a single property clones only the group
it belongs to, leaving the others shared with the parent's style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'corebrowser.css.style'.
func tracer() tracing.Trace {
	return tracing.Select("corebrowser.css.style")
}
