package layout

import "corebrowser/core/dimen"

// ContainingBlock is the sizing context a block-level box lays out
// against (spec.md §4.7): width is always definite; height is definite
// only when the box establishing it was itself given a definite height,
// since percentage heights resolve against it only in that case (spec.md
// §4.7 "Percentage resolution").
type ContainingBlock struct {
	Width            dimen.DU
	Height           dimen.DU
	HeightIsDefinite bool
}
