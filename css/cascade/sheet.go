package cascade

import "corebrowser/css/syntax"

// Origin is the cascade origin a stylesheet was loaded from (spec.md
// §4.1, §4.4).
type Origin uint8

const (
	OriginUserAgent Origin = iota
	OriginUser
	OriginAuthor
)

// Sheet pairs a parsed stylesheet with the origin and monotonic index the
// cascade needs for tie-breaking (spec.md §4.1: "each stylesheet carries
// an origin and a monotonic stylesheet index").
type Sheet struct {
	Stylesheet *syntax.Stylesheet
	Origin     Origin
	Index      int
}
