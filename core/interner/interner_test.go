package interner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternRoundTrip(t *testing.T) {
	a := Intern("color")
	b := Intern("color")
	assert.Equal(t, a, b)
	assert.Equal(t, "color", a.String())
}

func TestInternDistinctStrings(t *testing.T) {
	a := Intern("padding-top")
	b := Intern("padding-left")
	assert.NotEqual(t, a, b)
}

func TestInternEmpty(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.Equal(t, Empty, Intern(""))
}
