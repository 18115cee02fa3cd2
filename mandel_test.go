package mandelgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeIterInterior(t *testing.T) {
	// The origin never escapes; neither do these well-known interior points.
	interior := [][2]float64{
		{0, 0},
		{-0.5, 0},
		{-1, 0},
		{-0.1, 0.1},
	}
	for _, p := range interior {
		assert.Equal(t, MaxIter, EscapeIter(p[0], p[1], MaxIter), "point (%v, %v)", p[0], p[1])
		assert.True(t, InSet(p[0], p[1]), "point (%v, %v)", p[0], p[1])
	}
}

func TestEscapeIterExterior(t *testing.T) {
	exterior := [][2]float64{
		{2, 2},
		{1, 1.5},
		{-2, -1.5},
		{1.5, 0},
	}
	for _, p := range exterior {
		iter := EscapeIter(p[0], p[1], MaxIter)
		assert.Less(t, iter, MaxIter, "point (%v, %v)", p[0], p[1])
		assert.False(t, InSet(p[0], p[1]), "point (%v, %v)", p[0], p[1])
	}
}

func TestEscapeThresholdIsStrict(t *testing.T) {
	// c = -2 is a true member of the set, but its first iterate lands
	// exactly on |z|² = 4, which the strict < 4 test rejects. The bounded
	// test's verdict is the contract, so this stays out.
	assert.Equal(t, 1, EscapeIter(-2, 0, MaxIter))
	assert.False(t, InSet(-2, 0))

	// c = 1 walks 0, 1, 2 and is rejected on the same strict comparison.
	assert.Equal(t, 2, EscapeIter(1, 0, MaxIter))
}
