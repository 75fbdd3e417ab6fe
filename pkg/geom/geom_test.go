package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Dist(t *testing.T) {
	assert.InDelta(t, 5.0, V(0, 0).Dist(V(3, 4)), 1e-9)
	assert.InDelta(t, 0.0, V(7, 7).Dist(V(7, 7)), 1e-9)
}

func TestVec2Normalized(t *testing.T) {
	n := V(10, 0).Normalized()
	assert.InDelta(t, 1.0, n.X, 1e-9)
	assert.InDelta(t, 0.0, n.Y, 1e-9)

	assert.True(t, V(0, 0).Normalized().IsZero())
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 32, H: 32}
	assert.True(t, r.Contains(V(0, 0)))
	assert.True(t, r.Contains(V(31.9, 31.9)))
	assert.False(t, r.Contains(V(32, 10)))

	assert.True(t, r.Intersects(Rect{X: 31, Y: 31, W: 5, H: 5}))
	assert.False(t, r.Intersects(Rect{X: 32, Y: 0, W: 5, H: 5}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(42, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
}
