package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRects(t *testing.T) {
	start, finish := TokenRects(4, 8, 100)

	assert.InDelta(t, 27.5, start.Left, 1e-9)
	assert.InDelta(t, 27.5, start.Top, 1e-9)
	assert.InDelta(t, 72.5, start.Right, 1e-9)
	assert.InDelta(t, 72.5, start.Bottom, 1e-9)

	assert.InDelta(t, 327.5, finish.Left, 1e-9)
	assert.InDelta(t, 727.5, finish.Top, 1e-9)
	assert.InDelta(t, 372.5, finish.Right, 1e-9)
	assert.InDelta(t, 772.5, finish.Bottom, 1e-9)

	assert.InDelta(t, start.Width(), finish.Width(), 1e-9)
	assert.InDelta(t, 45.0, start.Width(), 1e-9)
}

func TestTokensDoNotTouchWalls(t *testing.T) {
	start, _ := TokenRects(1, 1, 40)
	walls := []Rect{
		{Left: -2, Top: -2, Right: 2, Bottom: 42},
		{Left: -2, Top: -2, Right: 42, Bottom: 2},
		{Left: 38, Top: -2, Right: 42, Bottom: 42},
		{Left: -2, Top: 38, Right: 42, Bottom: 42},
	}
	for _, w := range walls {
		assert.False(t, start.Intersects(w))
	}
}

func TestTouchPadding(t *testing.T) {
	assert.InDelta(t, 13.75, TouchPadding(100), 1e-9)
	assert.Equal(t, 0.0, TouchPadding(0))
}

func TestCenterOffset(t *testing.T) {
	dx, dy := CenterOffset(100, 50, 4, 8, 6)
	assert.Equal(t, 38, dx)
	assert.Equal(t, 1, dy)
}
