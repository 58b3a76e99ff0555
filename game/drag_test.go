package game

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag(t *testing.T) {
	start := layout.Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}

	t.Run("Events before reset are ignored", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		_, ok := d.Down(15, 15)
		assert.False(t, ok)
		assert.False(t, d.enabled)
	})

	t.Run("Down inside padding grabs the token", func(t *testing.T) {
		d := NewDrag(100, 50, 2)
		d.Reset(start)

		_, ok := d.Down(100+21, 50+15)
		assert.True(t, ok)

		_, ok = d.Down(100+23, 50+15)
		assert.False(t, ok)
	})

	t.Run("Move keeps the grab offset", func(t *testing.T) {
		d := NewDrag(100, 50, 2)
		d.Reset(start)

		_, ok := d.Down(100+17, 50+15) // 2px right of the center
		assert.True(t, ok)

		player, ok := d.Move(100+20, 50+15)
		assert.True(t, ok)
		assert.Equal(t, layout.Rect{Left: 13, Top: 10, Right: 23, Bottom: 20}, player)
		assert.Equal(t, player, d.Player())

		player, ok = d.Handle(PointerMove, 100+20, 50+18)
		assert.True(t, ok)
		assert.Equal(t, layout.Rect{Left: 13, Top: 13, Right: 23, Bottom: 23}, player)
	})

	t.Run("Move without grab is ignored", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		d.Reset(start)

		player, ok := d.Move(15, 15)
		assert.False(t, ok)
		assert.Equal(t, start, player)
	})

	t.Run("Pointer slipping off the token drops the move", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		d.Reset(start)
		d.Handle(PointerDown, 15, 15)

		player, ok := d.Move(40, 15)
		assert.False(t, ok)
		assert.Equal(t, start, player)
	})

	t.Run("Disable stops dragging until reset", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		d.Reset(start)
		d.Down(15, 15)
		d.Move(16, 15)

		d.Disable()
		_, ok := d.Move(17, 15)
		assert.False(t, ok)

		d.Reset(start)
		assert.Equal(t, start, d.Player())
		_, ok = d.Down(15, 15)
		assert.True(t, ok)
	})

	t.Run("Place moves the token and drops the grab", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		d.Reset(start)
		d.Down(15, 15)

		d.Place(start.Offset(30, 0))
		_, ok := d.Move(16, 15)
		assert.False(t, ok)

		_, ok = d.Down(45, 15)
		require.True(t, ok)
		player, ok := d.Move(46, 15)
		assert.True(t, ok)
		assert.Equal(t, layout.Rect{Left: 41, Top: 10, Right: 51, Bottom: 20}, player)
	})

	t.Run("Place keeps a disabled tracker disabled", func(t *testing.T) {
		d := NewDrag(0, 0, 2)
		d.Reset(start)
		d.Disable()

		d.Place(start)
		_, ok := d.Down(15, 15)
		assert.False(t, ok)
	})
}
