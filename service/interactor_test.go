package service

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder keeps every notification it receives.
type recorder struct {
	sizes     []layout.ScaleResult
	mazes     int
	lastWalls []layout.Rect
	cellSize  int
	wallTouch int
	finishes  int
}

func (r *recorder) OnSizesReady(w, h, ms, mt int) {
	r.sizes = append(r.sizes, layout.ScaleResult{Width: w, Height: h, MarginStart: ms, MarginTop: mt})
}

func (r *recorder) OnMazeReady(cols, rows, cellSize int, walls []layout.Rect) {
	r.mazes++
	r.cellSize = cellSize
	r.lastWalls = walls
}

func (r *recorder) OnWallTouch() { r.wallTouch++ }
func (r *recorder) OnFinish()    { r.finishes++ }

func defaultParams() GenerateParams {
	return GenerateParams{Cols: 4, Rows: 8, PlaygroundWidth: 400, PlaygroundHeight: 900, WallThickness: 8}
}

func TestInteractorGenerate(t *testing.T) {
	t.Run("Generates and notifies", func(t *testing.T) {
		rec := &recorder{}
		it := NewInteractor(maze.NewSeededGenerator(1), rec)

		m, err := it.Generate(defaultParams())
		require.NoError(t, err)

		assert.Equal(t, 100, m.CellSize)
		assert.Equal(t, 1, rec.mazes)
		assert.Equal(t, 100, rec.cellSize)
		assert.ElementsMatch(t, m.Walls, rec.lastWalls)
		assert.NotEmpty(t, m.Walls)
		assert.Equal(t, game.Active, it.State())
		assert.Equal(t, m.Start, it.Player())
		assert.NotNil(t, it.Grid())

		stored, ok := it.Maze()
		assert.True(t, ok)
		assert.Equal(t, m, stored)
	})

	t.Run("Returned walls are copies", func(t *testing.T) {
		it := NewInteractor(maze.NewSeededGenerator(1), nil)
		m, err := it.Generate(defaultParams())
		require.NoError(t, err)

		m.Walls[0] = layout.Rect{Left: -1000, Top: -1000, Right: 1000, Bottom: 1000}
		stored, _ := it.Maze()
		assert.NotEqual(t, m.Walls[0], stored.Walls[0])
		assert.Equal(t, game.Continue, it.OnMove(stored.Start, stored.Finish))
	})

	t.Run("Invalid dimensions are rejected before generation", func(t *testing.T) {
		rec := &recorder{}
		it := NewInteractor(maze.NewSeededGenerator(1), rec)

		for _, p := range []GenerateParams{
			{Cols: 0, Rows: 8, PlaygroundWidth: 100, PlaygroundHeight: 100},
			{Cols: 4, Rows: -1, PlaygroundWidth: 100, PlaygroundHeight: 100},
			{Cols: 101, Rows: 8, PlaygroundWidth: 100, PlaygroundHeight: 100},
			{Cols: 4, Rows: 8, PlaygroundWidth: -1, PlaygroundHeight: 100},
			{Cols: 4, Rows: 8, PlaygroundWidth: 100, PlaygroundHeight: 100, WallThickness: -2},
		} {
			_, err := it.Generate(p)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
		assert.Zero(t, rec.mazes)
		_, ok := it.Maze()
		assert.False(t, ok)
	})

	t.Run("Tiny playground yields an empty maze", func(t *testing.T) {
		it := NewInteractor(maze.NewSeededGenerator(1), nil)
		m, err := it.Generate(GenerateParams{Cols: 4, Rows: 8, PlaygroundWidth: 3, PlaygroundHeight: 3, WallThickness: 2})
		require.NoError(t, err)
		assert.Zero(t, m.CellSize)
		assert.Empty(t, m.Walls)
	})
}

func TestInteractorScale(t *testing.T) {
	rec := &recorder{}
	it := NewInteractor(nil, rec)

	got := it.Scale(200, 100, 50, 50)
	assert.Equal(t, layout.ScaleResult{Width: 200, Height: 200, MarginStart: -50}, got)
	assert.Equal(t, []layout.ScaleResult{got}, rec.sizes)
}

func TestInteractorOnMove(t *testing.T) {
	rec := &recorder{}
	it := NewInteractor(maze.NewSeededGenerator(4), rec)
	m, err := it.Generate(defaultParams())
	require.NoError(t, err)

	assert.Equal(t, game.Continue, it.OnMove(m.Start, m.Finish))

	// the top boundary wall of cell (0,0)
	assert.Equal(t, game.WallTouch, it.OnMove(m.Start.Offset(0, -m.Start.Top), m.Finish))
	assert.Equal(t, 1, rec.wallTouch)
	assert.Equal(t, game.Continue, it.OnMove(m.Finish, m.Finish))
	assert.Zero(t, rec.finishes)

	it.Restart()
	assert.Equal(t, game.Finish, it.OnMove(m.Finish, m.Finish))
	assert.Equal(t, 1, rec.finishes)
	assert.Equal(t, game.Finished, it.State())

	it.Restart()
	it.Finish()
	assert.Equal(t, game.Finished, it.State())
	assert.Equal(t, game.Continue, it.OnMove(m.Finish, m.Finish))
	assert.Equal(t, 1, rec.finishes)
}

func TestInteractorOnMoveBeforeGeneratePanics(t *testing.T) {
	it := NewInteractor(nil, nil)
	assert.Panics(t, func() { it.OnMove(layout.Rect{}, layout.Rect{}) })
}
