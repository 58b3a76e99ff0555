package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const (
	maxMazeDimension = 100 // Maximum number of columns or rows.
)

// Interactor-related errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// GenerateParams describes the maze a host asks for.
type GenerateParams struct {
	Cols             int // Number of columns
	Rows             int // Number of rows
	PlaygroundWidth  int // Width of the area available to the maze, in pixels
	PlaygroundHeight int // Height of the area available to the maze, in pixels
	WallThickness    int // Wall thickness in pixels
}

func (p GenerateParams) validate() error {
	if min(p.Cols, p.Rows) <= 0 || max(p.Cols, p.Rows) > maxMazeDimension {
		return fmt.Errorf("%w: grid %dx%d must be within 1..%d", ErrInvalidDimensions, p.Cols, p.Rows, maxMazeDimension)
	}
	if p.PlaygroundWidth < 0 || p.PlaygroundHeight < 0 {
		return fmt.Errorf("%w: playground %dx%d", ErrInvalidDimensions, p.PlaygroundWidth, p.PlaygroundHeight)
	}
	if p.WallThickness < 0 {
		return fmt.Errorf("%w: wall thickness %d", ErrInvalidDimensions, p.WallThickness)
	}
	return nil
}

// Maze is a generated maze laid out in pixel space.
type Maze struct {
	Cols          int
	Rows          int
	CellSize      int
	WallThickness int
	Walls         []layout.Rect
	Start         layout.Rect
	Finish        layout.Rect
	TouchPadding  float64
}

func (m Maze) clone() Maze {
	m.Walls = append([]layout.Rect(nil), m.Walls...)
	return m
}

// Interactor drives a single maze round for a host: it generates and lays out mazes,
// evaluates player moves and notifies a listener of the outcomes.
// An Interactor is not safe for concurrent use.
type Interactor struct {
	generator  *maze.Generator
	controller *game.Controller
	listener   i.Listener
	grid       *maze.Grid
	maze       *Maze
}

// NewInteractor returns an interactor carving mazes with gen. A nil listener is allowed.
func NewInteractor(gen *maze.Generator, listener i.Listener) *Interactor {
	if gen == nil {
		gen = maze.NewGenerator(nil)
	}
	if listener == nil {
		listener = NopListener{}
	}
	return &Interactor{
		generator:  gen,
		controller: game.NewController(),
		listener:   listener,
	}
}

// Scale computes the placement of a background image over the container and reports it to the listener.
func (it *Interactor) Scale(containerH, containerW, contentH, contentW float64) layout.ScaleResult {
	result := layout.ComputeScale(containerH, containerW, contentH, contentW)
	it.listener.OnSizesReady(result.Width, result.Height, result.MarginStart, result.MarginTop)
	return result
}

// Generate carves a new maze, lays it out over the playground and starts a new round on it.
func (it *Interactor) Generate(p GenerateParams) (Maze, error) {
	if err := p.validate(); err != nil {
		return Maze{}, err
	}

	grid := it.generator.Generate(p.Cols, p.Rows)
	cellSize := layout.ComputeCellSize(p.PlaygroundWidth, p.PlaygroundHeight, p.Cols, p.Rows)
	walls := layout.ComputeWalls(grid, cellSize, p.WallThickness)
	start, finish := layout.TokenRects(p.Cols, p.Rows, cellSize)

	it.grid = grid
	it.maze = &Maze{
		Cols:          p.Cols,
		Rows:          p.Rows,
		CellSize:      cellSize,
		WallThickness: p.WallThickness,
		Walls:         walls,
		Start:         start,
		Finish:        finish,
		TouchPadding:  layout.TouchPadding(cellSize),
	}
	it.controller.Initialize(walls, start, finish)

	it.listener.OnMazeReady(p.Cols, p.Rows, cellSize, append([]layout.Rect(nil), walls...))
	return it.maze.clone(), nil
}

// OnMove evaluates a player move against the given finish zone and notifies the listener
// of a wall touch or a finish. Calling it before Generate panics.
func (it *Interactor) OnMove(player, finish layout.Rect) game.Signal {
	signal := it.controller.OnMoveWithin(player, finish)
	switch signal {
	case game.WallTouch:
		it.listener.OnWallTouch()
	case game.Finish:
		it.listener.OnFinish()
	}
	return signal
}

// Restart unlocks the round on the same maze.
func (it *Interactor) Restart() {
	it.controller.Restart()
}

// Finish locks the round without evaluating further moves.
func (it *Interactor) Finish() {
	it.controller.Finish()
}

// State returns the state of the current round.
func (it *Interactor) State() game.State {
	return it.controller.State()
}

// Player returns the last evaluated player position.
func (it *Interactor) Player() layout.Rect {
	return it.controller.Player()
}

// Maze returns the current maze, if one was generated.
func (it *Interactor) Maze() (Maze, bool) {
	if it.maze == nil {
		return Maze{}, false
	}
	return it.maze.clone(), true
}

// Grid returns the carved grid of the current maze, or nil before the first Generate.
func (it *Interactor) Grid() *maze.Grid {
	return it.grid
}
