package service

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// Round is a hosted maze round: the interactor plus the pointer drag of its single player.
//
// After a wall touch the player acknowledges and retries the same maze; after a finish the
// acknowledgement brings a freshly generated maze. Round methods are not synchronized; callers
// hold the embedded lock.
type Round struct {
	ID         uuid.UUID
	params     GenerateParams
	interactor *Interactor
	drag       *game.Drag
	offsetX    int
	offsetY    int
	logger     i.Logger
	sync.Mutex
}

// NewRound generates the first maze of a round.
func NewRound(id uuid.UUID, gen *maze.Generator, params GenerateParams, logger i.Logger) (*Round, error) {
	r := &Round{
		ID:         id,
		params:     params,
		interactor: NewInteractor(gen, NewLogListener(id, logger)),
		logger:     logger,
	}
	if err := r.regenerate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Round) regenerate() error {
	m, err := r.interactor.Generate(r.params)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	r.offsetX, r.offsetY = layout.CenterOffset(r.params.PlaygroundWidth, r.params.PlaygroundHeight, m.Cols, m.Rows, m.CellSize)
	r.drag = game.NewDrag(r.offsetX, r.offsetY, m.TouchPadding)
	r.drag.Reset(m.Start)
	return nil
}

// Maze returns the current maze.
func (r *Round) Maze() Maze {
	m, _ := r.interactor.Maze()
	return m
}

// Offset returns where the maze sits inside the playground when centered.
func (r *Round) Offset() (int, int) {
	return r.offsetX, r.offsetY
}

// State returns the state of the round.
func (r *Round) State() game.State {
	return r.interactor.State()
}

// Scale computes the placement of a background image over the container and reports it to the round's listener.
func (r *Round) Scale(containerH, containerW, contentH, contentW float64) layout.ScaleResult {
	return r.interactor.Scale(containerH, containerW, contentH, contentW)
}

// Player returns the last evaluated player position.
func (r *Round) Player() layout.Rect {
	return r.interactor.Player()
}

// Move evaluates the player at a new position set by the host. The drag token follows it.
func (r *Round) Move(player layout.Rect) game.Signal {
	signal := r.evaluate(player)
	if signal == game.Continue {
		r.drag.Place(r.interactor.Player())
	}
	return signal
}

func (r *Round) evaluate(player layout.Rect) game.Signal {
	signal := r.interactor.OnMove(player, r.Maze().Finish)
	if signal != game.Continue {
		r.drag.Disable()
	}
	return signal
}

// Pointer feeds a pointer event in playground coordinates. Events that do not move the player
// report false and are not evaluated.
func (r *Round) Pointer(action game.PointerAction, x, y float64) (game.Signal, layout.Rect, bool) {
	player, ok := r.drag.Handle(action, x, y)
	if !ok {
		return game.Continue, player, false
	}
	return r.evaluate(player), player, true
}

// Restart unlocks the round on the same maze and puts the player back at start.
func (r *Round) Restart() {
	r.interactor.Restart()
	r.drag.Reset(r.Maze().Start)
}

// Finish locks the round without evaluating further moves.
func (r *Round) Finish() {
	r.interactor.Finish()
	r.drag.Disable()
}

// Acknowledge closes the outcome of a locked round: a wall touch restarts the same maze,
// a finish starts over on a new maze. Active rounds are left untouched.
func (r *Round) Acknowledge() error {
	switch r.State() {
	case game.WallHit:
		r.Restart()
	case game.Finished:
		r.interactor.Restart()
		if err := r.regenerate(); err != nil {
			r.logger.Error(fmt.Sprintf("Round %s: %v", r.ID, err))
			return err
		}
	}
	return nil
}

// String returns the ASCII view of the round's maze.
func (r *Round) String() string {
	if g := r.interactor.Grid(); g != nil {
		return g.String()
	}
	return ""
}
