// Package gameapi exposes maze rounds over HTTP and streams pointer drags over websockets.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/layout"
	"github.com/beka-birhanu/vinom-maze/service"
)

// CreateRoundRequest represents a request to start a new round.
// Zero cols, rows or wall thickness fall back to the server defaults. Cols and rows above 100 are rejected.
type CreateRoundRequest struct {
	Cols             int `json:"cols" binding:"gte=0"`
	Rows             int `json:"rows" binding:"gte=0"`
	PlaygroundWidth  int `json:"playground_width" binding:"gte=0"`
	PlaygroundHeight int `json:"playground_height" binding:"gte=0"`
	WallThickness    int `json:"wall_thickness" binding:"gte=0"`
}

// ScaleRequest represents a request to place a background image over a container.
type ScaleRequest struct {
	ContainerHeight float64 `json:"container_height" binding:"gte=0"`
	ContainerWidth  float64 `json:"container_width" binding:"gte=0"`
	ContentHeight   float64 `json:"content_height" binding:"gte=0"`
	ContentWidth    float64 `json:"content_width" binding:"gte=0"`
}

// MoveRequest carries the player position in maze space.
type MoveRequest struct {
	Player layout.Rect `json:"player"`
}

// Offset is the translation of the maze inside its playground.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoundResponse describes a round and its maze geometry.
type RoundResponse struct {
	ID            string        `json:"id"`
	State         game.State    `json:"state"`
	Cols          int           `json:"cols"`
	Rows          int           `json:"rows"`
	CellSize      int           `json:"cell_size"`
	WallThickness int           `json:"wall_thickness"`
	Walls         []layout.Rect `json:"walls"`
	Start         layout.Rect   `json:"start"`
	Finish        layout.Rect   `json:"finish"`
	Offset        Offset        `json:"offset"`
	TouchPadding  float64       `json:"touch_padding"`
}

// MoveResponse reports the outcome of a move.
type MoveResponse struct {
	Signal game.Signal `json:"signal"`
	State  game.State  `json:"state"`
	Player layout.Rect `json:"player"`
}

// StateResponse reports the state of a round with an ASCII view of its maze.
type StateResponse struct {
	ID    string     `json:"id"`
	State game.State `json:"state"`
	Maze  string     `json:"maze"`
}

// DragFrame is a pointer event sent by the client, in playground coordinates.
type DragFrame struct {
	Type string  `json:"type"` // "down" or "move"
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// DragEvent answers every drag frame.
type DragEvent struct {
	Accepted bool        `json:"accepted"`
	Signal   game.Signal `json:"signal"`
	State    game.State  `json:"state"`
	Player   layout.Rect `json:"player"`
	Error    string      `json:"error,omitempty"`
}

func newRoundResponse(r *service.Round) *RoundResponse {
	m := r.Maze()
	x, y := r.Offset()
	walls := m.Walls
	if walls == nil {
		walls = []layout.Rect{}
	}
	return &RoundResponse{
		ID:            r.ID.String(),
		State:         r.State(),
		Cols:          m.Cols,
		Rows:          m.Rows,
		CellSize:      m.CellSize,
		WallThickness: m.WallThickness,
		Walls:         walls,
		Start:         m.Start,
		Finish:        m.Finish,
		Offset:        Offset{X: x, Y: y},
		TouchPadding:  m.TouchPadding,
	}
}
