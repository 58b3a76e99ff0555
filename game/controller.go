/*
Package game tracks a player token through a maze round.

The Controller turns player rectangle updates into wall-touch and finish signals and locks
the round once either happens. Drag converts raw pointer events into player rectangle updates.
Both are single-threaded; the host serializes calls.
*/
package game

import (
	"github.com/beka-birhanu/vinom-maze/layout"
)

// Controller is the interaction state machine of a round.
type Controller struct {
	walls       []layout.Rect // Walls of the current maze, owned by the controller.
	start       layout.Rect   // Where the player is placed on initialize and restart.
	finish      layout.Rect   // Zone whose area must contain the player's center.
	player      layout.Rect   // Last evaluated player position.
	state       State
	initialized bool
}

// NewController returns a controller that must be initialized before use.
func NewController() *Controller {
	return &Controller{}
}

// Initialize starts a new round on the given geometry and places the player at start.
// The wall slice is copied.
func (c *Controller) Initialize(walls []layout.Rect, start, finish layout.Rect) {
	c.walls = append([]layout.Rect(nil), walls...)
	c.start = start
	c.finish = finish
	c.player = start
	c.state = Active
	c.initialized = true
}

// OnMove evaluates the player at its new position against the round's finish zone.
func (c *Controller) OnMove(player layout.Rect) Signal {
	return c.OnMoveWithin(player, c.finish)
}

// OnMoveWithin evaluates the player at its new position against the given finish zone.
//
// Locked rounds ignore the move and return Continue. Otherwise a wall overlap locks the round with
// WallTouch; failing that, a player center inside finish locks it with Finish. Wall touches win
// when both hold. Calling it before Initialize panics.
func (c *Controller) OnMoveWithin(player, finish layout.Rect) Signal {
	if !c.initialized {
		panic("game: OnMove called before Initialize")
	}
	if c.state.Locked() {
		return Continue
	}

	c.player = player
	c.finish = finish

	if c.touchesWall(player) {
		c.state = WallHit
		return WallTouch
	}

	if finish.Contains(player.Center()) {
		c.state = Finished
		return Finish
	}

	return Continue
}

// Restart unlocks the round on the same maze and puts the player back at start.
func (c *Controller) Restart() {
	c.state = Active
	c.player = c.start
}

// Finish locks the round without evaluating anything. A round that is already locked keeps its state.
func (c *Controller) Finish() {
	if !c.state.Locked() {
		c.state = Finished
	}
}

// State returns the current round state.
func (c *Controller) State() State {
	return c.state
}

// Player returns the last evaluated player position.
func (c *Controller) Player() layout.Rect {
	return c.player
}

func (c *Controller) touchesWall(player layout.Rect) bool {
	for _, wall := range c.walls {
		if player.Intersects(wall) {
			return true
		}
	}
	return false
}
