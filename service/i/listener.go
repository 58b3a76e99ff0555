package i

import "github.com/beka-birhanu/vinom-maze/layout"

// Listener is notified by the interactor as a round progresses.
type Listener interface {
	// OnSizesReady reports where to place the background image.
	OnSizesReady(width, height, marginStart, marginTop int)

	// OnMazeReady reports a freshly generated maze.
	OnMazeReady(cols, rows, cellSize int, walls []layout.Rect)

	// OnWallTouch reports that the player touched a wall and the round is locked.
	OnWallTouch()

	// OnFinish reports that the player reached the finish and the round is locked.
	OnFinish()
}
