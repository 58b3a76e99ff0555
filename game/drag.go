package game

import "github.com/beka-birhanu/vinom-maze/layout"

// PointerAction is the kind of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
)

// Drag follows a single pointer dragging the player token.
//
// Pointer coordinates are in container space; the token lives in maze space, shifted by the
// maze offset inside the container. A pointer grabs the token only within the token grown by
// the touch padding.
type Drag struct {
	offsetX, offsetY float64     // Maze offset inside the container.
	padding          float64     // Extra hit area around the token.
	player           layout.Rect // Token position in maze space.
	grabX, grabY     float64     // Pointer position relative to the token center at grab time.
	grabbed          bool
	enabled          bool
}

// NewDrag returns a drag tracker for a maze placed at (offsetX, offsetY) in its container.
func NewDrag(offsetX, offsetY int, padding float64) *Drag {
	return &Drag{
		offsetX: float64(offsetX),
		offsetY: float64(offsetY),
		padding: padding,
	}
}

// Reset places the token at start and accepts pointer events again.
func (d *Drag) Reset(start layout.Rect) {
	d.player = start
	d.grabbed = false
	d.enabled = true
}

// Place moves the token to player and drops any grab, so the pointer must grab it again.
// Disabled trackers stay disabled.
func (d *Drag) Place(player layout.Rect) {
	d.player = player
	d.grabbed = false
}

// Disable ignores pointer events until the next Reset.
func (d *Drag) Disable() {
	d.enabled = false
	d.grabbed = false
}

// Player returns the token position in maze space.
func (d *Drag) Player() layout.Rect {
	return d.player
}

// Handle dispatches a pointer event to Down or Move.
func (d *Drag) Handle(action PointerAction, x, y float64) (layout.Rect, bool) {
	if action == PointerDown {
		return d.Down(x, y)
	}
	return d.Move(x, y)
}

// Down grabs the token if the pointer lands on it.
func (d *Drag) Down(x, y float64) (layout.Rect, bool) {
	if !d.accepts(x, y) {
		return d.player, false
	}
	cx, cy := d.player.Center()
	d.grabX = x - cx
	d.grabY = y - cy
	d.grabbed = true
	return d.player, true
}

// Move drags a grabbed token so that it keeps its grab offset from the pointer.
func (d *Drag) Move(x, y float64) (layout.Rect, bool) {
	if !d.grabbed || !d.accepts(x, y) {
		return d.player, false
	}
	cx, cy := d.player.Center()
	d.player = d.player.Offset(x-(cx+d.grabX), y-(cy+d.grabY))
	return d.player, true
}

func (d *Drag) accepts(x, y float64) bool {
	return d.enabled && d.player.Inflate(d.padding).Contains(x-d.offsetX, y-d.offsetY)
}
