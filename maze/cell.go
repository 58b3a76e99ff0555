package maze

import "fmt"

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and the visited mark used while carving.
type Cell struct {
	TopWall    bool // TopWall indicates whether there is a wall on the top side of the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.
	BottomWall bool // BottomWall indicates whether there is a wall on the bottom side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
	Visited    bool // Visited is set once the generator has reached the cell.
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Col int // Column index of the cell
	Row int // Row index of the cell
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Direction names one of the four sides of a cell.
type Direction int

const (
	Left Direction = iota
	Top
	Right
	Bottom
)

// Directions lists the sides in the order neighbors are reported.
var Directions = []Direction{Left, Top, Right, Bottom}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// delta returns the column and row offset of a step in the direction.
func (d Direction) delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the side facing d across a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Top:
		return Bottom
	case Right:
		return Left
	default:
		return Top
	}
}

// Step returns the position one cell away from p in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dc, dr := d.delta()
	return CellPosition{Col: p.Col + dc, Row: p.Row + dr}
}

// clearWall removes the wall of the cell on side d.
func (c *Cell) clearWall(d Direction) {
	switch d {
	case Left:
		c.LeftWall = false
	case Top:
		c.TopWall = false
	case Right:
		c.RightWall = false
	default:
		c.BottomWall = false
	}
}
