/*
Package maze provides tools for creating and carving rectangular mazes.

It defines the `Grid` structure, composed of `Cell` objects that carry wall flags on all four sides.
A fresh grid is fully walled; `Generator` carves it in place into a perfect maze with a randomized
depth-first backtracker, so that every cell is reachable from every other cell by exactly one path.

Utility functions enable neighbor detection, wall removal between adjacent cells, and ASCII visualization.
*/
package maze

import (
	"fmt"
	"strings"
)

// Grid is a cols×rows collection of cells. Cells are mutated only while a Generator carves the grid.
type Grid struct {
	Cols  int       // Number of columns
	Rows  int       // Number of rows
	cells [][]*Cell // 2D grid of cells indexed [row][col]
}

// NewGrid returns a fully walled grid. Non-positive dimensions are a programming error and panic.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("maze: invalid grid dimensions %dx%d", cols, rows))
	}

	cells := make([][]*Cell, rows)
	for r := range cells {
		cells[r] = make([]*Cell, cols)
		for c := range cells[r] {
			cells[r][c] = &Cell{
				TopWall:    true,
				LeftWall:   true,
				BottomWall: true,
				RightWall:  true,
			}
		}
	}

	return &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: cells,
	}
}

// InBound reports whether the position lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Col >= 0 && pos.Col < g.Cols && pos.Row >= 0 && pos.Row < g.Rows
}

// Cell returns a copy of the cell at pos.
func (g *Grid) Cell(pos CellPosition) Cell {
	return *g.at(pos)
}

func (g *Grid) at(pos CellPosition) *Cell {
	if !g.InBound(pos) {
		panic(fmt.Sprintf("maze: cell %s is out of a %dx%d grid", pos, g.Cols, g.Rows))
	}
	return g.cells[pos.Row][pos.Col]
}

// Neighbors returns the in-bound cells sharing an edge with pos, in left, top, right, bottom order.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		if n := pos.Step(d); g.InBound(n) {
			result = append(result, n)
		}
	}
	return result
}

// UnvisitedNeighbors returns the neighbors of pos that the generator has not reached yet.
func (g *Grid) UnvisitedNeighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, n := range g.Neighbors(pos) {
		if !g.at(n).Visited {
			result = append(result, n)
		}
	}
	return result
}

// RemoveWallBetween clears the shared wall of two axis-adjacent cells on both sides.
// Calling it with cells that are not adjacent panics.
func (g *Grid) RemoveWallBetween(a, b CellPosition) {
	d, ok := directionBetween(a, b)
	if !ok {
		panic(fmt.Sprintf("maze: cells %s and %s are not adjacent", a, b))
	}
	g.at(a).clearWall(d)
	g.at(b).clearWall(d.Opposite())
}

// directionBetween returns the side of a that faces b.
func directionBetween(a, b CellPosition) (Direction, bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < g.Cols; col++ {
		if g.cells[0][col].TopWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < g.Rows; row++ {
		// Cell rows
		if g.cells[row][0].LeftWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < g.Cols; col++ {
			if g.cells[row][col].RightWall {
				output.WriteString("   |")
			} else {
				output.WriteString("    ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < g.Cols; col++ {
			if g.cells[row][col].BottomWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
