package layout

import "github.com/beka-birhanu/vinom-maze/maze"

// ComputeCellSize returns the largest integer square cell that fits cols×rows cells into the playground.
// The maze then occupies cols*cellSize × rows*cellSize, which may be smaller than the playground.
func ComputeCellSize(playgroundW, playgroundH, cols, rows int) int {
	if cols <= 0 || rows <= 0 || playgroundW <= 0 || playgroundH <= 0 {
		return 0
	}
	return min(playgroundW/cols, playgroundH/rows)
}

// ComputeWalls emits one rectangle per active wall flag of every cell.
//
// Each rectangle spans its cell edge and is extended by wallThickness/2 beyond the cell on both ends,
// so perpendicular walls join without gaps at the corners. Walls shared by two cells are emitted
// once for each side. The output depends only on the grid and the parameters; callers must treat
// it as a set. A zero cell size yields no walls.
func ComputeWalls(g *maze.Grid, cellSize, wallThickness int) []Rect {
	if cellSize <= 0 {
		return nil
	}

	size := float64(cellSize)
	thickness := float64(max(wallThickness, 0))
	half := thickness / 2

	var walls []Rect
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			cell := g.Cell(maze.CellPosition{Col: col, Row: row})
			left := float64(col)*size - half
			top := float64(row)*size - half
			right := float64(col+1)*size + half
			bottom := float64(row+1)*size + half

			if cell.LeftWall {
				walls = append(walls, Rect{Left: left, Top: top, Right: left + thickness, Bottom: bottom})
			}
			if cell.TopWall {
				walls = append(walls, Rect{Left: left, Top: top, Right: right, Bottom: top + thickness})
			}
			if cell.RightWall {
				walls = append(walls, Rect{Left: right - thickness, Top: top, Right: right, Bottom: bottom})
			}
			if cell.BottomWall {
				walls = append(walls, Rect{Left: left, Top: bottom - thickness, Right: right, Bottom: bottom})
			}
		}
	}
	return walls
}
