package layout

// TokenScale is the share of a cell's side taken by the player and finish tokens.
const TokenScale = 0.45

// tokenMargin is the gap between a token and the edges of its cell.
func tokenMargin(cellSize int) float64 {
	size := float64(cellSize)
	return (size - size*TokenScale) / 2
}

// TokenRects returns the start rectangle, centered in the top-left cell, and the finish rectangle,
// centered in the bottom-right cell.
func TokenRects(cols, rows, cellSize int) (Rect, Rect) {
	size := float64(cellSize)
	m := tokenMargin(cellSize)
	start := Rect{Left: m, Top: m, Right: size - m, Bottom: size - m}
	finish := Rect{
		Left:   float64(cols-1)*size + m,
		Top:    float64(rows-1)*size + m,
		Right:  float64(cols)*size - m,
		Bottom: float64(rows)*size - m,
	}
	return start, finish
}

// TouchPadding returns the extra hit area around the player token that still grabs it.
func TouchPadding(cellSize int) float64 {
	return tokenMargin(cellSize) / 2
}

// CenterOffset returns the translation that centers the maze inside a container.
func CenterOffset(containerW, containerH, cols, rows, cellSize int) (int, int) {
	return (containerW - cols*cellSize) / 2, (containerH - rows*cellSize) / 2
}
