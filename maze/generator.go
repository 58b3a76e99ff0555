package maze

import (
	"math/rand"
	"time"
)

// Source is a uniform integer generator over [0, n).
type Source interface {
	Intn(n int) int
}

// Generator carves perfect mazes with a randomized depth-first backtracker.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng Source
}

// NewGenerator returns a generator drawing from rng. A nil rng is replaced by a time seeded one.
func NewGenerator(rng Source) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a generator with a reproducible sequence of mazes.
// If seed is not positive, a seed is picked from the current time.
func NewSeededGenerator(seed int64) *Generator {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a new cols×rows grid carved into a perfect maze.
func (gen *Generator) Generate(cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	gen.Carve(g)
	return g
}

// Carve turns a fully walled grid into a perfect maze in place, starting at (0,0).
// Carving a grid twice panics.
func (gen *Generator) Carve(g *Grid) {
	current := CellPosition{Col: 0, Row: 0}
	if g.at(current).Visited {
		panic("maze: grid is already carved")
	}
	g.at(current).Visited = true

	var stack []CellPosition
	for {
		if pending := g.UnvisitedNeighbors(current); len(pending) > 0 {
			next := pending[gen.rng.Intn(len(pending))]
			g.RemoveWallBetween(current, next)
			g.at(next).Visited = true
			stack = append(stack, current)
			current = next
			continue
		}

		// Dead end: backtrack until a cell with pending neighbors shows up.
		if len(stack) == 0 {
			return
		}
		current = pop(&stack)
	}
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
