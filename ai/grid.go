package ai

import (
	"fmt"

	"snake-astar/game/types"
)

// neighborOffsets is the adjacency order: left, up, right, down
var neighborOffsets = [4]types.Point{
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
}

// Grid is a row-major W×H buffer of cells built for one planning cycle
type Grid struct {
	Width, Height int
	Cells         []Cell

	Start int // flat index of the search start
	Goal  int // flat index of the goal
}

// Build constructs the grid for one cycle. Every cell in blocked is an
// obstacle; start must be free. The goal may be blocked, in which case it is
// simply unreachable.
func Build(width, height int, blocked []types.Point, start, goal types.Point) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGridConfig, width, height)
	}
	bounds := types.Grid{Width: width, Height: height}
	if !bounds.Contains(start) {
		return nil, fmt.Errorf("%w: start %v out of bounds", ErrInvalidGridConfig, start)
	}
	if !bounds.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v out of bounds", ErrInvalidGridConfig, goal)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := &g.Cells[g.index(col, row)]
			c.Col, c.Row = col, row
			c.H = types.ManhattanDistance(types.Point{X: col, Y: row}, goal)
			c.reset()
		}
	}

	for _, p := range blocked {
		if !bounds.Contains(p) {
			return nil, fmt.Errorf("%w: blocked cell %v out of bounds", ErrInvalidGridConfig, p)
		}
		if p == start {
			return nil, fmt.Errorf("%w: start %v is blocked", ErrInvalidGridConfig, start)
		}
		g.Cells[g.index(p.X, p.Y)].Blocked = true
	}

	for i := range g.Cells {
		c := &g.Cells[i]
		c.Neighbors = c.Neighbors[:0]
		for _, d := range neighborOffsets {
			n := c.Point().Add(d)
			if !bounds.Contains(n) {
				continue
			}
			ni := g.index(n.X, n.Y)
			if g.Cells[ni].Blocked {
				continue
			}
			c.Neighbors = append(c.Neighbors, ni)
		}
	}

	g.Start = g.index(start.X, start.Y)
	g.Goal = g.index(goal.X, goal.Y)
	return g, nil
}

func (g *Grid) index(col, row int) int {
	return row*g.Width + col
}

// Index returns the flat index of p, -1 if off the board
func (g *Grid) Index(p types.Point) int {
	if p.X < 0 || p.Y < 0 || p.X >= g.Width || p.Y >= g.Height {
		return -1
	}
	return g.index(p.X, p.Y)
}

// Cell returns the cell at p, nil if off the board
func (g *Grid) Cell(p types.Point) *Cell {
	i := g.Index(p)
	if i < 0 {
		return nil
	}
	return &g.Cells[i]
}

// Reset clears search bookkeeping so the grid can be searched again
func (g *Grid) Reset() {
	for i := range g.Cells {
		g.Cells[i].reset()
	}
}
