package ai

import "snake-astar/game/types"

// CellState tracks a cell's membership during one search run
type CellState uint8

const (
	Unvisited CellState = iota
	Frontier
	Explored
)

// noParent marks a cell without predecessor
const noParent = -1

// Cell is one grid square plus its search bookkeeping.
// Parent and Neighbors are flat indices into the owning Grid.
type Cell struct {
	Col, Row int
	Blocked  bool

	G int // cost so far
	H int // Manhattan distance to goal, fixed for the cycle

	Parent    int
	Neighbors []int
	State     CellState
}

// Point returns the cell coordinate
func (c *Cell) Point() types.Point {
	return types.Point{X: c.Col, Y: c.Row}
}

// F returns the A* priority g+h
func (c *Cell) F() int {
	return c.G + c.H
}

func (c *Cell) reset() {
	c.G = 0
	c.Parent = noParent
	c.State = Unvisited
}
