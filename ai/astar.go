package ai

import (
	"fmt"

	"snake-astar/game/types"
)

// Planner runs A* over a Grid with unit step cost and f = g + h.
//
// When the goal cannot be reached the default planner returns the path to the
// last explored cell so the caller always has a move. Strict planners return
// ErrNoPathFound instead and leave the fallback to the caller.
type Planner struct {
	Strict bool
}

// Result is the outcome of one search
type Result struct {
	Path     Path
	Reached  bool        // false when Path leads to the fallback cell
	Terminal types.Point // last cell of the search, goal when reached
	Expanded int         // cells popped from the frontier
}

// Search finds a shortest path from g.Start to g.Goal. It resets the grid's
// search bookkeeping first, so a grid may be searched more than once.
func (p *Planner) Search(g *Grid) (Result, error) {
	g.Reset()

	q := newFrontier(len(g.Cells))
	g.Cells[g.Start].State = Frontier
	q.upsert(g.Start, g.Cells[g.Start].F())

	last := g.Start
	expanded := 0

	for q.Len() > 0 {
		leaf := q.pop()
		c := &g.Cells[leaf]
		c.State = Explored
		last = leaf
		expanded++

		if leaf == g.Goal {
			return Result{
				Path:     g.reconstruct(leaf),
				Reached:  true,
				Terminal: c.Point(),
				Expanded: expanded,
			}, nil
		}

		cost := c.G + 1
		for _, ni := range c.Neighbors {
			n := &g.Cells[ni]
			if n.State == Explored {
				continue
			}
			if n.State == Unvisited || cost < n.G {
				n.Parent = leaf
				n.G = cost
				n.State = Frontier
				q.upsert(ni, n.F())
			}
		}
	}

	goal := g.Cells[g.Goal].Point()
	if p.Strict {
		return Result{Terminal: g.Cells[last].Point(), Expanded: expanded},
			fmt.Errorf("%w: goal %v unreachable from %v", ErrNoPathFound, goal, g.Cells[g.Start].Point())
	}

	return Result{
		Path:     g.reconstruct(last),
		Terminal: g.Cells[last].Point(),
		Expanded: expanded,
	}, nil
}

// Plan builds a grid for one cycle and searches it
func (p *Planner) Plan(width, height int, blocked []types.Point, start, goal types.Point) (Result, error) {
	g, err := Build(width, height, blocked, start, goal)
	if err != nil {
		return Result{}, err
	}
	return p.Search(g)
}

// reconstruct walks predecessor links from terminal back to start, drops the
// start and returns the steps next-move first
func (g *Grid) reconstruct(terminal int) Path {
	var steps []types.Point
	for i := terminal; i != g.Start && i != noParent; i = g.Cells[i].Parent {
		steps = append(steps, g.Cells[i].Point())
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return NewPath(steps)
}
