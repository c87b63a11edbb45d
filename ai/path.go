package ai

import "snake-astar/game/types"

// Path is an ordered move sequence. The first step is the cell adjacent to
// the start; the start itself is never included.
type Path struct {
	steps []types.Point
	next  int
}

// NewPath wraps steps, ordered next-move first
func NewPath(steps []types.Point) Path {
	return Path{steps: steps}
}

// Len returns the number of unconsumed steps
func (p *Path) Len() int {
	return len(p.steps) - p.next
}

// Empty reports whether every step has been consumed
func (p *Path) Empty() bool {
	return p.Len() == 0
}

// Pop removes and returns the next step
func (p *Path) Pop() (types.Point, bool) {
	if p.Empty() {
		return types.Point{}, false
	}
	s := p.steps[p.next]
	p.next++
	return s, true
}

// Peek returns the next step without consuming it
func (p *Path) Peek() (types.Point, bool) {
	if p.Empty() {
		return types.Point{}, false
	}
	return p.steps[p.next], true
}

// Steps returns a copy of the unconsumed steps
func (p *Path) Steps() []types.Point {
	out := make([]types.Point, p.Len())
	copy(out, p.steps[p.next:])
	return out
}

// Last returns the final step, the goal when the search reached it
func (p *Path) Last() (types.Point, bool) {
	if p.Empty() {
		return types.Point{}, false
	}
	return p.steps[len(p.steps)-1], true
}
