package manager

import (
	"snake-astar/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a move of the head onto pos. body is the snake
// before the move, tail included.
func (cm *CollisionManager) CheckCollision(pos types.Point, body []types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if isBodyCollision(pos, body) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

func isBodyCollision(pos types.Point, body []types.Point) bool {
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is on the board and free
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !isBodyCollision(pos, body)
}

// FreeNeighbors returns the in-bounds cells next to pos that are not on body,
// in left, up, right, down order
func (cm *CollisionManager) FreeNeighbors(pos types.Point, body []types.Point) []types.Point {
	out := make([]types.Point, 0, 4)
	for _, d := range []types.Direction{types.LEFT, types.UP, types.RIGHT, types.DOWN} {
		n := pos.Add(d.ToPoint())
		if cm.ValidateSpawnPosition(n, body) {
			out = append(out, n)
		}
	}
	return out
}
