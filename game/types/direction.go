package types

// Direction is a cardinal move
type Direction int

const (
	NONE Direction = iota // 0
	UP                    // 1
	RIGHT                 // 2
	DOWN                  // 3
	LEFT                  // 4
)

// ToPoint converts a Direction into a one-cell displacement
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// DirectionFromDelta maps a single orthogonal step to its Direction.
// Returns false when the delta is not exactly one cell on one axis.
func DirectionFromDelta(delta Point) (Direction, bool) {
	switch delta {
	case Point{X: 0, Y: -1}:
		return UP, true
	case Point{X: 1, Y: 0}:
		return RIGHT, true
	case Point{X: 0, Y: 1}:
		return DOWN, true
	case Point{X: -1, Y: 0}:
		return LEFT, true
	default:
		return NONE, false
	}
}
