package types

// Point is a cell coordinate on the board. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the delta from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Grid represents the game grid dimensions in cells
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Size returns the number of cells on the board
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Board defaults, 640x480 pixels at 20px per cell
const (
	DefaultWidth         = 32
	DefaultHeight        = 24
	DefaultInitialLength = 3
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ManhattanDistance returns |dx|+|dy| between two cells. The board does not wrap.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}
