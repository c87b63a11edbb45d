package entity

import (
	"snake-astar/game/types"
)

// Snake is the occupant body. Body is stored tail-first, head last.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
	Dead      bool
	GameOver  bool
}

// NewSnake lays out length cells leftward from head, facing right
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, 0, length)
	for i := length - 1; i >= 0; i-- {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		Body:      body,
		Direction: types.RIGHT,
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell is at p
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, tail first
func (s *Snake) Cells() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}

// Obstacles returns every body cell except the head
func (s *Snake) Obstacles() []types.Point {
	if len(s.Body) == 0 {
		return nil
	}
	out := make([]types.Point, len(s.Body)-1)
	copy(out, s.Body[:len(s.Body)-1])
	return out
}
