package ai

import "errors"

var (
	// ErrInvalidGridConfig is returned by Build when dimensions are non-positive,
	// a coordinate is off the board, or the start cell is blocked
	ErrInvalidGridConfig = errors.New("invalid grid config")

	// ErrNoPathFound is returned by a strict Planner when the frontier empties
	// before the goal is reached
	ErrNoPathFound = errors.New("no path found")

	// ErrEmptyPath is returned by PathCache when a fresh plan has no steps
	ErrEmptyPath = errors.New("empty path")
)
