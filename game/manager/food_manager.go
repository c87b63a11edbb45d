package manager

import (
	"errors"

	"snake-astar/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no free cell is left for a goal
var ErrBoardFull = errors.New("board full")

// maxRandomAttempts bounds rejection sampling before scanning for free cells
const maxRandomAttempts = 64

type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a random cell not on body
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, error) {
	for i := 0; i < maxRandomAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, body) {
			return food, nil
		}
	}

	// Crowded board, pick uniformly among what is left
	occupied := make(map[types.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, max(fm.grid.Size()-len(occupied), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

// Relocate moves the goal to a fresh free cell
func (fm *FoodManager) Relocate(body []types.Point) error {
	food, err := fm.GenerateFood(body)
	if err != nil {
		return err
	}
	fm.food = food
	return nil
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood places the goal directly
func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}

func (fm *FoodManager) IsFoodCollision(pos types.Point) bool {
	return pos == fm.food
}
