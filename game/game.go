package game

import (
	"fmt"
	"log"
	"time"

	"snake-astar/ai"
	"snake-astar/config"
	"snake-astar/game/entity"
	"snake-astar/game/manager"
	"snake-astar/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game is one episode: a snake chasing goals until it dies, is trapped, fills
// the board or runs out of steps
type Game struct {
	UUID       string
	Config     config.Config
	Grid       types.Grid
	Snake      *entity.Snake
	Collisions *manager.CollisionManager
	Food       *manager.FoodManager
	Controller *AgentController
	StartTime  time.Time
	Ticks      int
}

func NewGame(cfg config.Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := cfg.Board()
	snake := entity.NewSnake(types.Point{X: grid.Width / 2, Y: grid.Height / 2}, cfg.InitialLength)
	collisions := manager.NewCollisionManager(grid)
	food := manager.NewFoodManager(grid, collisions, rng)
	if err := food.Relocate(snake.Body); err != nil {
		return nil, fmt.Errorf("place first goal: %w", err)
	}

	planner := &ai.Planner{Strict: cfg.Fallback == config.FallbackEscape}

	return &Game{
		UUID:       uuid.New().String(),
		Config:     cfg,
		Grid:       grid,
		Snake:      snake,
		Collisions: collisions,
		Food:       food,
		Controller: NewAgentController(grid, snake, planner, collisions, food, cfg.MaxStallTicks),
		StartTime:  time.Now(),
	}, nil
}

// Update runs one tick
func (g *Game) Update() (TickResult, error) {
	g.Ticks++
	res, err := g.Controller.Tick()
	if err != nil {
		return res, err
	}
	if g.Config.Verbose {
		log.Printf("[Game %s] tick %d: %s %s head=%v goal=%v score=%d",
			g.UUID[:8], g.Ticks, res.Outcome, res.Direction, res.Head, g.Food.GetFood(), res.Score)
	}
	return res, nil
}

// Run ticks until a terminal outcome or the step budget is spent
func (g *Game) Run() (manager.GameRecord, error) {
	outcome := OutcomeStepLimit
	for g.Config.MaxSteps == 0 || g.Ticks < g.Config.MaxSteps {
		res, err := g.Update()
		if err != nil {
			return g.record(OutcomeGameOver), err
		}
		if res.Outcome.Terminal() {
			outcome = res.Outcome
			if res.Collision != manager.NoCollision {
				log.Printf("[Game %s] %s collision at %v", g.UUID[:8], res.Collision, res.Head)
			}
			break
		}
	}
	return g.record(outcome), nil
}

func (g *Game) record(o Outcome) manager.GameRecord {
	return manager.GameRecord{
		ID:        g.UUID,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
		Score:     g.Snake.Score,
		Steps:     g.Controller.Steps,
		Replans:   g.Controller.Replans(),
		Stalls:    g.Controller.Stalls,
		Length:    g.Snake.Len(),
		Outcome:   o.String(),
	}
}
