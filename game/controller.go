package game

import (
	"errors"
	"fmt"

	"snake-astar/ai"
	"snake-astar/game/entity"
	"snake-astar/game/manager"
	"snake-astar/game/types"
)

// Outcome is what a single tick did
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeNoMove
	OutcomeGameOver  // hit a wall or itself
	OutcomeTrapped   // no move for too many consecutive ticks
	OutcomeBoardFull // no free cell left for a goal
	OutcomeStepLimit // step budget exhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeNoMove:
		return "no-move"
	case OutcomeGameOver:
		return "game-over"
	case OutcomeTrapped:
		return "trapped"
	case OutcomeBoardFull:
		return "board-full"
	case OutcomeStepLimit:
		return "step-limit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Terminal reports whether the game ends with this outcome
func (o Outcome) Terminal() bool {
	return o >= OutcomeGameOver
}

// TickResult reports one controller tick
type TickResult struct {
	Outcome   Outcome
	Direction types.Direction
	Head      types.Point
	Score     int
	Collision manager.CollisionType
}

// AgentController moves the snake one cell per tick along the cached path
type AgentController struct {
	grid         types.Grid
	snake        *entity.Snake
	planner      *ai.Planner
	cache        *ai.PathCache
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager

	maxStallTicks int
	stallRun      int
	needGoal      bool

	Steps  int // ticks that moved the head
	Stalls int // ticks without a move
}

func NewAgentController(
	grid types.Grid,
	snake *entity.Snake,
	planner *ai.Planner,
	collisionMgr *manager.CollisionManager,
	foodMgr *manager.FoodManager,
	maxStallTicks int,
) *AgentController {
	if maxStallTicks < 1 {
		maxStallTicks = 1
	}
	return &AgentController{
		grid:          grid,
		snake:         snake,
		planner:       planner,
		cache:         ai.NewPathCache(),
		collisionMgr:  collisionMgr,
		foodMgr:       foodMgr,
		maxStallTicks: maxStallTicks,
	}
}

// Replans returns how many planning cycles have run
func (c *AgentController) Replans() int {
	return c.cache.Searches()
}

// PlannedPath returns the unconsumed part of the cached path
func (c *AgentController) PlannedPath() []types.Point {
	return c.cache.Remaining()
}

// Invalidate forces a fresh plan on the next tick
func (c *AgentController) Invalidate() {
	c.cache.Invalidate()
}

// replan rebuilds the grid from the live body and searches it
func (c *AgentController) replan() (ai.Result, error) {
	return c.planner.Plan(
		c.grid.Width,
		c.grid.Height,
		c.snake.Obstacles(),
		c.snake.GetHead(),
		c.foodMgr.GetFood(),
	)
}

// Tick advances the snake by one planned step
func (c *AgentController) Tick() (TickResult, error) {
	if c.snake.GameOver {
		return c.result(OutcomeGameOver), nil
	}

	if c.needGoal {
		c.needGoal = false
		c.cache.Invalidate()
		if err := c.foodMgr.Relocate(c.snake.Body); err != nil {
			return c.relocateFailed(err)
		}
	}

	head := c.snake.GetHead()
	next, err := c.cache.NextMove(c.replan)
	switch {
	case err == nil:
	case errors.Is(err, ai.ErrNoPathFound):
		escape := c.collisionMgr.FreeNeighbors(head, c.snake.Body)
		if len(escape) == 0 {
			return c.stall(), nil
		}
		next = escape[0]
	case errors.Is(err, ai.ErrEmptyPath):
		if head == c.foodMgr.GetFood() {
			// Already on the goal, ask for a new one next tick
			c.needGoal = true
			return c.result(OutcomeNoMove), nil
		}
		return c.stall(), nil
	default:
		return TickResult{}, fmt.Errorf("plan from %v: %w", head, err)
	}

	dir, ok := types.DirectionFromDelta(next.Sub(head))
	if !ok {
		c.cache.Invalidate()
		return TickResult{}, fmt.Errorf("planned step %v is not adjacent to head %v", next, head)
	}
	c.stallRun = 0
	c.Steps++
	c.snake.Direction = dir

	if col := c.collisionMgr.CheckCollision(next, c.snake.Body); col != manager.NoCollision {
		c.snake.Dead = true
		c.snake.GameOver = true
		res := c.result(OutcomeGameOver)
		res.Head = next
		res.Collision = col
		return res, nil
	}

	c.snake.Move(next)

	if c.foodMgr.IsFoodCollision(next) {
		c.snake.Score++
		c.cache.Invalidate()
		if err := c.foodMgr.Relocate(c.snake.Body); err != nil {
			return c.relocateFailed(err)
		}
		return c.result(OutcomeAte), nil
	}

	c.snake.RemoveTail()
	return c.result(OutcomeMoved), nil
}

func (c *AgentController) stall() TickResult {
	c.cache.Invalidate()
	c.Stalls++
	c.stallRun++
	if c.stallRun >= c.maxStallTicks {
		c.snake.Dead = true
		c.snake.GameOver = true
		return c.result(OutcomeTrapped)
	}
	return c.result(OutcomeNoMove)
}

func (c *AgentController) relocateFailed(err error) (TickResult, error) {
	if errors.Is(err, manager.ErrBoardFull) {
		c.snake.GameOver = true
		return c.result(OutcomeBoardFull), nil
	}
	return TickResult{}, fmt.Errorf("relocate goal: %w", err)
}

func (c *AgentController) result(o Outcome) TickResult {
	return TickResult{
		Outcome:   o,
		Direction: c.snake.Direction,
		Head:      c.snake.GetHead(),
		Score:     c.snake.Score,
	}
}
