package ai

import (
	"testing"

	"snake-astar/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// bfsDistances returns the true step distance from src to every cell, -1 if
// unreachable. Blocked cells are never entered.
func bfsDistances(g *Grid, src int) []int {
	dist := make([]int, len(g.Cells))
	for i := range dist {
		dist[i] = -1
	}
	if g.Cells[src].Blocked {
		return dist
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Cells[cur].Neighbors {
			if dist[n] < 0 {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// heuristicViolations lists cells whose h overstates the true remaining distance
func heuristicViolations(g *Grid) []types.Point {
	dist := bfsDistances(g, g.Goal)
	var bad []types.Point
	for i, c := range g.Cells {
		if dist[i] >= 0 && c.H > dist[i] {
			bad = append(bad, c.Point())
		}
	}
	return bad
}

func requireValidPath(t *testing.T, start types.Point, steps []types.Point, blocked []types.Point) {
	t.Helper()
	obstacles := make(map[types.Point]bool, len(blocked))
	for _, b := range blocked {
		obstacles[b] = true
	}
	prev := start
	for i, s := range steps {
		require.Equal(t, 1, types.ManhattanDistance(prev, s), "step %d %v -> %v is not a single move", i, prev, s)
		require.False(t, obstacles[s], "step %d crosses obstacle %v", i, s)
		prev = s
	}
}

func randomObstacles(rng *rand.Rand, w, h int, density float64, keep ...types.Point) []types.Point {
	var out []types.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := types.Point{X: x, Y: y}
			skip := false
			for _, k := range keep {
				if k == p {
					skip = true
				}
			}
			if !skip && rng.Float64() < density {
				out = append(out, p)
			}
		}
	}
	return out
}

func TestSearchStraightLine(t *testing.T) {
	p := &Planner{}
	res, err := p.Plan(5, 5, nil, types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 0})
	require.NoError(t, err)

	assert.True(t, res.Reached)
	assert.Equal(t, []types.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, res.Path.Steps())
	assert.Equal(t, 4, res.Path.Len())
	assert.Equal(t, types.Point{X: 4, Y: 0}, res.Terminal)
}

func TestSearchDetoursAroundObstacle(t *testing.T) {
	start := types.Point{X: 0, Y: 0}
	goal := types.Point{X: 0, Y: 4}
	blocked := []types.Point{{X: 0, Y: 2}}

	p := &Planner{}
	res, err := p.Plan(5, 5, blocked, start, goal)
	require.NoError(t, err)

	require.True(t, res.Reached)
	steps := res.Path.Steps()
	assert.Len(t, steps, 6)
	assert.NotContains(t, steps, types.Point{X: 0, Y: 2})
	assert.Equal(t, goal, steps[len(steps)-1])
	requireValidPath(t, start, steps, blocked)
}

func TestSearchStartIsGoal(t *testing.T) {
	p := &Planner{}
	at := types.Point{X: 2, Y: 2}
	res, err := p.Plan(5, 5, nil, at, at)
	require.NoError(t, err)

	assert.True(t, res.Reached)
	assert.True(t, res.Path.Empty())
	assert.Equal(t, 1, res.Expanded)
}

func TestSearchOpenBoardIsManhattanOptimal(t *testing.T) {
	const w, h = 6, 4
	p := &Planner{}
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			for gy := 0; gy < h; gy++ {
				for gx := 0; gx < w; gx++ {
					start := types.Point{X: sx, Y: sy}
					goal := types.Point{X: gx, Y: gy}
					res, err := p.Plan(w, h, nil, start, goal)
					require.NoError(t, err)
					require.True(t, res.Reached)
					require.Equal(t, types.ManhattanDistance(start, goal), res.Path.Len(), "%v -> %v", start, goal)
					requireValidPath(t, start, res.Path.Steps(), nil)
				}
			}
		}
	}
}

func TestSearchMatchesBFSWithObstacles(t *testing.T) {
	const w, h = 12, 9
	rng := rand.New(rand.NewSource(7))
	p := &Planner{}

	for trial := 0; trial < 200; trial++ {
		start := types.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		goal := types.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		blocked := randomObstacles(rng, w, h, 0.3, start, goal)

		g, err := Build(w, h, blocked, start, goal)
		require.NoError(t, err)
		want := bfsDistances(g, g.Start)[g.Goal]

		res, err := p.Search(g)
		require.NoError(t, err)
		requireValidPath(t, start, res.Path.Steps(), blocked)

		if want < 0 {
			assert.False(t, res.Reached, "trial %d: goal %v should be unreachable", trial, goal)
			continue
		}
		require.True(t, res.Reached, "trial %d", trial)
		assert.Equal(t, want, res.Path.Len(), "trial %d: %v -> %v", trial, start, goal)
		last, ok := res.Path.Last()
		if want > 0 {
			require.True(t, ok)
			assert.Equal(t, goal, last)
		}
	}
}

func TestHeuristicIsAdmissible(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		start := types.Point{X: 0, Y: 0}
		goal := types.Point{X: rng.Intn(10), Y: rng.Intn(8)}
		blocked := randomObstacles(rng, 10, 8, 0.25, start, goal)

		g, err := Build(10, 8, blocked, start, goal)
		require.NoError(t, err)
		assert.Empty(t, heuristicViolations(g), "trial %d", trial)
	}
}

func TestInflatedHeuristicIsRejected(t *testing.T) {
	g, err := Build(5, 5, nil, types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 4})
	require.NoError(t, err)
	for i := range g.Cells {
		g.Cells[i].H *= 2
	}
	assert.NotEmpty(t, heuristicViolations(g))
}

func TestSearchEnclosedGoalFallsBack(t *testing.T) {
	start := types.Point{X: 0, Y: 0}
	goal := types.Point{X: 4, Y: 4}
	blocked := []types.Point{{X: 3, Y: 4}, {X: 4, Y: 3}}

	p := &Planner{}
	res, err := p.Plan(5, 5, blocked, start, goal)
	require.NoError(t, err)

	assert.False(t, res.Reached)
	assert.Equal(t, 22, res.Expanded, "every reachable cell is explored once")
	assert.NotEqual(t, goal, res.Terminal)
	require.False(t, res.Path.Empty())
	last, _ := res.Path.Last()
	assert.Equal(t, res.Terminal, last)
	assert.NotContains(t, res.Path.Steps(), goal)
	requireValidPath(t, start, res.Path.Steps(), blocked)
}

func TestStrictSearchReportsNoPath(t *testing.T) {
	start := types.Point{X: 0, Y: 0}
	goal := types.Point{X: 4, Y: 4}
	blocked := []types.Point{{X: 3, Y: 4}, {X: 4, Y: 3}}

	p := &Planner{Strict: true}
	res, err := p.Plan(5, 5, blocked, start, goal)
	assert.ErrorIs(t, err, ErrNoPathFound)
	assert.True(t, res.Path.Empty())
	assert.False(t, res.Reached)
}

func TestSearchBlockedGoalIsUnreachable(t *testing.T) {
	goal := types.Point{X: 2, Y: 0}
	p := &Planner{}
	res, err := p.Plan(3, 3, []types.Point{goal}, types.Point{X: 0, Y: 0}, goal)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.NotContains(t, res.Path.Steps(), goal)
}

func TestSearchBoxedInStartYieldsEmptyPath(t *testing.T) {
	blocked := []types.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	p := &Planner{}
	res, err := p.Plan(5, 5, blocked, types.Point{X: 0, Y: 0}, types.Point{X: 4, Y: 4})
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.True(t, res.Path.Empty())
	assert.Equal(t, 1, res.Expanded)
}

func TestSearchIsDeterministicAndRepeatable(t *testing.T) {
	start := types.Point{X: 1, Y: 1}
	goal := types.Point{X: 8, Y: 6}
	blocked := []types.Point{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}}

	g, err := Build(10, 8, blocked, start, goal)
	require.NoError(t, err)

	p := &Planner{}
	first, err := p.Search(g)
	require.NoError(t, err)
	second, err := p.Search(g)
	require.NoError(t, err)

	other, err := p.Plan(10, 8, blocked, start, goal)
	require.NoError(t, err)

	assert.Equal(t, first.Path.Steps(), second.Path.Steps())
	assert.Equal(t, first.Path.Steps(), other.Path.Steps())
	assert.Equal(t, first.Expanded, second.Expanded)
}
