package ai

import "snake-astar/game/types"

// ReplanFunc runs one full planning cycle from live state
type ReplanFunc func() (Result, error)

// PathCache serves one step per call from the last computed path and only
// replans once the path is exhausted or invalidated
type PathCache struct {
	path     Path
	searches int
}

// NewPathCache creates an empty cache; the first NextMove always plans
func NewPathCache() *PathCache {
	return &PathCache{}
}

// NextMove pops the next step, replanning first if nothing is cached.
// Returns ErrEmptyPath when the fresh plan has no steps, or the planner's
// error unchanged.
func (c *PathCache) NextMove(replan ReplanFunc) (types.Point, error) {
	if c.path.Empty() {
		c.searches++
		res, err := replan()
		if err != nil {
			c.path = Path{}
			return types.Point{}, err
		}
		c.path = res.Path
	}

	step, ok := c.path.Pop()
	if !ok {
		return types.Point{}, ErrEmptyPath
	}
	return step, nil
}

// Invalidate drops the cached path, forcing a replan on the next call
func (c *PathCache) Invalidate() {
	c.path = Path{}
}

// Remaining returns the unconsumed steps
func (c *PathCache) Remaining() []types.Point {
	return c.path.Steps()
}

// Searches returns how many planning cycles this cache has triggered
func (c *PathCache) Searches() int {
	return c.searches
}
