package sim

import (
	"math/rand"

	"github.com/marralek/glidebird/internal/core"
)

// Obstacle is a pipe-pair: two rectangles with a vertical gap between them.
// The Passed flag is monotonic false→true and prevents double scoring.
type Obstacle struct {
	X         float64 // Left edge, decreases as the world scrolls
	GapY      float64 // Top edge of the passable gap
	GapHeight float64 // Height of the passable gap
	Width     float64
	Passed    bool
}

// TopRect returns the collision rectangle above the gap.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapY)
}

// BottomRect returns the collision rectangle below the gap, extending to the
// bottom of the viewport.
func (o Obstacle) BottomRect(viewH float64) core.Rect {
	bottomY := o.GapY + o.GapHeight
	return core.NewRect(o.X, bottomY, o.Width, viewH-bottomY)
}

// ObstacleParams holds the spawn geometry for pipe-pairs.
type ObstacleParams struct {
	Width     float64 // Pipe width in world units
	GapHeight float64 // Vertical gap size, fixed at spawn
	MinGapY   float64 // Smallest allowed gap top edge
	GapMargin float64 // Clearance kept between the gap and the ground line
}

// ObstacleField owns the ordered obstacle collection. Obstacles are appended
// at the right edge and retired from the left, so iteration order is always
// oldest first.
type ObstacleField struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	params     ObstacleParams
	spawnTimer float64 // Accumulated milliseconds since the last spawn
}

// NewObstacleField creates an empty field drawing gap positions from rng.
func NewObstacleField(rng *rand.Rand, params ObstacleParams) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		params:    params,
	}
}

// Reset clears all obstacles and the spawn timer.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
	f.spawnTimer = 0
}

// Obstacles returns the live obstacle slice, oldest first.
// Callers must treat it as read-only.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Spawn appends a new pipe-pair at the right edge of the viewport with a
// uniformly random gap position. When the viewport is too short to offer a
// range, the gap clamps deterministically to MinGapY.
func (f *ObstacleField) Spawn(viewW, viewH, groundRatio float64) {
	maxGapY := viewH*groundRatio - f.params.GapHeight - f.params.GapMargin

	gapY := f.params.MinGapY
	if maxGapY > f.params.MinGapY {
		gapY = f.params.MinGapY + f.rng.Float64()*(maxGapY-f.params.MinGapY)
	}

	f.obstacles = append(f.obstacles, Obstacle{
		X:         viewW,
		GapY:      gapY,
		GapHeight: f.params.GapHeight,
		Width:     f.params.Width,
	})
}

// Advance scrolls every obstacle left by speed*f, marks newly passed
// obstacles, and retires those fully off the left edge. Returns the number
// of obstacles passed this step.
func (f *ObstacleField) Advance(stepScale, speed, agentX float64) int {
	passed := 0

	for i := range f.obstacles {
		f.obstacles[i].X -= speed * stepScale
		if !f.obstacles[i].Passed && agentX > f.obstacles[i].X+f.obstacles[i].Width {
			f.obstacles[i].Passed = true
			passed++
		}
	}

	// Retain pass: rebuilding in place keeps indices stable and preserves
	// the oldest-first order.
	live := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.Width >= 0 {
			live = append(live, o)
		}
	}
	f.obstacles = live

	return passed
}

// MaybeSpawn accumulates elapsed time and spawns a single obstacle once the
// interval elapses. The timer resets to zero rather than carrying the
// overshoot, so spawn timing may drift by up to one frame per interval.
// Returns true if an obstacle was spawned.
func (f *ObstacleField) MaybeSpawn(dtMs, intervalMs, viewW, viewH, groundRatio float64) bool {
	f.spawnTimer += dtMs
	if f.spawnTimer < intervalMs {
		return false
	}
	f.spawnTimer = 0
	f.Spawn(viewW, viewH, groundRatio)
	return true
}
