package sim

import (
	"github.com/marralek/glidebird/internal/core"
)

// CircleRect reports whether a circle at (cx, cy) with radius r touches the
// rectangle. This is the exact test: the circle center is clamped to the
// rectangle bounds to find the closest point, and a collision exists iff the
// squared distance to that point is at most r². The boundary is inclusive.
func CircleRect(cx, cy, r float64, rect core.Rect) bool {
	px, py := rect.ClosestPoint(cx, cy)
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy <= r*r
}

// HitsGround reports whether the agent has reached the ground line.
func HitsGround(a *Agent, groundY float64) bool {
	return a.Y+a.Radius >= groundY
}

// ClampCeiling stops the agent at the top of the viewport. Touching the
// ceiling is not a collision: position is pinned and velocity zeroed.
func ClampCeiling(a *Agent) {
	if a.Y-a.Radius <= 0 {
		a.Y = a.Radius
		a.VY = 0
	}
}

// HitsObstacle reports whether the agent's circle touches either rectangle
// of a single pipe-pair.
func HitsObstacle(a *Agent, o Obstacle, viewH float64) bool {
	return CircleRect(a.X, a.Y, a.Radius, o.TopRect()) ||
		CircleRect(a.X, a.Y, a.Radius, o.BottomRect(viewH))
}

// DetectCollision runs the full per-tick collision pass: ground first (the
// cheap test), then the ceiling clamp side effect, then every obstacle.
// Evaluation stops at the first hit; any hit is equally terminal.
func DetectCollision(a *Agent, groundY, viewH float64, obstacles []Obstacle) bool {
	if HitsGround(a, groundY) {
		return true
	}

	ClampCeiling(a)

	for _, o := range obstacles {
		if HitsObstacle(a, o, viewH) {
			return true
		}
	}
	return false
}
