package sim

import (
	"github.com/marralek/glidebird/internal/core"
)

// ObstacleView is the render-facing geometry of a single pipe-pair.
type ObstacleView struct {
	Top    core.Rect
	Bottom core.Rect
	Passed bool
}

// Snapshot captures the complete observable state after a tick settles.
// Renderers consume it read-only; mutating a snapshot never affects the
// simulation.
type Snapshot struct {
	Phase Phase
	Score int
	Best  int

	AgentX      float64
	AgentY      float64
	AgentVY     float64
	AgentRot    float64
	AgentRadius float64

	ViewW   float64
	ViewH   float64
	GroundY float64

	Obstacles []ObstacleView
}

// Snapshot returns the current state for rendering or inspection.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, len(s.field.Obstacles()))
	for _, o := range s.field.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			Top:    o.TopRect(),
			Bottom: o.BottomRect(s.viewH),
			Passed: o.Passed,
		})
	}

	return Snapshot{
		Phase:       s.phase,
		Score:       s.score,
		Best:        s.best,
		AgentX:      s.agent.X,
		AgentY:      s.agent.Y,
		AgentVY:     s.agent.VY,
		AgentRot:    s.agent.Rot,
		AgentRadius: s.agent.Radius,
		ViewW:       s.viewW,
		ViewH:       s.viewH,
		GroundY:     s.groundY,
		Obstacles:   obstacles,
	}
}
