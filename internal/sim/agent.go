package sim

import (
	"math"

	"github.com/marralek/glidebird/internal/core"
)

// NominalStepMs is the duration of one nominal 60 fps frame. Delta times are
// normalized against it so the simulation advances identically regardless of
// the actual display refresh rate.
const NominalStepMs = 16.0

// Agent is the player-controlled bird. X and Radius are fixed after
// initialization; only the vertical state mutates.
type Agent struct {
	X      float64 // Fixed horizontal position
	Y      float64 // Vertical position (center)
	VY     float64 // Vertical velocity, positive is down
	Rot    float64 // Smoothed tilt angle in radians
	Radius float64 // Collision circle radius
}

// Physics holds the tuning constants for agent integration.
type Physics struct {
	Gravity           float64 // Downward acceleration per nominal step
	FlapImpulse       float64 // Velocity set on flap (negative = up)
	MaxFallSpeed      float64 // Terminal downward velocity
	TiltUp            float64 // Target tilt while rising, radians
	TiltDownMax       float64 // Maximum target tilt while falling, radians
	TiltGain          float64 // Radians of target tilt per unit of fall speed
	RotationSmoothing float64 // First-order filter factor easing Rot to target
	MaxStepScale      float64 // Upper bound on the normalized step factor
}

// StepScale normalizes an elapsed-time delta (milliseconds) to a 60 fps
// relative factor, clamped so a long stall (e.g. a backgrounded terminal)
// cannot produce an unstable integration step.
func (p Physics) StepScale(dtMs float64) float64 {
	if dtMs < 0 {
		return 0
	}
	return math.Min(dtMs/NominalStepMs, p.MaxStepScale)
}

// Integrate advances the agent by one step of scale f.
// Downward speed is capped; upward speed is bounded only by the flap impulse.
func (p Physics) Integrate(a *Agent, f float64) {
	a.VY += p.Gravity * f
	if a.VY > p.MaxFallSpeed {
		a.VY = p.MaxFallSpeed
	}
	a.Y += a.VY * f

	// The tilt is a first-order IIR filter toward a velocity-derived target,
	// not a physical rotation.
	target := -p.TiltUp
	if a.VY >= 0 {
		target = math.Min(p.TiltDownMax, a.VY*p.TiltGain)
	}
	a.Rot = core.Lerp(a.Rot, target, p.RotationSmoothing)
}

// Flap replaces the agent's vertical velocity with the fixed upward impulse.
func (p Physics) Flap(a *Agent) {
	a.VY = p.FlapImpulse
}
