// Package sim implements the glidebird core: a deterministic,
// frame-rate-independent side-scroller simulation. The package is a pure
// library with no UI dependencies; hosts drive it with elapsed-time deltas
// and read back snapshots for rendering.
package sim

import (
	"math/rand"
	"time"
)

// Phase is the session state machine value.
type Phase int

const (
	PhaseStart    Phase = iota // Idle, waiting for first input
	PhasePlaying               // Simulation active
	PhaseGameOver              // Terminal, accepts only a restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Params bundles every tuning constant of the simulation.
type Params struct {
	Physics   Physics
	Obstacles ObstacleParams
	Curve     Curve

	AgentX      float64 // Fixed horizontal agent position
	AgentRadius float64
	StartYRatio float64 // Initial agent y as a fraction of viewport height

	ViewW       float64 // Initial viewport width in world units
	ViewH       float64 // Initial viewport height in world units
	GroundRatio float64 // Ground line as a fraction of viewport height
}

// DefaultParams returns the tuning used by the shipped game.
func DefaultParams() Params {
	return Params{
		Physics: Physics{
			Gravity:           0.45,
			FlapImpulse:       -7.5,
			MaxFallSpeed:      12.0,
			TiltUp:            0.4,
			TiltDownMax:       0.6,
			TiltGain:          0.04,
			RotationSmoothing: 0.15,
			MaxStepScale:      2.0,
		},
		Obstacles: ObstacleParams{
			Width:     64,
			GapHeight: 150,
			MinGapY:   60,
			GapMargin: 40,
		},
		Curve: Curve{
			BaseSpeed:               3.0,
			SpeedGainPerPoint:       0.02,
			InitialIntervalMs:       1400,
			IntervalDecayPerPointMs: 10,
			MinIntervalMs:           900,
		},
		AgentX:      120,
		AgentRadius: 14,
		StartYRatio: 0.45,
		ViewW:       800,
		ViewH:       600,
		GroundRatio: 0.85,
	}
}

// Simulation is the explicit session context: it owns the agent, the
// obstacle field, the score state, and the phase machine. Multiple
// independent instances can coexist; nothing is shared.
type Simulation struct {
	params Params

	agent Agent
	field *ObstacleField
	phase Phase

	score int
	best  int

	viewW   float64
	viewH   float64
	groundY float64

	notifier Notifier
	store    ScoreStore
}

// Option configures a Simulation at construction time.
type Option func(*Simulation)

// WithNotifier attaches an event observer (e.g. an audio backend).
func WithNotifier(n Notifier) Option {
	return func(s *Simulation) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithStore attaches a best-score persistence store.
func WithStore(st ScoreStore) Option {
	return func(s *Simulation) {
		if st != nil {
			s.store = st
		}
	}
}

// WithRand injects the random source used for gap placement, making spawn
// sequences reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		if rng != nil {
			s.field = NewObstacleField(rng, s.params.Obstacles)
		}
	}
}

// New creates a simulation in the Start phase. The best score is read from
// the store once at construction; a failing store yields best 0.
func New(params Params, opts ...Option) *Simulation {
	s := &Simulation{
		params:   params,
		notifier: nopNotifier{},
		store:    &nopStore{},
	}
	s.field = NewObstacleField(rand.New(rand.NewSource(time.Now().UnixNano())), params.Obstacles)

	for _, opt := range opts {
		opt(s)
	}

	s.Resize(params.ViewW, params.ViewH)
	s.resetAgent()

	if best, err := s.store.ReadBest(); err == nil {
		s.best = best
	}

	return s
}

// Phase returns the current session phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Score returns the current session score.
func (s *Simulation) Score() int { return s.score }

// Best returns the best score seen so far, including the current session.
func (s *Simulation) Best() int { return s.best }

// GroundY returns the current ground line in world units.
func (s *Simulation) GroundY() float64 { return s.groundY }

// Resize updates the play area dimensions and recomputes the ground line.
// Callers must reject non-positive dimensions before they reach the core.
func (s *Simulation) Resize(w, h float64) {
	s.viewW = w
	s.viewH = h
	s.groundY = h * s.params.GroundRatio
}

// OnStart begins the session from the idle phase. No-op otherwise.
func (s *Simulation) OnStart() {
	if s.phase != PhaseStart {
		return
	}
	s.begin()
}

// OnRestart reinitializes and resumes play after a game over. No-op
// otherwise.
func (s *Simulation) OnRestart() {
	if s.phase != PhaseGameOver {
		return
	}
	s.begin()
}

// OnFlap applies the upward impulse. Silent no-op unless playing.
func (s *Simulation) OnFlap() {
	if s.phase != PhasePlaying {
		return
	}
	s.params.Physics.Flap(&s.agent)
	s.notify(EventFlap)
}

// begin fully reinitializes session state and enters the Playing phase:
// score to zero, obstacles cleared, agent at the default pose, spawn timer
// reset. Difficulty derives from score, so it resets implicitly.
func (s *Simulation) begin() {
	s.score = 0
	s.field.Reset()
	s.resetAgent()
	s.phase = PhasePlaying
}

func (s *Simulation) resetAgent() {
	s.agent = Agent{
		X:      s.params.AgentX,
		Y:      s.viewH * s.params.StartYRatio,
		Radius: s.params.AgentRadius,
	}
}

// Tick advances the simulation by dtMs milliseconds of wall time. It is a
// no-op outside the Playing phase. The fixed per-tick order is: physics
// integration, obstacle advance (scroll, score, retire), conditional spawn,
// collision check, and finally the game-over transition if a collision was
// found.
func (s *Simulation) Tick(dtMs float64) {
	if s.phase != PhasePlaying {
		return
	}

	f := s.params.Physics.StepScale(dtMs)
	s.params.Physics.Integrate(&s.agent, f)

	speed := s.params.Curve.Speed(s.score)
	passed := s.field.Advance(f, speed, s.agent.X)
	for i := 0; i < passed; i++ {
		s.score++
		s.notify(EventScore)
		if s.score > s.best {
			s.best = s.score
			// Best-effort persistence; a failing store never stops the tick.
			_ = s.writeBest()
		}
	}

	interval := s.params.Curve.SpawnInterval(s.score)
	s.field.MaybeSpawn(dtMs, interval, s.viewW, s.viewH, s.params.GroundRatio)

	if DetectCollision(&s.agent, s.groundY, s.viewH, s.field.Obstacles()) {
		s.phase = PhaseGameOver
		s.notify(EventHit)
	}
}

// notify forwards an event to the observer, recovering any panic so a
// misbehaving collaborator cannot interrupt the tick.
func (s *Simulation) notify(e Event) {
	defer func() {
		_ = recover()
	}()
	s.notifier.Notify(e)
}

func (s *Simulation) writeBest() (err error) {
	defer func() {
		_ = recover()
	}()
	return s.store.WriteBest(s.best)
}
