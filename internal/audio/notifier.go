// Package audio plays short synthesized cues for gameplay events via the
// beep speaker. The notifier is purely observational: a missing or broken
// audio backend degrades to silence and never disturbs the simulation.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/marralek/glidebird/internal/sim"
)

const defaultSampleRate = beep.SampleRate(44100)

// cue describes the synthesized sound for one event kind.
type cue struct {
	freq  float64
	vol   float64
	durMs int
}

var cues = map[sim.Event]cue{
	sim.EventFlap:  {freq: 523.25, vol: 0.25, durMs: 60},  // C5 blip
	sim.EventScore: {freq: 783.99, vol: 0.30, durMs: 90},  // G5 chime
	sim.EventHit:   {freq: 110.00, vol: 0.40, durMs: 220}, // A2 thud
}

// Notifier implements sim.Notifier on top of the beep speaker.
type Notifier struct {
	sampleRate beep.SampleRate
	silent     atomic.Bool
}

// New initializes the speaker and returns a notifier. If the audio backend
// cannot be initialized the notifier starts in silent mode; that is not an
// error.
func New(enabled bool) *Notifier {
	n := &Notifier{sampleRate: defaultSampleRate}

	if !enabled {
		n.silent.Store(true)
		return n
	}

	if err := speaker.Init(n.sampleRate, n.sampleRate.N(50*time.Millisecond)); err != nil {
		n.silent.Store(true)
	}
	return n
}

// Notify plays the cue for the event. Unknown events and silent mode are
// no-ops.
func (n *Notifier) Notify(e sim.Event) {
	if n.silent.Load() {
		return
	}
	c, ok := cues[e]
	if !ok {
		return
	}

	// The speaker runs its own mixer goroutine; a panic there must never
	// reach the simulation tick.
	defer func() {
		if recover() != nil {
			n.silent.Store(true)
		}
	}()
	speaker.Play(newTone(n.sampleRate, c.freq, c.vol, c.durMs))
}

// Close shuts the speaker down. Safe to call on a silent notifier.
func (n *Notifier) Close() {
	if n.silent.Load() {
		return
	}
	n.silent.Store(true)
	speaker.Close()
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

var _ sim.Notifier = (*Notifier)(nil)
