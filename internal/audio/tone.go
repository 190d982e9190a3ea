package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// tone is a self-terminating sine streamer with a linear decay envelope.
// Sounds are synthesized rather than sampled, so the binary ships no assets.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	vol   float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq, vol float64, durMs int) *tone {
	return &tone{
		sr:    sr,
		freq:  freq,
		vol:   vol,
		total: sr.N(msToDuration(durMs)),
	}
}

// Stream fills samples until the tone's duration elapses.
func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		// Linear fade-out keeps short blips from clicking.
		envelope := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr)) * t.vol * envelope
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err always returns nil; tone generation cannot fail.
func (t *tone) Err() error {
	return nil
}

var _ beep.Streamer = (*tone)(nil)
