package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/marralek/glidebird/internal/sim"
)

func TestToneStreamsExactDuration(t *testing.T) {
	sr := beep.SampleRate(44100)
	tn := newTone(sr, 440, 0.5, 100)

	expected := sr.N(msToDuration(100))
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := tn.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != expected {
		t.Errorf("streamed %d samples, expected %d", total, expected)
	}
	if tn.Err() != nil {
		t.Errorf("tone should never error, got %v", tn.Err())
	}

	// A drained tone stays drained.
	if n, ok := tn.Stream(buf); n != 0 || ok {
		t.Error("drained tone must report (0, false)")
	}
}

func TestToneSamplesBounded(t *testing.T) {
	sr := beep.SampleRate(44100)
	tn := newTone(sr, 880, 1.0, 50)

	buf := make([][2]float64, 4096)
	for {
		n, ok := tn.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %v out of [-1, 1]", buf[i][0])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("tone should be identical on both channels")
			}
		}
		if !ok {
			break
		}
	}
}

func TestSilentNotifierIsSafe(t *testing.T) {
	n := New(false)
	defer n.Close()

	// Every event must be a harmless no-op without a speaker.
	for _, e := range []sim.Event{sim.EventFlap, sim.EventScore, sim.EventHit} {
		n.Notify(e)
	}
	n.Notify(sim.Event(99))
}
