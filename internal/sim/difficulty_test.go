package sim

import "testing"

func TestSpeedFormula(t *testing.T) {
	c := Curve{BaseSpeed: 3, SpeedGainPerPoint: 0.02}

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 3},
		{1, 3 * 1.02},
		{50, 3 * 2.0},
	}

	for _, tc := range tests {
		if got := c.Speed(tc.score); got != tc.expected {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	c := Curve{InitialIntervalMs: 1400, IntervalDecayPerPointMs: 10, MinIntervalMs: 900}

	if got := c.SpawnInterval(0); got != 1400 {
		t.Errorf("SpawnInterval(0) = %v, expected 1400", got)
	}
	if got := c.SpawnInterval(10); got != 1300 {
		t.Errorf("SpawnInterval(10) = %v, expected 1300", got)
	}
	// Past the floor, the interval stays pinned.
	if got := c.SpawnInterval(50); got != 900 {
		t.Errorf("SpawnInterval(50) = %v, expected floor 900", got)
	}
	if got := c.SpawnInterval(100000); got != 900 {
		t.Errorf("SpawnInterval(100000) = %v, expected floor 900", got)
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	c := DefaultParams().Curve

	prevSpeed := c.Speed(0)
	prevInterval := c.SpawnInterval(0)
	for score := 1; score <= 500; score++ {
		speed := c.Speed(score)
		interval := c.SpawnInterval(score)

		if speed < prevSpeed {
			t.Fatalf("speed decreased at score %d: %v -> %v", score, prevSpeed, speed)
		}
		if interval > prevInterval {
			t.Fatalf("interval increased at score %d: %v -> %v", score, prevInterval, interval)
		}
		if interval < c.MinIntervalMs {
			t.Fatalf("interval %v fell below floor %v at score %d", interval, c.MinIntervalMs, score)
		}

		prevSpeed = speed
		prevInterval = interval
	}
}
