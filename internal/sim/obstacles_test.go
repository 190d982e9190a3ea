package sim

import (
	"math/rand"
	"testing"
)

func testField(seed int64) *ObstacleField {
	return NewObstacleField(rand.New(rand.NewSource(seed)), DefaultParams().Obstacles)
}

func TestSpawnGapWithinRange(t *testing.T) {
	params := DefaultParams().Obstacles
	f := testField(42)

	viewW, viewH, groundRatio := 800.0, 600.0, 0.85
	maxGapY := viewH*groundRatio - params.GapHeight - params.GapMargin

	for i := 0; i < 200; i++ {
		f.Spawn(viewW, viewH, groundRatio)
	}

	for _, o := range f.Obstacles() {
		if o.GapY < params.MinGapY || o.GapY > maxGapY {
			t.Fatalf("gapY %v outside [%v, %v]", o.GapY, params.MinGapY, maxGapY)
		}
		if o.X != viewW {
			t.Fatalf("new obstacle should spawn at the right edge, x = %v", o.X)
		}
		if o.Passed {
			t.Fatal("new obstacle must not be marked passed")
		}
	}
}

func TestSpawnDegenerateViewportClamps(t *testing.T) {
	// A viewport too short for any gap range must clamp to MinGapY
	// deterministically.
	params := DefaultParams().Obstacles
	f := testField(1)

	f.Spawn(800, 100, 0.85)

	obstacles := f.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].GapY != params.MinGapY {
		t.Errorf("degenerate spawn gapY = %v, expected MinGapY %v", obstacles[0].GapY, params.MinGapY)
	}
}

func TestAdvanceMarksPassedOnce(t *testing.T) {
	// Obstacle at x=50 with width 64: an agent at x=120 is past its right
	// edge (120 > 114), so the obstacle scores exactly once.
	f := testField(1)
	f.obstacles = append(f.obstacles, Obstacle{X: 50, Width: 64, GapY: 100, GapHeight: 150})

	passed := f.Advance(0, 0, 120)
	if passed != 1 {
		t.Fatalf("expected 1 newly passed obstacle, got %d", passed)
	}
	if !f.Obstacles()[0].Passed {
		t.Error("obstacle should be marked passed")
	}

	// Subsequent advances must not score the same obstacle again.
	for i := 0; i < 10; i++ {
		if again := f.Advance(1, 1, 120); again != 0 {
			t.Fatalf("obstacle scored twice on advance %d", i)
		}
	}
}

func TestAdvanceNotYetPassed(t *testing.T) {
	f := testField(1)
	f.obstacles = append(f.obstacles, Obstacle{X: 120, Width: 64, GapY: 100, GapHeight: 150})

	if passed := f.Advance(0, 0, 120); passed != 0 {
		t.Errorf("agent at the left edge has not passed, got %d", passed)
	}
}

func TestAdvanceRetiresOffscreenInOrder(t *testing.T) {
	f := testField(1)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -70, Width: 64, Passed: true}, // fully off the left edge
		Obstacle{X: 200, Width: 64},
		Obstacle{X: 500, Width: 64},
	)

	f.Advance(0, 0, 0)

	obstacles := f.Obstacles()
	if len(obstacles) != 2 {
		t.Fatalf("expected 2 live obstacles, got %d", len(obstacles))
	}
	// Oldest-first order must survive the retain pass.
	if obstacles[0].X != 200 || obstacles[1].X != 500 {
		t.Errorf("retain pass disturbed order: %v, %v", obstacles[0].X, obstacles[1].X)
	}
}

func TestAdvanceScrollSpeed(t *testing.T) {
	f := testField(1)
	f.obstacles = append(f.obstacles, Obstacle{X: 400, Width: 64})

	f.Advance(1.5, 4, 0)

	if got := f.Obstacles()[0].X; got != 400-6 {
		t.Errorf("x = %v, expected 394 (speed 4 at scale 1.5)", got)
	}
}

func TestMaybeSpawnFullTimerReset(t *testing.T) {
	f := testField(1)

	// 130ms against a 100ms interval spawns and resets the timer to zero;
	// the 30ms overshoot is deliberately discarded.
	if !f.MaybeSpawn(130, 100, 800, 600, 0.85) {
		t.Fatal("expected a spawn once the interval elapsed")
	}
	if f.MaybeSpawn(70, 100, 800, 600, 0.85) {
		t.Error("timer should have reset to 0, not carried the overshoot")
	}
	if !f.MaybeSpawn(30, 100, 800, 600, 0.85) {
		t.Error("expected a spawn after the full interval accumulated again")
	}
}

func TestResetClearsFieldAndTimer(t *testing.T) {
	f := testField(1)
	f.Spawn(800, 600, 0.85)
	f.MaybeSpawn(50, 100, 800, 600, 0.85)

	f.Reset()

	if len(f.Obstacles()) != 0 {
		t.Error("reset should clear obstacles")
	}
	if f.spawnTimer != 0 {
		t.Errorf("reset should zero the spawn timer, got %v", f.spawnTimer)
	}
}

func TestSpawnSequenceReproducible(t *testing.T) {
	a := testField(777)
	b := testField(777)

	for i := 0; i < 50; i++ {
		a.Spawn(800, 600, 0.85)
		b.Spawn(800, 600, 0.85)
	}

	for i := range a.Obstacles() {
		if a.Obstacles()[i].GapY != b.Obstacles()[i].GapY {
			t.Fatalf("spawn %d diverged: %v vs %v", i, a.Obstacles()[i].GapY, b.Obstacles()[i].GapY)
		}
	}
}
