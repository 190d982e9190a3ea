package sim

import (
	"math"
	"testing"
)

func testPhysics() Physics {
	return DefaultParams().Physics
}

func TestStepScale(t *testing.T) {
	p := testPhysics()

	tests := []struct {
		name     string
		dtMs     float64
		expected float64
	}{
		{"nominal frame", 16, 1.0},
		{"half frame", 8, 0.5},
		{"long stall clamps", 5000, p.MaxStepScale},
		{"zero dt", 0, 0},
		{"negative dt", -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.StepScale(tc.dtMs); got != tc.expected {
				t.Errorf("StepScale(%v) = %v, expected %v", tc.dtMs, got, tc.expected)
			}
		})
	}
}

func TestIntegrateOneNominalStep(t *testing.T) {
	// Agent at y=100 with vy=0 and gravity 0.45 advanced by one 16ms frame
	// must end at vy=0.45, y=100.45.
	p := testPhysics()
	p.Gravity = 0.45

	a := Agent{X: 120, Y: 100, Radius: 14}
	p.Integrate(&a, p.StepScale(16))

	if a.VY != 0.45 {
		t.Errorf("vy = %v, expected 0.45", a.VY)
	}
	if a.Y != 100.45 {
		t.Errorf("y = %v, expected 100.45", a.Y)
	}
}

func TestFallSpeedCapped(t *testing.T) {
	p := testPhysics()
	a := Agent{Y: 100, Radius: 14}

	// Whatever the dt sequence, vy must never exceed the terminal velocity.
	for _, dt := range []float64{0, 4, 16, 33, 200, 10000} {
		p.Integrate(&a, p.StepScale(dt))
		if a.VY > p.MaxFallSpeed {
			t.Fatalf("vy = %v exceeds max fall speed %v after dt=%v", a.VY, p.MaxFallSpeed, dt)
		}
	}
}

func TestFlapImpulse(t *testing.T) {
	p := testPhysics()
	a := Agent{Y: 100, VY: 5, Radius: 14}

	p.Flap(&a)

	if a.VY != p.FlapImpulse {
		t.Errorf("vy after flap = %v, expected %v", a.VY, p.FlapImpulse)
	}
	if a.VY >= 0 {
		t.Error("flap impulse must be upward (negative)")
	}
}

func TestRotationEasesTowardTarget(t *testing.T) {
	p := testPhysics()

	// Rising: rotation converges toward -TiltUp without overshooting.
	a := Agent{Y: 300, Radius: 14}
	p.Flap(&a)
	prev := a.Rot
	for i := 0; i < 5; i++ {
		p.Integrate(&a, 1)
		if a.VY >= 0 {
			break
		}
		if a.Rot >= prev {
			t.Fatalf("rotation should ease downward while rising: %v -> %v", prev, a.Rot)
		}
		if a.Rot < -p.TiltUp {
			t.Fatalf("rotation %v overshot the rising target %v", a.Rot, -p.TiltUp)
		}
		prev = a.Rot
	}

	// Falling: target is capped at TiltDownMax no matter how fast the fall.
	p.TiltGain = 0.1 // vy*gain well above the cap at terminal velocity
	a = Agent{Y: 100, VY: p.MaxFallSpeed, Radius: 14}
	for i := 0; i < 200; i++ {
		p.Integrate(&a, 1)
	}
	if a.Rot > p.TiltDownMax+1e-9 {
		t.Errorf("rotation %v exceeds falling cap %v", a.Rot, p.TiltDownMax)
	}
	if math.Abs(a.Rot-p.TiltDownMax) > 0.01 {
		t.Errorf("rotation should converge near %v after a long fall, got %v", p.TiltDownMax, a.Rot)
	}
}

func TestRotationSmoothingIsFirstOrderFilter(t *testing.T) {
	// One step from rest toward a constant target must move exactly
	// (target-angle)*smoothing.
	p := testPhysics()
	p.Gravity = 0

	a := Agent{Y: 100, VY: -3, Radius: 14}
	p.Integrate(&a, 1)

	expected := (-p.TiltUp - 0) * p.RotationSmoothing
	if math.Abs(a.Rot-expected) > 1e-12 {
		t.Errorf("rot = %v, expected %v", a.Rot, expected)
	}
}
