package sim

// Curve derives the scroll speed and spawn interval from the current score.
// Both functions are pure and monotonic: speed never decreases with score,
// the interval never increases, and the interval is floored at MinIntervalMs.
type Curve struct {
	BaseSpeed               float64 // World units per nominal step at score 0
	SpeedGainPerPoint       float64 // Fractional speed increase per point
	InitialIntervalMs       float64 // Spawn interval at score 0
	IntervalDecayPerPointMs float64 // Interval reduction per point
	MinIntervalMs           float64 // Interval floor
}

// Speed returns the obstacle scroll speed for the given score.
func (c Curve) Speed(score int) float64 {
	return c.BaseSpeed * (1 + float64(score)*c.SpeedGainPerPoint)
}

// SpawnInterval returns the spawn interval in milliseconds for the given
// score.
func (c Curve) SpawnInterval(score int) float64 {
	interval := c.InitialIntervalMs - float64(score)*c.IntervalDecayPerPointMs
	if interval < c.MinIntervalMs {
		return c.MinIntervalMs
	}
	return interval
}
