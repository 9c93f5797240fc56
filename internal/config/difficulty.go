package config

import "math"

// SpawnRamp tracks the debris spawn interval for one round.
// The interval starts at InitialInterval and shrinks by Decrement on every
// Advance until it reaches Floor, where it stays.
type SpawnRamp struct {
	cfg      DifficultyConfig
	interval float64
}

// NewSpawnRamp creates a ramp positioned at the start of a round.
func NewSpawnRamp(cfg DifficultyConfig) *SpawnRamp {
	r := &SpawnRamp{cfg: cfg}
	r.Reset()
	return r
}

// Interval returns the current debris spawn interval in seconds.
func (r *SpawnRamp) Interval() float64 {
	return r.interval
}

// IsEnabled returns whether the interval decays over a round.
func (r *SpawnRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Decrement > 0
}

// Advance applies one decrement step and returns the new interval.
func (r *SpawnRamp) Advance() float64 {
	if r.IsEnabled() {
		r.interval = math.Max(r.cfg.Floor, r.interval-r.cfg.Decrement)
	}
	return r.interval
}

// AtFloor reports whether the interval has bottomed out.
func (r *SpawnRamp) AtFloor() bool {
	return r.interval <= r.cfg.Floor
}

// Reset restores the round-start interval.
func (r *SpawnRamp) Reset() {
	r.interval = math.Max(r.cfg.Floor, r.cfg.InitialInterval)
}

// Level returns progress toward the floor in [0, 1], for display.
func (r *SpawnRamp) Level() float64 {
	span := r.cfg.InitialInterval - r.cfg.Floor
	if span <= 0 {
		return 1
	}
	return clampF((r.cfg.InitialInterval-r.interval)/span, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
