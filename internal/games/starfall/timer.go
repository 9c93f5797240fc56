package starfall

// timerEpsilon absorbs float drift from summing many small tick durations,
// so 100 ticks of 0.01s fire a 1.0s timer exactly once.
const timerEpsilon = 1e-9

// Timer accumulates simulated time and fires every interval seconds.
type Timer struct {
	acc float64
}

// Advance adds dt and returns how many times a timer with the given interval
// fired. A non-positive interval never fires.
func (t *Timer) Advance(dt, interval float64) int {
	if interval <= 0 {
		return 0
	}
	t.acc += dt
	fired := 0
	for t.acc >= interval-timerEpsilon {
		t.acc -= interval
		fired++
	}
	return fired
}

// Reset discards accumulated time.
func (t *Timer) Reset() {
	t.acc = 0
}
