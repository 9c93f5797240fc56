package starfall

import "github.com/vovakirdan/starfall/internal/core"

// InputTracker remembers the most recent pointer release location.
// Each RecordTarget bumps a revision so consumers can tell a fresh target
// from one they have already acted on.
type InputTracker struct {
	target   core.Vec2
	hasInput bool
	revision uint64
}

// RecordTarget stores p as the latest target, overwriting any prior value.
func (t *InputTracker) RecordTarget(p core.Vec2) {
	t.target = p
	t.hasInput = true
	t.revision++
}

// CurrentTarget returns the latest target, or false if no input has occurred yet.
func (t *InputTracker) CurrentTarget() (core.Vec2, bool) {
	return t.target, t.hasInput
}

// Revision returns the number of targets recorded so far.
func (t *InputTracker) Revision() uint64 {
	return t.revision
}
