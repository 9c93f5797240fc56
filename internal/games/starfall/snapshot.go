package starfall

import "github.com/vovakirdan/starfall/internal/core"

// Snapshot is an immutable copy of the round state. Renderers read snapshots
// so they never observe the loop mid-update.
type Snapshot struct {
	Tick          uint64
	Round         int
	Score         int
	HighScore     int
	SpawnInterval float64
	Difficulty    float64 // 0 at round start, 1 once the interval is at its floor
	RoundTime     float64 // seconds since the round started
	Player        core.Vec2
	Target        *core.Vec2 // destination of the in-flight move, if any
	Entities      []Entity
	Paused        bool
	LastRound     *core.RoundResult // set while the round summary is shown
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.loop == nil {
		return Snapshot{Paused: g.paused}
	}

	s := Snapshot{
		Tick:          g.tick,
		Round:         g.loop.Round(),
		Score:         g.loop.Score(),
		HighScore:     g.loop.HighScore(),
		SpawnInterval: g.loop.SpawnInterval(),
		Difficulty:    g.loop.ramp.Level(),
		RoundTime:     g.loop.elapsed,
		Player:        g.loop.Player(),
		Entities:      append([]Entity(nil), g.loop.Entities()...),
		Paused:        g.paused,
	}
	if m, ok := g.loop.ActiveMove(); ok {
		to := m.To
		s.Target = &to
	}
	if g.flashTicks > 0 {
		last := g.lastRound
		s.LastRound = &last
	}
	return s
}
