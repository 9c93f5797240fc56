package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// EntityKind tags every participant in contact detection.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota + 1
	KindDebris
	KindStar
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindDebris:
		return "debris"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is a falling object. It enters above the top edge and leaves below
// the bottom edge after Duration seconds, at which point it is removed.
type Entity struct {
	ID       uint64
	Kind     EntityKind
	X        float64 // horizontal center in world units
	Scale    float64 // size multiplier
	Size     float64 // edge length in world units
	Duration float64 // seconds to fall from StartY to EndY
	Elapsed  float64
	StartY   float64
	EndY     float64
}

// Position returns the entity's current center.
func (e Entity) Position() core.Vec2 {
	t := 1.0
	if e.Duration > 0 {
		t = e.Elapsed / e.Duration
	}
	return core.V(e.X, e.StartY).Lerp(core.V(e.X, e.EndY), t)
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.BoxAt(e.Position(), e.Size, e.Size)
}

// Expired reports whether the entity has reached the bottom edge.
func (e Entity) Expired() bool {
	return e.Elapsed >= e.Duration
}

// spawnEntity picks a random X across the visible width, a scale in the kind's
// range and a fall duration, then places the entity just above the top edge.
func spawnEntity(rng Rand, kind EntityKind, spawn config.SpawnConfig, width, height float64) Entity {
	scaleRange, base := spawn.DebrisScale, spawn.DebrisBaseSize
	if kind == KindStar {
		scaleRange, base = spawn.StarScale, spawn.StarBaseSize
	}

	x := rng.Float64() * width
	scale := uniform(rng, scaleRange)
	duration := uniform(rng, spawn.FallDuration)
	size := base * scale

	return Entity{
		Kind:     kind,
		X:        x,
		Scale:    scale,
		Size:     size,
		Duration: duration,
		StartY:   -size / 2,
		EndY:     height + size/2,
	}
}

func uniform(rng Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
