package starfall

import "github.com/vovakirdan/starfall/internal/core"

// Contact is one side of a reported contact: a kind tag plus an opaque handle
// identifying the entity (zero for the player).
type Contact struct {
	Kind   EntityKind
	Handle uint64
}

// ContactEffect is what a pairing of kinds triggers.
type ContactEffect int

const (
	EffectNone ContactEffect = iota
	EffectResetRound
)

type kindPair struct {
	a, b EntityKind
}

// pairOf normalizes a pair so lookups are order-independent.
func pairOf(a, b EntityKind) kindPair {
	if a > b {
		a, b = b, a
	}
	return kindPair{a: a, b: b}
}

// contactTable lists the pairings both sides react to. Anything absent is ignored.
var contactTable = map[kindPair]ContactEffect{
	pairOf(KindPlayer, KindDebris): EffectResetRound,
}

// EffectOf returns the effect of a contact between kinds a and b.
func EffectOf(a, b EntityKind) ContactEffect {
	return contactTable[pairOf(a, b)]
}

// RoundResetter is the part of the gameplay loop the resolver drives.
type RoundResetter interface {
	Score() int
	ResetRound(finalScore int) core.RoundResult
}

// CollisionResolver turns contact reports into round resets.
type CollisionResolver struct {
	loop RoundResetter
}

// NewCollisionResolver creates a resolver acting on loop.
func NewCollisionResolver(loop RoundResetter) *CollisionResolver {
	return &CollisionResolver{loop: loop}
}

// OnContact handles one contact between a and b. Only a {player, debris}
// pairing acts: it resets the round with the current score. The returned
// bool reports whether a reset happened.
func (r *CollisionResolver) OnContact(a, b Contact) (core.RoundResult, bool) {
	switch EffectOf(a.Kind, b.Kind) {
	case EffectResetRound:
		return r.loop.ResetRound(r.loop.Score()), true
	default:
		return core.RoundResult{}, false
	}
}
