package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

// recordingLoop counts resets instead of mutating real round state.
type recordingLoop struct {
	score  int
	resets []int
}

func (r *recordingLoop) Score() int { return r.score }

func (r *recordingLoop) ResetRound(finalScore int) core.RoundResult {
	r.resets = append(r.resets, finalScore)
	r.score = 0
	return core.RoundResult{Score: finalScore}
}

func TestEffectOf(t *testing.T) {
	tests := []struct {
		a, b EntityKind
		want ContactEffect
	}{
		{KindPlayer, KindDebris, EffectResetRound},
		{KindDebris, KindPlayer, EffectResetRound},
		{KindPlayer, KindStar, EffectNone},
		{KindStar, KindPlayer, EffectNone},
		{KindDebris, KindStar, EffectNone},
		{KindDebris, KindDebris, EffectNone},
		{KindStar, KindStar, EffectNone},
		{KindPlayer, KindPlayer, EffectNone},
	}

	for _, tc := range tests {
		t.Run(tc.a.String()+"/"+tc.b.String(), func(t *testing.T) {
			if got := EffectOf(tc.a, tc.b); got != tc.want {
				t.Errorf("EffectOf(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestOnContactPlayerDebrisResets(t *testing.T) {
	for _, order := range []string{"player first", "debris first"} {
		t.Run(order, func(t *testing.T) {
			loop := &recordingLoop{score: 12}
			r := NewCollisionResolver(loop)

			player := Contact{Kind: KindPlayer}
			debris := Contact{Kind: KindDebris, Handle: 3}
			a, b := player, debris
			if order == "debris first" {
				a, b = debris, player
			}

			res, reset := r.OnContact(a, b)
			if !reset {
				t.Fatal("expected a reset")
			}
			if res.Score != 12 {
				t.Errorf("result score = %d, expected 12", res.Score)
			}
			if len(loop.resets) != 1 || loop.resets[0] != 12 {
				t.Errorf("resets = %v, expected [12]", loop.resets)
			}
		})
	}
}

func TestOnContactIgnoredPairings(t *testing.T) {
	pairs := [][2]Contact{
		{{Kind: KindStar, Handle: 1}, {Kind: KindPlayer}},
		{{Kind: KindPlayer}, {Kind: KindStar, Handle: 1}},
		{{Kind: KindDebris, Handle: 2}, {Kind: KindStar, Handle: 1}},
		{{Kind: KindDebris, Handle: 2}, {Kind: KindDebris, Handle: 4}},
	}

	for _, p := range pairs {
		loop := &recordingLoop{score: 7}
		r := NewCollisionResolver(loop)

		if _, reset := r.OnContact(p[0], p[1]); reset {
			t.Errorf("%v/%v should be ignored", p[0].Kind, p[1].Kind)
		}
		if len(loop.resets) != 0 || loop.score != 7 {
			t.Errorf("%v/%v changed state: resets=%v score=%d", p[0].Kind, p[1].Kind, loop.resets, loop.score)
		}
	}
}

func TestResolverDrivesRealLoop(t *testing.T) {
	settings := newFakeSettings()
	settings.values[HighScoreKey] = 3
	l := newTestLoop(t, settings)
	r := NewCollisionResolver(l)

	for i := 0; i < 5; i++ {
		l.AdvanceScoreAndDifficulty()
	}

	// A star contact first must not change anything.
	if _, reset := r.OnContact(Contact{Kind: KindStar, Handle: 1}, Contact{Kind: KindPlayer}); reset {
		t.Fatal("star contact should be ignored")
	}
	if l.Score() != 5 {
		t.Fatalf("Score() = %d after star contact, expected 5", l.Score())
	}

	res, reset := r.OnContact(Contact{Kind: KindPlayer}, Contact{Kind: KindDebris, Handle: 2})
	if !reset || !res.NewHighScore {
		t.Fatalf("OnContact() = %+v, %v; expected a new high score reset", res, reset)
	}
	if l.Score() != 0 || l.SpawnInterval() != 2.0 {
		t.Errorf("after reset score=%d interval=%f, expected 0 and 2.0", l.Score(), l.SpawnInterval())
	}
	if l.HighScore() != 5 || settings.values[HighScoreKey] != 5 {
		t.Errorf("high score = %d (persisted %d), expected 5", l.HighScore(), settings.values[HighScoreKey])
	}
}
