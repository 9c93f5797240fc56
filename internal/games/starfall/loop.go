package starfall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// HighScoreKey is the settings key under which the high score is persisted.
const HighScoreKey = "starfall.high_score"

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// SettingsStore persists small integer values across process restarts.
// A key that was never written reads as 0.
type SettingsStore interface {
	Int(key string) (int, error)
	SetInt(key string, value int) error
}

// highScoreRaiser is implemented by stores that can raise a value atomically.
// Loops sharing such a store never lower each other's record.
type highScoreRaiser interface {
	RaiseInt(key string, value int) (int, error)
}

// MoveCommand is a timed straight-line move of the player.
type MoveCommand struct {
	From     core.Vec2
	To       core.Vec2
	Duration float64 // seconds
	Elapsed  float64
}

// Position returns where the player is along the move.
func (m MoveCommand) Position() core.Vec2 {
	if m.Duration <= 0 {
		return m.To
	}
	return m.From.Lerp(m.To, m.Elapsed/m.Duration)
}

// Done reports whether the move has reached its destination.
func (m MoveCommand) Done() bool {
	return m.Elapsed >= m.Duration
}

// Loop owns the round state: score, spawn interval, player and falling
// entities. All mutation happens through Tick and ResetRound, called from a
// single goroutine.
type Loop struct {
	cfg      config.StarfallConfig
	rng      Rand
	settings SettingsStore
	logger   *log.Logger

	width, height float64

	input       InputTracker
	consumedRev uint64
	player      core.Vec2
	move        *MoveCommand
	lastMove    *MoveCommand
	movesIssued int

	score     int
	highScore int
	round     int
	ramp      *config.SpawnRamp

	debrisTimer Timer
	starTimer   Timer
	scoreTimer  Timer

	entities []Entity
	nextID   uint64
	elapsed  float64 // seconds simulated in the current round
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for round events and store failures.
func WithLogger(l *log.Logger) LoopOption {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// NewLoop creates a gameplay loop for a world of the given size in world
// units. The high score is read from settings once, here.
func NewLoop(cfg config.StarfallConfig, width, height float64, rng Rand, settings SettingsStore, opts ...LoopOption) *Loop {
	l := &Loop{
		cfg:      cfg,
		rng:      rng,
		settings: settings,
		logger:   log.New(io.Discard),
		width:    width,
		height:   height,
		ramp:     config.NewSpawnRamp(cfg.Difficulty),
		entities: make([]Entity, 0, 32),
		round:    1,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.player = core.V(width*cfg.Player.StartX, height*cfg.Player.StartY)

	if settings != nil {
		high, err := settings.Int(HighScoreKey)
		if err != nil {
			l.logger.Warn("could not read high score", "error", err)
		} else if high > 0 {
			l.highScore = high
		}
	}

	return l
}

// Input returns the tracker that feeds move targets into the loop.
func (l *Loop) Input() *InputTracker {
	return &l.input
}

// Tick advances the simulation by dt seconds: issues a move toward a fresh
// target, moves the player and entities, and runs the spawn and scoring timers.
func (l *Loop) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	l.elapsed += dt

	l.issueMove()
	l.advanceMove(dt)
	l.advanceEntities(dt)

	l.MaybeSpawnStar(dt)
	l.MaybeSpawnDebris(dt)

	for n := l.scoreTimer.Advance(dt, l.cfg.Scoring.Interval); n > 0; n-- {
		l.AdvanceScoreAndDifficulty()
	}
}

// issueMove replaces the in-flight move with one toward the latest target,
// but only when a target was recorded since the last issued move.
func (l *Loop) issueMove() {
	rev := l.input.Revision()
	if rev == l.consumedRev {
		return
	}
	l.consumedRev = rev

	target, ok := l.input.CurrentTarget()
	if !ok {
		return
	}
	l.move = &MoveCommand{
		From:     l.player,
		To:       target,
		Duration: l.MoveDuration(l.player, target),
	}
	issued := *l.move
	l.lastMove = &issued
	l.movesIssued++
}

// MoveDuration returns how long a move between two points takes:
// duration_factor * distance / reference_speed.
func (l *Loop) MoveDuration(from, to core.Vec2) float64 {
	return l.cfg.Movement.DurationFactor * from.Dist(to) / l.cfg.Movement.ReferenceSpeed
}

func (l *Loop) advanceMove(dt float64) {
	if l.move == nil {
		return
	}
	l.move.Elapsed += dt
	l.player = l.move.Position()
	if l.move.Done() {
		l.move = nil
	}
}

func (l *Loop) advanceEntities(dt float64) {
	kept := l.entities[:0]
	for _, e := range l.entities {
		e.Elapsed += dt
		if !e.Expired() {
			kept = append(kept, e)
		}
	}
	l.entities = kept
}

// MaybeSpawnDebris advances the debris timer by dt against the current
// spawn interval and spawns one debris per firing. Returns the spawn count.
func (l *Loop) MaybeSpawnDebris(dt float64) int {
	n := l.debrisTimer.Advance(dt, l.ramp.Interval())
	for i := 0; i < n; i++ {
		l.spawn(KindDebris)
	}
	return n
}

// MaybeSpawnStar advances the star timer by dt and spawns one star per firing.
func (l *Loop) MaybeSpawnStar(dt float64) int {
	n := l.starTimer.Advance(dt, l.cfg.Spawn.StarInterval)
	for i := 0; i < n; i++ {
		l.spawn(KindStar)
	}
	return n
}

func (l *Loop) spawn(kind EntityKind) {
	e := spawnEntity(l.rng, kind, l.cfg.Spawn, l.width, l.height)
	l.nextID++
	e.ID = l.nextID
	l.entities = append(l.entities, e)
}

// AdvanceScoreAndDifficulty adds the scoring points and tightens the debris
// spawn interval by one step, clamped at the configured floor.
func (l *Loop) AdvanceScoreAndDifficulty() {
	l.score += l.cfg.Scoring.Points
	before := l.ramp.Interval()
	after := l.ramp.Advance()
	if before != after && l.ramp.AtFloor() {
		l.logger.Debug("spawn interval reached floor", "interval", after, "score", l.score)
	}
}

// ResetRound ends the current round. A final score above the high score
// replaces it and is persisted. Stores implementing RaiseInt are never
// lowered, and a higher record found there is adopted instead. Score, spawn
// interval, timers and in-flight entities are reset.
func (l *Loop) ResetRound(finalScore int) core.RoundResult {
	result := core.RoundResult{Score: finalScore}

	if finalScore > l.highScore {
		stored := l.persistHighScore(finalScore)
		if stored > finalScore {
			// Another loop on the same store holds a higher record.
			l.highScore = stored
		} else {
			l.highScore = finalScore
			result.NewHighScore = true
			l.logger.Info("new high score", "score", finalScore, "round", l.round)
		}
	}

	l.logger.Debug("round reset", "round", l.round, "score", finalScore)

	l.score = 0
	l.ramp.Reset()
	l.debrisTimer.Reset()
	l.scoreTimer.Reset()
	l.entities = l.entities[:0]
	l.elapsed = 0
	l.round++

	return result
}

// persistHighScore writes score to the settings store and returns the record
// held there afterwards. Write failures are logged and score is returned.
func (l *Loop) persistHighScore(score int) int {
	if l.settings == nil {
		return score
	}
	if r, ok := l.settings.(highScoreRaiser); ok {
		stored, err := r.RaiseInt(HighScoreKey, score)
		if err != nil {
			l.logger.Warn("could not persist high score", "score", score, "error", err)
			return score
		}
		return stored
	}
	if err := l.settings.SetInt(HighScoreKey, score); err != nil {
		l.logger.Warn("could not persist high score", "score", score, "error", err)
	}
	return score
}

// Contacts runs the contact pass: every entity whose box overlaps the
// player's box produces one contact pair, player first.
func (l *Loop) Contacts() [][2]Contact {
	playerBox := core.BoxAt(l.player, l.cfg.Player.Width, l.cfg.Player.Height)
	player := Contact{Kind: KindPlayer}

	var pairs [][2]Contact
	for _, e := range l.entities {
		if playerBox.Overlaps(e.Box()) {
			pairs = append(pairs, [2]Contact{player, {Kind: e.Kind, Handle: e.ID}})
		}
	}
	return pairs
}

// Resize changes the world size. Entities keep their positions; new spawns
// use the new width.
func (l *Loop) Resize(width, height float64) {
	l.width = width
	l.height = height
	l.player.X = core.ClampF(l.player.X, 0, width)
	l.player.Y = core.ClampF(l.player.Y, 0, height)
}

// Score returns the current round score.
func (l *Loop) Score() int { return l.score }

// HighScore returns the best score seen, including the persisted one.
func (l *Loop) HighScore() int { return l.highScore }

// SpawnInterval returns the current debris spawn interval in seconds.
func (l *Loop) SpawnInterval() float64 { return l.ramp.Interval() }

// Player returns the player's current position.
func (l *Loop) Player() core.Vec2 { return l.player }

// ActiveMove returns the in-flight move command, if any.
func (l *Loop) ActiveMove() (MoveCommand, bool) {
	if l.move == nil {
		return MoveCommand{}, false
	}
	return *l.move, true
}

// LastIssuedMove returns the most recently issued move command as it was
// when issued, even if it has since completed or been replaced.
func (l *Loop) LastIssuedMove() (MoveCommand, bool) {
	if l.lastMove == nil {
		return MoveCommand{}, false
	}
	return *l.lastMove, true
}

// MovesIssued returns how many move commands have been issued.
func (l *Loop) MovesIssued() int { return l.movesIssued }

// Entities returns the live entities. The slice is owned by the loop.
func (l *Loop) Entities() []Entity { return l.entities }

// Round returns the 1-based number of the current round.
func (l *Loop) Round() int { return l.round }
