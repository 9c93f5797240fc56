// Package starfall implements a dodge-the-debris arcade game.
// The player ship flies toward the last pointer release (or keyboard nudge),
// debris and stars fall from the top, score rises every second and the debris
// spawn rate climbs until the ship is hit, which ends the round.
package starfall

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

// GameID is the registry identifier and the score table key.
const GameID = "starfall"

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// nudgeCells is how far one keyboard nudge moves the target, in cells.
const nudgeCells = 4

// crashFlashSeconds is how long the round summary stays on screen.
const crashFlashSeconds = 1.5

// Package-level settings applied by the registered factory. Set them before
// creating games through the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	defaultSettings  SettingsStore
	defaultLogger    *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetSettingsStore sets the store used to persist the high score.
func SetSettingsStore(s SettingsStore) {
	defaultSettings = s
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	defaultLogger = l
}

// Options configure a Game created with NewWithOptions.
type Options struct {
	// Config overrides loading from disk when non-nil.
	Config *config.StarfallConfig
	// Settings persists the high score. Nil keeps it in memory only.
	Settings SettingsStore
	Logger   *log.Logger
	// Rand replaces the seeded generator when non-nil.
	Rand Rand
}

// Game adapts the gameplay loop to the arcade platform's Game interface.
type Game struct {
	opts     Options
	runtime  core.RuntimeConfig
	cfg      config.StarfallConfig
	logger   *log.Logger
	loop     *Loop
	resolver *CollisionResolver

	paused     bool
	tick       uint64
	flashTicks int
	lastRound  core.RoundResult
}

// New creates a game using the package-level settings.
func New() *Game {
	return NewWithOptions(Options{
		Settings: defaultSettings,
		Logger:   defaultLogger,
	})
}

// NewWithOptions creates a game with explicit collaborators.
func NewWithOptions(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset initializes or restarts the game for the given screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	var rng Rand = rand.New(rand.NewSource(runtime.Seed))
	if g.opts.Rand != nil {
		rng = g.opts.Rand
	}

	w, h := g.worldSize()
	g.loop = NewLoop(g.cfg, w, h, rng, g.opts.Settings, WithLogger(g.logger))
	g.resolver = NewCollisionResolver(g.loop)

	g.paused = false
	g.tick = 0
	g.flashTicks = 0
	g.lastRound = core.RoundResult{}

	g.logger.Debug("game reset",
		"screen", [2]int{runtime.ScreenW, runtime.ScreenH},
		"world", [2]float64{w, h},
		"high_score", g.loop.HighScore(),
	)
}

func (g *Game) loadConfig() config.StarfallConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}

	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultStarfallConfig()
	}
	config.ApplyStarfallPreset(&cfg, difficultyPreset)
	return cfg
}

// Resize adapts the playfield to a new screen size without ending the round.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.loop == nil {
		return
	}
	w, h := g.worldSize()
	g.loop.Resize(w, h)
}

// worldSize converts the playfield (screen minus HUD) to world units.
func (g *Game) worldSize() (float64, float64) {
	u := g.cfg.World.UnitsPerCell
	rows := core.Max(g.runtime.ScreenH-hudRows, 1)
	cols := core.Max(g.runtime.ScreenW, 1)
	return float64(cols) * u, float64(rows) * u
}

// cellToWorld maps the center of a screen cell to world coordinates,
// clamped to the playfield.
func (g *Game) cellToWorld(x, y int) core.Vec2 {
	u := g.cfg.World.UnitsPerCell
	w, h := g.worldSize()
	return core.V(
		core.ClampF((float64(x)+0.5)*u, 0, w),
		core.ClampF((float64(y-hudRows)+0.5)*u, 0, h),
	)
}

// worldToCell maps a world point to the screen cell containing it.
func (g *Game) worldToCell(p core.Vec2) (int, int) {
	u := g.cfg.World.UnitsPerCell
	return int(math.Floor(p.X / u)), int(math.Floor(p.Y/u)) + hudRows
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.applyInput(in)
	g.loop.Tick(g.runtime.TickDuration())

	var ended *core.RoundResult
	for _, pair := range g.loop.Contacts() {
		if res, reset := g.resolver.OnContact(pair[0], pair[1]); reset {
			ended = &res
			break
		}
	}

	if ended != nil {
		g.lastRound = *ended
		g.flashTicks = int(crashFlashSeconds / g.runtime.TickDuration())
	} else if g.flashTicks > 0 {
		g.flashTicks--
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// applyInput feeds pointer releases and keyboard nudges into the tracker.
func (g *Game) applyInput(in core.InputFrame) {
	tracker := g.loop.Input()

	if p, ok := in.PointerRelease(); ok {
		tracker.RecordTarget(g.cellToWorld(p.X, p.Y))
	}

	var dx, dy int
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}

	base := g.loop.Player()
	if t, ok := tracker.CurrentTarget(); ok {
		base = t
	}
	// Vertical nudges are halved since terminal cells are about twice as tall as wide.
	step := nudgeCells * g.cfg.World.UnitsPerCell
	w, h := g.worldSize()
	tracker.RecordTarget(core.V(
		core.ClampF(base.X+float64(dx)*step, 0, w),
		core.ClampF(base.Y+float64(dy)*step/2, 0, h),
	))
}

// State returns the current game state. Rounds restart immediately, so the
// game never reports GameOver.
func (g *Game) State() core.GameState {
	if g.loop == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:     g.loop.Score(),
		HighScore: g.loop.HighScore(),
		Round:     g.loop.Round(),
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
