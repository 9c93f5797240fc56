package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/storage"
)

// seenInput is what scriptedGame observed in one Step.
type seenInput struct {
	pointer    core.Pointer
	hasPointer bool
	right      bool
}

// scriptedGame ends a round with the queued score on the next Step.
type scriptedGame struct {
	resets   int
	resized  [2]int
	frames   []seenInput
	endWith  []int
	score    int
	rendered int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	p, ok := in.PointerRelease()
	g.frames = append(g.frames, seenInput{pointer: p, hasPointer: ok, right: in.Has(core.ActionRight)})
	res := core.StepResult{State: g.State()}
	if len(g.endWith) > 0 {
		res.Ended = &core.RoundResult{Score: g.endWith[0]}
		g.endWith = g.endWith[1:]
	}
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return core.GameState{Score: g.score} }

func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelFeedsInputIntoStep(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 100, Seed: 1})

	m = step(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = step(t, m, keyMsg("right"))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if len(game.frames) != 2 {
		t.Fatalf("Step called %d times, expected 2", len(game.frames))
	}
	first := game.frames[0]
	if !first.hasPointer || first.pointer.X != 5 || first.pointer.Y != 3 {
		t.Errorf("first frame pointer = %+v, %v; expected (5, 3)", first.pointer, first.hasPointer)
	}
	if !first.right {
		t.Error("first frame should carry the right nudge")
	}

	second := game.frames[1]
	if second.hasPointer || second.right {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelSavesFinishedRounds(t *testing.T) {
	store := openModelStore(t)
	game := &scriptedGame{endWith: []int{7, 0, 12}}
	m := NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 100, Seed: 1})

	for i := 0; i < 4; i++ {
		m = step(t, m, TickMsg{})
	}

	if m.Rounds() != 3 {
		t.Errorf("Rounds() = %d, expected 3", m.Rounds())
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	// Zero-score rounds are not recorded.
	if len(scores) != 2 || scores[0].Score != 12 || scores[1].Score != 7 {
		t.Errorf("saved scores = %+v, expected [12 7]", scores)
	}
}

func TestModelQuitAndResize(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 100, Seed: 1})

	m = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resized != [2]int{60, 20} {
		t.Errorf("resized = %v, expected [60 20]", game.resized)
	}
	if game.resets != 0 {
		t.Errorf("a resizable game should not be reset, got %d resets", game.resets)
	}

	if !strings.Contains(m.View(), "scripted") {
		t.Error("View() should render the game")
	}

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xy", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
}
