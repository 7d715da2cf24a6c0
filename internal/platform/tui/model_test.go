package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipeslide/internal/config"
	"github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide"
	"github.com/vovakirdan/pipeslide/internal/storage"
)

func newTutorialModel(t *testing.T, store *storage.Store) (Model, *pipeslide.Game) {
	t.Helper()
	cfg := config.DefaultMiniConfig()
	cfg.Water.PeriodMS = 100
	cfg.Water.MinPeriodMS = 100

	game := pipeslide.New(pipeslide.IDMini, pipeslide.Options{
		Config:     &cfg,
		Difficulty: config.DifficultyFixed,
		Layout:     "tutorial",
	})
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 10, Seed: 1})
	m.Init()
	return m, game
}

// send feeds a message and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg{Loop: m.loop})
}

func TestModelKeyThenTick(t *testing.T) {
	m, game := newTutorialModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if game.Snapshot().Board.Active != 6 {
		t.Fatal("input must wait for the next tick")
	}

	m = tick(t, m)
	if got := game.Snapshot().Board.Active; got != 7 {
		t.Errorf("active = %d, want 7 after sliding into the gap", got)
	}

	// A second tick with no key does nothing to the selection.
	tick(t, m)
	if got := game.Snapshot().Board.Active; got != 7 {
		t.Errorf("active = %d, input frame was not cleared", got)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, game := newTutorialModel(t, nil)

	m = send(t, m, TickMsg{Loop: m.loop + 100})
	if game.Snapshot().Tick != 0 {
		t.Error("tick from another loop advanced the game")
	}
	tick(t, m)
	if game.Snapshot().Tick != 1 {
		t.Error("own tick was not applied")
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m, _ := newTutorialModel(t, nil)

	m = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}

	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	m = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTutorialModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTutorialModel(t, nil)
	for range 3 {
		m = tick(t, m)
	}
	if !strings.Contains(m.View(), "rotate") {
		t.Error("help footer missing from view")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 11})
	snap := game.Snapshot()
	if snap.Tick != 3 {
		t.Errorf("tick = %d, resize restarted the game", snap.Tick)
	}
	if snap.State != pipeslide.StatePlaying {
		t.Errorf("state = %s, compact tiles should fit 20x10", snap.State)
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultMiniConfig()
	cfg.Water.PeriodMS = 100
	cfg.Water.MinPeriodMS = 100
	game := pipeslide.New(pipeslide.IDMini, pipeslide.Options{
		Config:     &cfg,
		Difficulty: config.DifficultyFixed,
		Layout:     "../../games/pipeslide/testdata/spill.yaml",
	})

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 10, Seed: 1})
	m.Init()
	for range 6 {
		m = tick(t, m)
	}
	if !game.State().GameOver {
		t.Fatal("spill layout should end the run")
	}

	runs, err := store.RecentRuns(pipeslide.IDMini, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].EndReason != pipeslide.EndSpilled {
		t.Fatalf("runs = %+v, want one spilled run", runs)
	}
	if runs[0].TilesFilled != 2 || runs[0].Seed != 1 {
		t.Errorf("run = %+v", runs[0])
	}

	high, err := store.HighScore(pipeslide.IDMini)
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != runs[0].Score {
		t.Errorf("high score %d, run score %d", high, runs[0].Score)
	}
}
