package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/sim"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

// stubGame ends its session after a fixed number of steps.
type stubGame struct {
	overAfter int
	results   []registry.Result
	steps     int
	resets    int
	paused    bool
	cues      sim.CueSink
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }
func (g *stubGame) Seats() int { return len(g.results) }
func (g *stubGame) Results() []registry.Result { return g.results }
func (g *stubGame) SetCueSink(c sim.CueSink) { g.cues = c }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0; g.paused = false }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.results[0].Score,
		GameOver: g.steps >= g.overAfter,
		Paused:   g.paused,
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store, opts GameOptions) GameModel {
	t.Helper()
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func TestGameModelInitialsFlow(t *testing.T) {
	store := newTestStore(t)
	g := &stubGame{
		overAfter: 1,
		results: []registry.Result{
			{Player: core.Player1, Score: 500},
			{Player: core.Player2, Score: 300},
		},
	}
	m := newTestModel(t, g, store, GameOptions{})

	m = update(t, m, TickMsg{})
	if m.prompt == nil {
		t.Fatal("expected an initials prompt after game over")
	}
	if m.prompt.entry.Player != core.Player1 || m.prompt.entry.Rank != 1 {
		t.Fatalf("first prompt = %+v, expected player 1 at rank 1", m.prompt.entry)
	}
	if !strings.Contains(m.View(), "PLAYER ONE - HIGH SCORE #1") {
		t.Errorf("prompt view missing title:\n%s", m.View())
	}

	// Ticks are frozen while the prompt is open.
	steps := g.steps
	m = update(t, m, TickMsg{})
	if g.steps != steps {
		t.Error("game stepped while the prompt was open")
	}

	m = update(t, m, runeKey("a1b"))
	m = update(t, m, runeKey("c"))
	if got := m.prompt.Initials(); got != "ABC" {
		t.Fatalf("Initials() = %q, expected ABC", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt == nil || m.prompt.entry.Player != core.Player2 || m.prompt.entry.Rank != 2 {
		t.Fatalf("second prompt = %+v, expected player 2 at rank 2", m.prompt)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompt != nil {
		t.Fatal("esc should close the last prompt")
	}

	entries, err := storage.NewLeaderboard(store, "stub", storage.DefaultTableSize).Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Initials != "ABC" || entries[0].Score != 500 {
		t.Errorf("entries = %+v, expected only ABC 500", entries)
	}
	if len(m.recorded) != 1 || m.recorded[0] != "P1 ABC #1" {
		t.Errorf("recorded = %v", m.recorded)
	}
}

func TestGameModelSkipsNonQualifying(t *testing.T) {
	store := newTestStore(t)
	lb := storage.NewLeaderboard(store, "stub", storage.DefaultTableSize)
	for _, s := range []int{900, 800, 700, 600} {
		if _, err := lb.RecordScore("TOP", s); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	g := &stubGame{overAfter: 1, results: []registry.Result{{Player: core.Player1, Score: 600}}}
	m := newTestModel(t, g, store, GameOptions{})
	m = update(t, m, TickMsg{})
	if m.prompt != nil {
		t.Error("a tie with the last entry should not open a prompt")
	}
}

func TestGameModelBack(t *testing.T) {
	g := &stubGame{overAfter: 3, results: []registry.Result{{Player: core.Player1, Score: 10}}}
	m := newTestModel(t, g, nil, GameOptions{Embedded: true})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while driving")
	}

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("back while paused should return to the menu")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &stubGame{overAfter: 1, results: []registry.Result{{Player: core.Player1, Score: 0}}}
	m := newTestModel(t, g, nil, GameOptions{})

	m = update(t, m, runeKey("r"))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Fatal("restart should be ignored before game over")
	}

	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}
	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 2 || m.gameState.GameOver {
		t.Errorf("resets = %d, game over = %v, expected a fresh session", g.resets, m.gameState.GameOver)
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	g := &stubGame{overAfter: 100, results: []registry.Result{{Player: core.Player1, Score: 0}}}
	m := newTestModel(t, g, nil, GameOptions{})

	m = update(t, m, TickMsg{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 || g.steps != 1 {
		t.Errorf("resize reset the game: resets = %d, steps = %d", g.resets, g.steps)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelAttachesCues(t *testing.T) {
	g := &stubGame{overAfter: 1, results: []registry.Result{{Player: core.Player1}}}
	newTestModel(t, g, nil, GameOptions{})
	if _, ok := g.cues.(*LogCues); !ok {
		t.Errorf("cue sink = %T, expected *LogCues", g.cues)
	}
}

func TestInitialsPromptFilters(t *testing.T) {
	p := newInitialsPrompt(pendingEntry{Player: core.Player2, Score: 42, Rank: 3})
	for _, s := range []string{"x", "-", "y", "9", "z", "w"} {
		p, _ = p.Update(runeKey(s))
	}
	if got := p.Initials(); got != "XYZ" {
		t.Errorf("Initials() = %q, expected XYZ", got)
	}

	empty := newInitialsPrompt(pendingEntry{})
	if got := empty.Initials(); len(got) != storage.InitialsLen {
		t.Errorf("empty Initials() = %q, expected %d characters", got, storage.InitialsLen)
	}
}
