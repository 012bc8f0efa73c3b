package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bandit/internal/config"
	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
)

func pressMenu(t *testing.T, m BanditModeModel, msgs ...tea.KeyMsg) BanditModeModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(BanditModeModel); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestBanditModeDifficulty(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m := pressMenu(t, NewBanditModeModel(80, 24, 16), down, down, enter)
	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Difficulty != config.DifficultyHard || sel.Stage != 0 {
		t.Errorf("selection = %+v, expected hard", *sel)
	}
}

func TestBanditModeStageSelect(t *testing.T) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := NewBanditModeModel(80, 24, 3)
	for range difficultyOptions {
		m = pressMenu(t, m, down)
	}
	m = pressMenu(t, m, enter)
	if !m.inStageSelect {
		t.Fatal("last row should open stage select")
	}

	// Esc leaves stage select without leaving the menu.
	m = pressMenu(t, m, esc)
	if m.inStageSelect || m.WantsBack() {
		t.Fatal("esc in stage select should return to the difficulty list")
	}

	m = pressMenu(t, m, enter, down, down, down, up, enter)
	sel := m.Selected()
	if sel == nil || sel.Stage != 2 || sel.Difficulty != "" {
		t.Errorf("selection = %+v, expected stage 2 with the current preset", sel)
	}
}

func TestBanditModeBack(t *testing.T) {
	m := pressMenu(t, NewBanditModeModel(80, 24, 16), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc should back out without a selection")
	}
	if m.View() != "" {
		t.Error("View() should be empty after backing out")
	}
}

func TestBanditSelectionApply(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}

	g := bandit.New()
	if err := (BanditSelection{Difficulty: config.DifficultyEasy}).Apply(g); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	g.Reset(runtime)
	if lives := g.Snapshot().Lives[0]; lives != 5 {
		t.Errorf("lives = %d, expected 5 on easy", lives)
	}

	// A stage-only selection keeps the preset.
	if err := (BanditSelection{Stage: 3}).Apply(g); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	g.Reset(runtime)
	snap := g.Snapshot()
	if snap.Stage != 3 || snap.Lives[0] != 5 {
		t.Errorf("stage %d with %d lives, expected stage 3 with 5", snap.Stage, snap.Lives[0])
	}

	if err := (BanditSelection{Difficulty: "insane"}).Apply(g); err == nil {
		t.Error("Apply() should reject unknown presets")
	}
	if err := (BanditSelection{Stage: 2}).Apply(&stubGame{}); err != nil {
		t.Errorf("games without difficulty should be left alone, got %v", err)
	}
}
