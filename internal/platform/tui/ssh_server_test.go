package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(SessionModel); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	m := NewSessionModel(nil, cfg, GameOptions{})
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown}, enter)
	if m.screen != screenDifficulty || m.gameID != bandit.IDTwoPlayer {
		t.Fatalf("screen = %d, game = %q, expected the difficulty menu for two players", m.screen, m.gameID)
	}

	m = sessionUpdate(t, m, enter)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %d, expected the game", m.screen)
	}
	if !m.gameModel.opts.Embedded {
		t.Error("session games should be embedded")
	}

	m = sessionUpdate(t, m, runeKey("p"), TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatalf("screen = %d, expected the menu after leaving a paused game", m.screen)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, expected the scoreboard", m.screen)
	}
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, expected the menu", m.screen)
	}

	m = sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionDifficultyBack(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, GameOptions{})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.menu.Selected() != nil {
		t.Errorf("screen = %d, expected a fresh menu", m.screen)
	}
}
