package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

// pendingEntry is a seat whose score may make the table.
type pendingEntry struct {
	Player core.PlayerID
	Score  int
	Rank   int
}

// initialsPrompt asks one player for the name to put on the table.
type initialsPrompt struct {
	entry pendingEntry
	input textinput.Model
}

func newInitialsPrompt(e pendingEntry) initialsPrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "AAA"
	ti.CharLimit = storage.InitialsLen
	ti.Width = storage.InitialsLen + 1
	ti.Focus()
	return initialsPrompt{entry: e, input: ti}
}

// Update passes editing keys to the text input. Characters outside A-Z and
// space are dropped and letters are upper-cased as they are typed.
func (p initialsPrompt) Update(msg tea.KeyMsg) (initialsPrompt, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		runes := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if isInitialRune(r) {
				runes = append(runes, r)
			}
		}
		if len(runes) == 0 {
			return p, nil
		}
		msg.Runes = runes
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if upper := strings.ToUpper(p.input.Value()); upper != p.input.Value() {
		p.input.SetValue(upper)
	}
	return p, cmd
}

func isInitialRune(r rune) bool {
	return r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Initials returns the entered name padded to storage.InitialsLen.
func (p initialsPrompt) Initials() string {
	return storage.NormalizeInitials(p.input.Value())
}

// View renders the prompt box.
func (p initialsPrompt) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("PLAYER %s - HIGH SCORE #%d", p.entry.Player.Word(), p.entry.Rank)),
		fmt.Sprintf("%d", p.entry.Score),
		"",
		"Enter your initials",
		p.input.View(),
		"",
		"enter: save  esc: skip",
	)
	return boxStyle.Render(body)
}
