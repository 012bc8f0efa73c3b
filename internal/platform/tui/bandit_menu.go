package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bandit/internal/config"
	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/games/bandit"
)

// BanditSelection holds the user's choice from the difficulty menu.
type BanditSelection struct {
	Difficulty config.DifficultyPreset // empty keeps the current preset
	Stage      int                     // 0 = configured start, 1-N = specific stage
}

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyNormal, "Normal (3 lives)"},
	{config.DifficultyEasy, "Easy (5 lives)"},
	{config.DifficultyHard, "Hard (2 lives, stage 5)"},
	{config.DifficultyFixed, "Fixed (stage never advances)"},
}

// BanditModeModel lets users choose difficulty and starting stage.
type BanditModeModel struct {
	cursor        int
	stageCursor   int
	stageCount    int
	inStageSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     BanditSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewBanditModeModel creates a new difficulty selection model.
func NewBanditModeModel(width, height, stageCount int) BanditModeModel {
	return BanditModeModel{
		width:      width,
		height:     height,
		stageCount: max(stageCount, 1),
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m BanditModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BanditModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BanditModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inStageSelect {
		return m.handleStageSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m BanditModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	last := len(difficultyOptions) // the "Select stage" row

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == last {
			m.inStageSelect = true
			m.stageCursor = 0
			return m, nil
		}
		m.choosing = false
		m.selection = BanditSelection{Difficulty: difficultyOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BanditModeModel) handleStageSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.stageCursor > 0 {
			m.stageCursor--
		}
	case MenuActionDown:
		if m.stageCursor < m.stageCount-1 {
			m.stageCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = BanditSelection{Stage: m.stageCursor + 1} // 1-indexed
		return m, tea.Quit
	case MenuActionBack:
		m.inStageSelect = false
	}

	return m, nil
}

// View renders the difficulty or stage selection.
func (m BanditModeModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	if m.inStageSelect {
		return m.viewStageSelect()
	}
	return m.viewModeSelect()
}

func (m BanditModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B A N D I T   R U N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	rows := make([]string, 0, len(difficultyOptions)+1)
	for _, opt := range difficultyOptions {
		rows = append(rows, opt.label)
	}
	rows = append(rows, "Select Stage...")

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BanditModeModel) viewStageSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STAGE", m.width))
	b.WriteString("\n\n")

	// Keep the cursor on screen when the table is longer than the window.
	visible := max(m.height-8, 1)
	first := 0
	if m.stageCursor >= visible {
		first = m.stageCursor - visible + 1
	}
	for i := first; i < m.stageCount && i < first+visible; i++ {
		cursor := "  "
		if i == m.stageCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%sStage %2d", cursor, i+1), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BanditModeModel) Selected() *BanditSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BanditModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BanditModeModel) WantsBack() bool {
	return m.back
}

// difficultyTarget is implemented by games with selectable difficulty.
type difficultyTarget interface {
	SetDifficulty(preset string) error
	SetStartStage(stage int)
}

// Apply configures a game with the selection. An empty difficulty keeps the
// game's current preset. Games without difficulty settings are left alone.
func (s BanditSelection) Apply(g any) error {
	t, ok := g.(difficultyTarget)
	if !ok {
		return nil
	}
	if s.Difficulty != "" {
		if err := t.SetDifficulty(string(s.Difficulty)); err != nil {
			return err
		}
	}
	t.SetStartStage(s.Stage)
	return nil
}

// RunBanditModeSelector runs the difficulty selection and returns the choice,
// or nil when the user backed out.
func RunBanditModeSelector(cfg core.RuntimeConfig) (*BanditSelection, error) {
	model := NewBanditModeModel(cfg.ScreenW, cfg.ScreenH, bandit.StageCount())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(BanditModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
