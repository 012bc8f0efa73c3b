package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/sim"
	"github.com/vovakirdan/tui-bandit/internal/storage"
)

// footerRows is the space kept under the game screen for the help bar.
const footerRows = 1

// cueReceiver is implemented by games that emit audio cues.
type cueReceiver interface {
	SetCueSink(sim.CueSink)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	// Logger receives cue and score events. nil discards them.
	Logger *log.Logger

	// Bell is where the crash bell is written. nil keeps the game silent.
	Bell io.Writer

	// Embedded models return to the menu on back instead of quitting.
	Embedded bool
}

// GameModel is the Bubble Tea model running one game session, followed by
// initials entry for every seat that made the high-score table.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	leaderboard *storage.Leaderboard
	config      core.RuntimeConfig
	opts        GameOptions
	logger      *log.Logger
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	help        help.Model

	prompt   *initialsPrompt
	pending  []pendingEntry
	recorded []string // table entries made this session
	handled  bool     // game over has been processed

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case scores are not kept.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cr, ok := game.(cueReceiver); ok {
		cr.SetCueSink(NewLogCues(logger.With("game", game.ID()), opts.Bell))
	}

	var lb *storage.Leaderboard
	if store != nil {
		lb = storage.NewLeaderboard(store, game.ID(), storage.DefaultTableSize)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		leaderboard: lb,
		config:      cfg,
		opts:        opts,
		logger:      logger,
		inputFrame:  core.NewInputFrame(),
		keyMapper:   NewKeyMapper(),
		help:        h,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case action == core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handlePromptKey processes keyboard input while a player enters initials.
func (m GameModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.recordEntry(m.prompt.entry, m.prompt.Initials())
		m.nextPrompt()
		return m, nil
	case "esc":
		m.nextPrompt()
		return m, nil
	}

	prompt, cmd := m.prompt.Update(msg)
	m.prompt = &prompt
	return m, cmd
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.handled = false
		m.recorded = nil
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.handled {
		m.handled = true
		m.pending = m.qualifyingEntries()
		m.nextPrompt()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finalScores returns each seat's score once the session is over.
func (m GameModel) finalScores() []registry.Result {
	if ms, ok := m.game.(registry.MultiSeat); ok {
		return ms.Results()
	}
	return []registry.Result{{Player: m.gameState.Player, Score: m.gameState.Score}}
}

// qualifyingEntries lists the seats whose scores make the table, in seat
// order.
func (m GameModel) qualifyingEntries() []pendingEntry {
	if m.leaderboard == nil {
		return nil
	}

	var entries []pendingEntry
	for _, r := range m.finalScores() {
		ok, err := m.leaderboard.Qualifies(r.Score)
		if err != nil {
			m.logger.Warn("cannot query high scores", "error", err)
			return nil
		}
		if ok {
			entries = append(entries, pendingEntry{Player: r.Player, Score: r.Score})
		}
	}
	return entries
}

// nextPrompt opens the prompt for the next pending seat. Ranks are queried
// again because an earlier entry may have pushed a score down the table.
func (m *GameModel) nextPrompt() {
	m.prompt = nil
	for len(m.pending) > 0 {
		e := m.pending[0]
		m.pending = m.pending[1:]

		rank, err := m.leaderboard.QueryRank(e.Score)
		if err != nil {
			m.logger.Warn("cannot query rank", "error", err)
			continue
		}
		if rank > m.leaderboard.Size() {
			continue
		}
		e.Rank = rank
		p := newInitialsPrompt(e)
		m.prompt = &p
		return
	}
}

// recordEntry stores a seat's score under initials.
func (m *GameModel) recordEntry(e pendingEntry, initials string) {
	rank, err := m.leaderboard.RecordScore(initials, e.Score)
	if err != nil {
		m.logger.Error("cannot record score", "player", e.Player, "error", err)
		return
	}
	m.logger.Info("score recorded", "game", m.game.ID(), "player", e.Player, "initials", initials, "score", e.Score, "rank", rank)
	if rank <= m.leaderboard.Size() {
		m.recorded = append(m.recorded, fmt.Sprintf("%s %s #%d", e.Player, initials, rank))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".bandit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.prompt != nil {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows this session's table entries after game over and the key
// help otherwise.
func (m GameModel) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.gameState.GameOver && len(m.recorded) > 0 {
		return style.Render(centerText("HIGH SCORES: "+strings.Join(m.recorded, "  "), m.config.ScreenW))
	}
	return style.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
