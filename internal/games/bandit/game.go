// Package bandit wraps the driving simulation as a playable arcade game:
// config loading, the per-tick random byte, the ready and crash phases and
// terminal rendering.
package bandit

import (
	"math/rand"

	"github.com/vovakirdan/tui-bandit/internal/config"
	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/sim"
)

// Game IDs.
const (
	IDSinglePlayer = "bandit"
	IDTwoPlayer    = "bandit_2p"
)

// Phase is the presentation state wrapped around the simulation.
type Phase string

const (
	PhaseReady    Phase = "ready"    // course shown, car waiting
	PhaseDriving  Phase = "driving"  // simulation stepping
	PhaseCrash    Phase = "crash"    // turn ended, wreck on screen
	PhaseGameOver Phase = "gameover" // every seat is out of lives
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// StageCount returns the number of stages in the active configuration.
func StageCount() int {
	cfg, err := config.LoadBandit(configPath)
	if err != nil {
		cfg = config.DefaultBanditConfig()
	}
	return len(cfg.Stages)
}

// Game implements the driving game for one or two alternating players.
type Game struct {
	seats      int
	preset     config.DifficultyPreset // overrides the package preset when set
	startStage int                     // 1-based; 0 keeps the configured stage

	runtime core.RuntimeConfig
	cfg     config.BanditConfig
	rng     *rand.Rand
	state   *sim.State
	course  *course
	cues    sim.CueSink

	phase      Phase
	phaseTicks int           // ticks left in the ready or crash phase
	crashed    core.PlayerID // seat shown during the crash phase
	lastErr    error         // why the last turn ended
	paused     bool
	tick       uint64
}

// New creates a one-player game.
func New() *Game {
	return &Game{seats: 1}
}

// NewTwoPlayer creates a game where two players alternate turns.
func NewTwoPlayer() *Game {
	return &Game{seats: 2}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.seats == 2 {
		return IDTwoPlayer
	}
	return IDSinglePlayer
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.seats == 2 {
		return "Bandit Run (2 Players)"
	}
	return "Bandit Run"
}

// Seats returns the number of players in a session.
func (g *Game) Seats() int {
	return g.seats
}

// SetCueSink attaches the audio collaborator. It survives Reset.
func (g *Game) SetCueSink(c sim.CueSink) {
	g.cues = c
	if g.state != nil {
		g.state.SetCueSink(c)
	}
}

// SetDifficulty sets this instance's difficulty preset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	return nil
}

// SetStartStage picks the 1-based stage sessions start on. 0 keeps the
// configured stage; values past the table start on the last stage.
func (g *Game) SetStartStage(stage int) {
	g.startStage = max(stage, 0)
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBandit(configPath)
	if err != nil {
		cfg = config.DefaultBanditConfig()
	}

	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyBanditPreset(&cfg, preset)
	}
	if g.startStage > 0 {
		cfg.Session.StartStage = min(g.startStage, max(len(cfg.Stages), 1))
	}
	g.resetWith(cfg)
}

// resetWith starts a session from an already loaded config.
func (g *Game) resetWith(cfg config.BanditConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.course = newCourse()
	g.state = sim.NewState(ParamsFromConfig(cfg, g.seats))
	g.state.SetPainter(g.course)
	g.state.SetCueSink(g.cues)
	g.tick = 0
	g.paused = false
	g.lastErr = nil
	g.startTurn()
}

// startTurn lays down a fresh course for the seat now driving and shows it
// for the ready phase.
func (g *Game) startTurn() {
	g.state.BeginTurn()
	g.phase = PhaseReady
	g.phaseTicks = g.cfg.Timing.ReadyTicks
}

// ParamsFromConfig converts the YAML configuration to simulation parameters.
func ParamsFromConfig(cfg config.BanditConfig, seats int) sim.Params {
	stages := make(sim.StageTable, len(cfg.Stages))
	for i, s := range cfg.Stages {
		row := sim.StageParams{
			MinSpeed:      s.MinSpeed,
			SpawnVariance: s.SpawnVariance,
			RoadVariance:  s.RoadVariance,
		}
		copy(row.Lengths[:], s.Lengths)
		stages[i] = row
	}

	return sim.Params{
		Seats:       seats,
		Lives:       cfg.Session.Lives,
		StartStage:  cfg.Session.StartStage - 1,
		MaxSpeed:    cfg.Vehicle.MaxSpeed,
		Stages:      stages,
		SpawnBase:   cfg.Hazards.SpawnBase,
		SpawnJitter: cfg.Hazards.SpawnJitter,
		PreRoll:     cfg.Timing.PreRoll,
		FixedStage:  cfg.Difficulty.Fixed(),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.runtime.Seed = g.rng.Int63()
			g.resetWith(g.cfg)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseReady:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.phase = PhaseDriving
		}

	case PhaseDriving:
		driver := g.state.Roster().Current()
		out := g.state.Step(in, byte(g.rng.Intn(256)))
		switch {
		case out.TurnEnded():
			g.lastErr = out.Err
			g.crashed = driver
			g.phase = PhaseCrash
			g.phaseTicks = g.cfg.Timing.CrashTicks
		case out.StageComplete():
			g.startTurn()
		}

	case PhaseCrash:
		g.phaseTicks--
		if g.phaseTicks > 0 {
			break
		}
		if g.state.Roster().Over() {
			g.phase = PhaseGameOver
		} else {
			g.startTurn()
		}
	}

	return core.StepResult{State: g.State()}
}

// Phase returns the current presentation phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// LastError returns why the most recent turn ended, or nil.
func (g *Game) LastError() error {
	return g.lastErr
}

// displayed returns the seat the HUD should show.
func (g *Game) displayed() core.PlayerID {
	if g.phase == PhaseCrash || g.phase == PhaseGameOver {
		return g.crashed
	}
	return g.state.Roster().Current()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	p := g.displayed()
	return core.GameState{
		Score:    g.state.Roster().Player(p).Score,
		Player:   p,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Results returns every seat's score.
func (g *Game) Results() []registry.Result {
	if g.state == nil {
		return nil
	}
	roster := g.state.Roster()
	results := make([]registry.Result, 0, roster.Seats())
	for i := 0; i < roster.Seats(); i++ {
		id := core.PlayerID(i)
		results = append(results, registry.Result{Player: id, Score: roster.Player(id).Score})
	}
	return results
}

// Register the games with the registry
func init() {
	registry.Register(IDSinglePlayer, func() registry.Game {
		return New()
	})
	registry.Register(IDTwoPlayer, func() registry.Game {
		return NewTwoPlayer()
	})
}
