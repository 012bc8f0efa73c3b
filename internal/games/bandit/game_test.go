package bandit

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bandit/internal/config"
	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/registry"
	"github.com/vovakirdan/tui-bandit/internal/sim"
)

func newTestGame(t *testing.T, g *Game, mutate func(*config.BanditConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBanditConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g.runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345}
	g.resetWith(cfg)
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// skipReady steps through the ready phase.
func skipReady(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000 && g.Phase() == PhaseReady; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhaseDriving {
		t.Fatalf("Phase() = %s, expected driving after the ready phase", g.Phase())
	}
}

// driveOffRoad steers toward the near verge until the turn ends.
func driveOffRoad(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 100 && g.Phase() == PhaseDriving; i++ {
		g.Step(press(core.ActionLaneRight))
	}
	if g.Phase() != PhaseCrash {
		t.Fatalf("Phase() = %s, expected crash", g.Phase())
	}
}

// skipCrash steps through the crash phase.
func skipCrash(g *Game) {
	for i := 0; i < 1000 && g.Phase() == PhaseCrash; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	for _, tc := range []struct {
		id    string
		seats int
	}{
		{IDSinglePlayer, 1},
		{IDTwoPlayer, 2},
	} {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tc.id, err)
		}
		if g.ID() != tc.id {
			t.Errorf("ID() = %q, expected %q", g.ID(), tc.id)
		}
		ms, ok := g.(registry.MultiSeat)
		if !ok {
			t.Fatalf("%s should report its seats", tc.id)
		}
		if ms.Seats() != tc.seats {
			t.Errorf("%s: seats = %d, expected %d", tc.id, ms.Seats(), tc.seats)
		}
	}
}

func TestReadyPhase(t *testing.T) {
	g := newTestGame(t, New(), nil)
	start := g.Snapshot()
	if start.Phase != PhaseReady || start.Stage != 1 || start.Substage != 1 {
		t.Fatalf("start = %+v, expected ready on stage 1-1", start)
	}

	for i := 0; i < g.cfg.Timing.ReadyTicks-1; i++ {
		g.Step(press(core.ActionSpeedUp))
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("Phase = %s, expected still ready", snap.Phase)
	}
	if snap.X != start.X || snap.Speed != start.Speed || snap.Offset != start.Offset {
		t.Error("the simulation should not advance during the ready phase")
	}

	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseDriving {
		t.Fatalf("Phase() = %s, expected driving", g.Phase())
	}
	g.Step(press(core.ActionSpeedUp))
	if g.Snapshot().Speed != start.Speed+1 {
		t.Errorf("Speed = %d, expected %d", g.Snapshot().Speed, start.Speed+1)
	}
}

func TestPauseFreezesPhase(t *testing.T) {
	g := newTestGame(t, New(), nil)
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhaseReady {
		t.Errorf("Phase() = %s, paused game should stay ready", g.Phase())
	}
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestCrashHandsOverTurn(t *testing.T) {
	g := newTestGame(t, NewTwoPlayer(), nil)
	skipReady(t, g)
	driveOffRoad(t, g)

	if !errors.Is(g.LastError(), sim.ErrOffRoad) {
		t.Errorf("LastError() = %v, expected ErrOffRoad", g.LastError())
	}
	st := g.State()
	if st.Player != core.Player1 || st.GameOver {
		t.Errorf("crash state = %+v, expected player 1 shown", st)
	}
	snap := g.Snapshot()
	if snap.Lives != [core.MaxPlayers]int{2, 3} {
		t.Errorf("Lives = %v, expected [2 3]", snap.Lives)
	}
	if snap.Hazards != 0 {
		t.Errorf("Hazards = %d, expected none after a crash", snap.Hazards)
	}

	for i := 0; i < g.cfg.Timing.CrashTicks-1; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != PhaseCrash {
		t.Fatalf("Phase() = %s, expected crash for %d ticks", g.Phase(), g.cfg.Timing.CrashTicks)
	}
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseReady {
		t.Fatalf("Phase() = %s, expected ready", g.Phase())
	}
	if g.State().Player != core.Player2 {
		t.Errorf("Player = %v, expected P2 after P1 crashed", g.State().Player)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, New(), func(c *config.BanditConfig) { c.Session.Lives = 1 })
	skipReady(t, g)
	driveOffRoad(t, g)
	skipCrash(g)

	st := g.State()
	if !st.GameOver || g.Phase() != PhaseGameOver {
		t.Fatalf("state = %+v phase %s, expected game over", st, g.Phase())
	}
	results := g.Results()
	if len(results) != 1 || results[0].Player != core.Player1 {
		t.Errorf("Results() = %+v, expected one seat", results)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should be ignored after game over")
	}

	g.Step(press(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Phase != PhaseReady || snap.Lives[0] != 1 || snap.Scores[0] != 0 {
		t.Errorf("after restart = %+v, expected a fresh session", snap)
	}
}

func TestCueSinkSurvivesReset(t *testing.T) {
	var cues []sim.Cue
	g := New()
	g.SetCueSink(sim.CueFunc(func(c sim.Cue, speed int) {
		cues = append(cues, c)
	}))
	newTestGame(t, g, nil)

	if len(cues) != 1 || cues[0] != sim.CueTurnStart {
		t.Fatalf("cues = %v, expected turn_start", cues)
	}

	skipReady(t, g)
	g.Step(press(core.ActionJump))
	if cues[len(cues)-1] != sim.CueJumpStart {
		t.Errorf("last cue = %v, expected jump_start", cues[len(cues)-1])
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.DefaultBanditConfig()
	cfg.Session.StartStage = 3
	cfg.Difficulty.Progression = config.ProgressionNone

	p := ParamsFromConfig(cfg, 2)
	if p.Seats != 2 || p.StartStage != 2 || !p.FixedStage {
		t.Errorf("params = %+v", p)
	}
	if len(p.Stages) != len(cfg.Stages) {
		t.Fatalf("len(Stages) = %d, expected %d", len(p.Stages), len(cfg.Stages))
	}
	want := sim.DefaultStageTable()
	for i := range want {
		if p.Stages[i] != want[i] {
			t.Errorf("stage %d = %+v, expected %+v", i, p.Stages[i], want[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, NewTwoPlayer(), nil)
	g2 := newTestGame(t, NewTwoPlayer(), nil)

	script := []core.Action{core.ActionSpeedUp, core.ActionLaneLeft, core.ActionJump, core.ActionLaneRight, core.ActionSpeedDown}
	for i := 0; i < 3000; i++ {
		in := core.NewInputFrame()
		if i%29 == 0 {
			in.Set(script[(i/29)%len(script)])
		}
		g1.Step(in)
		g2.Step(in)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"READY PLAYER ONE?", "STAGE 1", "P1 000000", "LIVES 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	skipReady(t, g)
	g.Render(screen)
	v := g.state.Vehicle()
	originX := (80 - ViewCols) / 2
	cell := screen.GetCell(originX+v.X/sim.TileSize, hudRows+1+v.Y/sim.TileSize)
	if cell.Rune != glyphCar {
		t.Errorf("cell under the car = %q, expected %q", cell.Rune, glyphCar)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New(), nil)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestTerrainOf(t *testing.T) {
	tests := []struct {
		tile int
		want terrain
	}{
		{sim.Highway.Top.Tile, terrainHighway},
		{sim.Highway.Bottom.Tile, terrainHighway},
		{sim.DirtRoadPattern(0).Top.Tile, terrainDirt},
		{sim.DirtRoadPattern(sim.CausewayIn).Top.Tile, terrainWater},
		{sim.DirtRoadPattern(sim.CausewayOut).Bottom.Tile, terrainWater},
	}
	for _, tc := range tests {
		if got := terrainOf(tc.tile); got != tc.want {
			t.Errorf("terrainOf(%d) = %d, expected %d", tc.tile, got, tc.want)
		}
	}
}

func TestDifficultyAndStartStage(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}

	g := New()
	if err := g.SetDifficulty("insane"); err == nil {
		t.Error("SetDifficulty() should reject unknown presets")
	}
	if err := g.SetDifficulty("hard"); err != nil {
		t.Fatalf("SetDifficulty() failed: %v", err)
	}
	g.Reset(runtime)
	snap := g.Snapshot()
	if snap.Stage != 5 || snap.Lives[0] != 2 {
		t.Errorf("hard start = stage %d with %d lives, expected stage 5 with 2", snap.Stage, snap.Lives[0])
	}

	g.SetStartStage(99)
	g.Reset(runtime)
	if got := g.Snapshot().Stage; got != StageCount() {
		t.Errorf("Stage = %d, expected the last stage %d", got, StageCount())
	}
}
