package bandit

import "github.com/vovakirdan/tui-bandit/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Paused   bool
	Player   core.PlayerID
	Scores   [core.MaxPlayers]int
	Lives    [core.MaxPlayers]int
	Stage    int // 1-based, of the seat driving
	Substage int // 1-based
	Steps    int // segments emitted in the current substage
	Speed    int
	X, Y, Z  int
	Offset   uint8
	Line     int // course line the generator is on
	Cursor   int // next ring slot to be written
	Hazards  int // live hazards
	Painted  int // columns painted since the session started
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{}
	}
	roster := g.state.Roster()
	prog := g.state.Progress()
	v := g.state.Vehicle()

	snap := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Paused:   g.paused,
		Player:   roster.Current(),
		Stage:    roster.Active().Stage + 1,
		Substage: int(prog.Substage()) + 1,
		Steps:    prog.Steps(),
		Speed:    v.Speed,
		X:        v.X,
		Y:        v.Y,
		Z:        v.Z,
		Offset:   g.state.ScrollOffset(),
		Line:     g.state.Generator().Line(),
		Cursor:   g.state.Ring().Cursor(),
		Hazards:  g.state.Hazards().Active(),
		Painted:  g.course.paint,
	}
	for i := 0; i < core.MaxPlayers; i++ {
		ps := roster.Player(core.PlayerID(i))
		snap.Scores[i] = ps.Score
		snap.Lives[i] = ps.Lives
	}
	return snap
}

