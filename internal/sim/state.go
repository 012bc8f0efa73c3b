// Package sim is the simulation core of the driving game: the course
// generator and its column ring, the stage/substage machine, the collision
// check, the hazard pool and the turn machine.
//
// Everything advances once per fixed-rate tick in small integer steps.
// State.Step runs one tick in a fixed order (vehicle, scroll, generator,
// collision, hazards, stage) and never blocks.
package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// DefaultPreRoll is the number of one-pixel scroll steps run before a turn
// so the ring is full of road when play starts.
const DefaultPreRoll = 240

// Params configures a session.
type Params struct {
	Seats       int        // 1 or 2 players
	Lives       int        // lives per seated player
	StartStage  int        // zero-based stage every seat starts on
	MaxSpeed    int        // speed ceiling
	Stages      StageTable // per-stage parameters
	SpawnBase   int        // minimum ticks between hazard spawns
	SpawnJitter int        // divisor of the random part of the spawn cooldown
	PreRoll     int        // scroll steps run before each turn
	FixedStage  bool       // stage index never advances
}

// DefaultParams returns the arcade settings for a one-player session.
func DefaultParams() Params {
	return Params{
		Seats:       1,
		Lives:       3,
		MaxSpeed:    MaxSpeed,
		Stages:      DefaultStageTable(),
		SpawnBase:   DefaultSpawnBase,
		SpawnJitter: DefaultSpawnJitter,
		PreRoll:     DefaultPreRoll,
	}
}

// Outcome is the result of one tick.
type Outcome struct {
	Transition Transition // stage machine result; TransitionNone when the turn ended
	Collected  int        // hazards picked up
	Points     int        // points awarded this tick
	Cleared    int        // hazards cleared because the turn ended
	Err        error      // ErrOffRoad or ErrHazardEscaped when the turn ended
	Turn       TurnResult // valid only when Err is set
}

// TurnEnded reports whether the tick ended the current turn.
func (o Outcome) TurnEnded() bool {
	return o.Err != nil
}

// StageComplete reports whether the current seat finished its stage.
func (o Outcome) StageComplete() bool {
	return o.Transition == TransitionStage
}

// SessionOver reports whether the tick used up the last life in the session.
func (o Outcome) SessionOver() bool {
	return o.Err != nil && o.Turn.SessionOver
}

// State owns all simulation state of one session.
type State struct {
	params   Params
	roster   *Roster
	progress *Progression
	ring     *ColumnRing
	gen      *Generator
	scroll   ScrollDriver
	hazards  *HazardPool
	vehicle  Vehicle
	cues     CueSink
	ticks    int
}

// NewState creates a session. Call BeginTurn before the first Step.
func NewState(p Params) *State {
	if p.MaxSpeed <= 0 {
		p.MaxSpeed = MaxSpeed
	}
	if len(p.Stages) == 0 {
		p.Stages = DefaultStageTable()
	}

	ring := NewColumnRing()
	s := &State{
		params:   p,
		roster:   NewRoster(p.Seats, p.Lives, p.StartStage),
		progress: NewProgression(p.Stages, p.StartStage),
		ring:     ring,
		gen:      NewGenerator(ring, nil),
		hazards:  NewHazardPool(p.SpawnBase, p.SpawnJitter),
		cues:     discardCues{},
	}
	s.progress.Freeze(p.FixedStage)
	return s
}

// SetPainter attaches the rendering collaborator to the generator.
func (s *State) SetPainter(p Painter) {
	s.gen.SetPainter(p)
}

// SetCueSink attaches the audio collaborator. nil discards cues.
func (s *State) SetCueSink(c CueSink) {
	if c == nil {
		c = discardCues{}
	}
	s.cues = c
}

// BeginTurn prepares a fresh course for the current seat at the start of its
// stage and pre-rolls the scroll so the ring is populated.
func (s *State) BeginTurn() {
	s.progress.Begin(s.roster.Active().Stage)
	params := s.progress.Params()

	s.vehicle = NewVehicle(params.MinSpeed)
	s.hazards.ResetTurn()
	s.gen.Reset()
	s.scroll.Reset()

	for i := 0; i < s.params.PreRoll; i++ {
		s.generate(s.scroll.Advance(1), params, 0)
	}
	s.cues.Cue(CueTurnStart, s.vehicle.Speed)
}

// Step runs one tick. r is the tick's random byte; any value is valid.
func (s *State) Step(in core.InputFrame, r byte) Outcome {
	var out Outcome
	if s.roster.Over() {
		return out
	}
	s.ticks++
	params := s.progress.Params()

	s.vehicle.Move(s.cues)
	s.vehicle.Control(in, params.MinSpeed, core.Max(s.params.MaxSpeed, params.MinSpeed), s.cues)

	em := s.generate(s.scroll.Advance(s.vehicle.Speed/2), params, r)
	if em.Drifts > 0 {
		out.Points += s.award(em.Drifts)
	}

	if err := CheckBounds(s.ring, s.scroll.Offset(), s.vehicle); err != nil {
		return s.endTurn(out, err)
	}

	s.hazards.TrySpawn(s.progress.Substage(), params.SpawnVariance, r)
	res, err := s.hazards.Advance(s.vehicle, s.cues)
	out.Collected = res.Collected
	out.Points += res.Points
	s.roster.AddScore(res.Points)
	if err != nil {
		return s.endTurn(out, err)
	}

	out.Transition = s.progress.Update()
	if out.Transition == TransitionStage {
		s.roster.SetStage(s.progress.Stage())
		s.cues.Cue(CueStageComplete, s.vehicle.Speed)
	}
	return out
}

func (s *State) generate(columns int, params StageParams, r byte) Emission {
	em := s.gen.Advance(columns, GenParams{
		Substage:     s.progress.Substage(),
		RoadVariance: params.RoadVariance,
		Rand:         r,
	})
	for i := 0; i < em.Segments; i++ {
		s.progress.Step()
	}
	return em
}

// award credits n pickups' worth of points at the current speed.
func (s *State) award(n int) int {
	points := n * s.vehicle.Speed * (s.vehicle.Speed / 2)
	s.roster.AddScore(points)
	return points
}

func (s *State) endTurn(out Outcome, err error) Outcome {
	s.cues.Cue(CueCrash, s.vehicle.Speed)
	out.Cleared = s.hazards.Clear()
	if out.Cleared > 0 {
		s.cues.Cue(CueHazardsCleared, s.vehicle.Speed)
	}
	out.Err = err
	out.Turn = s.roster.EndTurn()
	return out
}

// Roster returns the turn machine.
func (s *State) Roster() *Roster { return s.roster }

// Progress returns the stage machine.
func (s *State) Progress() *Progression { return s.progress }

// Ring returns the column ring.
func (s *State) Ring() *ColumnRing { return s.ring }

// Generator returns the course generator.
func (s *State) Generator() *Generator { return s.gen }

// Hazards returns the hazard pool.
func (s *State) Hazards() *HazardPool { return s.hazards }

// Vehicle returns a copy of the vehicle.
func (s *State) Vehicle() Vehicle { return s.vehicle }

// ScrollOffset returns the display scroll offset.
func (s *State) ScrollOffset() uint8 { return s.scroll.Offset() }

// Ticks returns the number of ticks stepped so far.
func (s *State) Ticks() int { return s.ticks }

// Params returns the session parameters.
func (s *State) Params() Params { return s.params }
