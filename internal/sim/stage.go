package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// Substage is a phase within a stage.
type Substage int

const (
	SubstageLeadIn Substage = iota
	SubstageHazard
	SubstageSecondLeadIn
	SubstageWater
	SubstageCooldown
)

// SubstageCount is the number of substages in one stage.
const SubstageCount = 5

// String returns a short label for the substage.
func (s Substage) String() string {
	switch s {
	case SubstageLeadIn:
		return "lead-in"
	case SubstageHazard:
		return "hazard"
	case SubstageSecondLeadIn:
		return "lead-in 2"
	case SubstageWater:
		return "water"
	case SubstageCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// StageParams are the difficulty knobs of one stage.
type StageParams struct {
	MinSpeed      int                // speed floor while driving this stage
	SpawnVariance int                // divisor applied to the random byte when picking a hazard lane
	RoadVariance  int                // modulus of the random part of a dirt road run
	Lengths       [SubstageCount]int // segments per substage
}

// StageTable is the per-stage parameter table, one row per stage.
type StageTable []StageParams

// DefaultStageTable returns the sixteen-stage progression of the arcade game.
func DefaultStageTable() StageTable {
	minSpeed := [...]int{2, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5}
	spawnVariance := [...]int{100, 90, 80, 70, 65, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10}
	roadVariance := [...]int{5, 4, 4, 4, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1, 1}
	waterLength := [...]int{60, 70, 80, 90, 100, 100, 100, 110, 110, 110, 120, 130, 140, 150, 160, 170}

	table := make(StageTable, len(minSpeed))
	for i := range table {
		table[i] = StageParams{
			MinSpeed:      minSpeed[i],
			SpawnVariance: spawnVariance[i],
			RoadVariance:  roadVariance[i],
			Lengths:       [SubstageCount]int{3, 20 + i, 3, waterLength[i], 5},
		}
	}
	return table
}

// Lookup returns the parameters for a stage index. Indices past the end of
// the table repeat the last row and negative indices use the first. An
// empty table falls back to the default progression.
func (t StageTable) Lookup(stage int) StageParams {
	if len(t) == 0 {
		return DefaultStageTable().Lookup(stage)
	}
	return t[core.Clamp(stage, 0, len(t)-1)]
}

// Transition reports what Progression.Update changed.
type Transition int

const (
	TransitionNone     Transition = iota
	TransitionSubstage            // moved to the next substage of the same stage
	TransitionStage               // finished the cooldown; the stage index advanced
)

// Progression is the stage/substage state machine for the player currently
// driving. Step is called once per course segment the generator selects and
// Update once per tick.
type Progression struct {
	table    StageTable
	stage    int
	substage Substage
	steps    int
	length   int
	frozen   bool
}

// NewProgression creates a machine positioned at the start of stage.
func NewProgression(table StageTable, stage int) *Progression {
	p := &Progression{table: table}
	p.Begin(stage)
	return p
}

// Begin restarts the machine at the first substage of stage.
func (p *Progression) Begin(stage int) {
	p.stage = core.Max(stage, 0)
	p.substage = SubstageLeadIn
	p.steps = 0
	p.length = p.Params().Lengths[SubstageLeadIn]
}

// Freeze keeps the stage index from advancing on rollover. Substages still
// cycle and rollover is still reported.
func (p *Progression) Freeze(frozen bool) {
	p.frozen = frozen
}

// Step counts one course segment toward the current substage.
func (p *Progression) Step() {
	p.steps++
}

// Update evaluates the transition rule. When the step count exceeds the
// substage length the machine moves to the next substage; leaving the
// cooldown wraps to the lead-in and advances the stage.
func (p *Progression) Update() Transition {
	if p.steps <= p.length {
		return TransitionNone
	}

	p.steps = 0
	p.substage++
	if p.substage < SubstageCount {
		p.length = p.Params().Lengths[p.substage]
		return TransitionSubstage
	}

	p.substage = SubstageLeadIn
	if !p.frozen {
		p.stage++
	}
	p.length = p.Params().Lengths[SubstageLeadIn]
	return TransitionStage
}

// Params returns the parameters of the current stage.
func (p *Progression) Params() StageParams {
	return p.table.Lookup(p.stage)
}

// Stage returns the zero-based stage index.
func (p *Progression) Stage() int { return p.stage }

// Substage returns the current substage.
func (p *Progression) Substage() Substage { return p.substage }

// Steps returns the segments counted in the current substage.
func (p *Progression) Steps() int { return p.steps }

// Length returns the target length of the current substage.
func (p *Progression) Length() int { return p.length }
