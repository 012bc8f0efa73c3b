package sim

import (
	"errors"

	"github.com/vovakirdan/tui-bandit/internal/core"
)

// ErrHazardEscaped is returned when a hazard gets past the vehicle. It ends
// the turn exactly like leaving the road.
var ErrHazardEscaped = errors.New("sim: hazard escaped past the vehicle")

// Hazard pool constants.
const (
	HazardPoolSize = 4
	HazardLanes    = 4
	HazardSize     = 8
	HazardEscapeX  = 220 // hazards beyond this track position have escaped
	hazardBaseY    = 28
	firstSpawnLane = 2

	DefaultSpawnBase   = 6
	DefaultSpawnJitter = 7
)

// Hazard is one entry of the pool.
type Hazard struct {
	Enabled bool
	X, Y    int
}

// Rect returns the hazard's hit box.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, HazardSize, HazardSize)
}

// LaneY returns the lateral position of hazards spawned in lane.
func LaneY(lane int) int {
	return hazardBaseY + LaneSpacing*lane
}

// NextLane biases a spawn lane by the sign of q. A positive quotient moves
// one lane up and a negative one moves down; at the edge of the lane set the
// lane bounces back inward instead of leaving it.
func NextLane(lane, q int) int {
	switch {
	case q > 0:
		if lane >= HazardLanes-1 {
			return HazardLanes - 2
		}
		return lane + 1
	case q < 0:
		if lane <= 0 {
			return 1
		}
		return lane - 1
	default:
		return lane
	}
}

// HazardPool spawns and advances hazards during the hazard substage.
type HazardPool struct {
	slots    [HazardPoolSize]Hazard
	cooldown int
	lastLane int
	base     int
	jitter   int
}

// NewHazardPool creates an empty pool. base and jitter shape the cooldown
// between spawns: base + |int8(r) / jitter| ticks.
func NewHazardPool(base, jitter int) *HazardPool {
	if jitter <= 0 {
		jitter = DefaultSpawnJitter
	}
	return &HazardPool{
		lastLane: firstSpawnLane,
		base:     core.Max(base, 0),
		jitter:   jitter,
	}
}

// ResetTurn disables every hazard and restarts the cooldown. The last spawn
// lane carries over between turns.
func (p *HazardPool) ResetTurn() {
	p.slots = [HazardPoolSize]Hazard{}
	p.cooldown = 0
}

// TrySpawn runs the spawn cooldown for one tick. Outside the hazard
// substage it does nothing. When the cooldown has run out a hazard is
// placed and the cooldown restarts; the returned slot is -1 when nothing
// was placed, including when the pool is full.
func (p *HazardPool) TrySpawn(sub Substage, variance int, r byte) int {
	if sub != SubstageHazard {
		return -1
	}
	if p.cooldown > 0 {
		p.cooldown--
		return -1
	}

	slot := p.Spawn(variance, r)
	p.cooldown = p.base + core.Abs(int(int8(r))/p.jitter)
	return slot
}

// Spawn places a hazard at the start of the track in the first free slot.
// It returns the slot used, or -1 when the pool is full.
func (p *HazardPool) Spawn(variance int, r byte) int {
	for i := range p.slots {
		if p.slots[i].Enabled {
			continue
		}
		q := int(int8(r)) / core.Max(variance, 1)
		p.lastLane = NextLane(p.lastLane, q)
		p.slots[i] = Hazard{Enabled: true, X: 0, Y: LaneY(p.lastLane)}
		return i
	}
	return -1
}

// AdvanceResult reports hazards picked up during one Advance.
type AdvanceResult struct {
	Collected int
	Points    int
}

// Advance moves each hazard down the track by half the vehicle speed and
// collects those overlapping the vehicle. A hazard already past
// HazardEscapeX is disabled and ErrHazardEscaped is returned immediately;
// the caller is expected to clear the pool and end the turn.
func (p *HazardPool) Advance(v Vehicle, cues CueSink) (AdvanceResult, error) {
	var res AdvanceResult
	box := v.HitBox()
	for i := range p.slots {
		h := &p.slots[i]
		if !h.Enabled {
			continue
		}
		if h.X > HazardEscapeX {
			h.Enabled = false
			return res, ErrHazardEscaped
		}

		h.X += v.Speed / 2
		if h.Rect().Intersects(box) {
			h.Enabled = false
			res.Collected++
			res.Points += v.Speed * (v.Speed / 2)
			cues.Cue(CueHazardCollected, v.Speed)
		}
	}
	return res, nil
}

// Clear disables every hazard and returns how many were active.
func (p *HazardPool) Clear() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Enabled {
			p.slots[i].Enabled = false
			n++
		}
	}
	return n
}

// Active returns the number of enabled hazards.
func (p *HazardPool) Active() int {
	n := 0
	for _, h := range p.slots {
		if h.Enabled {
			n++
		}
	}
	return n
}

// Hazards returns a copy of the pool.
func (p *HazardPool) Hazards() [HazardPoolSize]Hazard {
	return p.slots
}

// LastLane returns the lane of the most recent spawn.
func (p *HazardPool) LastLane() int {
	return p.lastLane
}

// Cooldown returns the ticks left before the next spawn attempt.
func (p *HazardPool) Cooldown() int {
	return p.cooldown
}
