package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// Vehicle motion constants.
const (
	MaxSpeed     = 5
	VehicleSize  = 16
	baseX        = 190 // track position at speed zero
	xPerSpeed    = 4
	hopStep      = 4 // lateral pixels per tick while changing lane
	maxLateral   = Lane4 + LaneSpacing
	jumpPeak     = 12
	jumpDescend  = 24
	JumpDuration = 36
)

// Vehicle is the player's car. X runs along the track, Y across it and Z is
// the jump timer: non-zero while airborne.
type Vehicle struct {
	X, Y, Z          int
	Speed            int
	TargetX, TargetY int
}

// TargetXFor returns the track position the vehicle settles at for speed.
// Faster cars sit further up the screen.
func TargetXFor(speed int) int {
	return baseX - xPerSpeed*speed
}

// NewVehicle places a vehicle in the second lane at its resting position.
func NewVehicle(speed int) Vehicle {
	x := TargetXFor(speed)
	return Vehicle{
		X:       x,
		Y:       Lane2,
		Speed:   speed,
		TargetX: x,
		TargetY: Lane2,
	}
}

// Jumping reports whether the vehicle is in the air.
func (v Vehicle) Jumping() bool {
	return v.Z != 0
}

// HitBox returns the rectangle used for hazard pickup.
func (v Vehicle) HitBox() core.Rect {
	return core.NewRect(v.X, v.Y, VehicleSize, VehicleSize)
}

// Move advances the jump timer and moves the vehicle toward its targets.
// Lateral motion takes priority; the car only slides along the track once
// it has settled in its lane.
func (v *Vehicle) Move(cues CueSink) {
	if v.Z > 0 {
		v.Z++
		switch v.Z {
		case jumpPeak:
			cues.Cue(CueJumpPeak, v.Speed)
		case jumpDescend:
			cues.Cue(CueJumpDescend, v.Speed)
		case JumpDuration:
			v.Z = 0
			cues.Cue(CueJumpLand, v.Speed)
		}
	}

	if v.Y != v.TargetY {
		v.Y = core.Approach(v.Y, v.TargetY, hopStep)
		return
	}
	v.X = core.Approach(v.X, v.TargetX, 1)
}

// Control applies at most one action from the frame. Controls are ignored
// while airborne. Priority follows the cabinet: lane right, lane left,
// slow down, speed up, jump.
func (v *Vehicle) Control(in core.InputFrame, minSpeed, maxSpeed int, cues CueSink) {
	if v.Jumping() {
		return
	}

	switch {
	case in.Has(core.ActionLaneRight):
		if v.TargetY > LaneSpacing {
			v.TargetY -= LaneSpacing
		} else {
			v.TargetY = 0
		}
		cues.Cue(CueLaneChange, v.Speed)
	case in.Has(core.ActionLaneLeft):
		if v.TargetY == 0 {
			v.TargetY = Lane1
		} else {
			v.TargetY = core.Min(v.TargetY+LaneSpacing, maxLateral)
		}
		cues.Cue(CueLaneChange, v.Speed)
	case in.Has(core.ActionSpeedDown) && v.Speed > minSpeed:
		v.Speed--
		v.TargetX = TargetXFor(v.Speed)
		cues.Cue(CueSpeedChanged, v.Speed)
	case in.Has(core.ActionSpeedUp) && v.Speed < maxSpeed:
		v.Speed++
		v.TargetX = TargetXFor(v.Speed)
		cues.Cue(CueSpeedChanged, v.Speed)
	case in.Has(core.ActionJump):
		v.Z = 1
		cues.Cue(CueJumpStart, v.Speed)
	}
}
