package sim

// Cue is a fire-and-forget event for the audio collaborator.
type Cue int

const (
	CueCrash Cue = iota
	CueHazardCollected
	CueHazardsCleared
	CueSpeedChanged
	CueLaneChange
	CueJumpStart
	CueJumpPeak
	CueJumpDescend
	CueJumpLand
	CueStageComplete
	CueTurnStart
)

var cueNames = [...]string{
	CueCrash:           "crash",
	CueHazardCollected: "hazard_collected",
	CueHazardsCleared:  "hazards_cleared",
	CueSpeedChanged:    "speed_changed",
	CueLaneChange:      "lane_change",
	CueJumpStart:       "jump_start",
	CueJumpPeak:        "jump_peak",
	CueJumpDescend:     "jump_descend",
	CueJumpLand:        "jump_land",
	CueStageComplete:   "stage_complete",
	CueTurnStart:       "turn_start",
}

// String returns the cue identifier.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// CueSink receives cues. Speed is the vehicle speed at the time of the cue;
// sinks use it to pitch engine sounds.
type CueSink interface {
	Cue(c Cue, speed int)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(c Cue, speed int)

// Cue calls f.
func (f CueFunc) Cue(c Cue, speed int) { f(c, speed) }

type discardCues struct{}

func (discardCues) Cue(Cue, int) {}
