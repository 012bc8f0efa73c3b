package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// Lateral lane centres. The road is drawn rotated: lateral coordinates grow
// from the near edge (0) toward the far edge.
const (
	Lane1 = 22
	Lane2 = 54
	Lane3 = 86
	Lane4 = 118

	LaneOffset  = 12 // half the drivable width of a lane
	LaneSpacing = 32
)

// Course line indices into the dirt road table.
const (
	MinWalkLine  = 1 // lowest line the random walk may select
	MaxWalkLine  = 6 // highest line the random walk may select
	WalkCeiling  = 5 // line used when the walk overshoots MaxWalkLine
	CausewayIn   = 7 // first half of the water crossing
	CausewayOut  = 8 // second half of the water crossing
	StartingLine = 2
)

// StripeHalf is one tile-row of a stripe pattern.
type StripeHalf struct {
	Min  int // smallest drivable lateral coordinate
	Max  int // largest drivable lateral coordinate
	Tile int // tile strip the painter should draw
}

// Slot converts the half into the bounds stored in the column ring.
func (h StripeHalf) Slot() ColumnSlot {
	return ColumnSlot{Min: h.Min, Max: h.Max}
}

// StripePattern is one road cross-section. A pattern is always emitted as a
// top column followed by a bottom column; Repeat is the default number of
// such pairs before a new pattern is selected.
type StripePattern struct {
	Top    StripeHalf
	Bottom StripeHalf
	Repeat int
}

// Half returns the bottom half when bottom is set, otherwise the top half.
func (p StripePattern) Half(bottom bool) StripeHalf {
	if bottom {
		return p.Bottom
	}
	return p.Top
}

// dirtRoad holds the patterns used while the course wanders. Rows 7 and 8
// are the causeway: Min is above Max, so no lateral position is on the road
// and only a jump gets the vehicle across.
var dirtRoad = [...]StripePattern{
	{Top: StripeHalf{10, 34, 4}, Bottom: StripeHalf{10, 34, 5}, Repeat: 0},
	{Top: StripeHalf{10, 66, 12}, Bottom: StripeHalf{10, 66, 13}, Repeat: 3},
	{Top: StripeHalf{42, 66, 6}, Bottom: StripeHalf{42, 66, 7}, Repeat: 0},
	{Top: StripeHalf{42, 98, 14}, Bottom: StripeHalf{42, 98, 15}, Repeat: 3},
	{Top: StripeHalf{74, 98, 8}, Bottom: StripeHalf{74, 98, 9}, Repeat: 0},
	{Top: StripeHalf{74, 130, 16}, Bottom: StripeHalf{74, 130, 17}, Repeat: 3},
	{Top: StripeHalf{106, 130, 10}, Bottom: StripeHalf{106, 130, 11}, Repeat: 0},
	{Top: StripeHalf{23, 22, 21}, Bottom: StripeHalf{23, 22, 20}, Repeat: 1},
	{Top: StripeHalf{23, 22, 19}, Bottom: StripeHalf{24, 22, 18}, Repeat: 1},
}

// Highway is the four-lane open road used outside the water substage.
var Highway = StripePattern{
	Top:    StripeHalf{Lane1 - LaneOffset, Lane4 + LaneOffset, 2},
	Bottom: StripeHalf{Lane1 - LaneOffset, Lane4 + LaneOffset, 3},
	Repeat: 10,
}

// DirtRoadLines is the number of rows in the dirt road table.
func DirtRoadLines() int {
	return len(dirtRoad)
}

// DirtRoadPattern returns the dirt road pattern for a course line.
// Out-of-range lines are clamped to the table.
func DirtRoadPattern(line int) StripePattern {
	return dirtRoad[core.Clamp(line, 0, len(dirtRoad)-1)]
}
