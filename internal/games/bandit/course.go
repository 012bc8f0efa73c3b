package bandit

import "github.com/vovakirdan/tui-bandit/internal/sim"

// Tile strips written by the generator.
const (
	tileHighwayTop    = 2
	tileHighwayBottom = 3
	tileCausewayFirst = 18
)

// course remembers what the generator painted into each ring slot so the
// renderer can draw the strip under every screen column.
type course struct {
	tiles [sim.RingCapacity]int
	rows  [sim.RingCapacity]sim.RowSpan
	paint int
}

func newCourse() *course {
	return &course{}
}

// PaintColumn implements sim.Painter.
func (c *course) PaintColumn(column int, rows sim.RowSpan, tile int) {
	i := ((column % sim.RingCapacity) + sim.RingCapacity) % sim.RingCapacity
	c.tiles[i] = tile
	c.rows[i] = rows
	c.paint++
}

// Tile returns the strip painted into a ring slot.
func (c *course) Tile(slot int) int {
	return c.tiles[slot]
}

// Painted reports whether row lies in the span painted into a slot.
func (c *course) Painted(slot, row int) bool {
	span := c.rows[slot]
	return row >= span.First && row <= span.Last
}

// terrain classifies a tile strip for drawing.
type terrain int

const (
	terrainDirt terrain = iota
	terrainHighway
	terrainWater
)

func terrainOf(tile int) terrain {
	switch {
	case tile == tileHighwayTop || tile == tileHighwayBottom:
		return terrainHighway
	case tile >= tileCausewayFirst:
		return terrainWater
	default:
		return terrainDirt
	}
}
