package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// CourseRows is the number of tile rows a generated column spans.
const CourseRows = 20

// Water crossing script, counted in dirt road segments.
const (
	waterHold    = 31 // remember the line and hold it briefly
	waterEntry   = 32 // first causeway half
	waterExit    = 33 // second causeway half
	waterRestore = 34 // back to the remembered line

	waterHoldRun    = 3
	waterRestoreRun = 6
	causewayRun     = 1
	walkBaseRun     = 3
	walkThreshold   = 128
)

// RowSpan is an inclusive range of tile rows.
type RowSpan struct {
	First int
	Last  int
}

// Painter draws generated columns. It receives the ring slot that was
// written, the rows to fill and the tile strip to use.
type Painter interface {
	PaintColumn(column int, rows RowSpan, tile int)
}

// GenParams carries the per-tick inputs of the generator.
type GenParams struct {
	Substage     Substage
	RoadVariance int
	Rand         byte
}

// Emission summarizes one Advance call.
type Emission struct {
	Columns  int // columns written to the ring
	Segments int // patterns selected; each one counts as a substage step
	Drifts   int // random-walk moves; each one is worth points
}

// Generator produces road columns on demand as the display scrolls.
type Generator struct {
	ring    *ColumnRing
	painter Painter

	line       int // current course line index
	storedLine int // line to return to after the water crossing
	run        int // pattern pairs left before a new selection
	water      int // water script counter
	bottom     bool
	pattern    StripePattern
}

// NewGenerator creates a generator writing into ring. painter may be nil.
func NewGenerator(ring *ColumnRing, painter Painter) *Generator {
	g := &Generator{ring: ring, painter: painter}
	g.Reset()
	return g
}

// SetPainter replaces the rendering collaborator.
func (g *Generator) SetPainter(p Painter) {
	g.painter = p
}

// Reset rewinds the generator for a new turn. The ring is reset too.
func (g *Generator) Reset() {
	g.ring.Reset()
	g.line = StartingLine
	g.storedLine = StartingLine
	g.run = 0
	g.water = 0
	g.bottom = false
	g.pattern = Highway
}

// Advance emits n columns. Zero or negative n changes nothing.
func (g *Generator) Advance(n int, p GenParams) Emission {
	var em Emission
	for ; n > 0; n-- {
		if g.run == 0 {
			if g.selectPattern(p) {
				em.Drifts++
			}
			em.Segments++
		}
		g.emit()
		em.Columns++
	}
	return em
}

// selectPattern picks the next pattern and run length. It reports whether
// the random walk moved the course line.
func (g *Generator) selectPattern(p GenParams) bool {
	if p.Substage != SubstageWater {
		g.pattern = Highway
		g.run = Highway.Repeat
		return false
	}

	drifted := false
	g.water++
	switch g.water {
	case waterHold:
		g.storedLine = g.line
		g.run = waterHoldRun
	case waterEntry:
		g.line = CausewayIn
		g.run = causewayRun
	case waterExit:
		g.line = CausewayOut
		g.run = causewayRun
	case waterRestore:
		g.line = g.storedLine
		g.run = waterRestoreRun
		g.water = 0
	default:
		g.line = Drift(g.line, p.Rand)
		g.run = walkBaseRun + int(p.Rand)%core.Max(p.RoadVariance, 1)
		drifted = true
	}

	g.pattern = DirtRoadPattern(g.line)
	return drifted
}

// emit writes one half of the current pattern. Top and bottom alternate;
// the run shrinks once per completed pair.
func (g *Generator) emit() {
	half := g.pattern.Half(g.bottom)
	col := g.ring.Write(half.Slot())
	if g.painter != nil {
		g.painter.PaintColumn(col, RowSpan{First: 0, Last: CourseRows - 1}, half.Tile)
	}

	if g.bottom {
		g.run--
		g.bottom = false
	} else {
		g.bottom = true
	}
}

// Drift applies one random-walk step to a course line. Bytes above the
// midpoint move the line up, the rest move it down. The result is clamped:
// under MinWalkLine becomes MinWalkLine and over MaxWalkLine becomes
// WalkCeiling.
func Drift(line int, r byte) int {
	if r > walkThreshold {
		line++
	} else {
		line--
	}
	switch {
	case line < MinWalkLine:
		return MinWalkLine
	case line > MaxWalkLine:
		return WalkCeiling
	default:
		return line
	}
}

// Line returns the current course line index.
func (g *Generator) Line() int { return g.line }

// Run returns the remaining pattern pairs before the next selection.
func (g *Generator) Run() int { return g.run }

// WaterCounter returns the water script counter.
func (g *Generator) WaterCounter() int { return g.water }

// Bottom reports whether the next column is a bottom half.
func (g *Generator) Bottom() bool { return g.bottom }

// Pattern returns the pattern being emitted.
func (g *Generator) Pattern() StripePattern { return g.pattern }
