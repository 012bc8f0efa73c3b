package bandit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bandit/internal/core"
	"github.com/vovakirdan/tui-bandit/internal/sim"
)

// View dimensions in cells. One cell is one tile.
const (
	ViewCols = 28
	ViewRows = sim.CourseRows

	hudRows    = 1
	MinScreenW = ViewCols + 2
	MinScreenH = hudRows + ViewRows + 2
)

// Glyphs
const (
	glyphGrass     = '"'
	glyphDirt      = '.'
	glyphHighway   = ' '
	glyphLaneMark  = '-'
	glyphWater     = '~'
	glyphCar       = '█'
	glyphCarAir    = '▲'
	glyphWreck     = '*'
	glyphPickup    = '$'
	glyphOffCourse = ' '
)

// laneMarkRows are the rows carrying the dashed line between highway lanes.
var laneMarkRows = [...]int{
	(sim.Lane1 + sim.LaneSpacing/2) / sim.TileSize,
	(sim.Lane2 + sim.LaneSpacing/2) / sim.TileSize,
	(sim.Lane3 + sim.LaneSpacing/2) / sim.TileSize,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	originX := (dst.Width() - ViewCols) / 2
	originY := hudRows + 1

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(originX-1, originY-1, ViewCols+2, ViewRows+2))
	g.renderCourse(dst, originX, originY)
	g.renderHazards(dst, originX, originY)
	g.renderVehicle(dst, originX, originY)
	g.renderScores(dst, originY+ViewRows+1)
	g.renderOverlay(dst)
}

// renderHUD draws the driving seat's status line.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.displayed()
	ps := g.state.Roster().Player(p)
	prog := g.state.Progress()

	stage := ps.Stage + 1
	substage := int(prog.Substage()) + 1
	if g.phase == PhaseCrash || g.phase == PhaseGameOver {
		substage = 0
	}

	hud := fmt.Sprintf("%s %06d  STAGE %d-%d  LIVES %d  SPEED %d",
		p, ps.Score, stage, substage, ps.Lives, g.state.Vehicle().Speed)
	if substage == 0 {
		hud = fmt.Sprintf("%s %06d  STAGE %d  LIVES %d", p, ps.Score, stage, ps.Lives)
	}
	dst.DrawTextCentered(0, hud)
}

// renderScores lists every seat under the course in two-player sessions.
func (g *Game) renderScores(dst *core.Screen, y int) {
	roster := g.state.Roster()
	if roster.Seats() < 2 || y >= dst.Height() {
		return
	}

	parts := make([]string, 0, roster.Seats())
	for i := 0; i < roster.Seats(); i++ {
		id := core.PlayerID(i)
		parts = append(parts, fmt.Sprintf("%s %06d x%d", id, roster.Player(id).Score, roster.Player(id).Lives))
	}
	dst.DrawTextCentered(y, strings.Join(parts, "   "))
}

// renderCourse draws every visible column from the ring slot under it.
func (g *Game) renderCourse(dst *core.Screen, originX, originY int) {
	offset := g.state.ScrollOffset()
	ring := g.state.Ring()

	for col := 0; col < ViewCols; col++ {
		slotIdx := sim.SlotIndex(offset, col*sim.TileSize)
		slot := ring.At(slotIdx)
		tile := g.course.Tile(slotIdx)
		kind := terrainOf(tile)

		for row := 0; row < ViewRows; row++ {
			glyph, color := glyphOffCourse, core.ColorDefault
			if g.course.Painted(slotIdx, row) {
				glyph, color = cellGlyph(kind, tile, row, slot.Contains(row*sim.TileSize+sim.TileSize/2))
			}
			dst.SetColored(originX+col, originY+row, glyph, color)
		}
	}
}

// cellGlyph picks the glyph of one course cell.
func cellGlyph(kind terrain, tile, row int, onRoad bool) (rune, core.Color) {
	switch kind {
	case terrainWater:
		return glyphWater, core.ColorBlue
	case terrainHighway:
		if !onRoad {
			return glyphGrass, core.ColorGreen
		}
		if tile == tileHighwayTop && isLaneMarkRow(row) {
			return glyphLaneMark, core.ColorWhite
		}
		return glyphHighway, core.ColorDefault
	default:
		if !onRoad {
			return glyphGrass, core.ColorGreen
		}
		return glyphDirt, core.ColorBrown
	}
}

func isLaneMarkRow(row int) bool {
	for _, r := range laneMarkRows {
		if r == row {
			return true
		}
	}
	return false
}

// renderHazards draws every live hazard as one cell.
func (g *Game) renderHazards(dst *core.Screen, originX, originY int) {
	for _, h := range g.state.Hazards().Hazards() {
		if !h.Enabled {
			continue
		}
		g.plot(dst, originX, originY, h.X, h.Y, glyphPickup, core.ColorBrightYellow)
	}
}

// renderVehicle draws the car as a 2x2 block.
func (g *Game) renderVehicle(dst *core.Screen, originX, originY int) {
	v := g.state.Vehicle()
	glyph, color := rune(glyphCar), core.ColorBrightRed
	switch {
	case g.phase == PhaseCrash || g.phase == PhaseGameOver:
		glyph, color = glyphWreck, core.ColorOrange
	case v.Jumping():
		glyph, color = glyphCarAir, core.ColorBrightWhite
	}

	for dy := 0; dy < sim.VehicleSize; dy += sim.TileSize {
		for dx := 0; dx < sim.VehicleSize; dx += sim.TileSize {
			g.plot(dst, originX, originY, v.X+dx, v.Y+dy, glyph, color)
		}
	}
}

// plot draws a glyph at a course position given in pixels. Positions outside
// the view are skipped.
func (g *Game) plot(dst *core.Screen, originX, originY, x, y int, glyph rune, color core.Color) {
	col, row := x/sim.TileSize, y/sim.TileSize
	if x < 0 || y < 0 || col >= ViewCols || row >= ViewRows {
		return
	}
	dst.SetColored(originX+col, originY+row, glyph, color)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.phase == PhaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER", "Press R to restart", core.ColorBrightRed)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case g.phase == PhaseReady:
		p := g.state.Roster().Current()
		stage := fmt.Sprintf("STAGE %d", g.state.Roster().Active().Stage+1)
		g.drawCenteredBox(dst, fmt.Sprintf("READY PLAYER %s?", p.Word()), stage, core.ColorBrightYellow)
	case g.phase == PhaseCrash:
		msg := "CRASHED!"
		if errors.Is(g.lastErr, sim.ErrHazardEscaped) {
			msg = "ONE GOT AWAY!"
		}
		g.drawCenteredBox(dst, msg, fmt.Sprintf("%s  LIVES %d", g.crashed, g.state.Roster().Player(g.crashed).Lives), core.ColorBrightRed)
	}
}

// drawCenteredBox draws a centered message box with a colored title.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
