package cave

import (
	"fmt"

	"github.com/vovakirdan/grapplecore/internal/core"
)

const (
	cellWidth = 2 // Screen columns per grid cell
	hudHeight = 1 // Rows above the cave
)

// glyph is the two-column picture of one grid cell.
type glyph struct {
	text  string
	color core.Color
}

var (
	glyphRock      = glyph{"██", core.ColorBrown}
	glyphPlayer    = glyph{"@@", core.ColorBrightWhite}
	glyphExit      = glyph{"[]", core.ColorCyan}
	glyphFlyer     = glyph{"VV", core.ColorMagenta}
	glyphCrab      = glyph{"<>", core.ColorOrange}
	glyphDeadCrab  = glyph{"..", core.ColorDarkGray}
	glyphPoison    = glyph{"~~", core.ColorBrightGreen}
	glyphHook      = glyph{"++", core.ColorYellow}
	glyphRopeHoriz = glyph{"--", core.ColorYellow}
	glyphRopeVert  = glyph{"||", core.ColorYellow}
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.life == nil {
		return
	}

	snap := g.Snapshot()
	if tooSmall(dst, snap) {
		renderTooSmall(dst, snap)
		return
	}

	offsetX := (dst.Width() - snap.Width*cellWidth) / 2
	offsetY := hudHeight

	renderHUD(dst, snap, offsetX)
	renderCave(dst, snap, offsetX, offsetY)
	renderFade(dst, snap, offsetX, offsetY)
	renderOverlays(dst, snap)
}

// tooSmall reports whether the cave does not fit. The unreachable row under
// the floor may be clipped.
func tooSmall(dst *core.Screen, snap Snapshot) bool {
	return dst.Width() < snap.Width*cellWidth || dst.Height() < snap.Height
}

func renderTooSmall(dst *core.Screen, snap Snapshot) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	need := fmt.Sprintf("Need %dx%d", snap.Width*cellWidth, snap.Height)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

func renderHUD(dst *core.Screen, snap Snapshot, x int) {
	amber := fmt.Sprintf("Amber %d", snap.Amber)
	dst.DrawText(x, 0, amber, core.ColorAmber)

	info := fmt.Sprintf("  Turns %d  Life %d  Escapes %d  Deaths %d",
		snap.Turns, snap.Tally.Life, snap.Tally.Escapes, snap.Tally.Deaths)
	dst.DrawText(x+len(amber), 0, info, core.ColorDefault)

	status := snap.Phase.String()
	if snap.Phase == PhaseIdle && !snap.GameOver {
		status = "ready"
	}
	dst.DrawText(x+snap.Width*cellWidth-len(status), 0, status, core.ColorGray)
}

func renderCave(dst *core.Screen, snap Snapshot, ox, oy int) {
	put := func(c Coord, gl glyph) {
		dst.DrawText(ox+c.X*cellWidth, oy+c.Y, gl.text, gl.color)
	}

	for _, c := range snap.Solid {
		put(c, glyphRock)
	}
	for _, p := range snap.Poison {
		put(p, glyphPoison)
	}
	put(snap.Exit, glyphExit)

	if snap.Grappling {
		renderRope(snap.Player, snap.GrappleTarget, put)
	}

	for _, c := range snap.Crabs {
		if c.Alive {
			put(c.Cell, glyphCrab)
		} else {
			put(c.Cell, glyphDeadCrab)
		}
	}
	put(snap.Flyer, glyphFlyer)
	put(snap.Player, glyphPlayer)
}

// renderRope draws the line from the player to the hook anchor.
func renderRope(from, to Coord, put func(Coord, glyph)) {
	rope := glyphRopeHoriz
	if from.X == to.X {
		rope = glyphRopeVert
	}
	for c := from; c != to; {
		c = c.StepToward(to)
		if c != to {
			put(c, rope)
		}
	}
	put(to, glyphHook)
}

// renderFade darkens the cave by the transition alpha.
func renderFade(dst *core.Screen, snap Snapshot, ox, oy int) {
	if snap.FadeAlpha <= 0 {
		return
	}
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width*cellWidth; x++ {
			sx, sy := ox+x, oy+y
			cell := dst.GetCell(sx, sy)
			dst.Recolor(sx, sy, cell.Color.Shade(snap.FadeAlpha, snap.FadeMax))
		}
	}
}

func renderOverlays(dst *core.Screen, snap Snapshot) {
	centerY := dst.Height() / 2

	switch {
	case snap.Paused:
		drawOverlay(dst, centerY, "PAUSED", "Press P to resume")
	case snap.GameOver:
		drawOverlay(dst, centerY, "YOU DIED", "The cave resets...")
	}
}

// drawOverlay draws a boxed, centered message.
func drawOverlay(dst *core.Screen, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, centerY-boxH/2, boxW, boxH)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := box.X + (boxW-len(line))/2
		dst.DrawText(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
