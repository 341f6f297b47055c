package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-orbit/internal/core"
	"github.com/vovakirdan/tui-orbit/internal/games/orbit/polar"
)

// hudRows is the number of rows reserved for the status line.
const hudRows = 1

// ringSegments is how many dots outline the hit area.
const ringSegments = 24

// viewport maps world coordinates to fractional screen cells.
// Terminal cells are about twice as tall as they are wide, so y is halved.
type viewport struct {
	cx, cy float64
	scale  float64 // cells per world unit along x
}

func newViewport(w, h int) viewport {
	playH := h - hudRows
	return viewport{
		cx:    float64(w-1) / 2,
		cy:    float64(hudRows) + float64(playH-1)/2,
		scale: math.Min(float64(w-1)/2, float64(playH-1)) / ViewRadius,
	}
}

// project returns the screen position of p. World y grows upward.
func (v viewport) project(p polar.Point) (float64, float64) {
	return v.cx + p.X*v.scale, v.cy - p.Y*v.scale/2
}

func (v viewport) cell(p polar.Point) (int, int) {
	x, y := v.project(p)
	return int(math.Round(x)), int(math.Round(y))
}

// playArea is the screen below the HUD.
func playArea(dst *core.Screen) core.Rect {
	return core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	if g.session == nil {
		return
	}

	v := newViewport(dst.Width(), dst.Height())

	// Spiral
	curve := g.frame.Curve
	for i := 1; i < len(curve); i++ {
		x0, y0 := v.project(curve[i-1])
		x1, y1 := v.project(curve[i])
		dst.DrawLine(x0, y0, x1, y1, CurveChar, core.ColorCyan)
	}

	cx, cy := v.cell(polar.Point{})
	dst.SetColored(cx, cy, CenterChar, core.ColorGray)

	// Bird and its hit area
	color := polar.CollisionColor(g.frame.Collided)
	g.drawRing(dst, v, g.frame.HitArea, color)
	bx, by := v.cell(g.frame.Position)
	if playArea(dst).Contains(bx, by) {
		dst.SetColored(bx, by, BirdChar, color)
	}

	// HUD
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(1, 0, g.hudText(), core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R or Enter to restart", g.frame.Score))
	}
}

// drawRing outlines the hit circle when it is large enough to read as a ring.
func (g *Game) drawRing(dst *core.Screen, v viewport, c polar.Circle, color core.Color) {
	if c.Radius*v.scale < 1.5 {
		return
	}
	area := playArea(dst)
	for i := 0; i < ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		x, y := v.cell(c.Center.Add(polar.PolarToCartesian(c.Radius, a)))
		if area.Contains(x, y) {
			dst.SetColored(x, y, RingChar, color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	cx, cy := core.NewRect(0, 0, w, h).Center()
	boxX := cx - boxW/2
	boxY := cy - boxH/2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
