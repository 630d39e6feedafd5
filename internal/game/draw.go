package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/raymaze/internal/render"
)

const (
	hudX = 8
	hudY = 8
)

// hudPanelColor darkens the map behind the HUD text
var hudPanelColor = color.RGBA{A: 160}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	g.Compositor.Render(g.canvas, g.Scene)

	g.frame = g.ensureImage(g.frame, g.canvas.Width(), g.canvas.Height())
	g.pixels = g.canvas.CopyRGBA(g.pixels)
	g.frame.WritePixels(g.pixels)
	screen.DrawImage(g.frame)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

// ensureImage returns img if it is w x h, otherwise disposes of it and
// creates a replacement.
func (g *Game) ensureImage(img render.Image, w, h int) render.Image {
	if img != nil && !needsResize(img, w, h) {
		return img
	}
	if img != nil {
		img.Dispose()
	}
	return g.Renderer.NewImage(w, h)
}

func needsResize(img render.Image, w, h int) bool {
	iw, ih := img.Size()
	return iw != w || ih != h
}

// drawHUD draws the overlay text over a translucent panel in the top-left
// corner of the screen.
func (g *Game) drawHUD(screen render.Image) {
	lines := g.HUDLines()

	textW, textH := 0, 0
	heights := make([]int, len(lines))
	for i, line := range lines {
		w, h := g.Renderer.MeasureText(line)
		textW = max(textW, w)
		textH += h
		heights[i] = h
	}

	screenW, screenH := screen.Size()
	panelW := min(textW+2*hudX, screenW)
	panelH := min(textH+2*hudY, screenH)
	if panelW > 0 && panelH > 0 {
		g.hudPanel = g.ensureImage(g.hudPanel, panelW, panelH)
		g.hudPanel.Fill(hudPanelColor)
		screen.DrawImage(g.hudPanel)
	}

	y := hudY
	for i, line := range lines {
		g.Renderer.DrawText(screen, line, hudX, y)
		y += heights[i]
	}
}

// HUDLines returns the overlay text for the current state
func (g *Game) HUDLines() []string {
	pose := g.Scene.Pose()
	return []string{
		fmt.Sprintf("pos (%d,%d)  rot %.2f", pose.Position.X, pose.Position.Y, pose.Rotation),
		fmt.Sprintf("fov %.1f deg  rays %d  seed %d", g.Scene.FOV()*180/math.Pi, len(g.Compositor.Rays()), g.Scene.Seed()),
		"WASD move  Q/E fov  R maze  P snap  H hud  Esc quit",
	}
}
