package game

import (
	"image/color"
	"log"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/locator"
	"chosenoffset.com/stillwater/internal/placeholders"
	"chosenoffset.com/stillwater/internal/pond"
	"chosenoffset.com/stillwater/internal/render"
)

// Sprite sizes in metres.
const (
	probeSize  = 0.6
	playerSize = 1.0
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	g.FrameCount++

	screen.Fill(placeholders.ColorPalette.Grass)
	g.drawPonds(screen)
	g.drawRangeRings(screen)
	g.drawPlayer(screen)
	g.drawProbes(screen)

	g.Session.Display().Draw(screen, g.Renderer)
}

func (g *Game) drawPonds(screen render.Image) {
	palette := placeholders.ColorPalette
	for _, p := range g.Session.Ponds() {
		shape, err := p.Def.Shape.Shape()
		if err != nil {
			continue
		}

		water := palette.Water
		if p.Controller.IsScanning() {
			water = palette.WaterLight
		}
		if !p.Controller.InteractionEnabled() {
			water = palette.WaterDeep
		}
		g.drawShape(screen, shape, water, palette.Shore)

		// Label at the pond's center
		c := shape.Bounds().Center()
		x, y := g.View.ToScreen(c)
		w, h := g.Renderer.MeasureText(p.Def.LocationID, 1)
		g.Renderer.DrawText(screen, p.Def.LocationID, int(x)-w/2, int(y)-h/2, palette.Text, 1)
	}
}

func (g *Game) drawShape(screen render.Image, shape pond.Shape, fill, outline color.RGBA) {
	switch s := shape.(type) {
	case pond.RectShape:
		// Top-left on screen is the world rect's max-Y corner
		x, y := g.View.ToScreen(geom.Pt(s.Min.X, s.Min.Y+s.H))
		w, h := float32(g.View.Scale(s.W)), float32(g.View.Scale(s.H))
		g.Renderer.FillRect(screen, float32(x), float32(y), w, h, fill)
		g.Renderer.StrokeRect(screen, float32(x), float32(y), w, h, 2, outline)
	case pond.CircleShape:
		x, y := g.View.ToScreen(s.Center)
		r := float32(g.View.Scale(s.Radius))
		g.Renderer.FillCircle(screen, float32(x), float32(y), r, fill)
		g.Renderer.StrokeCircle(screen, float32(x), float32(y), r, 2, outline)
	case pond.PolygonShape:
		xs := make([]float32, len(s.Points))
		ys := make([]float32, len(s.Points))
		for i, pt := range s.Points {
			x, y := g.View.ToScreen(pt)
			xs[i], ys[i] = float32(x), float32(y)
		}
		g.Renderer.FillPolygon(screen, xs, ys, fill)
		for i := range xs {
			j := (i + 1) % len(xs)
			g.Renderer.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 2, outline)
		}
	default:
		log.Printf("Warning: no drawing for pond shape %T", shape)
	}
}

// drawRangeRings outlines the minimum and maximum cast distance.
func (g *Game) drawRangeRings(screen render.Image) {
	cast := g.Session.Config().Cast
	x, y := g.View.ToScreen(g.Session.Player().Pos)
	ring := placeholders.ColorPalette.RangeRing
	if cast.MinDistance > 0 {
		g.Renderer.StrokeCircle(screen, float32(x), float32(y), float32(g.View.Scale(cast.MinDistance)), 1, ring)
	}
	g.Renderer.StrokeCircle(screen, float32(x), float32(y), float32(g.View.Scale(cast.MaxDistance)), 1, ring)
}

func (g *Game) drawPlayer(screen render.Image) {
	x, y := g.View.ToScreen(g.Session.Player().Pos)
	size := g.View.Scale(playerSize)
	if g.Sprites != nil {
		if err := g.Sprites.DrawCentered(screen, placeholders.SpritePlayer, x, y, size, 1); err == nil {
			return
		}
	}
	g.Renderer.FillCircle(screen, float32(x), float32(y), float32(size/2), placeholders.ColorPalette.Player)
}

func (g *Game) drawProbes(screen render.Image) {
	for _, p := range g.Session.Ponds() {
		for _, probe := range p.Controller.Probes() {
			g.drawProbe(screen, probe)
		}
	}
}

func (g *Game) drawProbe(screen render.Image, probe *locator.Probe) {
	if probe.State() == locator.StateRemoved || probe.Alpha() <= 0 {
		return
	}
	x, y := g.View.ToScreen(probe.Position())
	size := g.View.Scale(probeSize)
	alpha := float32(probe.Alpha())

	if probe.IsThrowing() {
		// Landing marker
		tx, ty := g.View.ToScreen(probe.Target())
		g.Renderer.StrokeCircle(screen, float32(tx), float32(ty), float32(size/2), 1, placeholders.ColorPalette.ProbeOutline)
	}

	if g.Sprites != nil {
		if err := g.Sprites.DrawCentered(screen, placeholders.SpriteProbe, x, y, size, alpha); err == nil {
			return
		}
	}
	clr := placeholders.WithAlpha(placeholders.ColorPalette.Probe, uint8(255*probe.Alpha()))
	g.Renderer.FillCircle(screen, float32(x), float32(y), float32(size/2), clr)
}
