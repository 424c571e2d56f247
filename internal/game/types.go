package game

import (
	"chosenoffset.com/stillwater/internal/core/geom"
)

// Player represents the player's physical state in the world.
type Player struct {
	Pos   geom.Point
	Speed float64 // metres per second
}

// View maps world metres (Y up) to screen pixels (Y down).
type View struct {
	PixelsPerUnit float64
	WorldHeight   float64
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(p geom.Point) (x, y float64) {
	return p.X * v.PixelsPerUnit, (v.WorldHeight - p.Y) * v.PixelsPerUnit
}

// ToWorld converts screen pixels to a world point.
func (v View) ToWorld(x, y float64) geom.Point {
	return geom.Pt(x/v.PixelsPerUnit, v.WorldHeight-y/v.PixelsPerUnit)
}

// Scale converts a world length to pixels.
func (v View) Scale(metres float64) float64 {
	return metres * v.PixelsPerUnit
}
