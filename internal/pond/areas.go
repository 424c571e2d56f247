package pond

import (
	"fmt"
	"math"

	"github.com/solarlune/resolv"

	"chosenoffset.com/stillwater/internal/core/geom"
)

// Shape is the outline of a pond's interactive water surface.
type Shape interface {
	Contains(p geom.Point) bool
	Bounds() geom.Rect
}

// RectShape is an axis-aligned rectangular pond.
type RectShape struct {
	geom.Rect
}

// Bounds returns the rectangle itself.
func (r RectShape) Bounds() geom.Rect { return r.Rect }

// CircleShape is a round pond.
type CircleShape struct {
	Center geom.Point
	Radius float64
}

// Contains reports whether p lies inside the circle, edge included.
func (c CircleShape) Contains(p geom.Point) bool {
	return geom.Distance(c.Center, p) <= c.Radius
}

// Bounds returns the circle's bounding square.
func (c CircleShape) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius),
		W:   2 * c.Radius,
		H:   2 * c.Radius,
	}
}

// PolygonShape is an arbitrary simple polygon.
type PolygonShape struct {
	Points []geom.Point
}

// Contains uses ray casting against the outline.
func (s PolygonShape) Contains(p geom.Point) bool {
	return geom.PointInPolygon(p, s.Points)
}

// Bounds returns the polygon's bounding box.
func (s PolygonShape) Bounds() geom.Rect { return geom.Bounds(s.Points) }

// spaceScale converts world metres to resolv space units. resolv buckets
// objects on integer cell boundaries, so it works in centimetres.
const spaceScale = 100

type area struct {
	locationID string
	shape      Shape
	obj        *resolv.Object
}

// Areas indexes pond shapes by location. A resolv space does the broad
// phase on each shape's bounding box; the shape itself decides the exact
// point test.
type Areas struct {
	width, height float64
	space         *resolv.Space
	areas         []*area
	byObject      map[*resolv.Object]*area
}

// NewAreas creates an index covering [0, width] x [0, height] metres,
// bucketed into cells of cellSize metres.
func NewAreas(width, height float64, cellSize float64) *Areas {
	cell := max(int(cellSize*spaceScale), 1)
	return &Areas{
		width:    width,
		height:   height,
		space:    resolv.NewSpace(int(math.Ceil(width*spaceScale))+cell, int(math.Ceil(height*spaceScale))+cell, cell, cell),
		byObject: make(map[*resolv.Object]*area),
	}
}

// Add registers shape as (part of) locationID's water surface. A location
// may own several shapes.
func (a *Areas) Add(locationID string, shape Shape) error {
	if locationID == "" {
		return fmt.Errorf("pond area needs a location id")
	}
	b := shape.Bounds()
	if b.Min.X < 0 || b.Min.Y < 0 || b.Min.X+b.W > a.width || b.Min.Y+b.H > a.height {
		return fmt.Errorf("pond area %s (%.1f,%.1f %.1fx%.1f) lies outside the %.0fx%.0f world",
			locationID, b.Min.X, b.Min.Y, b.W, b.H, a.width, a.height)
	}

	// One extra unit so the far edge lands in the last covered cell.
	obj := resolv.NewObject(b.Min.X*spaceScale, b.Min.Y*spaceScale, b.W*spaceScale+1, b.H*spaceScale+1, locationID)
	a.space.Add(obj)

	ar := &area{locationID: locationID, shape: shape, obj: obj}
	a.areas = append(a.areas, ar)
	a.byObject[obj] = ar
	return nil
}

// Contains reports whether p lies on locationID's water.
func (a *Areas) Contains(p geom.Point, locationID string) bool {
	for _, ar := range a.candidates(p) {
		if ar.obj.HasTags(locationID) && ar.shape.Contains(p) {
			return true
		}
	}
	return false
}

// Locate returns the location whose water contains p, if any.
func (a *Areas) Locate(p geom.Point) (string, bool) {
	for _, ar := range a.candidates(p) {
		if ar.shape.Contains(p) {
			return ar.locationID, true
		}
	}
	return "", false
}

// Center returns the center of the first shape registered for locationID.
func (a *Areas) Center(locationID string) (geom.Point, bool) {
	for _, ar := range a.areas {
		if ar.locationID == locationID {
			return ar.shape.Bounds().Center(), true
		}
	}
	return geom.Point{}, false
}

// Each calls fn for every registered shape in registration order.
func (a *Areas) Each(fn func(locationID string, shape Shape)) {
	for _, ar := range a.areas {
		fn(ar.locationID, ar.shape)
	}
}

// Size returns the world extent covered by the index.
func (a *Areas) Size() (width, height float64) {
	return a.width, a.height
}

func (a *Areas) candidates(p geom.Point) []*area {
	if p.X < 0 || p.Y < 0 || p.X > a.width || p.Y > a.height {
		return nil
	}
	cx, cy := a.space.WorldToSpace(p.X*spaceScale, p.Y*spaceScale)
	cell := a.space.Cell(cx, cy)
	if cell == nil {
		return nil
	}

	var out []*area
	for _, obj := range cell.Objects {
		if ar, ok := a.byObject[obj]; ok {
			out = append(out, ar)
		}
	}
	return out
}
