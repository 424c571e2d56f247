package game

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/stillwater/internal/core/geom"
	"chosenoffset.com/stillwater/internal/pond"
)

// Scene is the layout of one play area: its size, where the player starts
// and the ponds that accept casts. Coordinates are metres, Y up.
type Scene struct {
	Name          string     `json:"name"`
	PixelsPerUnit float64    `json:"pixels_per_unit"`
	Width         float64    `json:"width"`
	Height        float64    `json:"height"`
	CellSize      float64    `json:"cell_size,omitempty"` // spatial index bucket size
	PlayerStart   geom.Point `json:"player_start"`
	PlayerSpeed   float64    `json:"player_speed,omitempty"` // metres per second
	Ponds         []PondDef  `json:"ponds"`
}

// PondDef describes one pond in a scene.
type PondDef struct {
	LocationID string   `json:"location_id"`
	Shape      ShapeDef `json:"shape"`
	// CastLimit registers the location with the ledger when the simulation
	// config has no limit for it.
	CastLimit int  `json:"cast_limit,omitempty"`
	Disabled  bool `json:"disabled,omitempty"`
}

// ShapeDef is the JSON form of a pond outline.
type ShapeDef struct {
	Type string `json:"type"` // "rect", "circle" or "polygon"

	// rect
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	W float64 `json:"w,omitempty"`
	H float64 `json:"h,omitempty"`

	// circle
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius,omitempty"`

	// polygon
	Points []geom.Point `json:"points,omitempty"`
}

// Shape converts the definition into a pond shape.
func (d ShapeDef) Shape() (pond.Shape, error) {
	switch d.Type {
	case "rect":
		if d.W <= 0 || d.H <= 0 {
			return nil, fmt.Errorf("rect needs a positive size, got %.2fx%.2f", d.W, d.H)
		}
		return pond.RectShape{Rect: geom.Rect{Min: geom.Pt(d.X, d.Y), W: d.W, H: d.H}}, nil
	case "circle":
		if d.Radius <= 0 {
			return nil, fmt.Errorf("circle needs a positive radius, got %.2f", d.Radius)
		}
		return pond.CircleShape{Center: d.Center, Radius: d.Radius}, nil
	case "polygon":
		if len(d.Points) < 3 {
			return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(d.Points))
		}
		return pond.PolygonShape{Points: d.Points}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", d.Type)
	}
}

// DefaultScene returns the built-in three-pond layout
func DefaultScene() *Scene {
	return &Scene{
		Name:          "pond",
		PixelsPerUnit: 24,
		Width:         40,
		Height:        30,
		CellSize:      4,
		PlayerStart:   geom.Pt(20, 15),
		PlayerSpeed:   4,
		Ponds: []PondDef{
			{
				LocationID: "Pond_Main",
				Shape:      ShapeDef{Type: "rect", X: 8, Y: 4, W: 12, H: 7},
			},
			{
				LocationID: "Pond_Forest",
				Shape:      ShapeDef{Type: "circle", Center: geom.Pt(31, 22), Radius: 4},
			},
			{
				LocationID: "Lake_Deep",
				Shape: ShapeDef{Type: "polygon", Points: []geom.Point{
					{X: 3, Y: 18}, {X: 12, Y: 17}, {X: 15, Y: 24}, {X: 9, Y: 28}, {X: 2, Y: 25},
				}},
			},
		},
	}
}

// LoadScene loads a scene from a JSON file. Fields left out of the file keep
// their defaults, except Ponds which the file replaces when present.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	scene := DefaultScene()
	scene.Ponds = nil
	if err := json.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return scene, nil
}

// Validate checks sizes, ids and shapes.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene size must be positive, got %.2fx%.2f", s.Width, s.Height)
	}
	if s.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixels_per_unit must be positive, got %.2f", s.PixelsPerUnit)
	}
	if len(s.Ponds) == 0 {
		return fmt.Errorf("scene %q has no ponds", s.Name)
	}
	seen := make(map[string]bool, len(s.Ponds))
	for i, p := range s.Ponds {
		if p.LocationID == "" {
			return fmt.Errorf("pond %d has no location_id", i)
		}
		if seen[p.LocationID] {
			return fmt.Errorf("duplicate pond %s", p.LocationID)
		}
		seen[p.LocationID] = true
		if _, err := p.Shape.Shape(); err != nil {
			return fmt.Errorf("pond %s: %w", p.LocationID, err)
		}
	}
	return nil
}

// BuildAreas registers every pond shape in a new spatial index.
func (s *Scene) BuildAreas() (*pond.Areas, error) {
	cell := s.CellSize
	if cell <= 0 {
		cell = 4
	}
	areas := pond.NewAreas(s.Width, s.Height, cell)
	for _, p := range s.Ponds {
		shape, err := p.Shape.Shape()
		if err != nil {
			return nil, fmt.Errorf("pond %s: %w", p.LocationID, err)
		}
		if err := areas.Add(p.LocationID, shape); err != nil {
			return nil, err
		}
	}
	return areas, nil
}
