// Package sprites loads named sprites from a sheet image described by a JSON
// file, falling back to generated placeholders.
package sprites

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/stillwater/internal/placeholders"
	"chosenoffset.com/stillwater/internal/render"
)

// ConfigFile is the sheet description looked up in a scene directory.
const ConfigFile = "sprites.json"

// SpriteDefinition places one named sprite on the sheet grid
type SpriteDefinition struct {
	Name   string `json:"name"`    // e.g. "probe"
	SheetX int    `json:"sheet_x"` // column, in tiles
	SheetY int    `json:"sheet_y"` // row, in tiles
}

// SheetConfig defines the JSON configuration for a sprite sheet
type SheetConfig struct {
	Name       string             `json:"name"`
	ImagePath  string             `json:"image_path"` // relative to the config file
	TileWidth  int                `json:"tile_width"`
	TileHeight int                `json:"tile_height"`
	Sprites    []SpriteDefinition `json:"sprites"`
}

// Validate checks the fields a sheet cannot work without.
func (c *SheetConfig) Validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile dimensions: %dx%d", c.TileWidth, c.TileHeight)
	}
	if c.ImagePath == "" {
		return fmt.Errorf("image_path is required in sprite sheet config")
	}
	return nil
}

// Sheet is a loaded sprite sheet
type Sheet struct {
	Config *SheetConfig
	Image  render.Image
	byName map[string]*SpriteDefinition
}

// NewSheet wraps an already loaded image.
func NewSheet(config *SheetConfig, img render.Image) *Sheet {
	byName := make(map[string]*SpriteDefinition, len(config.Sprites))
	for i := range config.Sprites {
		def := &config.Sprites[i]
		if def.Name != "" {
			byName[def.Name] = def
		}
	}
	return &Sheet{Config: config, Image: img, byName: byName}
}

// ReadConfig reads and validates a sheet description.
func ReadConfig(configPath string) (*SheetConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet config %s: %w", configPath, err)
	}

	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet config %s: %w", configPath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("sprite sheet config %s: %w", configPath, err)
	}
	return &config, nil
}

// LoadSheet loads a sprite sheet from a JSON configuration file
func LoadSheet(configPath string, loader render.ResourceLoader) (*Sheet, error) {
	config, err := ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}
	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet image %s: %w", imagePath, err)
	}

	return NewSheet(config, img), nil
}

// PlaceholderConfig describes the sheet produced by placeholders.CreateSheet.
func PlaceholderConfig() *SheetConfig {
	config := &SheetConfig{
		Name:       "placeholders",
		ImagePath:  "placeholders.png",
		TileWidth:  placeholders.TileSize,
		TileHeight: placeholders.TileSize,
	}
	for i, name := range placeholders.SpriteNames {
		config.Sprites = append(config.Sprites, SpriteDefinition{
			Name:   name,
			SheetX: i % placeholders.SheetColumns,
			SheetY: i / placeholders.SheetColumns,
		})
	}
	return config
}

// WriteConfig saves config as indented JSON.
func WriteConfig(configPath string, config *SheetConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sprite sheet config: %w", err)
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write sprite sheet config %s: %w", configPath, err)
	}
	return nil
}

// Placeholder builds the generated sheet in memory.
func Placeholder(renderer render.Renderer) *Sheet {
	return NewSheet(PlaceholderConfig(), renderer.NewImageFromImage(placeholders.CreateSheet()))
}

// LoadOrPlaceholder loads dir/sprites.json, or falls back to the generated
// sheet when it is missing or broken.
func LoadOrPlaceholder(dir string, loader render.ResourceLoader, renderer render.Renderer) *Sheet {
	sheet, err := LoadSheet(filepath.Join(dir, ConfigFile), loader)
	if err != nil {
		log.Printf("Warning: using placeholder sprites: %v", err)
		return Placeholder(renderer)
	}
	return sheet
}

// Rect returns the pixel rectangle of def on the sheet.
func (s *Sheet) Rect(def *SpriteDefinition) image.Rectangle {
	x := def.SheetX * s.Config.TileWidth
	y := def.SheetY * s.Config.TileHeight
	return image.Rect(x, y, x+s.Config.TileWidth, y+s.Config.TileHeight)
}

// Sprite returns the sub-image for a named sprite
func (s *Sheet) Sprite(name string) (render.Image, bool) {
	def, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.Image.SubImage(s.Rect(def)), true
}

// Has reports whether the sheet defines name.
func (s *Sheet) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// DrawCentered draws a sprite centered on (x, y), scaled to size pixels
// wide, with the given opacity.
func (s *Sheet) DrawCentered(dst render.Image, name string, x, y, size float64, alpha float32) error {
	img, ok := s.Sprite(name)
	if !ok {
		return fmt.Errorf("sprite not found: %s", name)
	}
	scale := size / float64(s.Config.TileWidth)

	geoM := render.NewGeoM()
	geoM.Scale(scale, scale)
	geoM.Translate(x-size/2, y-float64(s.Config.TileHeight)*scale/2)
	dst.DrawImage(img, &render.DrawImageOptions{GeoM: geoM, Alpha: alpha})
	return nil
}
