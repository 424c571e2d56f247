// Package placeholders draws the stand-in sprites used when a scene ships
// no sprite sheet of its own.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
)

// TileSize is the standard size for placeholder sprites
const TileSize = 32

// ColorPalette defines colors for the pond scene
var ColorPalette = struct {
	// Terrain
	Grass      color.RGBA
	GrassDark  color.RGBA
	Water      color.RGBA
	WaterDeep  color.RGBA
	WaterLight color.RGBA
	Shore      color.RGBA

	// Entities
	Probe        color.RGBA
	ProbeOutline color.RGBA
	Player       color.RGBA

	// UI
	ChargeAvailable color.RGBA
	ChargeUsed      color.RGBA
	RangeRing       color.RGBA
	Border          color.RGBA
	Background      color.RGBA
	Text            color.RGBA
	Warning         color.RGBA
}{
	Grass:      color.RGBA{74, 120, 60, 255},
	GrassDark:  color.RGBA{60, 100, 48, 255},
	Water:      color.RGBA{40, 90, 160, 255},
	WaterDeep:  color.RGBA{20, 50, 110, 255},
	WaterLight: color.RGBA{90, 150, 210, 255},
	Shore:      color.RGBA{170, 150, 100, 255},

	// The locator is a red float, easy to spot on water
	Probe:        color.RGBA{220, 40, 40, 255},
	ProbeOutline: color.RGBA{255, 255, 255, 255},
	Player:       color.RGBA{0, 255, 100, 255},

	ChargeAvailable: color.RGBA{255, 255, 255, 255},
	ChargeUsed:      color.RGBA{128, 128, 128, 255},
	RangeRing:       color.RGBA{255, 255, 255, 60},
	Border:          color.RGBA{200, 200, 200, 255},
	Background:      color.RGBA{20, 24, 28, 220},
	Text:            color.RGBA{235, 235, 235, 255},
	Warning:         color.RGBA{255, 200, 80, 255},
}

// Sprite names in sheet order.
const (
	SpriteProbe  = "probe"
	SpritePlayer = "player"
	SpriteWater  = "water"
	SpriteGrass  = "grass"
	SpriteCharge = "charge"
)

// SpriteNames lists the placeholder sprites in the order CreateSheet lays
// them out.
var SpriteNames = []string{SpriteProbe, SpritePlayer, SpriteWater, SpriteGrass, SpriteCharge}

// SheetColumns is the column count of the generated sheet.
const SheetColumns = 4

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "ripple":
		// Two short wave crests per row band
		for band := 6; band < TileSize; band += 12 {
			for x := 0; x < TileSize; x++ {
				y := band + int(math.Round(2*math.Sin(float64(x)/TileSize*2*math.Pi)))
				img.Set(x, y, patternColor)
			}
		}
	case "dots":
		// Draw dots (scaled for tile size)
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	}

	return img
}

// CreateCircle creates a circular sprite with a one pixel outline
func CreateCircle(fillColor, outlineColor color.RGBA, radius int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	radius = min(radius, TileSize/2-1)

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateSprite draws the named placeholder sprite.
func CreateSprite(name string) (*image.RGBA, error) {
	p := ColorPalette
	switch name {
	case SpriteProbe:
		return CreateCircle(p.Probe, p.ProbeOutline, 8), nil
	case SpritePlayer:
		return CreateCircle(p.Player, Darken(p.Player, 0.5), 12), nil
	case SpriteWater:
		return CreatePatternedTile(p.Water, p.WaterLight, "ripple"), nil
	case SpriteGrass:
		return CreatePatternedTile(p.Grass, p.GrassDark, "dots"), nil
	case SpriteCharge:
		return CreateCircle(p.ChargeAvailable, Darken(p.ChargeAvailable, 0.6), 6), nil
	default:
		return nil, fmt.Errorf("unknown placeholder sprite %q", name)
	}
}

// CreateSheet draws every placeholder sprite into one sheet, laid out in
// SpriteNames order with SheetColumns columns.
func CreateSheet() *image.RGBA {
	tiles := make([]*image.RGBA, len(SpriteNames))
	for i, name := range SpriteNames {
		tiles[i], _ = CreateSprite(name)
	}
	return CreateAtlas(tiles, SheetColumns)
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	width := columns * TileSize
	height := rows * TileSize

	atlas := image.NewRGBA(image.Rect(0, 0, width, height))

	// Copy each tile into the atlas
	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		col := i % columns
		row := i / columns

		x := col * TileSize
		y := row * TileSize

		destRect := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(atlas, destRect, tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath, err)
	}
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
