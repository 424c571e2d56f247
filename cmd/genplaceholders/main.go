package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/stillwater/internal/placeholders"
	"chosenoffset.com/stillwater/internal/render/sprites"
)

func main() {
	outDir := flag.String("out", "data/pond", "scene directory to write the sheet into")
	flag.Parse()

	fmt.Println("Stillwater Placeholder Graphics Generator")
	fmt.Println("=========================================")
	fmt.Println()

	if err := generate(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
}

func generate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	config := sprites.PlaceholderConfig()
	imagePath := filepath.Join(dir, config.ImagePath)
	if err := placeholders.SavePNG(placeholders.CreateSheet(), imagePath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d sprites)\n", imagePath, len(config.Sprites))

	configPath := filepath.Join(dir, sprites.ConfigFile)
	if err := sprites.WriteConfig(configPath, config); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
