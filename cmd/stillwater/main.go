package main

import (
	"flag"
	"log"
	"path/filepath"

	"chosenoffset.com/stillwater/internal/game"
	"chosenoffset.com/stillwater/internal/gamescanner"
	ebitenrender "chosenoffset.com/stillwater/internal/render/ebiten"
	"chosenoffset.com/stillwater/internal/render/sprites"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding one folder per scene")
	sceneName := flag.String("scene", "pond", "scene to play")
	flag.Parse()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	log.Println("Scanning data directory for available scenes...")
	entry, err := gamescanner.Find(*dataDir, *sceneName)
	if err != nil {
		log.Printf("Warning: %v", err)
		entry = gamescanner.SceneEntry{Name: *sceneName, Dir: filepath.Join(*dataDir, *sceneName)}
	}

	setup, err := game.LoadSetup(entry)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	sound := setup.NewSound()
	defer sound.Cleanup()

	session, err := setup.NewSession(sound)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	sheet := sprites.LoadOrPlaceholder(entry.Dir, loader, renderer)
	g := game.NewGame(session, renderer, inputMgr, sheet)

	// Set up the window
	engine.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	engine.SetWindowTitle("Stillwater - " + setup.Scene.Name)
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Printf("Game exited with error: %v", err)
	}
}
