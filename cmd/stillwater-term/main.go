package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/stillwater/internal/game"
	"chosenoffset.com/stillwater/internal/gamescanner"
	"chosenoffset.com/stillwater/internal/term"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding one folder per scene")
	sceneName := flag.String("scene", "pond", "scene to play")
	logPath := flag.String("log", "stillwater-term.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	entry, err := gamescanner.Find(*dataDir, *sceneName)
	if err != nil {
		log.Printf("Warning: %v", err)
		entry = gamescanner.SceneEntry{Name: *sceneName, Dir: filepath.Join(*dataDir, *sceneName)}
	}

	setup, err := game.LoadSetup(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	sound := setup.NewSound()
	defer sound.Cleanup()

	session, err := setup.NewSession(sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	term.New(screen, session).Run()
}
