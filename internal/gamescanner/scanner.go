// Package gamescanner finds playable scenes under the data directory.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SceneFile marks a directory as a playable scene
	SceneFile = "scene.json"
	// SimulationFile optionally tunes a scene
	SimulationFile = "simulation.json"
	// SpritesFile optionally provides the scene's sprite sheet
	SpritesFile = "sprites.json"
)

// SceneEntry represents a discoverable scene in the data directory
type SceneEntry struct {
	Name          string // Display name (directory name)
	Dir           string // Directory path including the data root
	HasSimulation bool   // simulation.json present
	HasSprites    bool   // sprites.json present
}

// ScenePath returns the path of the scene description.
func (e SceneEntry) ScenePath() string { return filepath.Join(e.Dir, SceneFile) }

// SimulationPath returns the path of the simulation tuning file.
func (e SceneEntry) SimulationPath() string { return filepath.Join(e.Dir, SimulationFile) }

// ScanDataDirectory scans the data directory for available scenes
// Returns one SceneEntry per directory holding a scene.json, sorted by name
func ScanDataDirectory(dataPath string) ([]SceneEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var scenes []SceneEntry

	for _, entry := range entries {
		// Skip non-directories
		if !entry.IsDir() {
			continue
		}

		// Skip hidden directories
		dirName := entry.Name()
		if strings.HasPrefix(dirName, ".") {
			continue
		}

		scenePath := filepath.Join(dataPath, dirName)
		files, err := listFiles(scenePath)
		if err != nil {
			// Skip directories that can't be read
			continue
		}

		if !files[SceneFile] {
			continue
		}
		scenes = append(scenes, SceneEntry{
			Name:          dirName,
			Dir:           scenePath,
			HasSimulation: files[SimulationFile],
			HasSprites:    files[SpritesFile],
		})
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes, nil
}

// Find returns the scene called name.
func Find(dataPath, name string) (SceneEntry, error) {
	scenes, err := ScanDataDirectory(dataPath)
	if err != nil {
		return SceneEntry{}, err
	}
	for _, s := range scenes {
		if s.Name == name {
			return s, nil
		}
	}
	return SceneEntry{}, fmt.Errorf("scene %q not found in %s", name, dataPath)
}

// listFiles returns the regular file names in a directory
func listFiles(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files[entry.Name()] = true
		}
	}
	return files, nil
}
