package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"chosenoffset.com/stillwater/internal/audio"
	"chosenoffset.com/stillwater/internal/gamescanner"
	"chosenoffset.com/stillwater/internal/i18n"
	"chosenoffset.com/stillwater/internal/simulation"
	"chosenoffset.com/stillwater/internal/ui/hud"
)

// Setup is everything read from one scene directory.
type Setup struct {
	Entry      gamescanner.SceneEntry
	Scene      *Scene
	Config     *simulation.Config
	Translator *i18n.Translator
}

// LoadSetup reads the scene and simulation files for entry. A missing
// scene.json falls back to the built-in layout; a missing simulation.json
// falls back to the stock tuning.
func LoadSetup(entry gamescanner.SceneEntry) (*Setup, error) {
	log.Printf("Loading scene: %s", entry.ScenePath())

	scene, err := LoadScene(entry.ScenePath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("Warning: No scene file in %s, using the built-in scene", entry.Dir)
		scene = DefaultScene()
	}

	config, err := simulation.Load(entry.SimulationPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load simulation config: %w", err)
	}

	tr := i18n.New(config.Language)
	log.Printf("Loaded scene %s (%.0fx%.0f m, %d ponds), language %s",
		scene.Name, scene.Width, scene.Height, len(scene.Ponds), tr.Language())

	return &Setup{
		Entry:      entry,
		Scene:      scene,
		Config:     config,
		Translator: tr,
	}, nil
}

// NewSession creates the HUD and a session for the loaded scene.
func (s *Setup) NewSession(sound *audio.SoundManager) (*Session, error) {
	hudConfig := hud.DefaultConfig()
	hudConfig.NotificationDuration = s.Config.NotificationDuration()
	display := hud.New(hudConfig, s.Translator)
	return NewSession(s.Scene, s.Config, display, sound)
}

// NewSound opens the speaker when audio is enabled. Failure to open it is
// not fatal; cues are then counted but not played.
func (s *Setup) NewSound() *audio.SoundManager {
	sound := audio.NewSoundManager()
	if !s.Config.Audio {
		return sound
	}
	if err := sound.Initialize(); err != nil {
		log.Printf("Warning: Failed to initialize audio: %v", err)
	}
	return sound
}
