// Package simulation provides the tuning for charges, casting and the
// locator probe. Values are loaded from a per-scene data file and can be
// overridden from the environment.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"chosenoffset.com/stillwater/internal/locator"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "STILLWATER_"

// Config holds all simulation rules for a scene
type Config struct {
	// Research charges
	Charges ChargeConfig `json:"charges"`

	// Cast validation
	Cast CastConfig `json:"cast"`

	// Locator animation
	Probe ProbeConfig `json:"probe"`

	// HUD behaviour
	HUD HUDConfig `json:"hud"`

	Language string `json:"language" env:"LANGUAGE"` // "en" or "ru"
	Audio    bool   `json:"audio" env:"AUDIO"`       // play sound cues
}

// ChargeConfig defines the research charge pool
type ChargeConfig struct {
	Max            int            `json:"max" env:"MAX_CHARGES"`
	Initial        int            `json:"initial" env:"INITIAL_CHARGES"`
	LocationLimits map[string]int `json:"location_limits" env:"LOCATION_LIMITS"` // e.g. "Pond_Main:3,Lake_Deep:5"
}

// CastConfig defines how far from the player a cast may land
type CastConfig struct {
	MinDistance float64 `json:"min_distance" env:"MIN_CAST_DISTANCE"`
	MaxDistance float64 `json:"max_distance" env:"MAX_CAST_DISTANCE"`
}

// ProbeConfig defines the locator throw, bob and fade. Durations are seconds.
type ProbeConfig struct {
	ThrowDuration float64 `json:"throw_duration" env:"THROW_DURATION"`
	ThrowHeight   float64 `json:"throw_height" env:"THROW_HEIGHT"`
	Curve         string  `json:"curve" env:"THROW_CURVE"`
	BobAmplitude  float64 `json:"bob_amplitude" env:"BOB_AMPLITUDE"`
	BobFrequency  float64 `json:"bob_frequency" env:"BOB_FREQUENCY"` // radians per second
	FadeDuration  float64 `json:"fade_duration" env:"FADE_DURATION"`
}

// HUDConfig defines notification timing
type HUDConfig struct {
	NotificationDuration float64 `json:"notification_duration" env:"NOTIFICATION_DURATION"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() *Config {
	return &Config{
		Charges: ChargeConfig{
			Max:     5,
			Initial: 5,
			LocationLimits: map[string]int{
				"Pond_Main":   3,
				"Pond_Forest": 2,
				"Lake_Deep":   5,
			},
		},
		Cast: CastConfig{
			MinDistance: 2,
			MaxDistance: 10,
		},
		Probe: ProbeConfig{
			ThrowDuration: 1.5,
			ThrowHeight:   2,
			Curve:         "ease_in_out",
			BobAmplitude:  0.1,
			BobFrequency:  1,
			FadeDuration:  0.5,
		},
		HUD: HUDConfig{
			NotificationDuration: 3,
		},
		Language: "en",
		Audio:    true,
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}
	return config, nil
}

// ApplyEnv overrides fields from STILLWATER_* variables. Unset variables
// leave the loaded values alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Charges.Max < 1:
		return fmt.Errorf("charges.max must be at least 1, got %d", c.Charges.Max)
	case c.Charges.Initial < 0 || c.Charges.Initial > c.Charges.Max:
		return fmt.Errorf("charges.initial %d outside [0, %d]", c.Charges.Initial, c.Charges.Max)
	case c.Cast.MinDistance < 0:
		return fmt.Errorf("cast.min_distance must not be negative, got %.2f", c.Cast.MinDistance)
	case c.Cast.MinDistance > c.Cast.MaxDistance:
		return fmt.Errorf("cast.min_distance %.2f exceeds max_distance %.2f", c.Cast.MinDistance, c.Cast.MaxDistance)
	case c.Probe.ThrowDuration <= 0:
		return fmt.Errorf("probe.throw_duration must be positive, got %.2f", c.Probe.ThrowDuration)
	case c.Probe.FadeDuration <= 0:
		return fmt.Errorf("probe.fade_duration must be positive, got %.2f", c.Probe.FadeDuration)
	case c.HUD.NotificationDuration <= 0:
		return fmt.Errorf("hud.notification_duration must be positive, got %.2f", c.HUD.NotificationDuration)
	}
	for loc, limit := range c.Charges.LocationLimits {
		if limit < 0 {
			return fmt.Errorf("charges.location_limits[%s] must not be negative, got %d", loc, limit)
		}
	}
	if _, err := locator.CurveByName(c.Probe.Curve); err != nil {
		return err
	}
	return nil
}

// ProbeParams converts the probe section into locator parameters. The curve
// falls back to linear if the name is unknown; Validate catches that case.
func (c *Config) ProbeParams() locator.Params {
	curve, err := locator.CurveByName(c.Probe.Curve)
	if err != nil {
		curve = locator.Linear
	}
	return locator.Params{
		ThrowDuration: seconds(c.Probe.ThrowDuration),
		ThrowHeight:   c.Probe.ThrowHeight,
		Curve:         curve,
		BobAmplitude:  c.Probe.BobAmplitude,
		BobFrequency:  c.Probe.BobFrequency,
		FadeDuration:  seconds(c.Probe.FadeDuration),
	}
}

// NotificationDuration returns how long a HUD notification stays up.
func (c *Config) NotificationDuration() time.Duration {
	return seconds(c.HUD.NotificationDuration)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
