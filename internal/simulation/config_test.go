package simulation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/stillwater/internal/locator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulation.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if config.Charges.Max != 5 || config.Charges.LocationLimits["Pond_Forest"] != 2 {
		t.Errorf("Expected stock charges, got %+v", config.Charges)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{"cast": {"max_distance": 14}, "probe": {"curve": "linear"}}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Cast.MaxDistance != 14 {
		t.Errorf("Expected max distance 14, got %f", config.Cast.MaxDistance)
	}
	if config.Cast.MinDistance != 2 {
		t.Errorf("Expected default min distance 2, got %f", config.Cast.MinDistance)
	}
	if config.Probe.ThrowDuration != 1.5 {
		t.Errorf("Expected default throw duration, got %f", config.Probe.ThrowDuration)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeConfig(t, `{"cast": `)
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("STILLWATER_MAX_CHARGES", "8")
	t.Setenv("STILLWATER_LANGUAGE", "ru")
	t.Setenv("STILLWATER_AUDIO", "false")
	t.Setenv("STILLWATER_LOCATION_LIMITS", "Pond_Main:1,Lake_Deep:4")

	config := DefaultConfig()
	if err := config.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if config.Charges.Max != 8 {
		t.Errorf("Expected max charges 8, got %d", config.Charges.Max)
	}
	if config.Language != "ru" || config.Audio {
		t.Errorf("Expected ru without audio, got %s audio=%v", config.Language, config.Audio)
	}
	if len(config.Charges.LocationLimits) != 2 || config.Charges.LocationLimits["Pond_Main"] != 1 {
		t.Errorf("Expected env limits to replace defaults, got %v", config.Charges.LocationLimits)
	}
	if config.Charges.Initial != 5 {
		t.Errorf("Unset variables must keep loaded values, got initial %d", config.Charges.Initial)
	}
}

func TestApplyEnvError(t *testing.T) {
	t.Setenv("STILLWATER_MAX_CHARGES", "lots")

	err := DefaultConfig().ApplyEnv()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("Expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no capacity", func(c *Config) { c.Charges.Max = 0 }, "charges.max"},
		{"initial above max", func(c *Config) { c.Charges.Initial = 9 }, "charges.initial"},
		{"inverted range", func(c *Config) { c.Cast.MinDistance = 11 }, "min_distance"},
		{"zero throw", func(c *Config) { c.Probe.ThrowDuration = 0 }, "throw_duration"},
		{"negative limit", func(c *Config) { c.Charges.LocationLimits["Pond_Main"] = -1 }, "location_limits"},
		{"unknown curve", func(c *Config) { c.Probe.Curve = "bounce" }, "unknown throw curve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestProbeParams(t *testing.T) {
	config := DefaultConfig()
	params := config.ProbeParams()

	want := locator.DefaultParams()
	if params.ThrowDuration != want.ThrowDuration || params.FadeDuration != want.FadeDuration {
		t.Errorf("Expected %v/%v, got %v/%v", want.ThrowDuration, want.FadeDuration,
			params.ThrowDuration, params.FadeDuration)
	}
	if params.Curve(0.25) != locator.EaseInOut(0.25) {
		t.Error("Expected ease_in_out curve")
	}
	if config.NotificationDuration() != 3*time.Second {
		t.Errorf("Expected 3s notifications, got %v", config.NotificationDuration())
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeConfig(t, `{"charges": {"max": 0}}`)
	if _, err := Load(path); err == nil {
		t.Error("Expected Load to reject an invalid config")
	}
}
