package aerolabel

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the label configuration.
type Settings struct {
	// Enabled is the initial state of label drawing.
	Enabled bool `yaml:"enabled"`
	// Override forces labels on or off regardless of Enabled and of the
	// per-aircraft switch.
	Override Switch `yaml:"override"`

	// MaxDistanceNM is the label cut-off distance in nautical miles.
	MaxDistanceNM float64 `yaml:"max_distance_nm"`
	// CutOffAtVisibility tightens the cut-off to the current visibility.
	CutOffAtVisibility bool `yaml:"cut_off_at_visibility"`

	// Debug logs per-frame label statistics.
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Enabled:            true,
		Override:           SwitchAuto,
		MaxDistanceNM:      3,
		CutOffAtVisibility: true,
		LogLevel:           "info",
	}
}

// MaxDistance returns the cut-off distance in meters. Distances below one
// nautical mile are raised to one.
func (s Settings) MaxDistance() float64 {
	return nmToMeters(s.MaxDistanceNM)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func nmToMeters(nm float64) float64 {
	return max(nm, 1.0) * MetersPerNM
}

// LoadSettings loads settings from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// UnmarshalYAML parses "auto", "on" or "off".
func (s *Switch) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	sw, err := ParseSwitch(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = sw
	return nil
}

// MarshalYAML writes the switch as "auto", "on" or "off".
func (s Switch) MarshalYAML() (any, error) {
	return s.String(), nil
}
