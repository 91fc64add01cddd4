package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinZoomSpeed     = 1.01
	MaxZoomSpeed     = 2.0
	DefaultZoomSpeed = 1.1

	MinSaveQuality     = 10
	MaxSaveQuality     = 100
	DefaultSaveQuality = 95
)

// Settings holds the user-adjustable viewer settings. Edits made through the
// settings dialog live in memory only; the YAML file is never written back.
type Settings struct {
	ZoomSpeed     float64 `yaml:"zoom_speed"`
	SaveQuality   int     `yaml:"save_quality"`
	LoadLastImage bool    `yaml:"load_last_image"`
	LogLevel      string  `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		ZoomSpeed:     DefaultZoomSpeed,
		SaveQuality:   DefaultSaveQuality,
		LoadLastImage: false,
		LogLevel:      "info",
	}
}

// Validate clamps values into their allowed ranges. Zero values are treated as
// unset and replaced with defaults.
func (s *Settings) Validate() {
	switch {
	case s.ZoomSpeed == 0:
		s.ZoomSpeed = DefaultZoomSpeed
	case s.ZoomSpeed < MinZoomSpeed:
		s.ZoomSpeed = MinZoomSpeed
	case s.ZoomSpeed > MaxZoomSpeed:
		s.ZoomSpeed = MaxZoomSpeed
	}

	switch {
	case s.SaveQuality == 0:
		s.SaveQuality = DefaultSaveQuality
	case s.SaveQuality < MinSaveQuality:
		s.SaveQuality = MinSaveQuality
	case s.SaveQuality > MaxSaveQuality:
		s.SaveQuality = MaxSaveQuality
	}
}

// Clone returns a copy that can be edited without affecting s.
func (s *Settings) Clone() *Settings {
	clone := *s
	return &clone
}

// Apply copies every field of other into s, keeping the pointer identity that
// the viewport controller holds.
func (s *Settings) Apply(other *Settings) {
	*s = *other
}

// Load reads settings from a YAML file. Missing keys keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	settings.Validate()
	return settings, nil
}
