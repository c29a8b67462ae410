package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration. Pinned windows themselves are
// never persisted; this is appearance and logging only.
type Config struct {
	LogLevel string `json:"log_level"`

	// Marker settings
	Marker MarkerConfig `json:"marker"`
}

// MarkerConfig holds pushpin overlay settings.
type MarkerConfig struct {
	Size      int32 `json:"size"`       // overlay edge length in pixels
	RefreshMs int64 `json:"refresh_ms"` // position tracking cadence
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a new config service
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".winpin")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Load existing config if it exists, otherwise create a default config file
	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Marker: MarkerConfig{
			Size:      40,
			RefreshMs: 30,
		},
	}
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Set updates the configuration
func (s *Service) Set(config *Config) {
	s.config = config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, s.config)
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// UpdateMarker updates marker configuration
func (s *Service) UpdateMarker(marker MarkerConfig) error {
	s.config.Marker = marker
	return s.Save()
}
