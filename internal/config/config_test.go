package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Default(t *testing.T) {
	// Use temp directory
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create a service with the temp path
	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Save default config
	if err := service.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load it back
	if err := service.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := service.Get()
	if cfg.LogLevel != "info" {
		t.Errorf("Default log level = %s; want info", cfg.LogLevel)
	}

	if cfg.Marker.Size != 40 {
		t.Errorf("Default marker size = %d; want 40", cfg.Marker.Size)
	}
}

func TestConfig_Save(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	service := &Service{
		filePath: configPath,
		config: &Config{
			LogLevel: "debug",
			Marker:   MarkerConfig{Size: 32, RefreshMs: 50},
		},
	}

	err := service.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Verify we can load it back
	if err := service.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := service.Get()
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel 'debug', got %s", cfg.LogLevel)
	}
	if cfg.Marker.Size != 32 {
		t.Errorf("Expected marker size 32, got %d", cfg.Marker.Size)
	}
}

func TestConfig_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	cfg := &Config{
		LogLevel: "warn",
		Marker:   MarkerConfig{Size: 48, RefreshMs: 16},
	}

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Save the config
	service.Set(cfg)
	if err := service.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Create a new service and load
	service2 := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	if err := service2.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	loaded := service2.Get()
	if loaded.LogLevel != "warn" {
		t.Errorf("Expected LogLevel 'warn', got %s", loaded.LogLevel)
	}
	if loaded.Marker.RefreshMs != 16 {
		t.Errorf("Expected RefreshMs 16, got %d", loaded.Marker.RefreshMs)
	}
}

func TestConfig_UpdateMarker(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	markerCfg := MarkerConfig{
		Size:      64,
		RefreshMs: 20,
	}

	if err := service.UpdateMarker(markerCfg); err != nil {
		t.Fatalf("UpdateMarker failed: %v", err)
	}

	cfg := service.Get()
	if cfg.Marker.Size != 64 {
		t.Errorf("Expected marker size 64, got %d", cfg.Marker.Size)
	}
	if cfg.Marker.RefreshMs != 20 {
		t.Errorf("Expected RefreshMs 20, got %d", cfg.Marker.RefreshMs)
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.LogLevel)
	}

	if cfg.Marker.Size != 40 {
		t.Errorf("Expected default marker size 40, got %d", cfg.Marker.Size)
	}

	if cfg.Marker.RefreshMs != 30 {
		t.Errorf("Expected default refresh 30ms, got %d", cfg.Marker.RefreshMs)
	}
}
