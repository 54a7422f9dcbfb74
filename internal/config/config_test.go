package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Puppet.Path != "puppet.json" {
		t.Errorf("expected puppet path puppet.json, got %s", cfg.Puppet.Path)
	}
	if cfg.Puppet.PoseDB != "" {
		t.Errorf("expected pose store disabled by default, got %s", cfg.Puppet.PoseDB)
	}
	if cfg.Host.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Host.FPS)
	}
	if cfg.Inspector.Enabled {
		t.Error("expected inspector disabled by default")
	}
	if cfg.Inspector.Listen != "127.0.0.1:9222" {
		t.Errorf("expected inspector listen 127.0.0.1:9222, got %s", cfg.Inspector.Listen)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := []byte(`
puppet:
  path: models/idol.json
  pose_db: poses.db
host:
  fps: 30
inspector:
  enabled: true
  listen: ":8080"
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Puppet.Path != "models/idol.json" {
		t.Errorf("expected puppet path models/idol.json, got %s", cfg.Puppet.Path)
	}
	if cfg.Puppet.PoseDB != "poses.db" {
		t.Errorf("expected pose db poses.db, got %s", cfg.Puppet.PoseDB)
	}
	if cfg.Host.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Host.FPS)
	}
	if !cfg.Inspector.Enabled {
		t.Error("expected inspector enabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("host:\n  fps: 24\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Host.FPS != 24 {
		t.Errorf("expected fps 24, got %d", cfg.Host.FPS)
	}
	// Untouched sections keep their defaults.
	if cfg.Puppet.Path != "puppet.json" {
		t.Errorf("expected default puppet path, got %s", cfg.Puppet.Path)
	}
	if cfg.Inspector.Listen != "127.0.0.1:9222" {
		t.Errorf("expected default inspector listen, got %s", cfg.Inspector.Listen)
	}
}

func TestSaveTo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.Host.FPS = 144
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Host.FPS != 144 {
		t.Errorf("expected fps 144 after round trip, got %d", loaded.Host.FPS)
	}
}
