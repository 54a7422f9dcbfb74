// Package config handles host configuration loading and management.
package config

// Config holds all host settings.
type Config struct {
	Puppet    PuppetConfig    `yaml:"puppet"`
	Host      HostConfig      `yaml:"host"`
	Inspector InspectorConfig `yaml:"inspector"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PuppetConfig holds asset paths.
type PuppetConfig struct {
	Path   string `yaml:"path"`    // Puppet definition file
	PoseDB string `yaml:"pose_db"` // SQLite pose store, empty to disable
}

// HostConfig holds frame loop settings.
type HostConfig struct {
	FPS int `yaml:"fps"`
}

// InspectorConfig holds the debug inspector settings.
type InspectorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Puppet: PuppetConfig{
			Path:   "puppet.json",
			PoseDB: "",
		},
		Host: HostConfig{
			FPS: 60,
		},
		Inspector: InspectorConfig{
			Enabled: false,
			Listen:  "127.0.0.1:9222",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
