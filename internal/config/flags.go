package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagPuppet = flag.String("puppet", "", "Path to puppet definition file")
	flagPoseDB = flag.String("posedb", "", "Path to pose store database")
	flagListen = flag.String("listen", "", "Inspector listen address (enables the inspector)")
	flagFPS    = flag.Int("fps", 0, "Frame rate of the update loop")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPuppet != "" {
		cfg.Puppet.Path = *flagPuppet
	}
	if *flagPoseDB != "" {
		cfg.Puppet.PoseDB = *flagPoseDB
	}
	if *flagListen != "" {
		cfg.Inspector.Enabled = true
		cfg.Inspector.Listen = *flagListen
	}
	if *flagFPS > 0 {
		cfg.Host.FPS = *flagFPS
	}
}
