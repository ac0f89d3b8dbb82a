package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSlices   = flag.Int("slices", 0, "Longitude divisions")
	flagStacks   = flag.Int("stacks", 0, "Latitude divisions")
	flagTextured = flag.Bool("textured", false, "Generate texture coordinates")
	flagFormat   = flag.String("format", "", "Report format: text or yaml")
	flagWorkers  = flag.Int("workers", -1, "Batch worker limit (0 = unlimited)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
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
	if *flagSlices > 0 {
		cfg.Sphere.Slices = *flagSlices
	}
	if *flagStacks > 0 {
		cfg.Sphere.Stacks = *flagStacks
	}
	if *flagTextured {
		cfg.Sphere.Textured = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWorkers >= 0 {
		cfg.Batch.Workers = *flagWorkers
	}
}
