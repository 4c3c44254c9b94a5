package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagVariant     = flag.String("variant", "", "Transfer calculator: analytic or hemicube")
	flagSubdivision = flag.Int("subdivision", 0, "Per-side face subdivision")
	flagResolution  = flag.Int("resolution", 0, "Hemicube face resolution in pixels")
	flagHeadless    = flag.Bool("headless", false, "Render one frame to PNG and exit")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to the user config dir and exit")
	flagFlat        = flag.Bool("flat", false, "Flat per-element shading instead of Gouraud")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Headless reports whether --headless was given: render a single frame
// to PNG and exit without an interactive window.
func Headless() bool {
	return *flagHeadless
}

// WriteConfig reports whether --write-config was given: persist the
// effective config and exit without running the pipeline.
func WriteConfig() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVariant != "" {
		cfg.Radiosity.Variant = *flagVariant
	}
	if *flagSubdivision > 0 {
		cfg.Radiosity.Subdivision = *flagSubdivision
	}
	if *flagResolution > 0 {
		cfg.Radiosity.Resolution = *flagResolution
	}
	if *flagFlat {
		cfg.Graphics.FlatShading = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
