// Package config handles application configuration loading and management.
package config

// Calculator variant names accepted in config files and flags.
const (
	VariantAnalytic = "analytic"
	VariantHemicube = "hemicube"
)

// Config holds all application settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Radiosity RadiosityConfig `yaml:"radiosity"`
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
}

// GraphicsConfig holds display settings for the viewer window.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	// FlatShading draws each element in its own solved colour instead
	// of smooth per-vertex shading.
	FlatShading bool `yaml:"flat_shading"`
}

// RadiosityConfig holds the lighting computation settings.
type RadiosityConfig struct {
	// Subdivision is the per-side grid each room face is split into.
	Subdivision int `yaml:"subdivision"`
	// Variant selects the transfer calculator: "analytic" or "hemicube".
	Variant string `yaml:"variant"`
	// Resolution is the side length in pixels of each hemicube face.
	Resolution        int     `yaml:"resolution"`
	ConvergenceTarget float64 `yaml:"convergence_target"`
	// MaxIterations caps the solve; 0 means run until convergence.
	MaxIterations  int     `yaml:"max_iterations"`
	SpecularPower  float64 `yaml:"specular_power"`
	SpecularFactor float64 `yaml:"specular_factor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig holds paths for files the viewer writes.
type OutputConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Radiosity: RadiosityConfig{
			Subdivision:       32,
			Variant:           VariantAnalytic,
			Resolution:        256,
			ConvergenceTarget: 0.001,
			MaxIterations:     1000,
			SpecularPower:     32,
			SpecularFactor:    0.02,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			ScreenshotDir: ".",
		},
	}
}
