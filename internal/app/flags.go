package app

import (
	"flag"

	"wildgrid/internal/sims/ecosystem"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Width      int
	Height     int
	Seed       int64
	Scale      int
	TPS        float64
	HUDWidth   int
}

// NewConfig returns a Config populated with sensible defaults. Zero world
// fields defer to the YAML file or the built-in world defaults.
func NewConfig() *Config {
	return &Config{Scale: 12, TPS: 52, HUDWidth: 320}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world config file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (overrides the config file)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (overrides the config file)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed (overrides the config file)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Float64Var(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels (0 hides it)")
}

// WorldConfig resolves the world configuration: defaults, then the config
// file, then explicit flags.
func (c *Config) WorldConfig() (ecosystem.Config, error) {
	cfg := ecosystem.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := ecosystem.LoadConfig(c.ConfigPath)
		if err != nil {
			return ecosystem.Config{}, err
		}
		cfg = loaded
	}
	if c.Width != 0 {
		cfg.Width = c.Width
	}
	if c.Height != 0 {
		cfg.Height = c.Height
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return ecosystem.Config{}, err
	}
	return cfg, nil
}
