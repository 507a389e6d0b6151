package roadmap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives Build. Every field has a working default; see DefaultConfig.
type Config struct {
	// Samples is the number of waypoints scattered over the bounds.
	Samples int `yaml:"samples"`
	// Radius is the largest straight-line distance at which two waypoints
	// get connected.
	Radius float64 `yaml:"radius"`
	// Seed feeds the sampling RNG. Equal seeds rebuild identical roadmaps.
	Seed int64 `yaml:"seed"`
	// Bounds is the sampled area.
	Bounds Bounds `yaml:"bounds"`
}

// Bounds is an axis-aligned sampling area.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// DefaultConfig returns a roadmap of 256 waypoints over a 1000×1000 area
// with a connection radius of 120.
func DefaultConfig() Config {
	return Config{
		Samples: 256,
		Radius:  120,
		Seed:    1,
		Bounds:  Bounds{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 1000},
	}
}

// Validate reports the first configuration fault found.
func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples %d: %w", c.Samples, ErrNoSamples)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius %v: %w", c.Radius, ErrBadRadius)
	}
	if c.Bounds.MaxX <= c.Bounds.MinX || c.Bounds.MaxY <= c.Bounds.MinY {
		return fmt.Errorf("bounds x[%v..%v] y[%v..%v]: %w",
			c.Bounds.MinX, c.Bounds.MaxX, c.Bounds.MinY, c.Bounds.MaxY, ErrBadBounds)
	}
	return nil
}

// LoadConfig reads a YAML roadmap configuration using strict parsing:
// unknown keys are rejected, missing keys keep their DefaultConfig values.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("roadmap: open config: %w", err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("roadmap: parse config: %w", err)
	}
	return cfg, cfg.Validate()
}
