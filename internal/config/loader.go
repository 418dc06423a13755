// internal/config/loader.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tunables file over the defaults. Fields the file omits
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run on.
func (c Config) Validate() error {
	if c.GridWidth < 2 || c.GridHeight < 1 {
		return fmt.Errorf("invalid grid size %dx%d", c.GridWidth, c.GridHeight)
	}
	if !c.inBounds(c.StartX, c.StartY) || !c.inBounds(c.EndX, c.EndY) {
		return fmt.Errorf("start/end outside grid %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.StartX == c.EndX && c.StartY == c.EndY {
		return fmt.Errorf("start and end occupy the same cell")
	}
	if c.WaveHealthMultiplier <= 1.0 || c.WaveSpeedMultiplier <= 1.0 {
		return fmt.Errorf("wave multipliers must be > 1")
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive")
	}
	return nil
}

func (c Config) inBounds(x, y int) bool {
	return x >= 0 && x < c.GridWidth && y >= 0 && y < c.GridHeight
}
