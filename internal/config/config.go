// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 640
	TileSize     = 20
	GridWidth    = 40
	GridHeight   = 30
	HUDHeight    = 40 // strip below the grid

	TicksPerSecond = 60
	MaxDeltaTicks  = 4.0 // clamp after a stalled frame

	StartX = 2
	StartY = 15
	EndX   = 37
	EndY   = 15

	StartingMoney = 500
	StartingLives = 20

	SpawnIntervalTicks   = 30.0
	WaveHealthMultiplier = 1.2
	WaveSpeedMultiplier  = 1.05
	WaveBonusPerWave     = 50

	WaypointEpsilon  = 2.0
	EnemyRadius      = 6.0
	TowerRadius      = 6.0
	ProjectileRadius = 3.0

	ClickDebounceTicks = 10
)

var (
	BackgroundColor = color.RGBA{30, 30, 40, 255}
	GridLineColor   = color.RGBA{50, 50, 60, 255}
	EmptyColor      = color.RGBA{40, 40, 50, 255}
	ObstacleColor   = color.RGBA{60, 60, 70, 255}
	StartColor      = color.RGBA{80, 180, 80, 255}
	EndColor        = color.RGBA{180, 80, 80, 255}
	PathColor       = color.RGBA{255, 200, 50, 255}
	TextColor       = color.RGBA{220, 220, 220, 255}
	HoverValidColor = color.RGBA{80, 180, 80, 100}
	HoverBadColor   = color.RGBA{180, 80, 80, 100}
	HealthBackColor = color.RGBA{100, 0, 0, 255}
	HealthFillColor = color.RGBA{0, 200, 0, 255}
	SlowTintColor   = color.RGBA{100, 150, 255, 120}
	WaveButtonColor = color.RGBA{70, 130, 180, 220}
)

// Config carries the tunables that may be overridden from a YAML file.
type Config struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	EndX       int `yaml:"end_x"`
	EndY       int `yaml:"end_y"`

	StartingMoney int `yaml:"starting_money"`
	StartingLives int `yaml:"starting_lives"`

	SpawnInterval        float64 `yaml:"spawn_interval_ticks"`
	WaveHealthMultiplier float64 `yaml:"wave_health_multiplier"`
	WaveSpeedMultiplier  float64 `yaml:"wave_speed_multiplier"`
	WaveBonus            int     `yaml:"wave_bonus_per_wave"`

	AllowDiagonal bool `yaml:"allow_diagonal"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GridWidth:            GridWidth,
		GridHeight:           GridHeight,
		StartX:               StartX,
		StartY:               StartY,
		EndX:                 EndX,
		EndY:                 EndY,
		StartingMoney:        StartingMoney,
		StartingLives:        StartingLives,
		SpawnInterval:        SpawnIntervalTicks,
		WaveHealthMultiplier: WaveHealthMultiplier,
		WaveSpeedMultiplier:  WaveSpeedMultiplier,
		WaveBonus:            WaveBonusPerWave,
		AllowDiagonal:        false,
	}
}
