// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"
)

// EnemyDefinition holds the base stat block for one enemy type.
// Speed is in pixels per tick.
type EnemyDefinition struct {
	Type   EnemyType  `json:"type"`
	Name   string     `json:"name"`
	Health float64    `json:"health"`
	Speed  float64    `json:"speed"`
	Reward int        `json:"reward"`
	Color  color.RGBA `json:"color"`
}

// EnemyLibrary maps enemy types to their definitions.
var EnemyLibrary = defaultEnemyDefs()

func defaultEnemyDefs() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyBasic: {
			Type:   EnemyBasic,
			Name:   "Basic Enemy",
			Health: 100,
			Speed:  1.0,
			Reward: 25,
			Color:  color.RGBA{200, 80, 80, 255},
		},
		EnemyFast: {
			Type:   EnemyFast,
			Name:   "Fast Enemy",
			Health: 60,
			Speed:  1.5,
			Reward: 30,
			Color:  color.RGBA{80, 200, 80, 255},
		},
		EnemyTank: {
			Type:   EnemyTank,
			Name:   "Tank Enemy",
			Health: 300,
			Speed:  0.7,
			Reward: 50,
			Color:  color.RGBA{80, 80, 200, 255},
		},
	}
}

// ScaledHealth returns the wave-scaled max health for a type,
// health × healthMultiplier^(wave−1), rounded to a whole hit point.
func ScaledHealth(def EnemyDefinition, wave int, healthMultiplier float64) int {
	return int(math.Round(def.Health * math.Pow(healthMultiplier, float64(wave-1))))
}

// ScaledSpeed returns the wave-scaled speed for a type.
func ScaledSpeed(def EnemyDefinition, wave int, speedMultiplier float64) float64 {
	return def.Speed * math.Pow(speedMultiplier, float64(wave-1))
}
