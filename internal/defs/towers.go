// internal/defs/towers.go
package defs

import "image/color"

// SlowStats describes the slow a tower's shots apply.
type SlowStats struct {
	Multiplier float64 `json:"multiplier"`
	Duration   float64 `json:"duration_ticks"`
}

// TowerDefinition holds the immutable stat block for one tower type,
// selected once at construction. A wall has zero range and never fires.
type TowerDefinition struct {
	Type            TowerType  `json:"type"`
	Name            string     `json:"name"`
	Range           float64    `json:"range"`
	Damage          int        `json:"damage"`
	FireRate        float64    `json:"fire_rate_ticks"` // cooldown between shots
	ProjectileSpeed float64    `json:"projectile_speed"`
	Cost            int        `json:"cost"`
	Slow            *SlowStats `json:"slow,omitempty"`
	Color           color.RGBA `json:"color"`
}

// TowerLibrary maps tower types to their definitions.
var TowerLibrary = defaultTowerDefs()

func defaultTowerDefs() map[TowerType]TowerDefinition {
	return map[TowerType]TowerDefinition{
		TowerWall: {
			Type:  TowerWall,
			Name:  "Wall",
			Cost:  10,
			Color: color.RGBA{80, 80, 90, 255},
		},
		TowerBasic: {
			Type:            TowerBasic,
			Name:            "Basic Tower",
			Range:           100,
			Damage:          10,
			FireRate:        60,
			ProjectileSpeed: 5,
			Cost:            100,
			Color:           color.RGBA{100, 100, 180, 255},
		},
		TowerSlow: {
			Type:            TowerSlow,
			Name:            "Slow Tower",
			Range:           120,
			Damage:          5,
			FireRate:        45,
			ProjectileSpeed: 6,
			Cost:            150,
			Slow:            &SlowStats{Multiplier: 0.5, Duration: 120},
			Color:           color.RGBA{80, 180, 180, 255},
		},
		TowerSniper: {
			Type:            TowerSniper,
			Name:            "Sniper Tower",
			Range:           200,
			Damage:          50,
			FireRate:        180,
			ProjectileSpeed: 15,
			Cost:            250,
			Color:           color.RGBA{180, 100, 100, 255},
		},
	}
}

// TowerCost returns the cost of a tower type without instantiating one.
// Unknown types cost the basic tower's price.
func TowerCost(t TowerType) int {
	if def, ok := TowerLibrary[t]; ok {
		return def.Cost
	}
	return TowerLibrary[TowerBasic].Cost
}
