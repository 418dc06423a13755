// internal/system/status_effect.go
package system

import "go-grid-defense/internal/entity"

// StatusEffectSystem manages the lifecycle of timed effects. Runs before
// movement so an effect that expires this tick no longer slows it.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update counts slow timers down and removes expired effects, which
// restores the entity to full speed.
func (s *StatusEffectSystem) Update(dt float64) {
	for id, effect := range s.ecs.SlowEffects {
		effect.Timer -= dt
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}
}
