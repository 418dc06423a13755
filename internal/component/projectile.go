// internal/component/projectile.go
package component

import "image/color"

// Projectile — an in-flight shot. The velocity vector is fixed at fire
// time; the target point is never re-aimed. Damage of zero makes the
// projectile purely cosmetic (the tower already applied its damage).
type Projectile struct {
	TargetX, TargetY float64
	VX, VY           float64
	Speed            float64
	Damage           int
	Color            color.RGBA
}
