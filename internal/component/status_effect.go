// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed. Reapplying overwrites,
// never stacks.
type SlowEffect struct {
	Timer      float64 // ticks remaining
	Multiplier float64 // speed multiplier, e.g. 0.5 for half speed
}
