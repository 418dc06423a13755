// internal/component/render.go
package component

import "image/color"

// Renderable — what the presentation layer needs to draw an entity.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
