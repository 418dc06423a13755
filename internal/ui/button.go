// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable HUD rectangle.
type Button struct {
	Rect      image.Rectangle
	Label     string
	TextColor color.RGBA
	BgColor   color.RGBA
	Active    bool // highlighted (e.g. currently selected tower type)
}

func NewButton(rect image.Rectangle, label string, bg color.RGBA) *Button {
	return &Button{
		Rect:      rect,
		Label:     label,
		TextColor: color.RGBA{240, 240, 240, 255},
		BgColor:   bg,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button with a brighter border while active.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.BgColor, false)

	border := color.RGBA{120, 120, 130, 255}
	if b.Active {
		border = color.RGBA{255, 255, 255, 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	bounds := text.BoundString(face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, b.TextColor)
}
