package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap face shared by every screen
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws s centered on x with its top at y, scaled up by scale
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, Face, op)
}

// Dim darkens the whole screen, alpha in [0, 1]
func Dim(dst *ebiten.Image, alpha float64) {
	b := dst.Bounds()
	overlay := color.RGBA{A: uint8(alpha * 255)}
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), overlay, false)
}
