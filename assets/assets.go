// Package assets holds the embedded arena map and the procedurally built
// sprites. There are no binary art assets; everything visual is generated
// at startup.
package assets

import (
	"embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed all:maps
var Maps embed.FS

var dodgerSprites = map[color.RGBA]*ebiten.Image{}

// DodgerSprite returns (and caches) the blob sprite for the given body
// color: a filled circle with two eyes looking vaguely worried.
func DodgerSprite(w, h int, body color.RGBA) *ebiten.Image {
	if img, ok := dodgerSprites[body]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	cx := float32(w) / 2
	cy := float32(h) / 2
	r := cx
	if cy < r {
		r = cy
	}

	vector.DrawFilledCircle(img, cx, cy, r, body, true)

	// Eyes.
	eyeDX := r * 0.35
	eyeY := cy - r*0.15
	eyeR := r * 0.22
	white := color.RGBA{R: 245, G: 245, B: 245, A: 255}
	dark := color.RGBA{R: 30, G: 30, B: 40, A: 255}
	vector.DrawFilledCircle(img, cx-eyeDX, eyeY, eyeR, white, true)
	vector.DrawFilledCircle(img, cx+eyeDX, eyeY, eyeR, white, true)
	vector.DrawFilledCircle(img, cx-eyeDX, eyeY, eyeR*0.45, dark, true)
	vector.DrawFilledCircle(img, cx+eyeDX, eyeY, eyeR*0.45, dark, true)

	dodgerSprites[body] = img
	return img
}
