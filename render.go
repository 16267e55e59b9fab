package appicon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var (
	bubbleColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dotColor    = color.RGBA{R: 200, G: 100, B: 120, A: 255}
)

// Render draws the chat bubble icon at the given pixel size. The
// output is deterministic: the same size always yields byte-identical
// pixels. size must be positive.
func Render(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillGradient(img, size)
	applyRoundedMask(img, size, size/4)
	drawBubble(img, size)
	return img
}

// fillGradient fills each row with the coral-to-pink background
// gradient. Channel values are truncated to integers, matching the
// reference proportions exactly.
func fillGradient(img *image.RGBA, size int) {
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		r := uint8(255 * (1 - ratio*0.3))
		g := uint8(140 - ratio*60)
		b := uint8(100 + ratio*80)
		for x := 0; x < size; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}
}

// applyRoundedMask replaces the image's alpha channel with a rounded
// rectangle opacity mask spanning the full canvas.
func applyRoundedMask(img *image.RGBA, size, radius int) {
	mc := gg.NewContext(size, size)
	mc.SetRGB(1, 1, 1)
	mc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(radius))
	mc.Fill()
	mask := mc.AsMask()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := mask.AlphaAt(x, y).A
			i := img.PixOffset(x, y)
			switch a {
			case 0xff:
				// interior, keep the exact gradient values
			case 0:
				img.Pix[i] = 0
				img.Pix[i+1] = 0
				img.Pix[i+2] = 0
				img.Pix[i+3] = 0
			default:
				// anti-aliased corner edge, premultiply
				img.Pix[i] = uint8(uint32(img.Pix[i]) * uint32(a) / 0xff)
				img.Pix[i+1] = uint8(uint32(img.Pix[i+1]) * uint32(a) / 0xff)
				img.Pix[i+2] = uint8(uint32(img.Pix[i+2]) * uint32(a) / 0xff)
				img.Pix[i+3] = a
			}
		}
	}
}

// drawBubble draws the white speech bubble, its tail and the three
// typing dots on top of the masked background.
func drawBubble(img *image.RGBA, size int) {
	dc := gg.NewContextForRGBA(img)

	margin := size / 6
	left := margin
	top := margin
	right := size - margin
	bottom := size - margin - size/8

	dc.SetColor(bubbleColor)
	dc.DrawRoundedRectangle(float64(left), float64(top), float64(right-left), float64(bottom-top), float64(size/8))
	dc.Fill()

	// tail, bottom left
	dc.MoveTo(float64(left+size/8), float64(bottom-size/20))
	dc.LineTo(float64(left+size/16), float64(bottom+size/8))
	dc.LineTo(float64(left+size/4), float64(bottom-size/20))
	dc.ClosePath()
	dc.Fill()

	dotY := float64((top + bottom) / 2)
	dotRadius := float64(size / 20)
	dotSpacing := size / 6
	centerX := (left + right) / 2

	dc.SetColor(dotColor)
	for i := -1; i <= 1; i++ {
		dc.DrawCircle(float64(centerX+i*dotSpacing), dotY, dotRadius)
		dc.Fill()
	}
}
