package appicon

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	tests := []int{16, 20, 64, 167, 180, 1024}
	for _, size := range tests {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d", size, b.Dx(), b.Dy(), size, size)
		}
		if len(img.Pix) != 4*size*size {
			t.Errorf("Render(%d) has %d pixel bytes, want %d", size, len(img.Pix), 4*size*size)
		}
	}
}

func TestRenderDeterminism(t *testing.T) {
	a := Render(128)
	b := Render(128)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same size differ")
	}
}

func TestRenderGradient(t *testing.T) {
	const size = 180
	img := Render(size)
	// background columns clear of the bubble, tail and dots
	tests := []struct {
		y    int
		want color.RGBA
	}{
		// ratio 15/180: r=255*(1-0.025), g=140-5, b=100+6.66
		{15, color.RGBA{R: 248, G: 135, B: 106, A: 255}},
		// ratio 170/180: r=255*(1-0.28333), g=140-56.66, b=100+75.55
		{170, color.RGBA{R: 182, G: 83, B: 175, A: 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(size/2, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", size/2, tt.y, got, tt.want)
		}
	}
}

func TestRenderRoundedCorners(t *testing.T) {
	const size = 128
	img := Render(size)
	corners := [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}}
	for _, c := range corners {
		if a := img.RGBAAt(c[0], c[1]).A; a != 0 {
			t.Errorf("corner pixel (%d, %d) alpha = %d, want 0", c[0], c[1], a)
		}
	}
	// well inside the corner radius the background is fully opaque
	inset := size / 4
	for _, c := range [][2]int{{inset, inset}, {size - inset, inset}} {
		if a := img.RGBAAt(c[0], c[1]).A; a != 255 {
			t.Errorf("interior pixel (%d, %d) alpha = %d, want 255", c[0], c[1], a)
		}
	}
}

func TestRenderBubble(t *testing.T) {
	const size = 180
	img := Render(size)
	// inside the bubble, above the dot row
	if got := img.RGBAAt(size/2, 45); got != bubbleColor {
		t.Errorf("bubble pixel = %v, want %v", got, bubbleColor)
	}
	// center dot sits at the bubble's vertical center
	top := size / 6
	bottom := size - size/6 - size/8
	if got := img.RGBAAt(size/2, (top+bottom)/2); got != dotColor {
		t.Errorf("center dot pixel = %v, want %v", got, dotColor)
	}
	// tail reaches below the bubble body on the left
	tailX, tailY := 55, bottom+3
	if got := img.RGBAAt(tailX, tailY); got != bubbleColor {
		t.Errorf("tail pixel (%d, %d) = %v, want %v", tailX, tailY, got, bubbleColor)
	}
}
