package assets

import (
	"image/color"
	"testing"
)

func TestKnightIsAsymmetric(t *testing.T) {
	img := KnightImage(64, 96)
	b := img.Bounds()

	// The left texture is drawn flipped, so the two only differ if the
	// knight is not symmetric.
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != img.RGBAAt(b.Max.X-1-x, y) {
				return
			}
		}
	}
	t.Error("knight looks the same facing either way")
}

func TestTileImage(t *testing.T) {
	c := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	img := TileImage(32, 32, c)
	if got := img.RGBAAt(16, 16); got != c {
		t.Errorf("centre = %v, want %v", got, c)
	}
	if got := img.RGBAAt(0, 0); got == c {
		t.Error("border not shaded")
	}
}

func TestIcon(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	icon := Icon(64, bg)
	if b := icon.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v", b)
	}
	if got := icon.RGBAAt(0, 63); got != bg {
		t.Errorf("corner = %v, want background", got)
	}
}
