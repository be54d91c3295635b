package assets

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	cloakColor = color.RGBA{R: 28, G: 32, B: 48, A: 255}
	maskColor  = color.RGBA{R: 240, G: 240, B: 235, A: 255}
	eyeColor   = color.RGBA{R: 10, G: 10, B: 14, A: 255}
)

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

// KnightImage draws the player sprite facing right: a cloak, a pale mask
// with two horns and eyes placed toward the front.
func KnightImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	headH := h * 2 / 5
	hornH := headH / 3
	maskTop := hornH

	// Cloak
	fill(img, image.Rect(w/6, maskTop+headH*3/4, w*5/6, h), cloakColor)
	// Mask
	fill(img, image.Rect(w/5, maskTop, w*4/5, maskTop+headH), maskColor)
	// Horns
	fill(img, image.Rect(w/5, 0, w/5+w/8, maskTop), maskColor)
	fill(img, image.Rect(w*4/5-w/8, 0, w*4/5, maskTop), maskColor)
	// Eyes sit toward the right edge
	eyeW, eyeH := max(w/10, 1), max(headH/3, 1)
	eyeY := maskTop + headH/3
	fill(img, image.Rect(w/2, eyeY, w/2+eyeW, eyeY+eyeH), eyeColor)
	fill(img, image.Rect(w/2+eyeW*2, eyeY, w/2+eyeW*3, eyeY+eyeH), eyeColor)

	return img
}

// TileImage fills a tile with c and outlines it in a darker shade.
func TileImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), shade(c, 0.6))
	border := max(min(w, h)/16, 1)
	fill(img, image.Rect(border, border, w-border, h-border), c)
	return img
}

// Icon renders the window icon: the knight's mask on the background colour.
func Icon(size int, background color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill(img, img.Bounds(), background)
	knight := KnightImage(size*3/4, size)
	offset := (size - knight.Bounds().Dx()) / 2
	draw.Draw(img, knight.Bounds().Add(image.Pt(offset, 0)), knight, image.Point{}, draw.Over)
	return img
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
