package raster

import (
	"image"
	"image/color"
)

// Image returns a truecolor view of the buffer, sampling every pixel
// through the palette. It is used when a raw buffer needs to go back
// through image-space operations such as scaling.
func (b *Buffer) Image() image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.RGBAt(x, y)
			m.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: 0xff})
		}
	}
	return m
}
