package epdimage

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"

	"github.com/bitbank2/epd-image/raster"
)

// fromImage converts a decoded image into a raster buffer. Grayscale
// images keep their 8-bit samples and gain an identity palette;
// truecolor pixels take an RGB565 round-trip first, giving the same
// component values the embedded JPEG decoder produces, and land in a
// 24-bpp B,G,R buffer.
func (c *Converter) fromImage(m image.Image) *raster.Buffer {
	if g, ok := m.(*image.Gray); ok {
		return fromGray(g)
	}
	if c.cfg.Paletted {
		return palettize(m)
	}
	b := m.Bounds()
	buf := raster.New(b.Dx(), b.Dy(), 24)
	for y := 0; y < buf.Height; y++ {
		row := buf.Data[y*buf.Pitch:]
		for x := 0; x < buf.Width; x++ {
			cr, cg, cb, _ := m.At(b.Min.X+x, b.Min.Y+y).RGBA()
			r, g, bl := rgb565(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8))
			row[x*3] = bl
			row[x*3+1] = g
			row[x*3+2] = r
		}
	}
	return buf
}

func fromGray(g *image.Gray) *raster.Buffer {
	b := g.Bounds()
	buf := raster.New(b.Dx(), b.Dy(), 8)
	buf.Palette = raster.Gray()
	for y := 0; y < buf.Height; y++ {
		row := buf.Data[y*buf.Pitch:]
		for x := 0; x < buf.Width; x++ {
			row[x] = g.GrayAt(b.Min.X+x, b.Min.Y+y).Y
		}
	}
	return buf
}

// rgb565 quantizes a truecolor pixel to 5-6-5 bits and expands it back,
// replicating the top bits into the bottom.
func rgb565(r, g, b uint8) (uint8, uint8, uint8) {
	u := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	r = uint8(u >> 11)
	r = r<<3 | r>>2
	g = uint8(u>>5) & 0x3f
	g = g<<2 | g>>4
	b = uint8(u) & 0x1f
	b = b<<3 | b>>2
	return r, g, b
}

// palettize reduces a truecolor image to at most 256 colors with a
// median-cut quantizer and stores it as an 8-bpp indexed buffer.
func palettize(m image.Image) *raster.Buffer {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 256), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	buf := raster.New(b.Dx(), b.Dy(), 8)
	var pal raster.Palette
	for i, cc := range pm.Palette {
		r, g, bl, _ := cc.RGBA()
		pal.R[i] = uint8(r >> 8)
		pal.G[i] = uint8(g >> 8)
		pal.B[i] = uint8(bl >> 8)
	}
	buf.Palette = &pal
	for y := 0; y < buf.Height; y++ {
		copy(buf.Data[y*buf.Pitch:y*buf.Pitch+buf.Width], pm.Pix[y*pm.Stride:y*pm.Stride+buf.Width])
	}
	return buf
}

// fitImage scales m to exactly width x height.
func fitImage(m image.Image, width, height int) image.Image {
	b := m.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), m, b, xdraw.Src, nil)
	return dst
}
