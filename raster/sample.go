package raster

// Sampling never bounds-checks beyond the caller-supplied width and
// height; querying outside the image is the caller's bug.

// RGBAt returns the red, green and blue components of the pixel at
// (x, y), resolving the palette for indexed depths. 24 and 32 bit rows
// store components in B,G,R order; the 4th byte of a 32-bit pixel is
// padding.
func (b *Buffer) RGBAt(x, y int) (uint8, uint8, uint8) {
	switch b.Bpp {
	case 1:
		v := (b.Data[y*b.Pitch+(x>>3)] >> (x & 7)) & 1
		v *= 0xff
		return v, v, v
	case 4:
		uc := b.Data[y*b.Pitch+(x>>1)]
		if x&1 == 0 {
			uc >>= 4
		}
		uc &= 0x0f
		return b.Palette.R[uc], b.Palette.G[uc], b.Palette.B[uc]
	case 8:
		uc := b.Data[y*b.Pitch+x]
		return b.Palette.R[uc], b.Palette.G[uc], b.Palette.B[uc]
	default: // 24, 32
		s := b.Data[y*b.Pitch+(x*b.Bpp>>3):]
		return s[2], s[1], s[0]
	}
}

// Luma is the brightness approximation used throughout: (2G+R+B)/4,
// integer, truncating.
func Luma(r, g, b uint8) int {
	return (2*int(g) + int(r) + int(b)) >> 2
}

// Gray8At returns the pixel at (x, y) as an 8-bit luma value. A 1-bit
// pixel maps to 0x00 or 0xff.
func (b *Buffer) Gray8At(x, y int) uint8 {
	if b.Bpp == 1 {
		v := (b.Data[y*b.Pitch+(x>>3)] >> (x & 7)) & 1
		return v * 0xff
	}
	r, g, bl := b.RGBAt(x, y)
	return uint8(Luma(r, g, bl))
}

// Gray2At returns the pixel at (x, y) as a 2-bit gray level, the top two
// bits of the luma. A 1-bit pixel maps to level 0 or 3.
func (b *Buffer) Gray2At(x, y int) uint8 {
	if b.Bpp == 1 {
		v := (b.Data[y*b.Pitch+(x>>3)] >> (x & 7)) & 1
		return v | v<<1
	}
	return b.Gray8At(x, y) >> 6
}
