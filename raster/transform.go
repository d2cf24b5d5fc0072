package raster

// Geometry transforms operate in place on the raw pixel bytes, before any
// quantization. Bit-level layouts (1 and 4 bpp) get dedicated paths; the
// others swap whole pixels.

var mirrorTable = makeMirrorTable()

// makeMirrorTable builds the 256-entry byte bit-reversal table used by
// the 1-bpp mirror path.
func makeMirrorTable() (t [256]uint8) {
	for i := range t {
		v := uint8(i)
		v = v>>4 | v<<4
		v = v&0xcc>>2 | v&0x33<<2
		v = v&0xaa>>1 | v&0x55<<1
		t[i] = v
	}
	return
}

// FlipV flips the image vertically by swapping whole rows, for any bit
// depth.
func (b *Buffer) FlipV() {
	for y := 0; y < b.Height/2; y++ {
		top := b.Data[y*b.Pitch : (y+1)*b.Pitch]
		bot := b.Data[(b.Height-1-y)*b.Pitch:]
		for x := range top {
			top[x], bot[x] = bot[x], top[x]
		}
	}
}

// Mirror flips the image horizontally in place. 1-bpp images whose width
// is not a multiple of 8 are not supported and return
// ErrUnsupportedGeometry.
func (b *Buffer) Mirror() error {
	switch b.Bpp {
	case 1:
		if b.Width&7 != 0 {
			return ErrUnsupportedGeometry
		}
		for y := 0; y < b.Height; y++ {
			row := b.Data[y*b.Pitch:]
			i, j := 0, b.Width>>3-1
			for n := b.Width >> 4; n > 0; n-- {
				row[i], row[j] = mirrorTable[row[j]], mirrorTable[row[i]]
				i++
				j--
			}
		}
	case 4:
		for y := 0; y < b.Height; y++ {
			row := b.Data[y*b.Pitch:]
			i, j := 0, b.Width>>1-1
			for n := b.Width >> 2; n > 0; n-- {
				c1 := row[i]<<4 | row[i]>>4 // swap the nibble pair
				c2 := row[j]<<4 | row[j]>>4
				row[i], row[j] = c2, c1
				i++
				j--
			}
		}
	case 8:
		for y := 0; y < b.Height; y++ {
			row := b.Data[y*b.Pitch:]
			i, j := 0, b.Width-1
			for n := b.Width >> 1; n > 0; n-- {
				row[i], row[j] = row[j], row[i]
				i++
				j--
			}
		}
	case 24, 32:
		bpp := b.Bpp >> 3
		for y := 0; y < b.Height; y++ {
			row := b.Data[y*b.Pitch:]
			i, j := 0, (b.Width-1)*bpp
			for n := b.Width >> 1; n > 0; n-- {
				for k := 0; k < bpp; k++ {
					row[i+k], row[j+k] = row[j+k], row[i+k]
				}
				i += bpp
				j -= bpp
			}
		}
	}
	return nil
}

// nibbleAt and setNibble use the packed 4-bpp convention: the high nibble
// holds the even-x pixel.
func nibbleAt(data []byte, pitch, x, y int) uint8 {
	uc := data[y*pitch+(x>>1)]
	if x&1 == 0 {
		uc >>= 4
	}
	return uc & 0x0f
}

func setNibble(data []byte, pitch, x, y int, v uint8) {
	i := y*pitch + (x >> 1)
	if x&1 == 0 {
		data[i] = data[i]&0x0f | v<<4
	} else {
		data[i] = data[i]&0xf0 | v
	}
}

// Rotate rotates the image clockwise by 0, 90, 180 or 270 degrees. 180
// degrees is a vertical flip composed with a mirror and works for all bit
// depths; 90 and 270 are implemented only for 4-bpp images (a transposed
// copy with nibble deinterleaving) and return ErrUnsupportedGeometry
// otherwise. Width and height swap for 90/270.
func (b *Buffer) Rotate(degrees int) error {
	switch degrees {
	case 0:
		return nil
	case 180:
		b.FlipV()
		return b.Mirror()
	case 90, 270:
	default:
		return ErrUnsupportedGeometry
	}
	if b.Bpp != 4 {
		return ErrUnsupportedGeometry
	}
	w, h := b.Width, b.Height
	dstPitch := Pitch(h, 4)
	tmp := make([]byte, dstPitch*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			setNibble(tmp, dstPitch, h-1-y, x, nibbleAt(b.Data, b.Pitch, x, y))
		}
	}
	b.Data = tmp
	b.Pitch = dstPitch
	b.Width, b.Height = h, w
	if degrees == 270 {
		b.FlipV()
		return b.Mirror()
	}
	return nil
}

// Invert performs a bitwise NOT over the whole pixel data region. The
// palette, if any, is left alone.
func (b *Buffer) Invert() {
	for i := range b.Data {
		b.Data[i] = ^b.Data[i]
	}
}
