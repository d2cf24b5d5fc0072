/*
Package plane packs quantized pixels into the tightly packed byte planes
e-paper controllers expect: MSB-first, one or two bits per pixel, each row
starting on a byte boundary with any trailing bits of the final byte
padded to zero.
*/
package plane

import (
	"errors"

	"github.com/bitbank2/epd-image/raster"
)

// ErrNotBilevel is returned by CopyInverted for sources that are not
// already 1-bpp.
var ErrNotBilevel = errors.New("plane: direct copy needs a 1-bpp source")

// Plane is one packed bit-significance layer of the output.
type Plane struct {
	Width  int
	Height int
	Pitch  int // bytes per row
	Data   []byte
}

// SymbolFunc returns the quantized symbol for one pixel.
type SymbolFunc func(x, y int) uint8

// Pack1 packs bit number bit of each symbol, MSB-first, eight pixels per
// byte. The byte is flushed at every eighth pixel or at the end of the
// row; a short final byte is shifted left so the unused low bits are
// zero. Rows never share bytes.
func Pack1(width, height int, bit uint, sym SymbolFunc) *Plane {
	p := &Plane{Width: width, Height: height, Pitch: (width + 7) / 8}
	p.Data = make([]byte, p.Pitch*height)
	i := 0
	for y := 0; y < height; y++ {
		var uc uint8
		for x := 0; x < width; x++ {
			uc <<= 1
			uc |= sym(x, y) >> bit & 1
			if x&7 == 7 || x == width-1 {
				if x&7 != 7 {
					uc <<= 7 - uint(x&7)
				}
				p.Data[i] = uc
				i++
				uc = 0
			}
		}
	}
	return p
}

// Pack2 packs full 2-bit symbols, four pixels per byte, with the same
// MSB-first order and end-of-row padding rule as Pack1.
func Pack2(width, height int, sym SymbolFunc) *Plane {
	p := &Plane{Width: width, Height: height, Pitch: (width + 3) / 4}
	p.Data = make([]byte, p.Pitch*height)
	i := 0
	for y := 0; y < height; y++ {
		var uc uint8
		for x := 0; x < width; x++ {
			uc <<= 2
			uc |= sym(x, y) & 3
			if x&3 == 3 || x == width-1 {
				if x&3 != 3 {
					uc <<= uint(3-x&3) * 2
				}
				p.Data[i] = uc
				i++
				uc = 0
			}
		}
	}
	return p
}

// CopyInverted is the fast path for sources that are already 1-bpp and
// need no recoding: rows are copied from the dword-aligned source pitch
// to the tight destination pitch and bitwise inverted, since the source
// convention is 1=black while the plane convention is 0=black.
func CopyInverted(src *raster.Buffer) (*Plane, error) {
	if src.Bpp != 1 {
		return nil, ErrNotBilevel
	}
	p := &Plane{Width: src.Width, Height: src.Height, Pitch: (src.Width + 7) / 8}
	p.Data = make([]byte, p.Pitch*src.Height)
	for y := 0; y < src.Height; y++ {
		s := src.Data[y*src.Pitch:]
		d := p.Data[y*p.Pitch : (y+1)*p.Pitch]
		for x := range d {
			d[x] = ^s[x]
		}
	}
	return p, nil
}
