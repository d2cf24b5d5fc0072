/*
Package raster holds decoded source images as raw pixel buffers. A buffer
keeps the original bit depth, dword-aligned row pitch and indexed palette
so that the quantizer sees exactly the bytes the BMP or JPEG decoder
produced.
*/
package raster

import "errors"

// ErrUnsupportedGeometry is returned by transforms that are not defined
// for the buffer's bit depth or dimensions.
var ErrUnsupportedGeometry = errors.New("raster: unsupported geometry for this bit depth")

// Pitch returns the number of bytes per row for a given width and bit
// depth, rounded up to a 4-byte boundary as Windows BMP rows are.
func Pitch(width, bpp int) int {
	p := (width*bpp + 7) / 8
	return (p + 3) &^ 3
}

// Palette is a 256-entry indexed color table. Only the first 1<<bpp
// entries are meaningful for a given buffer.
type Palette struct {
	R, G, B [256]uint8
}

// Gray returns an identity grayscale palette, used for 8-bit sources that
// carry no palette of their own.
func Gray() *Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		p.R[i] = uint8(i)
		p.G[i] = uint8(i)
		p.B[i] = uint8(i)
	}
	return &p
}

// Buffer is a rectangular image stored as packed rows of 1, 4, 8, 24 or
// 32 bit pixels. Width and Height are always positive; the source's
// bottom-up row order is normalized into the TopDown flag by the loader.
type Buffer struct {
	Width   int
	Height  int
	Bpp     int
	Pitch   int
	TopDown bool
	Palette *Palette // nil unless Bpp is 4 or 8
	Data    []byte   // Pitch * Height bytes
}

// New allocates a zeroed top-down buffer with an aligned pitch.
func New(width, height, bpp int) *Buffer {
	p := Pitch(width, bpp)
	return &Buffer{
		Width:   width,
		Height:  height,
		Bpp:     bpp,
		Pitch:   p,
		TopDown: true,
		Data:    make([]byte, p*height),
	}
}

// Normalize flips a bottom-up buffer so rows run top to bottom.
func (b *Buffer) Normalize() {
	if b.TopDown {
		return
	}
	b.FlipV()
	b.TopDown = true
}
