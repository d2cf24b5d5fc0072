/*
Package bmp reads uncompressed Windows BMP files into raster buffers.

It is deliberately not a general decoder: it keeps the source's bit
depth, palette and dword-aligned rows untouched so the quantizer operates
on the same bytes the file holds. RLE-compressed files and bit depths
other than 1, 4, 8, 24 and 32 are rejected.
*/
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bitbank2/epd-image/raster"
)

var (
	ErrBadMagic   = errors.New("bmp: not a BMP file")
	ErrCompressed = errors.New("bmp: compressed BMP files are not supported")
	ErrBadDepth   = errors.New("bmp: unsupported bit depth")
	ErrTruncated  = errors.New("bmp: truncated file")
)

// fixed header offsets; there is no need for a full header structure
const (
	offBitsOff     = 10
	widthOff       = 18
	heightOff      = 22
	bppOff         = 28
	compressionOff = 30
	colorsUsedOff  = 46
	headerSize     = 54
)

// Magic reports whether data starts with the BMP file signature.
func Magic(data []byte) bool {
	return len(data) >= 2 && data[0] == 'B' && data[1] == 'M'
}

// Decode parses data as an uncompressed BMP and returns its pixel block
// as a raster buffer. The height sign encodes row order: positive is
// bottom-up, negative top-down. The returned buffer has a positive
// height and its TopDown flag set accordingly; callers normally call
// Normalize before processing.
func Decode(data []byte) (*raster.Buffer, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if !Magic(data) {
		return nil, ErrBadMagic
	}
	if c := data[compressionOff]; c != 0 {
		return nil, fmt.Errorf("%w (compression type %d)", ErrCompressed, c)
	}

	offBits := int(binary.LittleEndian.Uint32(data[offBitsOff:]))
	width := int(int32(binary.LittleEndian.Uint32(data[widthOff:])))
	height := int(int32(binary.LittleEndian.Uint32(data[heightOff:])))
	bpp := int(binary.LittleEndian.Uint16(data[bppOff:]))

	switch bpp {
	case 1, 4, 8, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, bpp)
	}

	topDown := false
	if height < 0 {
		topDown = true
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, ErrTruncated
	}

	b := raster.New(width, height, bpp)
	b.TopDown = topDown

	if bpp == 4 || bpp == 8 {
		p, err := readPalette(data, offBits, bpp)
		if err != nil {
			return nil, err
		}
		b.Palette = p
	}

	if offBits+len(b.Data) > len(data) {
		return nil, ErrTruncated
	}
	copy(b.Data, data[offBits:])
	return b, nil
}

// readPalette pulls the B,G,R,x quads sitting immediately before the
// pixel data. A zero colors-used field means the full palette for the
// depth.
func readPalette(data []byte, offBits, bpp int) (*raster.Palette, error) {
	colors := int(data[colorsUsedOff])
	if colors == 0 || colors > 1<<bpp {
		colors = 1 << bpp
	}
	off := offBits - 4*colors
	if off < headerSize || offBits > len(data) {
		return nil, ErrTruncated
	}
	var p raster.Palette
	for i := 0; i < colors; i++ {
		p.B[i] = data[off]
		p.G[i] = data[off+1]
		p.R[i] = data[off+2]
		off += 4
	}
	return &p, nil
}
