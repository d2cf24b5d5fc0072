package plane

import (
	"testing"

	"github.com/bitbank2/epd-image/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unpack1 and unpack2 are the test-only inverses of Pack1 and Pack2.

func unpack1(p *Plane, x, y int) uint8 {
	return p.Data[y*p.Pitch+(x>>3)] >> (7 - uint(x&7)) & 1
}

func unpack2(p *Plane, x, y int) uint8 {
	return p.Data[y*p.Pitch+(x>>2)] >> ((3 - uint(x&3)) * 2) & 3
}

func TestPack1RoundTrip(t *testing.T) {
	const w, h = 13, 5
	sym := func(x, y int) uint8 { return uint8((x + y) & 1) }

	p := Pack1(w, h, 0, sym)
	require.Equal(t, 2, p.Pitch)
	require.Len(t, p.Data, 2*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, sym(x, y), unpack1(p, x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestPack1BitSelect(t *testing.T) {
	// symbol 2 contributes to plane bit 1 only
	sym := func(x, y int) uint8 { return 2 }
	assert.Equal(t, uint8(0x00), Pack1(8, 1, 0, sym).Data[0])
	assert.Equal(t, uint8(0xff), Pack1(8, 1, 1, sym).Data[0])
}

func TestPack1Padding(t *testing.T) {
	// width 5, all ones: five high bits set, three pad bits zero
	p := Pack1(5, 1, 0, func(x, y int) uint8 { return 1 })
	assert.Equal(t, []byte{0xf8}, p.Data)

	// width 7 alternating, first pixel set: 1010101 then one pad bit
	p = Pack1(7, 1, 0, func(x, y int) uint8 { return uint8(^x & 1) })
	assert.Equal(t, []byte{0xaa}, p.Data)
}

func TestPack1RowBoundary(t *testing.T) {
	// rows never share a byte; a 4-wide two-row image spans two bytes
	p := Pack1(4, 2, 0, func(x, y int) uint8 { return uint8(y) })
	assert.Equal(t, []byte{0x00, 0xf0}, p.Data)
}

func TestPack2RoundTrip(t *testing.T) {
	const w, h = 7, 3
	sym := func(x, y int) uint8 { return uint8((x + 2*y) & 3) }

	p := Pack2(w, h, sym)
	require.Equal(t, 2, p.Pitch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, sym(x, y), unpack2(p, x, y), "x=%d y=%d", x, y)
		}
	}
}

func TestPack2Padding(t *testing.T) {
	// width 3, symbols 3 2 1: 11 10 01 then two pad bits
	vals := []uint8{3, 2, 1}
	p := Pack2(3, 1, func(x, y int) uint8 { return vals[x] })
	assert.Equal(t, []byte{0xe4}, p.Data)
}

func TestCopyInverted(t *testing.T) {
	src := raster.New(16, 2, 1)
	src.Data[0], src.Data[1] = 0xff, 0x0f
	src.Data[src.Pitch], src.Data[src.Pitch+1] = 0x00, 0xa5

	p, err := CopyInverted(src)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Pitch)
	assert.Equal(t, []byte{0x00, 0xf0, 0xff, 0x5a}, p.Data)
}

func TestCopyInvertedNotBilevel(t *testing.T) {
	src := raster.New(8, 1, 8)
	src.Palette = raster.Gray()
	_, err := CopyInverted(src)
	assert.ErrorIs(t, err, ErrNotBilevel)
}
