package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitch(t *testing.T) {
	for _, tc := range []struct {
		width, bpp, want int
	}{
		{1, 1, 4},
		{8, 1, 4},
		{33, 1, 8},
		{2, 4, 4},
		{9, 4, 8},
		{3, 8, 4},
		{5, 8, 8},
		{2, 24, 8},
		{1, 32, 4},
		{3, 32, 12},
	} {
		assert.Equal(t, tc.want, Pitch(tc.width, tc.bpp), "width %d bpp %d", tc.width, tc.bpp)
	}
}

func TestRGBAt1Bpp(t *testing.T) {
	b := New(8, 1, 1)
	// bits are read low to high within a byte
	b.Data[0] = 0x05 // pixels 0 and 2 set
	for x, want := range []uint8{0xff, 0, 0xff, 0, 0, 0, 0, 0} {
		r, g, bl := b.RGBAt(x, 0)
		assert.Equal(t, want, r, "x=%d", x)
		assert.Equal(t, want, g, "x=%d", x)
		assert.Equal(t, want, bl, "x=%d", x)
	}
}

func TestRGBAt4Bpp(t *testing.T) {
	b := New(2, 1, 4)
	var p Palette
	p.R[0x0a], p.G[0x0a], p.B[0x0a] = 1, 2, 3
	p.R[0x05], p.G[0x05], p.B[0x05] = 4, 5, 6
	b.Palette = &p
	b.Data[0] = 0xa5 // even pixel in the high nibble

	r, g, bl := b.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, bl})
	r, g, bl = b.RGBAt(1, 0)
	assert.Equal(t, [3]uint8{4, 5, 6}, [3]uint8{r, g, bl})
}

func TestRGBAt8Bpp(t *testing.T) {
	b := New(2, 2, 8)
	b.Palette = Gray()
	b.Data[0] = 0x20
	b.Data[b.Pitch+1] = 0x9f

	r, g, bl := b.RGBAt(0, 0)
	assert.Equal(t, [3]uint8{0x20, 0x20, 0x20}, [3]uint8{r, g, bl})
	r, g, bl = b.RGBAt(1, 1)
	assert.Equal(t, [3]uint8{0x9f, 0x9f, 0x9f}, [3]uint8{r, g, bl})
}

func TestRGBAtTruecolor(t *testing.T) {
	for _, bpp := range []int{24, 32} {
		b := New(2, 1, bpp)
		n := bpp >> 3
		// B,G,R byte order
		b.Data[n], b.Data[n+1], b.Data[n+2] = 10, 20, 30

		r, g, bl := b.RGBAt(1, 0)
		assert.Equal(t, [3]uint8{30, 20, 10}, [3]uint8{r, g, bl}, "bpp %d", bpp)
	}
}

func TestLuma(t *testing.T) {
	assert.Equal(t, 0, Luma(0, 0, 0))
	assert.Equal(t, 255, Luma(255, 255, 255))
	// (2g + r + b) / 4, truncating
	assert.Equal(t, 63, Luma(255, 0, 0))
	assert.Equal(t, 127, Luma(0, 255, 0))
	assert.Equal(t, 63, Luma(0, 0, 255))
	assert.Equal(t, 64, Luma(1, 0, 255))
}

func TestGray2At(t *testing.T) {
	b := New(4, 1, 8)
	b.Palette = Gray()
	for i, v := range []uint8{10, 70, 140, 250} {
		b.Data[i] = v
	}
	for x, want := range []uint8{0, 1, 2, 3} {
		require.Equal(t, want, b.Gray2At(x, 0), "x=%d", x)
	}
}

func TestGray2At1Bpp(t *testing.T) {
	b := New(2, 1, 1)
	b.Data[0] = 0x01
	assert.Equal(t, uint8(3), b.Gray2At(0, 0))
	assert.Equal(t, uint8(0), b.Gray2At(1, 0))
}

func TestNormalize(t *testing.T) {
	b := New(1, 2, 8)
	b.Palette = Gray()
	b.TopDown = false
	b.Data[0] = 1
	b.Data[b.Pitch] = 2

	b.Normalize()
	require.True(t, b.TopDown)
	assert.Equal(t, uint8(2), b.Data[0])
	assert.Equal(t, uint8(1), b.Data[b.Pitch])

	// already top-down: no change
	b.Normalize()
	assert.Equal(t, uint8(2), b.Data[0])
}
