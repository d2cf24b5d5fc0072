package quant

import "github.com/bitbank2/epd-image/raster"

// Floyd-Steinberg weights are approximated with shifts rather than exact
// sixteenths: h = v/2, then 7/16 ~ (7h)>>3, 1/16 ~ h-e1, 5/16 ~ (5h)>>3,
// 3/16 ~ h-e3. The rounding, the overwrite of the forward-diagonal slot
// and the one-slot guard margin at each end of the accumulator are all
// kept bit-for-bit; diffusion at column 0 and the last column leaks into
// the guard slots and is dropped there.

func diffuse(v int32) (e1, e2, e3, e4 int32) {
	h := v >> 1
	e1 = (7 * h) >> 3
	e2 = h - e1
	e3 = (5 * h) >> 3
	e4 = h - e3
	return
}

// DitherGray converts any source to a freshly allocated 1-bpp buffer,
// diffusing the luma quantization error. The luma is scaled by 2/3 first
// so the bright end does not blow out. The accumulator is unsigned and
// wraps modulo 256, and the carried error can only brighten a pixel, so
// only the high clip is needed.
//
// Bits are packed low-to-high within each byte, matching the 1-bpp
// sampling order; a final partial byte is shifted high and stored
// complemented.
func DitherGray(src *raster.Buffer) *raster.Buffer {
	w, h := src.Width, src.Height
	dst := raster.New(w, h, 1)
	acc := make([]uint8, w+2)
	for y := 0; y < h; y++ {
		row := dst.Data[y*dst.Pitch:]
		di := 0
		fwd := int32(0)
		var out uint8
		for x := 0; x < w; x++ {
			c := int32(src.Gray8At(x, y))
			c = c * 2 / 3
			c += fwd
			if c > 255 {
				c = 255
			}
			out >>= 1
			out |= uint8(c) & 0x80
			if x&7 == 7 {
				row[di] = out
				di++
				out = 0
			}
			e1, e2, e3, e4 := diffuse(c - (c & 0x80))
			fwd = e1 + int32(acc[x+2])
			acc[x+2] = uint8(e2)
			acc[x+1] += uint8(e3)
			acc[x] += uint8(e4)
		}
		if w&7 != 0 {
			out <<= 8 - uint(w&7)
			row[di] = ^out
		}
	}
	return dst
}

func clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// DitherColor quantizes a 24 or 32 bpp buffer in place to the chromatic
// mode's palette, diffusing each channel's residual independently. The
// matched color overwrites the source pixel.
func DitherColor(src *raster.Buffer, m Mode) {
	w := src.Width
	bpp := 3
	if src.Bpp == 32 {
		bpp = 4
	}
	acc := make([]int32, (w+2)*3)
	for y := 0; y < src.Height; y++ {
		row := src.Data[y*src.Pitch:]
		si := 0
		p := 3 // guard offset, one pixel of three channels
		var fr, fg, fb int32
		for x := 0; x < w; x++ {
			r, g, b := row[si+2], row[si+1], row[si]
			r1, g1, b1 := m.BestColor(clamp255(int32(r)+fr), clamp255(int32(g)+fg), clamp255(int32(b)+fb))

			e1, e2, e3, e4 := diffuse(int32(r) - int32(r1))
			fr = e1 + acc[p+3]
			acc[p+3] = e2
			acc[p] += e3
			acc[p-3] += e4

			e1, e2, e3, e4 = diffuse(int32(g) - int32(g1))
			fg = e1 + acc[p+4]
			acc[p+4] = e2
			acc[p+1] += e3
			acc[p-2] += e4

			e1, e2, e3, e4 = diffuse(int32(b) - int32(b1))
			fb = e1 + acc[p+5]
			acc[p+5] = e2
			acc[p+2] += e3
			acc[p-1] += e4

			p += 3
			row[si+2], row[si+1], row[si] = r1, g1, b1
			si += bpp
		}
	}
}
