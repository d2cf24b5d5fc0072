package epdimage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/bitbank2/epd-image/bmp"
	"github.com/bitbank2/epd-image/carray"
	"github.com/bitbank2/epd-image/plane"
	"github.com/bitbank2/epd-image/quant"
	"github.com/bitbank2/epd-image/raster"
)

// Load decodes raw file bytes into a normalized top-down buffer. BMP
// files keep their native depth, palette and pitch; everything else goes
// through the image registry and the importer.
func (c *Converter) Load(data []byte) (*raster.Buffer, error) {
	if bmp.Magic(data) {
		buf, err := bmp.Decode(data)
		if err != nil {
			return nil, err
		}
		buf.Normalize()
		if c.cfg.Fit != nil {
			return c.fromImage(fitImage(buf.Image(), c.cfg.Fit.Width, c.cfg.Fit.Height)), nil
		}
		return buf, nil
	}

	m, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if c.cfg.Fit != nil {
		m = fitImage(m, c.cfg.Fit.Width, c.cfg.Fit.Height)
	}
	return c.fromImage(m), nil
}

// Convert applies the configured transforms, optional dithering and
// plane packing. It returns the final buffer alongside the planes since
// dithering and rotation may replace or resize it.
func (c *Converter) Convert(buf *raster.Buffer) (*raster.Buffer, []*plane.Plane, error) {
	if c.cfg.Mirror {
		if err := buf.Mirror(); err != nil {
			return nil, nil, err
		}
	}
	if c.cfg.FlipV {
		buf.FlipV()
	}
	if c.cfg.Invert {
		buf.Invert()
	}
	if c.cfg.Dither {
		switch {
		case c.cfg.Mode == quant.BW:
			buf = quant.DitherGray(buf)
		case c.cfg.Mode.Chromatic():
			if buf.Bpp < 24 {
				return nil, nil, ErrDitherDepth
			}
			quant.DitherColor(buf, c.cfg.Mode)
		default:
			return nil, nil, ErrDitherMode
		}
	}
	if err := buf.Rotate(c.cfg.Rotation); err != nil {
		return nil, nil, err
	}
	planes, err := c.pack(buf)
	if err != nil {
		return nil, nil, err
	}
	return buf, planes, nil
}

func (c *Converter) symbols(buf *raster.Buffer) plane.SymbolFunc {
	m := c.cfg.Mode
	return func(x, y int) uint8 {
		r, g, b := buf.RGBAt(x, y)
		return m.Symbol(r, g, b)
	}
}

func (c *Converter) pack(buf *raster.Buffer) ([]*plane.Plane, error) {
	w, h := buf.Width, buf.Height
	switch c.cfg.Mode {
	case quant.BW:
		if c.cfg.Direct {
			p, err := plane.CopyInverted(buf)
			if err != nil {
				return nil, err
			}
			return []*plane.Plane{p}, nil
		}
		return []*plane.Plane{
			plane.Pack1(w, h, 0, func(x, y int) uint8 { return buf.Gray2At(x, y) >> 1 }),
		}, nil
	case quant.Gray4:
		return []*plane.Plane{
			plane.Pack1(w, h, 0, buf.Gray2At),
			plane.Pack1(w, h, 1, buf.Gray2At),
		}, nil
	case quant.BWYR:
		return []*plane.Plane{plane.Pack2(w, h, c.symbols(buf))}, nil
	default: // BWR, BWY
		sym := c.symbols(buf)
		return []*plane.Plane{
			plane.Pack1(w, h, 0, sym),
			plane.Pack1(w, h, 1, sym),
		}, nil
	}
}

// Write renders the planes as C source. Multi-plane modes emit
// <name>_0 and <name>_1; the packed BWYR plane uses the bare name, and
// single-plane BW output keeps the historical _0 suffix.
func (c *Converter) Write(w io.Writer, leaf string, buf *raster.Buffer, planes []*plane.Plane) error {
	cw := carray.NewWriter(w)
	if err := cw.Preamble(leaf); err != nil {
		return err
	}
	name := carray.SanitizeName(leaf)
	packed := c.cfg.Mode == quant.BWYR
	p0 := planes[0]
	if err := cw.Header(buf.Width, buf.Height, p0.Pitch, len(p0.Data), packed); err != nil {
		return err
	}
	switch {
	case packed:
		if err := cw.Array(name, p0.Data); err != nil {
			return err
		}
	case len(planes) == 1:
		if err := cw.Array(name+"_0", p0.Data); err != nil {
			return err
		}
	default:
		for i, p := range planes {
			if err := cw.PlaneComment(i); err != nil {
				return err
			}
			if err := cw.Array(fmt.Sprintf("%s_%d", name, i), p.Data); err != nil {
				return err
			}
		}
	}
	return cw.Flush()
}

// ConvertFile reads src, runs the pipeline and writes the C source to
// dst. The output is built in memory first so a failed conversion never
// leaves a partial file behind.
func (c *Converter) ConvertFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	buf, err := c.Load(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	buf, planes, err := c.Convert(buf)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	var out bytes.Buffer
	if err := c.Write(&out, carray.LeafName(src), buf, planes); err != nil {
		return err
	}
	if err := os.WriteFile(dst, out.Bytes(), 0o644); err != nil {
		return err
	}
	c.logger.Printf("%s -> %s (%s, %dx%d)", src, dst, c.cfg.Mode, buf.Width, buf.Height)
	return nil
}
