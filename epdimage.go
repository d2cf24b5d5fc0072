/*
Package epdimage converts raster images (BMP, JPEG, PNG, GIF) into
compile-time C byte arrays for driving e-paper displays: pixels are
quantized to a small fixed alphabet (BW, BWR, BWY, BWYR or 4-level gray),
optionally dithered, split into one or two packed memory planes and
rendered as hex literals.
*/
package epdimage

import (
	"errors"
	"log"

	"github.com/bitbank2/epd-image/quant"
)

var (
	// ErrUnknownFormat is returned for inputs that are neither BMP nor a
	// format registered with the image package.
	ErrUnknownFormat = errors.New("epdimage: unrecognized input format")

	// ErrDitherDepth is returned when color dithering is requested on a
	// source without full color information.
	ErrDitherDepth = errors.New("epdimage: color dithering requires a 24 or 32-bit source image")

	// ErrDitherMode is returned for mode/dither combinations that have no
	// defined behavior.
	ErrDitherMode = errors.New("epdimage: dithering is not available for 4GRAY output")
)

// Config is the configuration surface of one conversion.
type Config struct {
	Mode     quant.Mode
	Dither   bool
	Rotation int // clockwise degrees, multiple of 90
	Mirror   bool
	FlipV    bool
	Invert   bool
	Direct   bool     // copy 1-bpp sources straight through (inverted)
	Paletted bool     // median-cut truecolor sources to 8-bpp on import
	Fit      *Profile // scale the source to this panel; nil disables
}

// Converter runs conversions with a fixed configuration. The logger
// receives one line per converted file and is typically io.Discard
// unless the caller asked for verbosity.
type Converter struct {
	cfg    Config
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) *Converter {
	return &Converter{
		cfg:    cfg,
		logger: logger,
	}
}
