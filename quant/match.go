package quant

import "github.com/bitbank2/epd-image/raster"

// The matchers below decide, from a single RGB triple, which symbol of the
// mode's alphabet a pixel becomes. The general shape is shared: test
// whether the chromatic channel(s) dominate blue, reject dark chromatic
// pixels as black, require a minimum separation before committing to the
// chromatic color, and otherwise fall back to a plain luma threshold.
// The exact constants differ between the three- and four-color matchers;
// they were tuned independently and must stay that way.

// MatchRed maps a pixel to black, white or red (symbol Third).
func MatchRed(r, g, b uint8) uint8 {
	gr := raster.Luma(r, g, b)
	if r > g && r > b {
		if gr < 100 && r < 80 {
			return Black
		}
		if int(r)-int(b) > 32 && int(r)-int(g) > 32 {
			return Third
		}
		// reddish but not separated enough; pink reads as white
		return White
	}
	if gr >= 100 {
		return White
	}
	return Black
}

// MatchYellow maps a pixel to black, white or yellow (symbol Third).
func MatchYellow(r, g, b uint8) uint8 {
	gr := raster.Luma(r, g, b)
	if r > b && g > b {
		if gr < 100 && r < 80 {
			return Black
		}
		if int(r)-int(b) > 32 && int(g)-int(b) > 32 {
			return Third
		}
		return White
	}
	if gr >= 100 {
		return White
	}
	return Black
}

// MatchBWYR maps a pixel to black, white, yellow or red. Red needs a
// wider margin over green (70) than over blue (32) here, and the black
// test is an OR of a darker luma floor (90) with the channel floor,
// unlike the three-color matchers.
func MatchBWYR(r, g, b uint8) uint8 {
	gr := raster.Luma(r, g, b)
	if r > b || g > b {
		if gr < 90 || (r < 80 && g < 80) {
			return Black
		}
		if int(r)-int(b) > 32 && int(r)-int(g) > 70 {
			return Red
		}
		if int(r)-int(b) > 32 && int(g)-int(b) > 32 {
			return Yellow
		}
		return White
	}
	if gr >= 100 {
		return White
	}
	return Black
}

// Symbol quantizes one RGB triple to the mode's alphabet. BW and Gray4
// use the plain 2-bit luma matcher (BW keeps only its top bit).
func (m Mode) Symbol(r, g, b uint8) uint8 {
	switch m {
	case BWR:
		return MatchRed(r, g, b)
	case BWY:
		return MatchYellow(r, g, b)
	case BWYR:
		return MatchBWYR(r, g, b)
	case Gray4:
		return uint8(raster.Luma(r, g, b)) >> 6
	default:
		return uint8(raster.Luma(r, g, b)) >> 6 >> 1
	}
}

// BestColor returns the RGB rendering of the symbol the chromatic mode
// would pick for the pixel; the color ditherer diffuses the difference
// between this and the source. Non-chromatic modes return the input
// unchanged.
func (m Mode) BestColor(r, g, b uint8) (uint8, uint8, uint8) {
	switch m {
	case BWR:
		switch MatchRed(r, g, b) {
		case Black:
			return 0, 0, 0
		case Third:
			return 0xff, 0, 0
		default:
			return 0xff, 0xff, 0xff
		}
	case BWY:
		switch MatchYellow(r, g, b) {
		case Black:
			return 0, 0, 0
		case Third:
			return 0xff, 0xff, 0
		default:
			return 0xff, 0xff, 0xff
		}
	case BWYR:
		switch MatchBWYR(r, g, b) {
		case Black:
			return 0, 0, 0
		case Red:
			return 0xff, 0, 0
		case Yellow:
			return 0xff, 0xff, 0
		default:
			return 0xff, 0xff, 0xff
		}
	}
	return r, g, b
}
