/*
Package quant maps source pixels to the small fixed color alphabets of
e-paper panels and provides the Floyd-Steinberg error diffusion pass that
runs before matching.

The matching thresholds are empirically tuned for readability on real
panels, not for colorimetric fidelity, and each output mode carries its
own set. They are deliberately not unified.
*/
package quant

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the output color alphabet.
type Mode int

const (
	BW    Mode = iota // 1-bit black/white
	BWR               // black/white/red, two planes
	BWY               // black/white/yellow, two planes
	BWYR              // black/white/yellow/red, one packed 2-bit plane
	Gray4             // 4-level gray, two planes
)

// Symbol values shared by every mode. Three-color modes use Third for
// their chromatic color; BWYR uses Yellow and Red.
const (
	Black  = 0
	White  = 1
	Third  = 2
	Yellow = 2
	Red    = 3
)

var modeNames = []string{"BW", "BWR", "BWY", "BWYR", "4GRAY"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ErrUnknownMode is returned by ParseMode for names outside the five
// supported alphabets.
var ErrUnknownMode = errors.New("quant: unknown output mode")

// ParseMode maps a mode name (BW, BWR, BWY, BWYR, 4GRAY) to its Mode,
// case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Planes returns how many 1-bit planes the mode emits; BWYR emits a
// single 2-bit packed plane instead and reports 1.
func (m Mode) Planes() int {
	switch m {
	case BWR, BWY, Gray4:
		return 2
	default:
		return 1
	}
}

// Chromatic reports whether the mode has a color other than black and
// white.
func (m Mode) Chromatic() bool {
	return m == BWR || m == BWY || m == BWYR
}
