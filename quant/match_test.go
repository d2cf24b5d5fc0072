package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tables := []struct {
		in   string
		mode Mode
	}{
		{"BW", BW},
		{"bwr", BWR},
		{"Bwy", BWY},
		{"BWYR", BWYR},
		{"4gray", Gray4},
	}
	for _, table := range tables {
		m, err := ParseMode(table.in)
		require.NoError(t, err)
		assert.Equal(t, table.mode, m)
	}

	_, err := ParseMode("sepia")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeProperties(t *testing.T) {
	assert.Equal(t, 1, BW.Planes())
	assert.Equal(t, 2, BWR.Planes())
	assert.Equal(t, 2, BWY.Planes())
	assert.Equal(t, 2, Gray4.Planes())
	assert.Equal(t, 1, BWYR.Planes())

	assert.False(t, BW.Chromatic())
	assert.False(t, Gray4.Chromatic())
	assert.True(t, BWR.Chromatic())
	assert.True(t, BWY.Chromatic())
	assert.True(t, BWYR.Chromatic())

	assert.Equal(t, "BWR", BWR.String())
}

func TestMatchersGrayAxis(t *testing.T) {
	// the three chromatic matchers agree with the plain luma threshold on
	// pure grays, where no channel dominates another
	for _, v := range []uint8{0, 40, 99, 120, 200, 255} {
		want := uint8(White)
		if v < 100 {
			want = Black
		}
		assert.Equal(t, want, MatchRed(v, v, v), "red v=%d", v)
		assert.Equal(t, want, MatchYellow(v, v, v), "yellow v=%d", v)
		assert.Equal(t, want, MatchBWYR(v, v, v), "bwyr v=%d", v)
	}
}

func TestMatchRed(t *testing.T) {
	assert.Equal(t, uint8(Third), MatchRed(255, 0, 0))
	assert.Equal(t, uint8(Third), MatchRed(200, 60, 40))
	// dark red reads as black
	assert.Equal(t, uint8(Black), MatchRed(70, 0, 0))
	// pink is too close to white across all channels
	assert.Equal(t, uint8(White), MatchRed(255, 230, 240))
	assert.Equal(t, uint8(Black), MatchRed(10, 10, 10))
	assert.Equal(t, uint8(White), MatchRed(250, 250, 250))
}

func TestMatchYellow(t *testing.T) {
	assert.Equal(t, uint8(Third), MatchYellow(255, 255, 0))
	assert.Equal(t, uint8(Third), MatchYellow(220, 200, 100))
	// green must also beat blue to qualify
	assert.Equal(t, uint8(White), MatchYellow(255, 100, 150))
	assert.Equal(t, uint8(Black), MatchYellow(60, 60, 10))
	assert.Equal(t, uint8(White), MatchYellow(250, 250, 250))
}

func TestMatchBWYR(t *testing.T) {
	// pure red fails the four-color luma floor and falls to black
	assert.Equal(t, uint8(Black), MatchBWYR(255, 0, 0))
	// lifting green past the floor while staying 70 under red keeps it red
	assert.Equal(t, uint8(Red), MatchBWYR(255, 110, 0))
	assert.Equal(t, uint8(Yellow), MatchBWYR(255, 255, 0))
	assert.Equal(t, uint8(Yellow), MatchBWYR(200, 180, 100))
	assert.Equal(t, uint8(Black), MatchBWYR(60, 60, 0))
	assert.Equal(t, uint8(White), MatchBWYR(250, 250, 250))
	assert.Equal(t, uint8(Black), MatchBWYR(0, 0, 0))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, uint8(White), BW.Symbol(255, 255, 255))
	assert.Equal(t, uint8(Black), BW.Symbol(0, 0, 0))
	// 2-bit grays split at the luma quartiles
	assert.Equal(t, uint8(0), Gray4.Symbol(50, 50, 50))
	assert.Equal(t, uint8(1), Gray4.Symbol(100, 100, 100))
	assert.Equal(t, uint8(2), Gray4.Symbol(150, 150, 150))
	assert.Equal(t, uint8(3), Gray4.Symbol(250, 250, 250))
	assert.Equal(t, uint8(Third), BWR.Symbol(255, 0, 0))
	assert.Equal(t, uint8(Red), BWYR.Symbol(255, 110, 0))
}

func TestBestColor(t *testing.T) {
	r, g, b := BWR.BestColor(255, 0, 0)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = BWY.BestColor(255, 255, 0)
	assert.Equal(t, [3]uint8{255, 255, 0}, [3]uint8{r, g, b})

	r, g, b = BWYR.BestColor(10, 10, 10)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	// non-chromatic modes pass the pixel through
	r, g, b = BW.BestColor(1, 2, 3)
	assert.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
}
