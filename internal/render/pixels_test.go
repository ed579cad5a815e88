package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{0, 1, 2, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, SeatingPalette)

	pixel := func(i int) color.RGBA {
		return color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
	}
	assert.Equal(t, SeatingPalette[0], pixel(0))
	assert.Equal(t, SeatingPalette[1], pixel(1))
	assert.Equal(t, SeatingPalette[2], pixel(2))
	assert.Equal(t, SeatingPalette[2], pixel(3), "out of range codes clamp to the last entry")
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 2}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}
