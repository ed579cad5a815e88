package seating

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func TestParseLayoutPadsBorder(t *testing.T) {
	l := MustParseLayout(sampleLayout)

	require.Equal(t, 12, l.Width)
	require.Equal(t, 12, l.Height)
	require.Len(t, l.Seats, 144)
	assert.Equal(t, 71, l.SeatCount())

	for x := 0; x < l.Width; x++ {
		assert.False(t, l.Seats[l.Index(x, 0)], "top border (%d,0) must be floor", x)
		assert.False(t, l.Seats[l.Index(x, l.Height-1)], "bottom border (%d,%d) must be floor", x, l.Height-1)
	}
	for y := 0; y < l.Height; y++ {
		assert.False(t, l.Seats[l.Index(0, y)], "left border (0,%d) must be floor", y)
		assert.False(t, l.Seats[l.Index(l.Width-1, y)], "right border (%d,%d) must be floor", l.Width-1, y)
	}

	// First real row "L.LL..." starts at padded (1,1).
	assert.True(t, l.IsSeat(l.Index(1, 1)))
	assert.False(t, l.IsSeat(l.Index(2, 1)))
	assert.True(t, l.IsSeat(l.Index(3, 1)))
}

func TestParseLayoutRoundTrip(t *testing.T) {
	l := MustParseLayout(sampleLayout)
	assert.Equal(t, sampleLayout, l.String())
}

func TestParseLayoutToleratesCRLFAndTrailingBlankLines(t *testing.T) {
	l, err := ParseLayout(strings.NewReader("L.L\r\n.L.\r\n\r\n\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, l.Width)
	assert.Equal(t, 4, l.Height)
	assert.Equal(t, 3, l.SeatCount())
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrEmptyLayout},
		{name: "blank lines only", input: "\n\n", want: ErrEmptyLayout},
		{name: "ragged rows", input: "LL.\nL.\n", want: ErrNonRectangular},
		{name: "occupied marker", input: "L#L\n", want: ErrInvalidCell},
		{name: "unknown char", input: "L.L\nLxL\n", want: ErrInvalidCell},
		{name: "blank line inside", input: "L.L\n\nL.L\n", want: ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}
}

func TestParseLayoutSkipsSurroundingBlankLines(t *testing.T) {
	l, err := ParseLayout(strings.NewReader("\n  \nL.L\n.L.\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "L.L\n.L.\n", l.String())
	assert.Equal(t, 3, l.SeatCount())

	_, err = ParseLayout(strings.NewReader("\n\nL.L\nLL\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonRectangular))
	assert.Contains(t, err.Error(), "line 4", "line numbers count the skipped lines")
}

func TestMustParseLayoutPanicsOnRaggedRows(t *testing.T) {
	require.Panics(t, func() { MustParseLayout("LLL\nLL\n") })
}

func TestSeatCellsRowMajor(t *testing.T) {
	l := MustParseLayout("L.\n.L\n")
	// padded width 4: (1,1) -> 5, (2,2) -> 10
	assert.Equal(t, []int{5, 10}, l.SeatCells())
	x, y := l.Coordinate(10)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
}

func TestRenderAcceptsBothIndexings(t *testing.T) {
	l := MustParseLayout("LL\n.L\n")

	seatIndexed := []uint8{1, 0, 1}
	assert.Equal(t, "#L\n.#\n", l.Render(seatIndexed))

	cellIndexed := make([]uint8, l.Len())
	cellIndexed[l.Index(2, 1)] = 1
	assert.Equal(t, "L#\n.L\n", l.Render(cellIndexed))
}
