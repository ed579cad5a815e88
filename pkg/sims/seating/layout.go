// Package seating simulates the waiting-area seating automaton: seats fill
// when nobody relevant is sitting nearby and empty when too crowded, until
// the whole layout stops changing.
//
// Two engines implement the same generation rule. GridEngine rescans the
// padded grid every generation; GraphEngine compiles each seat's relevant
// neighbors once and then only scatters votes over that compact graph.
package seating

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	seatChar     = 'L'
	floorChar    = '.'
	occupiedChar = '#'
)

// Layout is a rectangular seat map stored row-major with a one-cell floor
// border on every side. Width and Height include the border, so every real
// cell's 8 neighbors are addressable without bounds checks.
type Layout struct {
	Width, Height int
	Seats         []bool
}

// ParseLayout reads line-oriented text where 'L' marks a seat and '.' marks
// floor. All rows must share one length. Blank lines before the first row and
// after the last are ignored.
func ParseLayout(r io.Reader) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seating: read layout: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	skipped := 0
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
		skipped++
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	cols := len(rows[0])
	l := &Layout{Width: cols + 2, Height: len(rows) + 2}
	l.Seats = make([]bool, l.Width*l.Height)
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("line %d has %d cells, want %d: %w", skipped+y+1, len(row), cols, ErrNonRectangular)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case seatChar:
				l.Seats[l.Index(x+1, y+1)] = true
			case floorChar:
			default:
				return nil, fmt.Errorf("line %d column %d %q: %w", skipped+y+1, x+1, row[x], ErrInvalidCell)
			}
		}
	}
	return l, nil
}

// MustParseLayout is like ParseLayout but panics on malformed input.
func MustParseLayout(s string) *Layout {
	l, err := ParseLayout(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of cells including the border.
func (l *Layout) Len() int { return len(l.Seats) }

// Index returns the linear index for padded coordinates (x, y).
func (l *Layout) Index(x, y int) int { return y*l.Width + x }

// Coordinate converts a linear index back to padded (x, y).
func (l *Layout) Coordinate(i int) (x, y int) { return i % l.Width, i / l.Width }

// InBounds reports whether padded (x, y) lies on the grid.
func (l *Layout) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// IsSeat reports whether cell i holds a seat.
func (l *Layout) IsSeat(i int) bool { return l.Seats[i] }

// SeatCount returns the number of seats.
func (l *Layout) SeatCount() int {
	n := 0
	for _, s := range l.Seats {
		if s {
			n++
		}
	}
	return n
}

// SeatCells lists the cell index of every seat in row-major order. The
// position in the returned slice is the seat's compact index.
func (l *Layout) SeatCells() []int {
	cells := make([]int, 0, l.SeatCount())
	for i, s := range l.Seats {
		if s {
			cells = append(cells, i)
		}
	}
	return cells
}

// String renders the layout without its border.
func (l *Layout) String() string {
	return l.Render(nil)
}

// Render draws the layout without its border, marking occupied seats with
// '#'. state may be cell-indexed (len == l.Len()) or seat-indexed
// (len == l.SeatCount()); nil renders every seat as empty.
func (l *Layout) Render(state []uint8) string {
	occupied := l.expand(state)
	var b strings.Builder
	b.Grow((l.Width - 1) * (l.Height - 2))
	for y := 1; y < l.Height-1; y++ {
		for x := 1; x < l.Width-1; x++ {
			i := l.Index(x, y)
			switch {
			case !l.Seats[i]:
				b.WriteByte(floorChar)
			case occupied != nil && occupied[i] != 0:
				b.WriteByte(occupiedChar)
			default:
				b.WriteByte(seatChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// expand maps an occupancy vector onto cell indices.
func (l *Layout) expand(state []uint8) []uint8 {
	switch len(state) {
	case 0:
		return nil
	case l.Len():
		return state
	}
	cells := make([]uint8, l.Len())
	for k, p := range l.SeatCells() {
		if k < len(state) {
			cells[p] = state[k]
		}
	}
	return cells
}
