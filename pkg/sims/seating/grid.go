package seating

// GridEngine re-evaluates the whole padded grid every generation. Its
// occupancy vectors are cell-indexed.
type GridEngine struct {
	layout  *Layout
	rule    Rule
	offsets [8]int
}

// NewGridEngine returns a grid-scanning engine for l under r.
func NewGridEngine(l *Layout, r Rule) *GridEngine {
	g := &GridEngine{layout: l, rule: r}
	for k, d := range directions {
		g.offsets[k] = d[1]*l.Width + d[0]
	}
	return g
}

// Rule returns the rule the engine applies.
func (g *GridEngine) Rule() Rule { return g.rule }

// Len returns the number of cells in the padded grid.
func (g *GridEngine) Len() int { return g.layout.Len() }

// Initial returns a cell-indexed vector with every seat occupied.
func (g *GridEngine) Initial() []uint8 {
	state := make([]uint8, g.layout.Len())
	for i, s := range g.layout.Seats {
		if s {
			state[i] = 1
		}
	}
	return state
}

// Step writes the generation following prev into next.
func (g *GridEngine) Step(prev, next []uint8) {
	if g.rule.Policy == Visible {
		g.stepVisible(prev, next)
		return
	}
	g.stepAdjacent(prev, next)
}

func (g *GridEngine) stepAdjacent(prev, next []uint8) {
	seats := g.layout.Seats
	n := len(seats)
	prev, next = prev[:n], next[:n]
	for i := 0; i < n; i++ {
		if !seats[i] {
			next[i] = 0
			continue
		}
		// Seats never sit on the border, so i+off stays in range.
		var count uint8
		for _, off := range g.offsets {
			count += prev[i+off]
		}
		next[i] = g.rule.next(prev[i], count)
	}
}

func (g *GridEngine) stepVisible(prev, next []uint8) {
	l := g.layout
	for y0 := 0; y0 < l.Height; y0++ {
		for x0 := 0; x0 < l.Width; x0++ {
			i0 := l.Index(x0, y0)
			if !l.Seats[i0] {
				next[i0] = 0
				continue
			}
			var count uint8
			for _, d := range directions {
				x, y := x0+d[0], y0+d[1]
				for l.InBounds(x, y) {
					i := l.Index(x, y)
					if l.Seats[i] {
						count += prev[i]
						break
					}
					x += d[0]
					y += d[1]
				}
			}
			next[i0] = g.rule.next(prev[i0], count)
		}
	}
}
