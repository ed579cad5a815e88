package seating

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"seating/internal/core"
	pcore "seating/pkg/core"
)

// Display codes written to Cells.
const (
	CellFloor    uint8 = 0
	CellEmpty    uint8 = 1
	CellOccupied uint8 = 2
)

const thresholdKey = "threshold"

// Sim steps the seating automaton one generation at a time so it can be
// watched. Generation 0 shows every seat empty; generation 1 fills them all.
type Sim struct {
	cfg    Config
	rule   Rule
	layout *Layout
	engine Engine

	cur, nxt  []uint8
	seatCells []int
	display   *core.ByteGrid

	graph *Graph

	gen       int
	stable    bool
	generated bool
	err       error
}

// New returns a Sim over an already parsed layout.
func New(l *Layout, r Rule, kind EngineKind) (*Sim, error) {
	cfg := DefaultConfig()
	cfg.Policy = r.Policy
	cfg.Threshold = r.Threshold
	cfg.Engine = kind
	s := &Sim{cfg: cfg}
	if err := s.load(l, r); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithConfig builds a Sim from cfg. When cfg.Input cannot be read the
// error is kept in Err and a generated layout is used instead.
func NewWithConfig(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	if cfg.Input != "" {
		l, err := readLayoutFile(cfg.Input)
		if err == nil {
			err = s.load(l, cfg.Rule())
		}
		if err == nil {
			return s
		}
		s.err = err
		s.cfg.Input = ""
	}
	s.generate(cfg.Seed)
	return s
}

func readLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seating: open layout: %w", err)
	}
	defer f.Close()
	return ParseLayout(f)
}

func (s *Sim) generate(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	text := pcore.RandomLayoutText(pcore.NewRNG(seed), s.cfg.Width, s.cfg.Height, s.cfg.Density)
	l, err := ParseLayout(bytes.NewBufferString(text))
	if err != nil {
		l = MustParseLayout(".")
	}
	s.generated = true
	rule := s.cfg.Rule()
	if err := s.load(l, rule); err != nil {
		s.err = err
		_ = s.load(l, DefaultRule(rule.Policy))
	}
}

func (s *Sim) load(l *Layout, r Rule) error {
	e, err := NewEngine(l, r, s.cfg.Engine)
	if err != nil {
		return err
	}
	s.layout = l
	s.rule = r
	s.engine = e
	s.graph = nil
	if ge, ok := e.(*GraphEngine); ok {
		s.graph = ge.Graph()
	}
	s.seatCells = l.SeatCells()
	s.display = core.NewByteGrid(l.Width-2, l.Height-2)
	s.restart()
	return nil
}

func (s *Sim) restart() {
	s.cur = nil
	s.nxt = make([]uint8, s.engine.Len())
	s.gen = 0
	s.stable = false
	s.refresh()
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "seating" }

// Size returns the layout dimensions without the floor border.
func (s *Sim) Size() core.Size { return core.Size{W: s.display.W, H: s.display.H} }

// Cells exposes the display buffer.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Layout returns the simulated layout.
func (s *Sim) Layout() *Layout { return s.layout }

// Rule returns the active rule.
func (s *Sim) Rule() Rule { return s.rule }

// Err reports why a configured input layout was not used, if it was not.
func (s *Sim) Err() error { return s.err }

// Generation returns the number of generations computed so far.
func (s *Sim) Generation() int { return s.gen }

// Stable reports whether the last step reproduced its input.
func (s *Sim) Stable() bool { return s.stable }

// Occupied returns the number of currently occupied seats.
func (s *Sim) Occupied() int { return CountOccupied(s.cur) }

// Occupancy returns the current occupancy vector, indexed as the engine
// indexes it. It is nil before the first step.
func (s *Sim) Occupancy() []uint8 { return s.cur }

// Reset restarts from generation 0. Generated layouts are regenerated from
// seed (0 selects the configured seed); file layouts are kept.
func (s *Sim) Reset(seed int64) {
	if s.generated && seed != 0 && seed != s.cfg.Seed {
		s.cfg.Seed = seed
		s.generate(seed)
		return
	}
	s.restart()
}

// Step advances one generation. It is a no-op once the layout is stable.
func (s *Sim) Step() {
	if s.stable {
		return
	}
	if s.cur == nil {
		s.cur = s.engine.Initial()
		s.gen = 1
		s.refresh()
		return
	}
	s.engine.Step(s.cur, s.nxt)
	s.gen++
	if bytes.Equal(s.cur, s.nxt) {
		s.stable = true
	}
	s.cur, s.nxt = s.nxt, s.cur
	s.refresh()
}

// refresh projects the occupancy vector onto the display buffer.
func (s *Sim) refresh() {
	s.display.Clear()
	w := s.layout.Width
	seatIndexed := s.cur != nil && len(s.cur) == len(s.seatCells)
	for k, p := range s.seatCells {
		v := CellEmpty
		switch {
		case s.cur == nil:
		case seatIndexed && s.cur[k] != 0:
			v = CellOccupied
		case !seatIndexed && s.cur[p] != 0:
			v = CellOccupied
		}
		x, y := p%w, p/w
		s.display.Set(x-1, y-1, v)
	}
}

// Neighbors returns the relevant neighbors of the seat at unpadded (x, y)
// under the active policy, as unpadded coordinates. It returns nil for floor
// or out-of-range positions.
func (s *Sim) Neighbors(x, y int) [][2]int {
	l := s.layout
	if x < 0 || y < 0 || x >= l.Width-2 || y >= l.Height-2 {
		return nil
	}
	p := l.Index(x+1, y+1)
	if !l.Seats[p] {
		return nil
	}
	if s.graph == nil {
		s.graph = Compile(l, s.rule.Policy)
	}
	k := sort.SearchInts(s.seatCells, p)
	nbrs := s.graph.Neighbors(k)
	out := make([][2]int, len(nbrs))
	for i, q := range nbrs {
		nx, ny := l.Coordinate(s.seatCells[q])
		out[i] = [2]int{nx - 1, ny - 1}
	}
	return out
}

// Parameters reports the run settings and progress.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "policy", Label: "Policy", Type: core.ParamTypeString, Value: s.rule.Policy.String()},
				{Key: "engine", Label: "Engine", Type: core.ParamTypeString, Value: s.cfg.Engine.String()},
				{Key: thresholdKey, Label: "Threshold", Type: core.ParamTypeInt, Value: strconv.Itoa(int(s.rule.Threshold))},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(s.gen)},
				{Key: "occupied", Label: "Occupied", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Occupied())},
				{Key: "seats", Label: "Seats", Type: core.ParamTypeInt, Value: strconv.Itoa(len(s.seatCells))},
				{Key: "stable", Label: "Stable", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.stable)},
			},
		},
	}}
}

// ParameterControls exposes the threshold to the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: thresholdKey, Label: "Threshold", Step: 1, Min: 1, Max: 8}}
}

// SetIntParameter changes the threshold and restarts the run.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != thresholdKey || value < 1 || value > 8 {
		return false
	}
	r := s.rule
	r.Threshold = uint8(value)
	if err := s.load(s.layout, r); err != nil {
		return false
	}
	s.cfg.Threshold = r.Threshold
	return true
}

func init() {
	core.Register("seating", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
