package seating

import (
	"bytes"
	"fmt"
	"strings"
)

// Engine computes one generation of the seating automaton.
//
// Step must read only prev and must write every entry of next; the two
// slices never alias.
type Engine interface {
	Len() int
	Initial() []uint8
	Step(prev, next []uint8)
}

// Result is the outcome of driving an engine to its fixed point.
type Result struct {
	// Occupancy is the stable vector, indexed as the engine indexes it.
	Occupancy []uint8
	// Generations counts the steps taken, including the final step that
	// reproduced its input.
	Generations int
}

// Occupied returns the number of occupied seats.
func (r Result) Occupied() int { return CountOccupied(r.Occupancy) }

// CountOccupied sums an occupancy vector.
func CountOccupied(state []uint8) int {
	n := 0
	for _, v := range state {
		n += int(v)
	}
	return n
}

// Stabilize starts from e.Initial() and steps until a generation reproduces
// its input. Inputs that never converge loop forever.
func Stabilize(e Engine) Result {
	return StabilizeFunc(e, nil)
}

// StabilizeFunc is Stabilize with observe, when non-nil, called after every
// generation with the vector just written. observe must not retain occ.
func StabilizeFunc(e Engine, observe func(gen int, occ []uint8)) Result {
	cur := e.Initial()
	nxt := make([]uint8, len(cur))
	gens := 0
	for {
		e.Step(cur, nxt)
		gens++
		if observe != nil {
			observe(gens, nxt)
		}
		if bytes.Equal(cur, nxt) {
			return Result{Occupancy: nxt, Generations: gens}
		}
		cur, nxt = nxt, cur
	}
}

// EngineKind selects an Engine implementation.
type EngineKind int

const (
	// EngineGraph is the compiled neighbor-graph engine.
	EngineGraph EngineKind = iota
	// EngineGrid is the dense grid-scan engine.
	EngineGrid
)

// EngineKinds lists every engine kind.
var EngineKinds = []EngineKind{EngineGraph, EngineGrid}

func (k EngineKind) String() string {
	switch k {
	case EngineGraph:
		return "graph"
	case EngineGrid:
		return "grid"
	default:
		return fmt.Sprintf("engine(%d)", int(k))
	}
}

// ParseEngine maps an engine name to its kind.
func ParseEngine(s string) (EngineKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "graph", "dod", "compiled":
		return EngineGraph, nil
	case "grid", "basic", "scan":
		return EngineGrid, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownEngine)
	}
}

// NewEngine builds the engine of the given kind for l under r.
func NewEngine(l *Layout, r Rule, kind EngineKind) (Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case EngineGraph:
		return NewGraphEngine(l, r), nil
	case EngineGrid:
		return NewGridEngine(l, r), nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownEngine)
	}
}

// Solve builds the requested engine and drives it to its fixed point.
func Solve(l *Layout, r Rule, kind EngineKind) (Result, error) {
	e, err := NewEngine(l, r, kind)
	if err != nil {
		return Result{}, err
	}
	return Stabilize(e), nil
}
