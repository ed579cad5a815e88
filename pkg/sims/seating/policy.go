package seating

import (
	"fmt"
	"strings"
)

// Policy selects which seats count as a seat's relevant neighbors.
type Policy int

const (
	// Adjacent counts the up-to-8 seats in directly touching cells.
	Adjacent Policy = iota
	// Visible counts, per direction, the first seat seen across floor.
	Visible
)

// directions lists the 8 neighbor directions as (dx, dy) pairs in the order
// NW, N, NE, W, E, SW, S, SE.
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Directions returns a copy of the neighbor direction table.
func Directions() [8][2]int { return directions }

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Adjacent:
		return "adjacent"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps a policy name to its value.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent", "adjacency", "adj":
		return Adjacent, nil
	case "visible", "visibility", "vis":
		return Visible, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// Rule pairs a neighbor policy with the occupied-neighbor count at which an
// occupied seat is vacated.
type Rule struct {
	Policy    Policy
	Threshold uint8
}

// DefaultRule returns the standard threshold for p: 4 for adjacency and 5
// for visibility.
func DefaultRule(p Policy) Rule {
	if p == Visible {
		return Rule{Policy: Visible, Threshold: 5}
	}
	return Rule{Policy: Adjacent, Threshold: 4}
}

// Validate checks the policy and threshold.
func (r Rule) Validate() error {
	if r.Policy != Adjacent && r.Policy != Visible {
		return fmt.Errorf("%v: %w", r.Policy, ErrUnknownPolicy)
	}
	if r.Threshold < 1 || r.Threshold > 8 {
		return fmt.Errorf("got %d: %w", r.Threshold, ErrThreshold)
	}
	return nil
}

func (r Rule) String() string {
	return fmt.Sprintf("%s/%d", r.Policy, r.Threshold)
}

// next applies the seating rule to one seat.
func (r Rule) next(occupied uint8, count uint8) uint8 {
	if occupied != 0 {
		if count < r.Threshold {
			return 1
		}
		return 0
	}
	if count == 0 {
		return 1
	}
	return 0
}
