package ui

import "seating/internal/core"

const keyHelp = "space pause  n step  r reset  s reseed  q quit"

type hudLine struct {
	text   string
	header bool
}

// snapshotLines flattens a snapshot into display lines, one header per group.
func snapshotLines(snap core.ParameterSnapshot) []hudLine {
	var lines []hudLine
	for _, g := range snap.Groups {
		lines = append(lines, hudLine{text: g.Name, header: true})
		for _, p := range g.Params {
			lines = append(lines, hudLine{text: p.Label + ": " + p.Value})
		}
	}
	return lines
}

// adjustedValue applies one step of ctrl in direction to current, clamped to
// the control range. It reports false when the value would not change.
func adjustedValue(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.Max > ctrl.Min {
		if target < ctrl.Min {
			target = ctrl.Min
		}
		if target > ctrl.Max {
			target = ctrl.Max
		}
	}
	return target, target != current
}

// cellAt maps a screen position to grid coordinates for a view drawn at scale.
func cellAt(px, py, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/scale, py/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
