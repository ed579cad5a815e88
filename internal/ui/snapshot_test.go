package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seating/internal/core"
)

func TestSnapshotLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{{Key: "policy", Label: "Policy", Value: "visible"}}},
		{Name: "State", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "6"},
			{Key: "stable", Label: "Stable", Value: "true"},
		}},
	}}
	assert.Equal(t, []hudLine{
		{text: "Run", header: true},
		{text: "Policy: visible"},
		{text: "State", header: true},
		{text: "Generation: 6"},
		{text: "Stable: true"},
	}, snapshotLines(snap))
	assert.Empty(t, snapshotLines(core.ParameterSnapshot{}))
}

func TestAdjustedValue(t *testing.T) {
	ctrl := core.ParameterControl{Key: "threshold", Step: 1, Min: 1, Max: 8}

	v, ok := adjustedValue(ctrl, 4, 1)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = adjustedValue(ctrl, 4, -1)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = adjustedValue(ctrl, 8, 1)
	assert.False(t, ok, "clamped at max")
	_, ok = adjustedValue(ctrl, 1, -1)
	assert.False(t, ok, "clamped at min")
	_, ok = adjustedValue(ctrl, 4, 0)
	assert.False(t, ok)

	v, ok = adjustedValue(core.ParameterControl{Key: "x"}, 10, 1)
	assert.True(t, ok, "zero range is unbounded")
	assert.Equal(t, 11, v)
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 10, H: 5}

	x, y, ok := cellAt(37, 12, 8, size)
	assert.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 1, y)

	_, _, ok = cellAt(80, 0, 8, size)
	assert.False(t, ok, "right of the grid")
	_, _, ok = cellAt(0, 40, 8, size)
	assert.False(t, ok, "below the grid")
	_, _, ok = cellAt(-1, 0, 8, size)
	assert.False(t, ok)
	_, _, ok = cellAt(3, 3, 0, size)
	assert.False(t, ok)
}
