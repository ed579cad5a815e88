package seating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{
		"adjacent":   Adjacent,
		"Adjacency":  Adjacent,
		" visible ":  Visible,
		"visibility": Visible,
	} {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePolicy("diagonal")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestDefaultRuleThresholds(t *testing.T) {
	assert.Equal(t, Rule{Policy: Adjacent, Threshold: 4}, DefaultRule(Adjacent))
	assert.Equal(t, Rule{Policy: Visible, Threshold: 5}, DefaultRule(Visible))
	assert.Equal(t, "visible/5", DefaultRule(Visible).String())
}

func TestRuleValidate(t *testing.T) {
	require.NoError(t, Rule{Policy: Adjacent, Threshold: 1}.Validate())
	require.NoError(t, Rule{Policy: Visible, Threshold: 8}.Validate())

	assert.True(t, errors.Is(Rule{Policy: Adjacent}.Validate(), ErrThreshold))
	assert.True(t, errors.Is(Rule{Policy: Adjacent, Threshold: 9}.Validate(), ErrThreshold))
	assert.True(t, errors.Is(Rule{Policy: Policy(7), Threshold: 4}.Validate(), ErrUnknownPolicy))
}

func TestRuleTransition(t *testing.T) {
	r := Rule{Policy: Adjacent, Threshold: 4}

	assert.Equal(t, uint8(1), r.next(0, 0), "empty seat with no neighbors fills")
	assert.Equal(t, uint8(0), r.next(0, 1), "empty seat with a neighbor stays empty")
	assert.Equal(t, uint8(1), r.next(1, 3), "occupied seat below threshold stays")
	assert.Equal(t, uint8(0), r.next(1, 4), "occupied seat at threshold leaves")
	assert.Equal(t, uint8(0), r.next(1, 8), "occupied seat above threshold leaves")
}

func TestDirectionsAreDistinctUnitSteps(t *testing.T) {
	seen := map[[2]int]bool{}
	for _, d := range Directions() {
		require.False(t, d == [2]int{0, 0})
		require.LessOrEqual(t, abs(d[0]), 1)
		require.LessOrEqual(t, abs(d[1]), 1)
		seen[d] = true
	}
	assert.Len(t, seen, 8)
}

func TestDirectionsReturnsCopy(t *testing.T) {
	d := Directions()
	d[0] = [2]int{5, 5}
	assert.Equal(t, [2]int{-1, -1}, Directions()[0])

	// The engines still see the original table.
	l := MustParseLayout("LL\nLL\n")
	assert.Equal(t, 12, CompileAdjacent(l).EdgeCount())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
