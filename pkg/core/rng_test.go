package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGIsDeterministic(t *testing.T) {
	a, b := NewRNG(11), NewRNG(11)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, 0, a.IntN(0))
	assert.False(t, a.Chance(0))
	assert.True(t, a.Chance(1))
}

func TestRandomLayoutText(t *testing.T) {
	text := RandomLayoutText(NewRNG(3), 7, 4, 0.5)
	rows := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Len(t, row, 7)
		assert.Empty(t, strings.Trim(row, "L."))
	}
	assert.Equal(t, text, RandomLayoutText(NewRNG(3), 7, 4, 0.5))

	assert.Equal(t, "..\n..\n", RandomLayoutText(NewRNG(1), 2, 2, 0))
	assert.Empty(t, RandomLayoutText(NewRNG(1), 0, 3, 0.5))
}
