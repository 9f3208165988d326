package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedNonNegative(t *testing.T) {
	for i := 0; i < 16; i++ {
		seed, err := NewSeed()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, seed, int64(0))
	}
}

func TestSourceFixedSeedIsDeterministic(t *testing.T) {
	a, seedA, err := Source(7)
	require.NoError(t, err)
	b, seedB, err := Source(7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), seedA)
	assert.Equal(t, seedA, seedB)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestSourceZeroDrawsSeed(t *testing.T) {
	src, seed, err := Source(0)
	require.NoError(t, err)
	assert.NotNil(t, src)
	assert.GreaterOrEqual(t, seed, int64(0))
}
