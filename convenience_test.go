package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvinen/go-anim-blend/internal/testutil"
)

func TestWeights1D(t *testing.T) {
	w := Weights1D([]float64{0, 1, 2}, 1.5)
	require.Len(t, w, 3)
	assert.InDelta(t, 0.5, w[1], testutil.WeightTolerance)
	assert.InDelta(t, 0.5, w[2], testutil.WeightTolerance)

	assert.Empty(t, Weights1D(nil, 0))
}

func TestWeightsIDW(t *testing.T) {
	positions := []Vec2{{X: 1}, {X: -1}}
	w := WeightsIDW(positions, Vec2{X: 0.5}, 0)
	testutil.AssertWeights(t, w)
	assert.Greater(t, w[0], w[1])
}

func TestNewLinear1D_RejectsUnsorted(t *testing.T) {
	_, err := NewLinear1D(2, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCrossfadeSmooth(t *testing.T) {
	tr := CrossfadeSmooth(1.0)
	tr.Advance(0.5)
	assert.InDelta(t, 0.5, tr.BlendWeight(), 1e-12, "S-curve midpoint crosses 0.5")

	tr.Advance(0.5)
	assert.Equal(t, 1.0, tr.BlendWeight())
	assert.Equal(t, TransitionComplete, tr.Phase())
}
