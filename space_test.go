package blend

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarvinen/go-anim-blend/internal/testutil"
)

// =============================================================================
// Space Evaluation
// =============================================================================

// TestSpace_LinearWeights exercises the full path from Config through
// the 1D solver.
func TestSpace_LinearWeights(t *testing.T) {
	space, err := NewLinear1D(0, 1, 2)
	require.NoError(t, err)

	w := space.Weights(nil, Vec2{X: -5})
	assert.Equal(t, []float64{1, 0, 0}, w)

	w = space.Weights(w, Vec2{X: 5})
	assert.Equal(t, []float64{0, 0, 1}, w)

	w = space.Weights(w, Vec2{X: 1.5})
	assert.InDelta(t, 0.5, w[1], testutil.WeightTolerance)
	assert.InDelta(t, 0.5, w[2], testutil.WeightTolerance)
	testutil.AssertWeights(t, w)
}

// TestSpace_DirectionalWeights exercises both 2D algorithms through the
// public API.
func TestSpace_DirectionalWeights(t *testing.T) {
	positions := []Vec2{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}

	for _, algo := range []Algorithm{SimpleDirectional, InverseDistance} {
		space, err := NewDirectional2D(algo, positions...)
		require.NoError(t, err)

		w := space.Weights(nil, Vec2{X: 0.7, Y: 0.1})
		testutil.AssertWeights(t, w)
		testutil.AssertNoNaNOrInf(t, w)
		assert.Greater(t, w[0], w[2], "east dominates a mostly-east parameter")
	}
}

// TestSpace_WeightsBufferReuse verifies the caller's buffer is reused
// when it has capacity and replaced only when it doesn't.
func TestSpace_WeightsBufferReuse(t *testing.T) {
	space, err := NewLinear1D(0, 1)
	require.NoError(t, err)

	buf := make([]float64, 2)
	out := space.Weights(buf, Vec2{X: 0.5})
	assert.Same(t, &buf[0], &out[0], "buffer with capacity is reused")

	out = space.Weights(nil, Vec2{X: 0.5})
	require.Len(t, out, 2)
}

// TestSpace_NormalizationSweep fuzzes both kinds with random
// parameters; every produced weight array must be a convex
// combination.
func TestSpace_NormalizationSweep(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	linear, err := NewLinear1D(-1, 0, 0.5, 2)
	require.NoError(t, err)
	directional, err := NewDirectional2D(SimpleDirectional,
		Vec2{}, Vec2{X: 2}, Vec2{Y: 2}, Vec2{X: -2, Y: 1})
	require.NoError(t, err)

	wl := make([]float64, linear.NumClips())
	wd := make([]float64, directional.NumClips())
	for i := 0; i < 500; i++ {
		wl = linear.Weights(wl, Vec2{X: rng.Float64()*10 - 5})
		wd = directional.Weights(wd, Vec2{X: rng.Float64()*10 - 5, Y: rng.Float64()*10 - 5})
		if !testutil.AssertWeights(t, wl) || !testutil.AssertWeights(t, wd) {
			t.FailNow()
		}
	}
}

// =============================================================================
// Derived Quantities
// =============================================================================

func TestSpace_BlendedDuration(t *testing.T) {
	space, err := New(&Config{
		Kind: KindLinear,
		Clips: []Clip{
			{Duration: 2.0, Speed: 1, Position: Vec2{X: 0}},
			{Duration: 1.0, Speed: 2, Position: Vec2{X: 1}}, // plays in 0.5s
		},
	})
	require.NoError(t, err)

	w := space.Weights(nil, Vec2{X: 0})
	assert.InDelta(t, 2.0, space.BlendedDuration(w), 1e-12)

	w = space.Weights(w, Vec2{X: 1})
	assert.InDelta(t, 0.5, space.BlendedDuration(w), 1e-12)

	w = space.Weights(w, Vec2{X: 0.5})
	assert.InDelta(t, 1.25, space.BlendedDuration(w), 1e-12)

	assert.Zero(t, space.BlendedDuration(nil), "mismatched weight slice yields 0")
}

func TestNormalizeWeights(t *testing.T) {
	w := []float64{1, 3}
	NormalizeWeights(w)
	assert.InDelta(t, 0.25, w[0], 1e-12)
	assert.InDelta(t, 0.75, w[1], 1e-12)

	zero := []float64{0, 0, 0, 0}
	NormalizeWeights(zero)
	for _, v := range zero {
		assert.InDelta(t, 0.25, v, 1e-12, "degenerate input becomes an even split")
	}

	NormalizeWeights(nil) // no panic
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkSpaceWeights(b *testing.B) {
	linear, _ := NewLinear1D(0, 1, 2, 4, 8)
	directional, _ := NewDirectional2D(SimpleDirectional,
		Vec2{}, Vec2{X: 2}, Vec2{Y: 2}, Vec2{X: -2}, Vec2{Y: -2})

	b.Run("linear", func(b *testing.B) {
		w := make([]float64, linear.NumClips())
		b.ReportAllocs()
		i := 0
		for b.Loop() {
			w = linear.Weights(w, Vec2{X: float64(i % 9)})
			i++
		}
	})
	b.Run("directional", func(b *testing.B) {
		w := make([]float64, directional.NumClips())
		b.ReportAllocs()
		i := 0
		for b.Loop() {
			w = directional.Weights(w, Vec2{X: float64(i%5) - 2, Y: 1})
			i++
		}
	})
}
