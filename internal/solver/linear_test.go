package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkarvinen/go-anim-blend/internal/testutil"
)

// =============================================================================
// 1D Weight Tests
// =============================================================================

// TestLinearWeights_Boundaries verifies the edge-clamping contract: a
// parameter outside the threshold range puts full weight on the
// nearest edge clip.
func TestLinearWeights_Boundaries(t *testing.T) {
	thresholds := []float64{0, 1, 2}

	tests := []struct {
		name  string
		param float64
		want  []float64
	}{
		{"far below range", -5, []float64{1, 0, 0}},
		{"far above range", 5, []float64{0, 0, 1}},
		{"on first threshold", 0, []float64{1, 0, 0}},
		{"on last threshold", 2, []float64{0, 0, 1}},
		{"on middle threshold", 1, []float64{0, 1, 0}},
		{"mid bracket", 1.5, []float64{0, 0.5, 0.5}},
		{"quarter bracket", 0.25, []float64{0.75, 0.25, 0}},
	}

	dst := make([]float64, len(thresholds))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			LinearWeights(dst, thresholds, tt.param)
			for i, want := range tt.want {
				assert.InDelta(t, want, dst[i], testutil.WeightTolerance,
					"weight[%d] for param %v", i, tt.param)
			}
			testutil.AssertWeights(t, dst)
		})
	}
}

// TestLinearWeights_Degenerate verifies the empty and single-clip
// cases are valid, not exceptional.
func TestLinearWeights_Degenerate(t *testing.T) {
	// Empty: nothing to write, nothing to sample.
	LinearWeights(nil, nil, 0.5)

	dst := []float64{0}
	LinearWeights(dst, []float64{3}, -10)
	assert.Equal(t, 1.0, dst[0], "single clip always carries full weight")
}

// TestLinearWeights_NarrowBracket verifies that a bracket narrower than
// the blend epsilon snaps to a single clip instead of dividing by ~0.
func TestLinearWeights_NarrowBracket(t *testing.T) {
	thresholds := []float64{0, 1e-6, 1}
	dst := make([]float64, 3)

	LinearWeights(dst, thresholds, 5e-7)
	testutil.AssertNoNaNOrInf(t, dst)
	testutil.AssertWeights(t, dst)
	assert.Equal(t, 1.0, dst[0], "narrow bracket snaps to the lower clip")
}

// TestLinearWeights_NaNParameter verifies a NaN parameter degrades to
// full weight on the first clip instead of reaching the output.
func TestLinearWeights_NaNParameter(t *testing.T) {
	dst := make([]float64, 3)
	LinearWeights(dst, []float64{0, 1, 2}, math.NaN())
	testutil.AssertNoNaNOrInf(t, dst)
	assert.Equal(t, []float64{1, 0, 0}, dst)
}

// TestLinearWeights_Normalization sweeps the parameter across and past
// the whole range and checks the weight invariants at every step.
func TestLinearWeights_Normalization(t *testing.T) {
	thresholds := []float64{-2, -0.5, 0, 0.1, 3}
	dst := make([]float64, len(thresholds))

	for param := -4.0; param <= 5.0; param += 0.01 {
		LinearWeights(dst, thresholds, param)
		if !testutil.AssertWeights(t, dst, "param %v", param) {
			t.FailNow()
		}
	}
}

func BenchmarkLinearWeights(b *testing.B) {
	thresholds := []float64{0, 1, 2, 4, 8}
	dst := make([]float64, len(thresholds))
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		LinearWeights(dst, thresholds, float64(i%9))
		i++
	}
}
