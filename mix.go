package blend

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tkarvinen/go-anim-blend/internal/simdops"
)

// Pose-channel mixing helpers. The compositor that owns skeleton
// sampling typically stores each clip's sampled pose as a flat channel
// buffer (translations, rotations-as-components, whatever its layout
// is); these helpers fold a weight array over such buffers so the
// numeric core and the compositor agree on the weighted-sum contract.

// MixWeighted computes the weighted sum of per-clip channel buffers:
// dst[j] = sum over i of weights[i] * sources[i][j]. Zero weights are
// skipped, so fully faded-out clips cost nothing. Every source must
// have at least len(dst) samples; len(weights) must equal
// len(sources).
func MixWeighted(dst []float64, sources [][]float64, weights []float64) {
	for j := range dst {
		dst[j] = 0
	}
	for i, src := range sources {
		w := weights[i]
		if w == 0 {
			continue
		}
		floats.AddScaled(dst, w, src[:len(dst)])
	}
}

// MixWeightedFloat32 is the float32-native variant of MixWeighted,
// using SIMD scale kernels. scratch must hold at least len(dst)
// samples; pass nil to allocate. Use this when the compositor keeps
// poses in float32 for memory bandwidth.
func MixWeightedFloat32(dst, scratch []float32, sources [][]float32, weights []float32) {
	if cap(scratch) < len(dst) {
		scratch = make([]float32, len(dst))
	}
	scratch = scratch[:len(dst)]

	ops := simdops.Float32Ops()
	for j := range dst {
		dst[j] = 0
	}
	for i, src := range sources {
		w := weights[i]
		if w == 0 {
			continue
		}
		ops.Scale(scratch, src[:len(dst)], w)
		for j := range dst {
			dst[j] += scratch[j]
		}
	}
}

// WeightedSample computes a single blended sample from a frame-major
// layout: values holds one sample per clip for the same channel and
// frame. Both slices must have equal length.
func WeightedSample(values, weights []float64) float64 {
	return simdops.Float64Ops().DotProductUnsafe(values, weights)
}

// WeightedSampleFloat32 is the float32 variant of WeightedSample.
func WeightedSampleFloat32(values, weights []float32) float32 {
	return simdops.Float32Ops().DotProductUnsafe(values, weights)
}

// NormalizeWeightsFloat32 scales w in place so it sums to 1, matching
// NormalizeWeights for float32 buffers. Degenerate input becomes an
// even split.
func NormalizeWeightsFloat32(w []float32) {
	if len(w) == 0 {
		return
	}
	ops := simdops.Float32Ops()
	total := ops.Sum(w)
	if total <= 0 || math.IsNaN(float64(total)) || math.IsInf(float64(total), 0) {
		even := 1 / float32(len(w))
		for i := range w {
			w[i] = even
		}
		return
	}
	ops.Scale(w, w, 1/total)
}
