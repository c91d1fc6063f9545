package blend

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tkarvinen/go-anim-blend/internal/solver"
)

// Space is an immutable, fully precomputed blend space. It is safe for
// concurrent readers; per-frame evaluation writes only into the
// caller's weight buffer.
type Space struct {
	kind      Kind
	algorithm Algorithm
	clips     []Clip

	thresholds  []float64           // KindLinear
	directional *solver.Directional // KindDirectional
}

// Kind returns the space dimensionality.
func (s *Space) Kind() Kind {
	return s.kind
}

// Algorithm returns the 2D weighting scheme (meaningful for
// KindDirectional only).
func (s *Space) Algorithm() Algorithm {
	return s.algorithm
}

// NumClips returns the clip count.
func (s *Space) NumClips() int {
	return len(s.clips)
}

// Clip returns the clip at index i (as normalized by New: zero Speed
// replaced with 1).
func (s *Space) Clip(i int) Clip {
	return s.clips[i]
}

// Weights computes the per-clip contribution weights for the given
// parameter and returns the weight slice.
//
// dst is reused when it has at least NumClips() capacity; pass nil to
// allocate. Indexing matches the clip order given to New. For a
// non-empty space the weights are non-negative and sum to 1; an empty
// space returns an empty slice and the caller must not sample.
func (s *Space) Weights(dst []float64, param Vec2) []float64 {
	n := len(s.clips)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	switch s.kind {
	case KindLinear:
		solver.LinearWeights(dst, s.thresholds, param.X)
	case KindDirectional:
		s.directional.Weights(dst, param.X, param.Y)
	}
	return dst
}

// BlendedDuration returns the effective looping duration of the space
// under the given weights: each clip contributes its playback duration
// (Duration / Speed) scaled by its weight. Weights are assumed
// normalized, as produced by Weights. An empty space returns 0.
func (s *Space) BlendedDuration(weights []float64) float64 {
	if len(weights) == 0 || len(weights) != len(s.clips) {
		return 0
	}
	var total float64
	for i, clip := range s.clips {
		total += weights[i] * clip.Duration / clip.Speed
	}
	return total
}

// NormalizeWeights scales w in place so it sums to 1. Degenerate input
// (zero or non-finite sum) becomes an even split. It is exposed for
// callers that post-process weight arrays (masking clips out, layering)
// and need the normalization invariant restored.
func NormalizeWeights(w []float64) {
	if len(w) == 0 {
		return
	}
	total := floats.Sum(w)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		even := 1 / float64(len(w))
		for i := range w {
			w[i] = even
		}
		return
	}
	floats.Scale(1/total, w)
}
