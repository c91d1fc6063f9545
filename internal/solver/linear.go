// Package solver computes per-clip contribution weights for parametric
// blend spaces. All functions write into caller-provided buffers and
// allocate nothing, so they are safe to call once per animated instance
// per frame.
//
// Weight invariant: for any non-empty clip set and any finite
// parameter, the produced weights are non-negative and sum to 1 within
// floating-point tolerance. Empty clip sets produce all-zero output
// and the caller must not sample.
package solver

import "math"

// LinearWeights computes 1D blend weights for clips placed at the given
// thresholds, writing one weight per threshold into dst.
//
// thresholds must be sorted ascending; callers sort (or validate) once
// at construction, not per call. dst must have len(thresholds) entries.
//
// Parameters outside the threshold range clamp to the nearest edge
// clip. A parameter landing on a threshold, or inside a bracket
// narrower than the blend epsilon, yields weight 1 on a single clip.
// A NaN parameter puts full weight on the first clip rather than
// propagating into the output.
func LinearWeights(dst, thresholds []float64, param float64) {
	n := len(thresholds)
	for i := range dst {
		dst[i] = 0
	}

	switch n {
	case 0:
		return
	case 1:
		dst[0] = 1
		return
	}

	if math.IsNaN(param) || param <= thresholds[0] {
		dst[0] = 1
		return
	}
	if param >= thresholds[n-1] {
		dst[n-1] = 1
		return
	}

	// Linear scan for the bracketing pair. Clip counts are small
	// (typically <= 8), so this beats binary search in practice.
	for i := 1; i < n; i++ {
		upper := thresholds[i]
		if param > upper {
			continue
		}
		lower := thresholds[i-1]
		span := upper - lower
		if span < spanEpsilon {
			dst[i-1] = 1
			return
		}
		t := (param - lower) / span
		dst[i-1] = 1 - t
		dst[i] = t
		return
	}
}
