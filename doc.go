// Package blend provides the numeric core of a skeletal-animation
// blending engine in pure Go: per-clip contribution weights for 1D and
// 2D parametric blend spaces, a compact Hermite transition-curve
// evaluator, a critically-damped spring smoother, and the crossfade
// model that ties them together.
//
// The package is computation only. It knows nothing about skeletons,
// assets, or rendering: an external pose sampler feeds it a live
// parameter value each tick, receives a weight per clip back, and
// multiplies each clip's sampled pose by its weight.
//
// # Features
//
//   - 1D linear blend spaces with threshold bracketing
//   - 2D directional blend spaces under two algorithms: gradient-band
//     ("Simple Directional") and inverse distance weighting
//   - Hermite-spline transition curves (0-8 keyframes) with an
//     identity fast path for the empty (linear) curve
//   - Critically-damped SmoothDamp springs, scalar and 2D, with an
//     overshoot snap for fast-moving targets
//   - From-state/to-state transition crossfades shaped by a curve
//   - 16-bit quantized keyframe codec (8 bytes per keyframe)
//   - Weighted pose-channel mixing helpers, float64 and float32
//     (SIMD-accelerated via github.com/tphakala/simd)
//   - Zero allocation in every per-frame path; weight buffers are
//     caller-owned and reused
//
// # Quick Start
//
// Build a blend space once, then query it every tick:
//
//	space, err := blend.New(&blend.Config{
//	    Kind: blend.KindLinear,
//	    Clips: []blend.Clip{
//	        {Duration: 1.2, Position: blend.Vec2{X: 0}},   // idle
//	        {Duration: 0.9, Position: blend.Vec2{X: 2}},   // walk
//	        {Duration: 0.6, Position: blend.Vec2{X: 6}},   // run
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	weights := make([]float64, space.NumClips())
//	for tick := range ticks {
//	    space.Weights(weights, blend.Vec2{X: speed})
//	    // sample each clip, scale by weights[i], sum
//	}
//
// Smooth the parameter, not the weights, to avoid discontinuities when
// input jumps:
//
//	var spring blend.Spring
//	smoothed := spring.Advance(rawSpeed, dt, blend.SpringConfig{SmoothTime: 0.15})
//
// Crossfade between two states with a shaped curve:
//
//	tr := blend.NewTransition(0.3, blend.PresetCurve(blend.CurveSmoothStep))
//	tr.Advance(dt)
//	tr.Apply(fromWeights, toWeights) // scales the two sets in place
//
// # Architecture
//
// The root package holds the public data model (Clip, Space, Curve,
// Spring, Transition) and the curve evaluator; weight solvers live in
// internal/solver and the spring integrator in internal/spring. Spaces
// precompute solver geometry (sorted thresholds, polar angles) at
// construction so the per-frame path is a handful of comparisons and
// multiplies.
//
// # Error Handling
//
// Per-frame functions never return errors; degenerate inputs degrade
// to a deterministic result (empty clip sets yield zero weights,
// near-zero divisions snap to a single clip, out-of-range parameters
// clamp to the nearest edge). Errors are reserved for construction
// (New, DecodeCurve), where configuration mistakes are caught once.
//
// # Thread Safety
//
// A Space is immutable after New and safe for concurrent readers.
// Spring and Transition values are single-owner mutable state; give
// each animated instance its own. Instances share nothing, so callers
// may evaluate them in parallel with no synchronization.
package blend
