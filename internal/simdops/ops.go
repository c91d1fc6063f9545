// Package simdops provides generic SIMD operations for float32 and
// float64 pose-channel buffers. The generic dispatch lets the mixing
// helpers support both precisions from a single codebase; with
// Profile-Guided Optimization the function-pointer calls devirtualize
// in hot paths.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated kernels for type F. Pose mixing needs
// only scale, sum, and dot product; anything heavier lives with the
// caller.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	// dst and a may be the same slice.
	Scale func(dst, a []F, s F)

	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// DotProductUnsafe computes the dot product without bounds
	// checking. Use only when slices are guaranteed equal length.
	DotProductUnsafe func(a, b []F) F
}

// Pre-instantiated operation tables, one per float type.
var (
	ops32 = Ops[float32]{
		Scale:            f32.Scale,
		Sum:              f32.Sum,
		DotProductUnsafe: f32.DotProductUnsafe,
	}
	ops64 = Ops[float64]{
		Scale:            f64.Scale,
		Sum:              f64.Sum,
		DotProductUnsafe: f64.DotProductUnsafe,
	}
)

// For returns the Ops instance for type F. The type switch happens at
// instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float32Ops returns the float32 SIMD operations.
// Convenience function for non-generic code.
func Float32Ops() *Ops[float32] {
	return &ops32
}

// Float64Ops returns the float64 SIMD operations.
// Convenience function for non-generic code.
func Float64Ops() *Ops[float64] {
	return &ops64
}
