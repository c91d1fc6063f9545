package solver

import "math"

// vec2 is a minimal 2D vector for blend-space geometry.
type vec2 [2]float64

func (v vec2) sub(o vec2) vec2 {
	return vec2{v[0] - o[0], v[1] - o[1]}
}

func (v vec2) dot(o vec2) float64 {
	return v[0]*o[0] + v[1]*o[1]
}

func (v vec2) len() float64 {
	return math.Sqrt(v.dot(v))
}

// angle returns the polar angle in (-pi, pi].
func (v vec2) angle() float64 {
	return math.Atan2(v[1], v[0])
}
