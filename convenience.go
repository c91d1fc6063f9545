package blend

import "github.com/tkarvinen/go-anim-blend/internal/solver"

// NewLinear1D creates a 1D blend space from bare thresholds, one
// unit-duration clip per threshold. Thresholds must be sorted
// ascending. Useful when clip metadata lives elsewhere and only the
// weighting matters.
func NewLinear1D(thresholds ...float64) (*Space, error) {
	clips := make([]Clip, len(thresholds))
	for i, th := range thresholds {
		clips[i] = Clip{Duration: 1, Position: Vec2{X: th}}
	}
	return New(&Config{Kind: KindLinear, Clips: clips})
}

// NewDirectional2D creates a 2D blend space from bare positions with
// unit-duration clips.
func NewDirectional2D(algorithm Algorithm, positions ...Vec2) (*Space, error) {
	clips := make([]Clip, len(positions))
	for i, p := range positions {
		clips[i] = Clip{Duration: 1, Position: p}
	}
	return New(&Config{Kind: KindDirectional, Algorithm: algorithm, Clips: clips})
}

// Weights1D is a one-shot helper: it computes 1D weights for sorted
// thresholds into a fresh slice. For per-frame use build a Space once
// and reuse a buffer instead.
func Weights1D(thresholds []float64, param float64) []float64 {
	dst := make([]float64, len(thresholds))
	solver.LinearWeights(dst, thresholds, param)
	return dst
}

// WeightsIDW is a one-shot helper: inverse-distance weights for the
// given positions into a fresh slice. power <= 0 means the default
// of 2. For per-frame use build a Space once and reuse a buffer.
func WeightsIDW(positions []Vec2, param Vec2, power float64) []float64 {
	raw := make([][2]float64, len(positions))
	for i, p := range positions {
		raw[i] = [2]float64{p.X, p.Y}
	}
	d := solver.NewDirectional(raw, solver.InverseDistance, power)
	dst := make([]float64, len(positions))
	d.Weights(dst, param.X, param.Y)
	return dst
}

// Crossfade begins a linear crossfade of the given duration.
func Crossfade(duration float64) Transition {
	return NewTransition(duration, nil)
}

// CrossfadeSmooth begins an eased (S-curve) crossfade of the given
// duration.
func CrossfadeSmooth(duration float64) Transition {
	return NewTransition(duration, PresetCurve(CurveSmoothStep))
}
