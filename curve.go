package blend

import "fmt"

// Keyframe is one control point of a transition curve. Time and Value
// live in [0, 1]; the tangents are Hermite slopes over that unit
// square.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Curve is a weight-over-normalized-time curve: a time-sorted keyframe
// sequence of length 0 (linear identity) or 2-8. Evaluation assumes
// sorted input; Validate checks it once where curves enter the system.
type Curve []Keyframe

// Validate checks keyframe count, ordering, and ranges. Per-frame
// evaluation does not call this; it is for construction-time use.
func (c Curve) Validate() error {
	if len(c) == 1 || len(c) > maxCurveKeyframes {
		return fmt.Errorf("%w: curve must have 0 or 2-%d keyframes, got %d",
			ErrInvalidConfig, maxCurveKeyframes, len(c))
	}
	for i, k := range c {
		if k.Time < 0 || k.Time > 1 || k.Value < 0 || k.Value > 1 {
			return fmt.Errorf("%w: keyframe %d outside unit range", ErrInvalidConfig, i)
		}
		if i > 0 && k.Time < c[i-1].Time {
			return fmt.Errorf("%w: keyframes not sorted by time (keyframe %d)", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Evaluate returns the curve value at normalized time t, clamped to
// [0, 1]. The empty curve is the identity: clamp(t, 0, 1). A single
// keyframe is a constant. Otherwise the segment containing t is found
// by linear scan (curves hold at most 8 keys) and evaluated as a cubic
// Hermite with tangents scaled by the segment duration.
//
// Evaluate is pure and allocation-free; it assumes the curve is sorted
// by time and does not validate per call.
func (c Curve) Evaluate(t float64) float64 {
	// Fast path: the default linear curve stores no keyframes at all.
	if len(c) == 0 {
		return clamp01(t)
	}
	if len(c) == 1 {
		return clamp01(c[0].Value)
	}

	t = clamp01(t)
	if t <= c[0].Time {
		return clamp01(c[0].Value)
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return clamp01(last.Value)
	}

	for i := 1; i < len(c); i++ {
		if t > c[i].Time {
			continue
		}
		k0, k1 := c[i-1], c[i]
		span := k1.Time - k0.Time
		if span < segmentEpsilon {
			return clamp01(k0.Value)
		}

		lt := (t - k0.Time) / span
		lt2 := lt * lt
		lt3 := lt2 * lt

		h00 := 2*lt3 - 3*lt2 + 1
		h10 := lt3 - 2*lt2 + lt
		h01 := -2*lt3 + 3*lt2
		h11 := lt3 - lt2

		m0 := k0.OutTangent * span
		m1 := k1.InTangent * span

		return clamp01(h00*k0.Value + h10*m0 + h01*k1.Value + h11*m1)
	}

	return clamp01(last.Value)
}

// CurvePreset enumerates common transition shapes.
type CurvePreset int

const (
	// CurveLinear is the identity ramp. Encodes to zero bytes.
	CurveLinear CurvePreset = iota

	// CurveSmoothStep eases in and out with zero endpoint tangents
	// (the classic 3t^2 - 2t^3 S-curve).
	CurveSmoothStep

	// CurveEaseIn starts slow and finishes at full rate.
	CurveEaseIn

	// CurveEaseOut starts at full rate and settles slowly.
	CurveEaseOut
)

// PresetCurve returns a fresh Curve for the preset. The caller owns the
// returned slice.
func PresetCurve(preset CurvePreset) Curve {
	switch preset {
	case CurveSmoothStep:
		return Curve{
			{Time: 0, Value: 0, OutTangent: 0},
			{Time: 1, Value: 1, InTangent: 0},
		}
	case CurveEaseIn:
		return Curve{
			{Time: 0, Value: 0, OutTangent: 0},
			{Time: 1, Value: 1, InTangent: 2},
		}
	case CurveEaseOut:
		return Curve{
			{Time: 0, Value: 0, OutTangent: 2},
			{Time: 1, Value: 1, InTangent: 0},
		}
	default:
		return nil
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
