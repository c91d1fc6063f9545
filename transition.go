package blend

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TransitionPhase is the lifecycle of a from-state/to-state crossfade.
type TransitionPhase int

const (
	// TransitionInactive is the zero value: no crossfade in flight.
	TransitionInactive TransitionPhase = iota

	// TransitionActive is a crossfade accumulating elapsed time.
	TransitionActive

	// TransitionComplete means elapsed time reached the duration. The
	// caller discards or replaces the value; the blender holds no
	// timers or callbacks.
	TransitionComplete
)

// Transition models a single from-state to to-state crossfade. It
// tracks elapsed time against a fixed duration and maps progress
// through a curve into the blend weight used to mix the two states.
//
// The curve's value axis is the to-state weight directly (curves are
// pre-inverted at bake time): it starts at 0 and ends at 1, and the
// empty curve is a linear ramp. Progress and weight are derived on
// demand, never stored.
//
// A Transition is a caller-owned value; the zero value is Inactive.
type Transition struct {
	duration float64
	elapsed  float64
	curve    Curve
	phase    TransitionPhase
}

// NewTransition begins a crossfade of the given duration shaped by
// curve (nil means linear). A duration <= 0, NaN, or infinite is
// immediately Complete with progress 1, never a division by zero or a
// transition that can never finish.
func NewTransition(duration float64, curve Curve) Transition {
	if math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 0
	}
	t := Transition{duration: duration, curve: curve, phase: TransitionActive}
	if duration <= 0 {
		t.phase = TransitionComplete
	}
	return t
}

// Advance accumulates dt seconds of progress. Elapsed time clamps to
// [0, duration]; reaching the duration moves the transition to
// Complete. Advance does nothing unless the transition is Active.
func (t *Transition) Advance(dt float64) {
	if t.phase != TransitionActive {
		return
	}
	t.elapsed += dt
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.phase = TransitionComplete
	}
}

// Phase returns the current lifecycle phase.
func (t *Transition) Phase() TransitionPhase {
	return t.phase
}

// Progress returns elapsed/duration in [0, 1]. Inactive transitions
// report 0; zero-duration transitions report 1.
func (t *Transition) Progress() float64 {
	switch t.phase {
	case TransitionInactive:
		return 0
	case TransitionComplete:
		if t.duration <= 0 {
			return 1
		}
	}
	return t.elapsed / t.duration
}

// BlendWeight returns the curve-evaluated to-state weight in [0, 1].
// This, not the raw linear progress, is the scalar that mixes the two
// states' poses; the curve is how non-linear transition shapes
// (ease-in/out, S-curves) are expressed.
func (t *Transition) BlendWeight() float64 {
	return t.curve.Evaluate(t.Progress())
}

// Apply scales the two states' clip weights in place by the crossfade:
// fromWeights by 1-BlendWeight() and toWeights by BlendWeight(). The
// scaled sets together still sum to 1, so the compositor can sample
// both states' clips into one pose.
func (t *Transition) Apply(fromWeights, toWeights []float64) {
	w := t.BlendWeight()
	floats.Scale(1-w, fromWeights)
	floats.Scale(w, toWeights)
}

// Reset returns the transition to the Inactive zero state.
func (t *Transition) Reset() {
	*t = Transition{}
}
