package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const springDT = 1.0 / 60.0

// =============================================================================
// Scalar Spring
// =============================================================================

// TestSpring_SettlesAndSnaps verifies the Idle/Transitioning state
// machine: the spring reports transitioning while moving and locks
// exactly onto the target once within the snap threshold.
func TestSpring_SettlesAndSnaps(t *testing.T) {
	var s Spring
	cfg := SpringConfig{SmoothTime: 0.1}
	target := 2.0

	require.True(t, s.IsTransitioning(target, cfg))

	steps := 0
	for s.IsTransitioning(target, cfg) {
		s.Advance(target, springDT, cfg)
		steps++
		require.Less(t, steps, 600, "spring failed to settle")
	}
	assert.Equal(t, target, s.Position, "settled spring locks exactly onto the target")
	assert.Zero(t, s.Velocity)
	t.Logf("settled in %d steps", steps)
}

// TestSpring_ZeroConfigUsable verifies the zero SpringConfig applies
// defaults instead of dividing by zero.
func TestSpring_ZeroConfigUsable(t *testing.T) {
	var s Spring
	pos := s.Advance(1, springDT, SpringConfig{})
	assert.Greater(t, pos, 0.0)
	assert.Less(t, pos, 1.0)
}

// TestSpring_NoOvershootStationaryTarget verifies the critically-damped
// property through the public wrapper.
func TestSpring_NoOvershootStationaryTarget(t *testing.T) {
	var s Spring
	cfg := SpringConfig{SmoothTime: 0.2}
	for i := 0; i < 600; i++ {
		pos := s.Advance(1, springDT, cfg)
		require.LessOrEqual(t, pos, 1.0+1e-9)
	}
	assert.Equal(t, 1.0, s.Position)
}

// TestSpring_MovingTarget verifies the spring follows a target that
// jumps, without oscillating around either value.
func TestSpring_MovingTarget(t *testing.T) {
	var s Spring
	cfg := SpringConfig{SmoothTime: 0.05}

	for i := 0; i < 120; i++ {
		s.Advance(1, springDT, cfg)
	}
	assert.Equal(t, 1.0, s.Position)

	// Target jumps; the spring must turn around from rest.
	for i := 0; i < 240; i++ {
		pos := s.Advance(-1, springDT, cfg)
		require.GreaterOrEqual(t, pos, -1.0-1e-9)
	}
	assert.Equal(t, -1.0, s.Position)
}

func TestSpring_Reset(t *testing.T) {
	s := Spring{Position: 3, Velocity: 9}
	s.Reset(1)
	assert.Equal(t, Spring{Position: 1}, s)
}

// =============================================================================
// 2D Spring
// =============================================================================

// TestSpring2_SettlesOnTarget verifies the 2D wrapper's joint settle
// check and exact snap.
func TestSpring2_SettlesOnTarget(t *testing.T) {
	var s Spring2
	cfg := SpringConfig{SmoothTime: 0.1}
	target := Vec2{X: 1, Y: -2}

	steps := 0
	for s.IsTransitioning(target, cfg) {
		s.Advance(target, springDT, cfg)
		steps++
		require.Less(t, steps, 600, "2D spring failed to settle")
	}
	assert.Equal(t, target, s.Position)
	assert.Equal(t, Vec2{}, s.Velocity)
}

// TestSpring2_SmoothsBlendParameter is the intended integration shape:
// smooth a jumping 2D blend parameter before feeding it to a space, so
// weights never jump discontinuously.
func TestSpring2_SmoothsBlendParameter(t *testing.T) {
	space, err := NewDirectional2D(SimpleDirectional,
		Vec2{}, Vec2{X: 1}, Vec2{Y: 1}, Vec2{X: -1}, Vec2{Y: -1})
	require.NoError(t, err)

	var s Spring2
	cfg := SpringConfig{SmoothTime: 0.1}
	target := Vec2{X: 1} // input snaps instantly to full east

	w := make([]float64, space.NumClips())
	prev := space.Weights(nil, s.Position)
	prevEast := prev[1]

	for i := 0; i < 60; i++ {
		param := s.Advance(target, springDT, cfg)
		w = space.Weights(w, param)
		// The east clip's weight grows, but never jumps more than the
		// spring lets the parameter move in one tick.
		assert.GreaterOrEqual(t, w[1], prevEast-1e-9)
		assert.Less(t, w[1]-prevEast, 0.5, "smoothed weights must not jump")
		prevEast = w[1]
	}
	assert.Greater(t, prevEast, 0.9, "parameter eventually reaches the east clip")
}

func TestSpring2_Reset(t *testing.T) {
	s := Spring2{Position: Vec2{X: 1}, Velocity: Vec2{Y: 2}}
	s.Reset(Vec2{X: -1, Y: 4})
	assert.Equal(t, Vec2{X: -1, Y: 4}, s.Position)
	assert.Equal(t, Vec2{}, s.Velocity)
}
