package blend

import (
	"math"

	"github.com/tkarvinen/go-anim-blend/internal/spring"
)

// SpringConfig tunes the critically-damped smoother. The zero value is
// usable: defaults are applied per call, so configs can live in
// settings structs without an init step.
type SpringConfig struct {
	// SmoothTime is the approximate time in seconds to cover most of
	// the remaining distance. Zero means DefaultSmoothTime; negative
	// values are treated as the minimum positive smooth time.
	SmoothTime float64

	// MaxSpeed bounds the velocity when positive. Zero or negative
	// means unlimited.
	MaxSpeed float64

	// SnapThreshold is the settle distance: once position and velocity
	// are both within it, the spring snaps onto the target and reports
	// not transitioning. Zero means DefaultSnapThreshold.
	SnapThreshold float64
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.SmoothTime == 0 {
		c.SmoothTime = DefaultSmoothTime
	}
	if c.SnapThreshold <= 0 {
		c.SnapThreshold = DefaultSnapThreshold
	}
	return c
}

// Spring is a scalar critically-damped smoother. It is a plain value
// the caller owns and threads through each tick; there is no hidden
// state. The zero value is a spring at rest at position 0.
type Spring struct {
	Position float64
	Velocity float64
}

// Reset places the spring at position with zero velocity.
func (s *Spring) Reset(position float64) {
	s.Position = position
	s.Velocity = 0
}

// Advance moves the spring toward target over dt seconds and returns
// the new position. dt should be clamped by the caller (at most
// MaxStableDeltaTime) on frame hitches; dt <= 0 leaves the spring
// unchanged. Once within the snap threshold the spring locks exactly
// onto the target so downstream comparisons see a stable value.
func (s *Spring) Advance(target, dt float64, cfg SpringConfig) float64 {
	cfg = cfg.withDefaults()
	s.Position, s.Velocity = spring.Damp(s.Position, target, s.Velocity,
		cfg.SmoothTime, cfg.MaxSpeed, dt)
	if settled(s.Position-target, s.Velocity, cfg.SnapThreshold) {
		s.Position = target
		s.Velocity = 0
	}
	return s.Position
}

// IsTransitioning reports whether the spring is still moving toward
// target. Callers poll it each tick to decide whether to keep calling
// Advance.
func (s *Spring) IsTransitioning(target float64, cfg SpringConfig) bool {
	cfg = cfg.withDefaults()
	return !settled(s.Position-target, s.Velocity, cfg.SnapThreshold)
}

// Spring2 is the 2D counterpart of Spring. Both axes are advanced
// jointly (vector length and projection, not two independent scalar
// springs) so motion toward a diagonal target stays isotropic.
type Spring2 struct {
	Position Vec2
	Velocity Vec2
}

// Reset places the spring at position with zero velocity.
func (s *Spring2) Reset(position Vec2) {
	s.Position = position
	s.Velocity = Vec2{}
}

// Advance moves the spring toward target over dt seconds and returns
// the new position. See Spring.Advance for the dt contract.
func (s *Spring2) Advance(target Vec2, dt float64, cfg SpringConfig) Vec2 {
	cfg = cfg.withDefaults()
	s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y = spring.DampVec(
		s.Position.X, s.Position.Y,
		target.X, target.Y,
		s.Velocity.X, s.Velocity.Y,
		cfg.SmoothTime, cfg.MaxSpeed, dt)
	dist := math.Hypot(s.Position.X-target.X, s.Position.Y-target.Y)
	speed := math.Hypot(s.Velocity.X, s.Velocity.Y)
	if settled(dist, speed, cfg.SnapThreshold) {
		s.Position = target
		s.Velocity = Vec2{}
	}
	return s.Position
}

// IsTransitioning reports whether the spring is still moving toward
// target.
func (s *Spring2) IsTransitioning(target Vec2, cfg SpringConfig) bool {
	cfg = cfg.withDefaults()
	dist := math.Hypot(s.Position.X-target.X, s.Position.Y-target.Y)
	speed := math.Hypot(s.Velocity.X, s.Velocity.Y)
	return !settled(dist, speed, cfg.SnapThreshold)
}

func settled(distance, velocity, threshold float64) bool {
	return math.Abs(distance) < threshold && math.Abs(velocity) < threshold
}
