// Package spring implements a critically-damped analytic spring of the
// Game Programming Gems "SmoothDamp" family. The integrator never
// oscillates past a stationary target and is branch-light enough for
// per-frame use on every animated instance.
package spring

import "math"

const (
	// MinSmoothTime is the floor applied to smoothTime to avoid the
	// omega = 2/smoothTime division exploding.
	MinSmoothTime = 1e-4

	// Rational approximation coefficients for e^-x. Accurate to well
	// under 0.1% over the usable x = omega*dt range.
	expC2 = 0.48
	expC3 = 0.235
)

// Damp advances current toward target over dt seconds and returns the
// new position and velocity.
//
// smoothTime is the approximate time to cover most of the remaining
// distance; it is clamped to MinSmoothTime. maxSpeed bounds the
// velocity when positive; zero or negative means unlimited. Callers
// should clamp dt (<= 0.1s is typical) on frame hitches; a dt <= 0 is
// a no-op.
//
// When integration would carry the position past a target the spring
// is approaching, the result snaps exactly to the target with zero
// velocity. Naive SmoothDamp oscillates here when the target itself is
// moving quickly.
func Damp(current, target, velocity, smoothTime, maxSpeed, dt float64) (pos, vel float64) {
	if dt <= 0 {
		return current, velocity
	}
	if smoothTime < MinSmoothTime {
		smoothTime = MinSmoothTime
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + expC2*x*x + expC3*x*x*x)

	change := current - target
	origTarget := target

	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		if change > maxChange {
			change = maxChange
		} else if change < -maxChange {
			change = -maxChange
		}
	}
	target = current - change

	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	pos = target + (change+temp)*exp

	// Overshoot guard: snap when the result passes the original target
	// in the direction of travel.
	if (origTarget-current > 0) == (pos > origTarget) {
		pos = origTarget
		velocity = 0
	}
	return pos, velocity
}

// DampVec is the 2D variant of Damp. The change vector is clamped by
// length and the overshoot test uses the projection onto the direction
// of travel, keeping the motion isotropic rather than treating the two
// axes as independent springs.
func DampVec(cx, cy, tx, ty, vx, vy, smoothTime, maxSpeed, dt float64) (px, py, nvx, nvy float64) {
	if dt <= 0 {
		return cx, cy, vx, vy
	}
	if smoothTime < MinSmoothTime {
		smoothTime = MinSmoothTime
	}

	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + expC2*x*x + expC3*x*x*x)

	changeX := cx - tx
	changeY := cy - ty
	origTX, origTY := tx, ty

	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		lenSq := changeX*changeX + changeY*changeY
		if lenSq > maxChange*maxChange {
			scale := maxChange / math.Sqrt(lenSq)
			changeX *= scale
			changeY *= scale
		}
	}
	tx = cx - changeX
	ty = cy - changeY

	tempX := (vx + omega*changeX) * dt
	tempY := (vy + omega*changeY) * dt
	nvx = (vx - omega*tempX) * exp
	nvy = (vy - omega*tempY) * exp
	px = tx + (changeX+tempX)*exp
	py = ty + (changeY+tempY)*exp

	// Overshoot guard via projection past the original target.
	travelX := origTX - cx
	travelY := origTY - cy
	overX := px - origTX
	overY := py - origTY
	if overX*travelX+overY*travelY > 0 {
		px = origTX
		py = origTY
		nvx = 0
		nvy = 0
	}
	return px, py, nvx, nvy
}
