package ballpit

import (
	"math"
)

// DefaultBoundEpsilon is how far inside the wall a body is snapped after a bounce.
const DefaultBoundEpsilon = 1e-3

// SanitizeDt turns an untrusted frame time into a usable step.
// NaN, infinities and negative values become 0. A positive max caps dt.
func SanitizeDt(dt, max float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// Integrate advances b by dt. Position uses the velocity from the start of
// the step; velocity is updated afterwards.
func Integrate(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.Vel = b.Vel.Add(b.Acc.Mul(dt))
}

// HandleBounds reflects b off the arena walls [0, width] x [0, height].
// Velocity is forced to point inward rather than negated, so a body already
// heading back into the arena is never flipped a second time.
func HandleBounds(b *Body, width, height, eps float64) {
	extents := [2]float64{width, height}
	for axis := 0; axis < 2; axis++ {
		// Min bound wins when the arena is too narrow for the body.
		if b.Min(axis) <= 0 {
			b.Vel[axis] = math.Abs(b.Vel[axis])
			b.Pos[axis] = b.Radius + eps
		} else if b.Max(axis) >= extents[axis] {
			b.Vel[axis] = -math.Abs(b.Vel[axis])
			b.Pos[axis] = extents[axis] - b.Radius - eps
		}
	}
}
