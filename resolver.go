package ballpit

import (
	"github.com/go-gl/mathgl/mgl64"
)

// FallbackNormal separates bodies whose centres coincide exactly.
var FallbackNormal = mgl64.Vec2{1, 0}

// Contact describes a resolved collision between bodies I and J.
// Normal points from J towards I. Depth is the overlap before separation.
type Contact struct {
	Pair
	Normal     mgl64.Vec2
	Depth      float64
	Degenerate bool
}

// OuterDistance is the gap between the two circles; zero or less means they
// touch or overlap.
func OuterDistance(a, b *Body) float64 {
	return a.Pos.Sub(b.Pos).Len() - (a.Radius + b.Radius)
}

// Colliding reports whether a and b touch or overlap. Exact contact counts.
func Colliding(a, b *Body) bool {
	return OuterDistance(a, b) <= 0
}

// CollisionNormal returns the unit vector from b's centre to a's centre.
// ok is false when the centres coincide and FallbackNormal is returned.
func CollisionNormal(a, b *Body) (n mgl64.Vec2, ok bool) {
	d := a.Pos.Sub(b.Pos)
	l := d.Len()
	if l == 0 {
		return FallbackNormal, false
	}
	return d.Mul(1 / l), true
}

// Separate pushes each body half the penetration depth along n.
// outer is the (non-positive) outer distance of the pair.
func Separate(a, b *Body, outer float64, n mgl64.Vec2) {
	push := n.Mul(0.5 * outer)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)
}

// ApplyImpulse exchanges a perfectly elastic impulse along n, weighted by
// inverse mass. Pairs that are already separating along n are left alone.
func ApplyImpulse(a, b *Body, n mgl64.Vec2) {
	vn := a.Vel.Sub(b.Vel).Dot(n)
	if vn > 0 {
		return
	}
	j := 2 * vn / (a.InvMass + b.InvMass)
	a.Vel = a.Vel.Sub(n.Mul(j * a.InvMass))
	b.Vel = b.Vel.Add(n.Mul(j * b.InvMass))
}

// ResolvePair runs the narrow phase on a and b and, if they collide,
// separates them and applies the impulse. The returned contact has no
// indices set.
func ResolvePair(a, b *Body) (Contact, bool) {
	outer := OuterDistance(a, b)
	if outer > 0 {
		return Contact{}, false
	}
	n, ok := CollisionNormal(a, b)
	Separate(a, b, outer, n)
	ApplyImpulse(a, b, n)
	return Contact{Normal: n, Depth: -outer, Degenerate: !ok}, true
}
