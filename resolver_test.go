package ballpit

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalMomentum(a, b *Body) mgl64.Vec2 {
	return a.Momentum().Add(b.Momentum())
}

func TestResolvePair_HeadOnEqualMasses(t *testing.T) {
	a := mustBody(t, mgl64.Vec2{100, 100}, mgl64.Vec2{50, 0}, 10)
	b := mustBody(t, mgl64.Vec2{119, 100}, mgl64.Vec2{-50, 0}, 10)

	c, hit := ResolvePair(&a, &b)
	require.True(t, hit)

	assert.InDelta(t, -50, a.Vel.X(), 1e-9)
	assert.InDelta(t, 0, a.Vel.Y(), 1e-9)
	assert.InDelta(t, 50, b.Vel.X(), 1e-9)
	assert.InDelta(t, 0, b.Vel.Y(), 1e-9)

	assert.InDelta(t, 1, c.Depth, 1e-9)
	assert.InDelta(t, -1, c.Normal.X(), 1e-12)
	assert.False(t, c.Degenerate)

	// Each body moved back by half the overlap.
	assert.InDelta(t, 99.5, a.Pos.X(), 1e-9)
	assert.InDelta(t, 119.5, b.Pos.X(), 1e-9)
	assert.InDelta(t, 0, OuterDistance(&a, &b), 1e-9)
}

func TestResolvePair_HeavyStrikesLight(t *testing.T) {
	heavy := mustBody(t, mgl64.Vec2{0, 0}, mgl64.Vec2{100, 0}, 20)
	light := mustBody(t, mgl64.Vec2{24, 0}, mgl64.Vec2{}, 5)
	before := totalMomentum(&heavy, &light)

	_, hit := ResolvePair(&heavy, &light)
	require.True(t, hit)

	assert.InDelta(t, 60, heavy.Vel.X(), 1e-9)
	assert.InDelta(t, 160, light.Vel.X(), 1e-9)
	assert.Less(t, heavy.Vel.Len(), light.Vel.Len())

	after := totalMomentum(&heavy, &light)
	assert.InDelta(t, before.X(), after.X(), 1e-9)
	assert.InDelta(t, before.Y(), after.Y(), 1e-9)
}

func TestApplyImpulse_ConservesMomentumAndReversesNormalVelocity(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))

	for i := 0; i < 1000; i++ {
		a := mustBody(t, mgl64.Vec2{}, mgl64.Vec2{rng.Float64()*400 - 200, rng.Float64()*400 - 200}, 1+rng.Float64()*50)
		b := mustBody(t, mgl64.Vec2{}, mgl64.Vec2{rng.Float64()*400 - 200, rng.Float64()*400 - 200}, 1+rng.Float64()*50)
		theta := rng.Float64() * 2 * math.Pi
		n := mgl64.Vec2{math.Cos(theta), math.Sin(theta)}
		tangent := mgl64.Vec2{-n.Y(), n.X()}

		vn := a.Vel.Sub(b.Vel).Dot(n)
		if vn > 0 {
			n = n.Mul(-1)
			vn = -vn
		}
		p0 := totalMomentum(&a, &b)
		at, bt := a.Vel.Dot(tangent), b.Vel.Dot(tangent)

		ApplyImpulse(&a, &b, n)

		tol := 1e-9 * (1 + p0.Len() + a.Mass() + b.Mass())
		p1 := totalMomentum(&a, &b)
		assert.InDelta(t, p0.X(), p1.X(), tol*100)
		assert.InDelta(t, p0.Y(), p1.Y(), tol*100)
		assert.InDelta(t, -vn, a.Vel.Sub(b.Vel).Dot(n), 1e-6)
		assert.InDelta(t, at, a.Vel.Dot(tangent), 1e-6)
		assert.InDelta(t, bt, b.Vel.Dot(tangent), 1e-6)
	}
}

func TestApplyImpulse_SeparatingPairUntouched(t *testing.T) {
	a := mustBody(t, mgl64.Vec2{0, 0}, mgl64.Vec2{-10, 0}, 10)
	b := mustBody(t, mgl64.Vec2{15, 0}, mgl64.Vec2{10, 0}, 10)
	n, ok := CollisionNormal(&a, &b)
	require.True(t, ok)

	ApplyImpulse(&a, &b, n)

	assert.Equal(t, mgl64.Vec2{-10, 0}, a.Vel)
	assert.Equal(t, mgl64.Vec2{10, 0}, b.Vel)
}

func TestResolvePair_TouchingCounts(t *testing.T) {
	a := mustBody(t, mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 5)
	b := mustBody(t, mgl64.Vec2{10, 0}, mgl64.Vec2{}, 5)

	require.Equal(t, 0.0, OuterDistance(&a, &b))
	_, hit := ResolvePair(&a, &b)
	assert.True(t, hit)
	assert.InDelta(t, 0, a.Vel.X(), 1e-12)
	assert.InDelta(t, 10, b.Vel.X(), 1e-12)
}

func TestResolvePair_ApartIsIgnored(t *testing.T) {
	a := mustBody(t, mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}, 5)
	b := mustBody(t, mgl64.Vec2{10.5, 0}, mgl64.Vec2{-10, 0}, 5)

	_, hit := ResolvePair(&a, &b)
	assert.False(t, hit)
	assert.Equal(t, mgl64.Vec2{10, 0}, a.Vel)
	assert.Equal(t, mgl64.Vec2{0, 0}, a.Pos)
}

func TestResolvePair_CoincidentCentres(t *testing.T) {
	a := mustBody(t, mgl64.Vec2{50, 50}, mgl64.Vec2{5, 3}, 10)
	b := mustBody(t, mgl64.Vec2{50, 50}, mgl64.Vec2{-5, 1}, 10)

	c, hit := ResolvePair(&a, &b)
	require.True(t, hit)
	assert.True(t, c.Degenerate)
	assert.Equal(t, FallbackNormal, c.Normal)

	for _, v := range []float64{a.Pos.X(), a.Pos.Y(), b.Pos.X(), b.Pos.Y(), a.Vel.X(), a.Vel.Y(), b.Vel.X(), b.Vel.Y()} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	assert.InDelta(t, 60, a.Pos.X(), 1e-9)
	assert.InDelta(t, 40, b.Pos.X(), 1e-9)
}
