package ballpit

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoOverlap(t *testing.T, bodies []Body) {
	t.Helper()
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if d := OuterDistance(&bodies[i], &bodies[j]); d <= 0 {
				t.Errorf("bodies %d and %d overlap: outer distance %v", i, j, d)
			}
		}
	}
}

func assertInside(t *testing.T, bodies []Body, width, height float64) {
	t.Helper()
	for i := range bodies {
		b := &bodies[i]
		if b.Min(0) < 0 || b.Min(1) < 0 || b.Max(0) > width || b.Max(1) > height {
			t.Errorf("body %d at %v radius %v outside %vx%v", i, b.Pos, b.Radius, width, height)
		}
	}
}

func TestSeeder_PlacesNonOverlappingBodies(t *testing.T) {
	cfg := DefaultSeederConfig()
	cfg.Count = 12
	s := NewSeeder(cfg, 99, nil)

	pop := s.Seed(800, 600)

	require.Len(t, pop.Bodies, 12)
	assert.False(t, pop.Exhausted())
	assert.NotEqual(t, uuid.Nil, pop.Generation)
	assertNoOverlap(t, pop.Bodies)
	assertInside(t, pop.Bodies, 800, 600)

	for _, b := range pop.Bodies {
		assert.GreaterOrEqual(t, b.Radius, 0.05*600)
		assert.Less(t, b.Radius, 0.1*600)
		assert.Equal(t, cfg.Velocity, b.Vel)
		assert.Equal(t, cfg.Gravity, b.Acc)
		assert.InDelta(t, 1/b.Radius, b.InvMass, 1e-15)
		assert.Equal(t, uint8(255), b.Color.A)
	}
}

func TestSeeder_DefaultCrowdIsBestEffort(t *testing.T) {
	s := NewSeeder(DefaultSeederConfig(), 5, nil)

	pop := s.Seed(800, 600)

	assert.LessOrEqual(t, len(pop.Bodies), 60)
	assert.NotEmpty(t, pop.Bodies)
	assert.Equal(t, len(pop.Bodies) < 60, pop.Exhausted())
	assertNoOverlap(t, pop.Bodies)
}

func TestSeeder_StopsWhenAttemptsRunOut(t *testing.T) {
	cfg := DefaultSeederConfig()
	cfg.Count = 500
	cfg.MaxAttempts = 5
	s := NewSeeder(cfg, 1, nil)

	pop := s.Seed(400, 400)

	assert.True(t, pop.Exhausted())
	assert.Less(t, len(pop.Bodies), 500)
	assertNoOverlap(t, pop.Bodies)
}

func TestSeeder_DegenerateArena(t *testing.T) {
	s := NewSeeder(DefaultSeederConfig(), 1, nil)

	for _, ext := range [][2]float64{{0, 100}, {100, -1}, {math.NaN(), 100}, {math.Inf(1), math.Inf(1)}} {
		pop := s.Seed(ext[0], ext[1])
		assert.Empty(t, pop.Bodies, "arena %v", ext)
		assert.True(t, pop.Exhausted())
	}
}

func TestSeeder_Deterministic(t *testing.T) {
	cfg := DefaultSeederConfig()
	cfg.Count = 20

	a := NewSeeder(cfg, 1234, nil).Seed(640, 480)
	b := NewSeeder(cfg, 1234, nil).Seed(640, 480)

	require.Equal(t, len(a.Bodies), len(b.Bodies))
	for i := range a.Bodies {
		assert.Equal(t, a.Bodies[i], b.Bodies[i])
	}
	assert.NotEqual(t, a.Generation, b.Generation)
}

func TestHslToRGBA(t *testing.T) {
	assert.Equal(t, uint8(191), hslToRGBA(0, 0.5, 0.5).R)
	assert.Equal(t, uint8(64), hslToRGBA(0, 0.5, 0.5).G)
	assert.Equal(t, uint8(64), hslToRGBA(1.0/3, 0.5, 0.5).R)
	assert.Equal(t, uint8(191), hslToRGBA(1.0/3, 0.5, 0.5).G)
}
