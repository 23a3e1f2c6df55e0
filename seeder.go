package ballpit

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type SeederConfig struct {
	Count         int
	MaxAttempts   int // per body
	MinRadiusFrac float64
	MaxRadiusFrac float64
	Velocity      mgl64.Vec2
	Gravity       mgl64.Vec2
}

func DefaultSeederConfig() SeederConfig {
	return SeederConfig{
		Count:         60,
		MaxAttempts:   1000,
		MinRadiusFrac: 0.05,
		MaxRadiusFrac: 0.1,
		Velocity:      mgl64.Vec2{200, -300},
		Gravity:       mgl64.Vec2{0, 50},
	}
}

// Population is the result of one seeding run.
type Population struct {
	Generation uuid.UUID
	Bodies     []Body
	Requested  int
	Attempts   int
}

// Exhausted reports whether seeding stopped before placing every requested body.
func (p Population) Exhausted() bool {
	return len(p.Bodies) < p.Requested
}

// Seeder places non-overlapping bodies by rejection sampling.
type Seeder struct {
	cfg SeederConfig
	rng *rand.Rand
	log Logger
}

func NewSeeder(cfg SeederConfig, seed uint64, log Logger) *Seeder {
	if log == nil {
		log = NewNopLogger()
	}
	return &Seeder{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log: log,
	}
}

// Seed builds a fresh population for a width x height arena. It is best
// effort: when one body cannot be placed within MaxAttempts, seeding stops
// and the bodies placed so far are returned.
func (s *Seeder) Seed(width, height float64) Population {
	pop := Population{
		Generation: uuid.New(),
		Requested:  s.cfg.Count,
		Bodies:     make([]Body, 0, max(s.cfg.Count, 0)),
	}

	short := math.Min(width, height)
	if !(short > 0) || math.IsInf(short, 0) {
		s.log.Warnf("seed %s: degenerate arena %vx%v", pop.Generation, width, height)
		return pop
	}
	rMin, rMax := s.cfg.MinRadiusFrac*short, s.cfg.MaxRadiusFrac*short
	if !(rMin > 0) || rMax < rMin || 2*rMax >= short {
		s.log.Warnf("seed %s: radius range [%v, %v) does not fit arena %vx%v", pop.Generation, rMin, rMax, width, height)
		return pop
	}

outer:
	for len(pop.Bodies) < s.cfg.Count {
		for attempt := 0; ; attempt++ {
			if attempt >= s.cfg.MaxAttempts {
				break outer
			}
			pop.Attempts++
			b, err := s.candidate(width, height, rMin, rMax)
			if err != nil {
				continue
			}
			if !overlapsAny(&b, pop.Bodies) {
				pop.Bodies = append(pop.Bodies, b)
				break
			}
		}
	}

	if pop.Exhausted() {
		s.log.Warnf("seed %s: placed %d of %d bodies after %d attempts", pop.Generation, len(pop.Bodies), pop.Requested, pop.Attempts)
	} else {
		s.log.Debugf("seed %s: placed %d bodies after %d attempts", pop.Generation, len(pop.Bodies), pop.Attempts)
	}
	return pop
}

func (s *Seeder) candidate(width, height, rMin, rMax float64) (Body, error) {
	r := s.uniform(rMin, rMax)
	pos := mgl64.Vec2{s.uniform(r, width-r), s.uniform(r, height-r)}
	return NewBody(pos, s.cfg.Velocity, s.cfg.Gravity, r, hslToRGBA(s.rng.Float64(), 0.5, 0.5))
}

func (s *Seeder) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func overlapsAny(b *Body, placed []Body) bool {
	for i := range placed {
		if Colliding(b, &placed[i]) {
			return true
		}
	}
	return false
}

// hslToRGBA converts hue, saturation and lightness in [0, 1] to an opaque colour.
func hslToRGBA(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	to8 := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v+m)) * 255))
	}
	return color.RGBA{to8(r), to8(g), to8(b), 255}
}
