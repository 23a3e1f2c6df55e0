package ballpit

import (
	"github.com/google/uuid"
)

type WorldConfig struct {
	BoundEpsilon float64
	MaxDt        float64 // 0 disables the cap
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{BoundEpsilon: DefaultBoundEpsilon}
}

// StepStats describes the most recent Step.
type StepStats struct {
	Frame      uint64
	Dt         float64
	Bodies     int
	Candidates int
	Collisions int
	Degenerate int
	Reseeds    int // total since the world was created
}

// World owns the body population and advances it one frame at a time.
// A World built without a seeder never reseeds and only steps bodies handed
// to Populate. It is not safe for concurrent use.
type World struct {
	cfg    WorldConfig
	seeder *Seeder
	broad  BroadPhase
	log    Logger

	bodies     []Body
	generation uuid.UUID
	width      float64
	height     float64
	seeded     bool

	pairs    []Pair
	contacts *Contacts
	stats    StepStats
}

func NewWorld(cfg WorldConfig, seeder *Seeder, broad BroadPhase, log Logger) *World {
	if log == nil {
		log = NewNopLogger()
	}
	if broad == nil {
		broad = NewSweepAndPrune(0)
	}
	return &World{
		cfg:      cfg,
		seeder:   seeder,
		broad:    broad,
		log:      log,
		contacts: NewContacts(0),
	}
}

// Step advances the simulation by dt seconds inside a width x height arena.
// A change of extents or an empty population rebuilds the population first.
func (w *World) Step(dt, width, height float64) {
	dt = SanitizeDt(dt, w.cfg.MaxDt)

	if !w.seeded || width != w.width || height != w.height || len(w.bodies) == 0 {
		w.reseed(width, height)
	}

	w.stats.Frame++
	w.stats.Dt = dt
	w.stats.Bodies = len(w.bodies)
	w.stats.Collisions = 0
	w.stats.Degenerate = 0
	w.contacts.Reset(len(w.bodies))

	for i := range w.bodies {
		b := &w.bodies[i]
		Integrate(b, dt)
		HandleBounds(b, width, height, w.cfg.BoundEpsilon)
	}

	w.pairs = w.broad.Pairs(w.bodies, w.pairs[:0])
	w.stats.Candidates = len(w.pairs)

	for _, p := range w.pairs {
		c, hit := ResolvePair(&w.bodies[p.I], &w.bodies[p.J])
		if !hit {
			continue
		}
		w.stats.Collisions++
		if c.Degenerate {
			w.stats.Degenerate++
			w.log.Debugf("frame %d: bodies %d and %d share a centre, using fallback normal", w.stats.Frame, p.I, p.J)
		}
		w.contacts.Mark(p)
	}

	// Separation can push a body back over a wall.
	if w.stats.Collisions > 0 {
		for i := range w.bodies {
			if w.contacts.Has(i) {
				HandleBounds(&w.bodies[i], width, height, w.cfg.BoundEpsilon)
			}
		}
	}
}

func (w *World) reseed(width, height float64) {
	if w.seeder == nil {
		// Without a seeder the population is whatever Populate installed.
		w.width, w.height = width, height
		w.seeded = true
		return
	}
	if w.seeded && (width != w.width || height != w.height) {
		w.log.Infof("arena resized %vx%v -> %vx%v, reseeding", w.width, w.height, width, height)
	}
	w.Reset()

	pop := w.seeder.Seed(width, height)
	w.bodies = pop.Bodies
	w.generation = pop.Generation
	w.width, w.height = width, height
	w.seeded = true
	w.stats.Reseeds++
	w.log.Debugf("generation %s: %d bodies in %vx%v", pop.Generation, len(pop.Bodies), width, height)
}

// Reset drops the population. The next Step seeds a new one.
func (w *World) Reset() {
	w.bodies = nil
	w.generation = uuid.Nil
	w.seeded = false
}

// Bodies returns the current population. Callers must treat it as read-only.
func (w *World) Bodies() []Body {
	return w.bodies
}

// InContact reports whether body i collided during the last Step.
func (w *World) InContact(i int) bool {
	return w.contacts.Has(i)
}

func (w *World) Contacts() *Contacts {
	return w.contacts
}

func (w *World) Generation() uuid.UUID {
	return w.generation
}

func (w *World) Stats() StepStats {
	return w.stats
}

// Populate installs bodies directly for a width x height arena, replacing
// the current population without going through the seeder.
func (w *World) Populate(width, height float64, bodies []Body) {
	w.Reset()
	w.bodies = bodies
	w.generation = uuid.New()
	w.width, w.height = width, height
	w.seeded = true
}
