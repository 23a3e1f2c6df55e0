package ballpit

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a simulation run.
type Config struct {
	World  WorldSection  `toml:"world"`
	Seeder SeederSection `toml:"seeder"`
	Arena  ArenaSection  `toml:"arena"`
	Log    LogSection    `toml:"log"`
}

type WorldSection struct {
	BroadPhase   string  `toml:"broadphase"`    // sweep, sweep-y, grid or scan
	BoundEpsilon float64 `toml:"bound_epsilon"` // unit: arena units
	MaxDt        float64 `toml:"max_dt"`        // unit: seconds, 0 for no cap
}

type SeederSection struct {
	Count           int        `toml:"count"`
	MaxAttempts     int        `toml:"max_attempts"`
	MinRadiusFrac   float64    `toml:"min_radius_frac"` // of the shorter arena side
	MaxRadiusFrac   float64    `toml:"max_radius_frac"`
	InitialVelocity [2]float64 `toml:"initial_velocity"`
	Gravity         [2]float64 `toml:"gravity"`
	Seed            uint64     `toml:"seed"`
}

type ArenaSection struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type LogSection struct {
	Prefix string `toml:"prefix"`
	Debug  bool   `toml:"debug"`
}

func DefaultConfig() *Config {
	sc := DefaultSeederConfig()
	return &Config{
		World: WorldSection{
			BroadPhase:   BroadPhaseSweepX,
			BoundEpsilon: DefaultBoundEpsilon,
		},
		Seeder: SeederSection{
			Count:           sc.Count,
			MaxAttempts:     sc.MaxAttempts,
			MinRadiusFrac:   sc.MinRadiusFrac,
			MaxRadiusFrac:   sc.MaxRadiusFrac,
			InitialVelocity: sc.Velocity,
			Gravity:         sc.Gravity,
			Seed:            1,
		},
		Arena: ArenaSection{Width: 800, Height: 600},
		Log:   LogSection{Prefix: "ballpit"},
	}
}

// LoadConfig reads the TOML file at path over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return conf, nil
}

// ParseConfig decodes TOML text over the defaults and validates the result.
func ParseConfig(data string) (*Config, error) {
	conf := DefaultConfig()
	if _, err := toml.Decode(data, conf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if _, err := NewBroadPhase(c.World.BroadPhase); err != nil {
		return invalid("%v", err)
	}
	if !finite(c.World.BoundEpsilon) || c.World.BoundEpsilon < 0 {
		return invalid("bound_epsilon %v must be finite and non-negative", c.World.BoundEpsilon)
	}
	if !finite(c.World.MaxDt) || c.World.MaxDt < 0 {
		return invalid("max_dt %v must be finite and non-negative", c.World.MaxDt)
	}
	if c.Seeder.Count < 0 {
		return invalid("seeder count %d is negative", c.Seeder.Count)
	}
	if c.Seeder.MaxAttempts <= 0 {
		return invalid("seeder max_attempts %d must be positive", c.Seeder.MaxAttempts)
	}
	if !(c.Seeder.MinRadiusFrac > 0) || c.Seeder.MaxRadiusFrac < c.Seeder.MinRadiusFrac || c.Seeder.MaxRadiusFrac >= 0.5 {
		return invalid("radius fractions [%v, %v) must satisfy 0 < min <= max < 0.5", c.Seeder.MinRadiusFrac, c.Seeder.MaxRadiusFrac)
	}
	for _, v := range [...]float64{c.Seeder.InitialVelocity[0], c.Seeder.InitialVelocity[1], c.Seeder.Gravity[0], c.Seeder.Gravity[1]} {
		if !finite(v) {
			return invalid("seeder vectors must be finite")
		}
	}
	if !(c.Arena.Width > 0) || !(c.Arena.Height > 0) || !finite(c.Arena.Width) || !finite(c.Arena.Height) {
		return invalid("arena %vx%v must have positive finite extents", c.Arena.Width, c.Arena.Height)
	}
	return nil
}

func (c *Config) WorldConfig() WorldConfig {
	return WorldConfig{
		BoundEpsilon: c.World.BoundEpsilon,
		MaxDt:        c.World.MaxDt,
	}
}

func (c *Config) SeederConfig() SeederConfig {
	return SeederConfig{
		Count:         c.Seeder.Count,
		MaxAttempts:   c.Seeder.MaxAttempts,
		MinRadiusFrac: c.Seeder.MinRadiusFrac,
		MaxRadiusFrac: c.Seeder.MaxRadiusFrac,
		Velocity:      mgl64.Vec2(c.Seeder.InitialVelocity),
		Gravity:       mgl64.Vec2(c.Seeder.Gravity),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
