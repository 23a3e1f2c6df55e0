package ballpit

// PhysicsModule installs the World and steps it once per frame from the
// Time and Arena resources. It needs TimeModule and ArenaModule.
type PhysicsModule struct {
	World      WorldConfig
	Seeder     SeederConfig
	Seed       uint64
	BroadPhase BroadPhase
}

func (mod PhysicsModule) Install(app *App, cmd *Commands) {
	log := app.Logger()
	world := NewWorld(mod.World, NewSeeder(mod.Seeder, mod.Seed, log), mod.BroadPhase, log)
	cmd.AddResources(world)

	cmd.UseStage(PostPhysics, AfterStage(Update))
	app.UseSystem(
		System(PhysicsSystem).
			InStage(Update),
	)
}

func PhysicsSystem(time *Time, arena *Arena, world *World) {
	world.Step(time.Seconds(), arena.Width, arena.Height)
}

// PhysicsModuleFromConfig builds the physics module described by cfg.
func PhysicsModuleFromConfig(cfg *Config) (PhysicsModule, error) {
	bp, err := NewBroadPhase(cfg.World.BroadPhase)
	if err != nil {
		return PhysicsModule{}, err
	}
	return PhysicsModule{
		World:      cfg.WorldConfig(),
		Seeder:     cfg.SeederConfig(),
		Seed:       cfg.Seeder.Seed,
		BroadPhase: bp,
	}, nil
}
