package ballpit

// Arena holds the current extents reported by the host. The host may change
// them between frames; the physics system picks the change up on its next run.
type Arena struct {
	Width  float64
	Height float64
}

func (a *Arena) Resize(width, height float64) {
	a.Width, a.Height = width, height
}

type ArenaModule struct {
	Width  float64
	Height float64
}

func (mod ArenaModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Arena{Width: mod.Width, Height: mod.Height})
}
