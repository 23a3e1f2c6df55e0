package render

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/gekko3d/ballpit"
)

// Frame is the image the render system draws into every frame.
type Frame struct {
	Image *image.RGBA
}

// Snapshots controls how often frames are written to disk.
type Snapshots struct {
	Dir   string
	Every uint64 // 0 disables snapshots
	Saved int
}

// Module draws the world in the Render stage. It needs the physics, time
// and arena modules.
type Module struct {
	Dir   string
	Every uint64
}

func (m Module) Install(app *ballpit.App, cmd *ballpit.Commands) {
	cmd.AddResources(
		NewRenderer(),
		NewFPSCounter(),
		&Frame{},
		&Snapshots{Dir: m.Dir, Every: m.Every},
	)
	cmd.UseSystem(ballpit.System(System).InStage(ballpit.Render))
}

func System(cmd *ballpit.Commands, tm *ballpit.Time, arena *ballpit.Arena, world *ballpit.World,
	r *Renderer, fps *FPSCounter, frame *Frame, snaps *Snapshots) {

	w, h := int(arena.Width), int(arena.Height)
	if w <= 0 || h <= 0 {
		return
	}
	if frame.Image == nil || frame.Image.Bounds().Dx() != w || frame.Image.Bounds().Dy() != h {
		frame.Image = image.NewRGBA(image.Rect(0, 0, w, h))
		r.raster = nil
	}

	fps.Tick(tm.Time)
	r.Draw(frame.Image, world.Bodies(), world.InContact, fps.FPS())

	if snaps.Every == 0 || snaps.Dir == "" || tm.Frame%snaps.Every != 0 {
		return
	}
	path := filepath.Join(snaps.Dir, fmt.Sprintf("frame_%06d.png", tm.Frame))
	if err := WritePNG(path, frame.Image); err != nil {
		cmd.Logger().Errorf("%v", err)
		return
	}
	snaps.Saved++
	cmd.Logger().Debugf("wrote %s", path)
}
