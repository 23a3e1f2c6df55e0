// Command ballpit runs the bouncing-ball arena headlessly.
//
// Usage:
//
//	ballpit [-config file.toml] [-frames n] [-dt seconds] [-out dir] [-every n]
//
// The config file is TOML and overrides the built-in defaults. With -dt 0
// frame times come from the wall clock. With -out set, every n-th frame is
// written as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gekko3d/ballpit"
	"github.com/gekko3d/ballpit/render"
)

type options struct {
	ConfigFile string
	Frames     uint64
	Dt         float64
	OutDir     string
	Every      uint64
	StatsEvery uint64
	Debug      bool
}

func parseFlags() *options {
	opts := &options{}

	flag.StringVar(&opts.ConfigFile, "config", "", "TOML config file")
	flag.Uint64Var(&opts.Frames, "frames", 600, "number of frames to run (0 = until killed)")
	flag.Float64Var(&opts.Dt, "dt", 1.0/60.0, "fixed frame time in seconds (0 = wall clock)")
	flag.StringVar(&opts.OutDir, "out", "", "directory for PNG snapshots")
	flag.Uint64Var(&opts.Every, "every", 60, "write a snapshot every n frames")
	flag.Uint64Var(&opts.StatsEvery, "stats", 120, "log step statistics every n frames (0 = never)")
	flag.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

// statsReporter logs world statistics every Every frames.
type statsReporter struct {
	Every uint64
}

func statsSystem(cmd *ballpit.Commands, tm *ballpit.Time, world *ballpit.World, rep *statsReporter) {
	if rep.Every == 0 || tm.Frame%rep.Every != 0 {
		return
	}
	s := world.Stats()
	cmd.Logger().Infof("frame %d: %d bodies, %d candidates, %d collisions, %d in contact, generation %s",
		s.Frame, s.Bodies, s.Candidates, s.Collisions, world.Contacts().Count(), world.Generation())
}

func main() {
	opts := parseFlags()

	conf := ballpit.DefaultConfig()
	if opts.ConfigFile != "" {
		var err error
		if conf, err = ballpit.LoadConfig(opts.ConfigFile); err != nil {
			log.Fatal(err)
		}
	}
	if opts.Debug {
		conf.Log.Debug = true
	}
	if opts.Dt < 0 {
		log.Fatalf("dt %v must not be negative", opts.Dt)
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	physics, err := ballpit.PhysicsModuleFromConfig(conf)
	if err != nil {
		log.Fatal(err)
	}

	app := ballpit.NewApp().UseModules(
		ballpit.LoggingModule{Prefix: conf.Log.Prefix, Debug: conf.Log.Debug},
		ballpit.TimeModule{Fixed: time.Duration(opts.Dt * float64(time.Second))},
		ballpit.ArenaModule{Width: conf.Arena.Width, Height: conf.Arena.Height},
		physics,
		render.Module{Dir: opts.OutDir, Every: opts.Every},
	)
	app.Commands().AddResources(&statsReporter{Every: opts.StatsEvery})
	app.UseSystem(ballpit.System(statsSystem).InStage(ballpit.PostPhysics))

	start := time.Now()
	frames := app.Run(opts.Frames)
	elapsed := time.Since(start)

	saved := 0
	if snaps, ok := ballpit.Resource[render.Snapshots](app); ok {
		saved = snaps.Saved
	}
	app.Logger().Infof("ran %d frames in %v, wrote %d snapshots", frames, elapsed.Round(time.Millisecond), saved)
}
