// Command pvsnap renders a height map headlessly. It can walk the character
// along a scripted path, write the final frame as PNG and record every frame
// to a zstd-compressed journal.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"go.uber.org/zap"

	"perspectiveview/internal/app"
	"perspectiveview/internal/config"
	"perspectiveview/internal/core"
	"perspectiveview/internal/logger"
	"perspectiveview/internal/render"
	"perspectiveview/internal/setup"
)

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	path := flag.String("path", "", "moves to replay, e.g. \"R20,D10\" (U/D/L/R followed by a tick count)")
	checker := flag.Bool("checker", true, "paint a checkerboard ground under the scene")
	flag.Parse()

	if err := run(&flags, *path, *checker); err != nil {
		fmt.Fprintln(os.Stderr, "pvsnap:", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags, path string, checker bool) error {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if cfg.Record.PNG == "" && cfg.Record.Journal == "" {
		cfg.Record.PNG = "frame.png"
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	moves, err := parsePath(path)
	if err != nil {
		return err
	}

	world, err := setup.World(cfg, log)
	if err != nil {
		return err
	}

	var opts []app.SessionOption
	opts = append(opts, app.WithSessionLogger(log.Named("session")))
	var journal *render.Journal
	if cfg.Record.Journal != "" {
		journal, err = render.CreateJournal(cfg.Record.Journal)
		if err != nil {
			return err
		}
		defer journal.Close()
		opts = append(opts, app.WithRecorder(journal))
	}
	sess := app.NewSession(world, opts...)

	size := world.Size()
	surface := render.NewRaster(size.W, size.H)
	unit := world.Renderer().UnitSize()
	paint := func() {
		if checker {
			surface.ClearChecker(int(unit.X), int(unit.Y),
				color.RGBA{R: 28, G: 28, B: 32, A: 255},
				color.RGBA{R: 36, G: 36, B: 42, A: 255})
			return
		}
		surface.Clear(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	}

	draw := func() error {
		paint()
		return sess.Draw(surface)
	}
	if err := draw(); err != nil {
		return err
	}
	for _, in := range moves {
		sess.Tick(in)
		if err := draw(); err != nil {
			return err
		}
	}

	if cfg.Record.PNG != "" {
		if err := surface.SavePNG(cfg.Record.PNG); err != nil {
			return err
		}
		log.Info("frame written", zap.String("path", cfg.Record.PNG), zap.Int("polygons", surface.Fills()))
	}
	if journal != nil {
		if err := journal.Close(); err != nil {
			return fmt.Errorf("close journal: %w", err)
		}
		log.Info("journal written", zap.String("path", cfg.Record.Journal), zap.Int("frames", journal.Frames()))
	}
	ticks, frames, dropped := sess.Stats()
	log.Debug("session done", zap.Int("ticks", ticks), zap.Int("frames", frames), zap.Int("dropped", dropped))
	return nil
}

// parsePath expands "R20,D10" into one Input per tick.
func parsePath(s string) ([]core.Input, error) {
	var out []core.Input
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var in core.Input
		switch strings.ToUpper(part[:1]) {
		case "U":
			in.Up = true
		case "D":
			in.Down = true
		case "L":
			in.Left = true
		case "R":
			in.Right = true
		default:
			return nil, fmt.Errorf("path step %q: unknown direction", part)
		}
		n := 1
		if len(part) > 1 {
			if _, err := fmt.Sscanf(part[1:], "%d", &n); err != nil || n < 0 {
				return nil, fmt.Errorf("path step %q: bad count", part)
			}
		}
		for i := 0; i < n; i++ {
			out = append(out, in)
		}
	}
	return out, nil
}
