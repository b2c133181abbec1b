//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image/color"
	"os"

	"go.uber.org/zap"

	"perspectiveview/internal/app"
	"perspectiveview/internal/config"
	"perspectiveview/internal/logger"
	"perspectiveview/internal/render"
	"perspectiveview/internal/setup"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 240

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	flags.Apply(cfg)

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	world, err := setup.World(cfg, log)
	if err != nil {
		log.Fatal("setup", zap.Error(err))
	}

	opts := app.Options{
		HUDWidth:   hudWidth,
		Background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Logger:     log.Named("app"),
	}
	if cfg.Record.Journal != "" {
		j, err := render.CreateJournal(cfg.Record.Journal)
		if err != nil {
			log.Fatal("create journal", zap.String("path", cfg.Record.Journal), zap.Error(err))
		}
		defer func() {
			if err := j.Close(); err != nil {
				log.Error("close journal", zap.Error(err))
			}
			log.Info("journal written", zap.String("path", cfg.Record.Journal), zap.Int("frames", j.Frames()))
		}()
		opts.Recorder = j
	}

	game := app.New(world, opts)
	size := world.Size()

	ebiten.SetWindowTitle(cfg.Window.Title + " - " + world.Name())
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(size.W+hudWidth, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", zap.Error(err))
	}
}
