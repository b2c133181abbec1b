// Package setup turns a loaded configuration into a ready scene.
package setup

import (
	"fmt"

	"go.uber.org/zap"

	"perspectiveview/internal/config"
	"perspectiveview/internal/core"
	"perspectiveview/internal/maps"
	"perspectiveview/internal/perspective"
	"perspectiveview/internal/scene"
)

// LoadMap picks the map named by cfg: a file, then a random map, then an
// embedded demo.
func LoadMap(cfg config.MapConfig) (*maps.Map, error) {
	switch {
	case cfg.File != "":
		return maps.Load(cfg.File)
	case cfg.Random:
		return maps.Random(maps.RandomOptions{
			Width:     cfg.Width,
			Height:    cfg.Height,
			MaxHeight: cfg.MaxHeight,
			Density:   cfg.Density,
			Walls:     true,
		}, cfg.Seed)
	case cfg.Demo != "":
		return maps.Demo(cfg.Demo)
	default:
		return maps.Demo(maps.DefaultDemo)
	}
}

// World validates cfg and builds the renderer and scene it describes.
func World(cfg *config.Config, log *zap.Logger) (*scene.World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	pc, err := cfg.Perspective()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	m, err := LoadMap(cfg.Map)
	if err != nil {
		return nil, err
	}
	if cfg.Map.Crop > 0 {
		n := cfg.Map.Crop
		if m, err = m.SubMap(cfg.Map.CropX, cfg.Map.CropY, maps.Buffer{Top: n, Right: n, Bottom: n, Left: n}); err != nil {
			return nil, err
		}
	}
	if cfg.Render.MapUnit && m.UnitSet && m.Unit != pc.Unit {
		pc.Unit = m.Unit
		if err := pc.Validate(); err != nil {
			return nil, fmt.Errorf("map %q unit: %w", m.Name, err)
		}
		log.Debug("using map unit", zap.Float64("x", m.Unit.X), zap.Float64("y", m.Unit.Y))
	}
	r, err := perspective.New(pc,
		perspective.WithLogger(log.Named("perspective")),
		perspective.WithStrict(cfg.Render.Strict))
	if err != nil {
		return nil, err
	}

	opts := scene.DefaultOptions()
	opts.Character = scene.Character{
		X:     cfg.Character.StartX,
		Y:     cfg.Character.StartY,
		W:     cfg.Character.Width,
		H:     cfg.Character.Height,
		Speed: cfg.Character.Speed,
	}
	opts.Follow = cfg.Character.FollowVanishing
	opts.View = core.Size{W: cfg.Window.Width, H: cfg.Window.Height}
	opts.Logger = log.Named("scene")

	w, err := scene.New(m, r, opts)
	if err != nil {
		return nil, err
	}
	log.Info("scene ready",
		zap.String("map", m.Name),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Stringer("mode", pc.Mode),
		zap.Float64("unit_x", pc.Unit.X),
		zap.Float64("depth_factor", pc.DepthFactor))
	return w, nil
}
