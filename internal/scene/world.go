// Package scene implements the demo world: a height map rendered in
// perspective around a character whose position drives the vanishing point.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"go.uber.org/zap"

	"perspectiveview/internal/core"
	"perspectiveview/internal/maps"
	"perspectiveview/internal/perspective"
)

// Options configure a World.
type Options struct {
	Character Character
	// Follow moves the vanishing point with the character.
	Follow bool
	// View is the pixel size of the view; zero derives it from the map.
	View   core.Size
	Color  color.RGBA
	Logger *zap.Logger
}

// DefaultOptions returns the classic demo character: a 20×20 box at
// (260,180) moving 2px per tick, followed by the vanishing point.
func DefaultOptions() Options {
	return Options{
		Character: Character{X: 260, Y: 180, W: 20, H: 20, Speed: 2},
		Follow:    true,
		Color:     color.RGBA{R: 200, G: 60, B: 60, A: 255},
	}
}

// World owns the renderer and the character.
type World struct {
	m    *maps.Map
	r    *perspective.Renderer
	opts Options
	char Character
	vp0  perspective.Point
	log  *zap.Logger
}

// New builds a world around r, which is switched to m.
func New(m *maps.Map, r *perspective.Renderer, opts Options) (*World, error) {
	if m == nil {
		return nil, perspective.ErrNoMap
	}
	if r == nil {
		return nil, errors.New("scene: nil renderer")
	}
	if opts.Character.W <= 0 || opts.Character.H <= 0 || opts.Character.Speed < 0 {
		return nil, fmt.Errorf("scene: invalid character %+v", opts.Character)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if err := r.SetMap(m.Heights); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	w := &World{m: m, r: r, opts: opts, char: opts.Character, vp0: r.VanishingPoint(), log: opts.Logger}
	if err := w.follow(); err != nil {
		return nil, err
	}
	return w, nil
}

// Name reports the map name.
func (w *World) Name() string { return w.m.Name }

// Size is the configured view, or the map's pixel extent.
func (w *World) Size() core.Size {
	if w.opts.View.W > 0 && w.opts.View.H > 0 {
		return w.opts.View
	}
	u := w.r.UnitSize()
	return core.Size{
		W: int(math.Ceil(float64(w.m.Width()) * u.X)),
		H: int(math.Ceil(float64(w.m.Height()) * u.Y)),
	}
}

// Map returns the current map.
func (w *World) Map() *maps.Map { return w.m }

// Renderer exposes the renderer for overlays.
func (w *World) Renderer() *perspective.Renderer { return w.r }

// Character returns the character's current state.
func (w *World) Character() Character { return w.char }

// Reset returns the character to its start and restores the vanishing point.
func (w *World) Reset() {
	w.char = w.opts.Character
	if err := w.r.SetVanishingPoint(w.vp0); err != nil {
		w.log.Warn("reset vanishing point", zap.Error(err))
	}
	if err := w.follow(); err != nil {
		w.log.Warn("reset follow", zap.Error(err))
	}
}

// SetMap swaps the map. The character keeps its position.
func (w *World) SetMap(m *maps.Map) error {
	if m == nil {
		return perspective.ErrNoMap
	}
	if err := w.r.SetMap(m.Heights); err != nil {
		return err
	}
	w.m = m
	w.log.Info("map loaded", zap.String("name", m.Name), zap.Int("width", m.Width()), zap.Int("height", m.Height()))
	return nil
}

// Step advances the character one tick and moves the vanishing point with
// it when following is on.
func (w *World) Step(in core.Input) {
	w.char.move(moveInput{up: in.Up, down: in.Down, left: in.Left, right: in.Right}, w.blocked)
	if err := w.follow(); err != nil {
		w.log.Warn("vanishing point rejected", zap.Error(err))
	}
}

// blocked reports whether the pixel (x, y) lies in an occupied cell or off
// the map.
func (w *World) blocked(x, y float64) bool {
	c := perspective.CellAt(perspective.Point{X: x, Y: y}, w.r.UnitSize())
	if !w.m.Heights.InBounds(c.X, c.Y) {
		return true
	}
	return w.m.Occupied(c.X, c.Y)
}

// Surroundings returns the character's cell and the heights buf cells around
// it. Cells off the map hold the map fallback.
func (w *World) Surroundings(buf maps.Buffer) (perspective.Cell, [][]int) {
	c := perspective.CellAt(w.char.Centre(), w.r.UnitSize())
	return c, w.m.SectionAt(c.X, c.Y, buf)
}

func (w *World) follow() error {
	if !w.opts.Follow {
		return nil
	}
	return w.r.SetVanishingPoint(w.char.Centre())
}

// Frame returns the character quad followed by the map's commands. The
// character stands on the ground, so it is painted first.
func (w *World) Frame() ([]perspective.Command, error) {
	cmds, err := w.r.Frame()
	if err != nil {
		return nil, err
	}
	out := make([]perspective.Command, 0, len(cmds)+1)
	out = append(out, perspective.Command{
		Cell:   perspective.CellAt(w.char.Centre(), w.r.UnitSize()),
		Face:   perspective.FaceBase,
		Points: w.char.Quad().Points(),
		Color:  w.opts.Color,
	})
	return append(out, cmds...), nil
}

type readiness interface{ Ready() bool }

// Render draws one frame onto s. Nothing is drawn when the frame fails.
func (w *World) Render(s perspective.Surface) error {
	if s == nil {
		return perspective.ErrSurfaceUnavailable
	}
	if rs, ok := s.(readiness); ok && !rs.Ready() {
		return perspective.ErrSurfaceUnavailable
	}
	cmds, err := w.Frame()
	if err != nil {
		return err
	}
	perspective.Replay(s, cmds)
	return nil
}

var modeChoices = []string{
	perspective.VariableHeight.String(),
	perspective.UniformHeight.String(),
	perspective.Flat.String(),
}

// Parameters reports the tunables shown on the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	vc := w.r.VanishingCell()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Projection",
			Params: []core.Parameter{
				{Key: "depth_factor", Label: "Depth", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(w.r.DepthFactor(), 'f', -1, 64)},
				{Key: "mode", Label: "Mode", Type: core.ParamTypeEnum, Value: strconv.Itoa(int(w.r.Mode())), Description: w.r.Mode().String()},
				{Key: "unit", Label: "Unit", Type: core.ParamTypeInt, Value: strconv.Itoa(int(w.r.UnitSize().X))},
				{Key: "vanishing_x", Label: "Vanishing X", Type: core.ParamTypeInt, Value: strconv.Itoa(vc.X)},
				{Key: "vanishing_y", Label: "Vanishing Y", Type: core.ParamTypeInt, Value: strconv.Itoa(vc.Y)},
			},
		},
		{
			Name: "Character",
			Params: []core.Parameter{
				{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(w.char.Speed, 'f', -1, 64)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "depth_factor", Label: "Depth", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		{Key: "mode", Label: "Mode", Type: core.ParamTypeEnum, Step: 1, Min: 0, Max: float64(len(modeChoices) - 1), HasMin: true, HasMax: true, Choices: modeChoices},
		{Key: "unit", Label: "Unit", Type: core.ParamTypeInt, Step: 5, Min: 10, Max: 100, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 10, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies integer and enum controls.
func (w *World) SetIntParameter(key string, value int) bool {
	var err error
	switch key {
	case "mode":
		if value < 0 || value >= len(modeChoices) {
			return false
		}
		err = w.r.SetMode(perspective.Mode(value))
	case "unit":
		err = w.r.SetUnitSize(perspective.UnitSize{X: float64(value), Y: float64(value)})
	default:
		return false
	}
	if err != nil {
		w.log.Warn("parameter rejected", zap.String("key", key), zap.Int("value", value), zap.Error(err))
		return false
	}
	return true
}

// SetFloatParameter applies floating point controls.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "depth_factor":
		if err := w.r.SetDepthFactor(value); err != nil {
			w.log.Warn("parameter rejected", zap.String("key", key), zap.Float64("value", value), zap.Error(err))
			return false
		}
		return true
	case "speed":
		if value < 0 || math.IsNaN(value) {
			return false
		}
		w.char.Speed = value
		return true
	}
	return false
}

var (
	_ core.Scene                     = (*World)(nil)
	_ core.ParameterProvider         = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.IntParameterSetter        = (*World)(nil)
	_ core.FloatParameterSetter      = (*World)(nil)
)
