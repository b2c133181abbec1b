package perspective

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
)

// Surface receives the polygons of a frame. The renderer never reads from it
// and never clears or resizes it.
type Surface interface {
	FillClosedPolygon(points []Point, c color.RGBA)
}

// readySurface is implemented by surfaces that can be temporarily unusable,
// for example before a window has produced its first screen image.
type readySurface interface {
	Ready() bool
}

// Command is one fill-closed-polygon instruction of a frame.
type Command struct {
	Cell   Cell
	Face   Face
	Points []Point
	Color  color.RGBA
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithLogger routes renderer diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithStrict makes invariant failures panic instead of dropping the frame.
func WithStrict(strict bool) Option {
	return func(r *Renderer) { r.strict = strict }
}

// WithMap sets the initial height map.
func WithMap(m *HeightMap) Option {
	return func(r *Renderer) { r.pendingMap = m }
}

// Renderer owns a scene configuration and turns it into draw commands. It is
// not safe for concurrent use; apply configuration changes between frames.
type Renderer struct {
	cfg   Config
	m     *HeightMap
	vc    Cell
	order []Cell

	log    *zap.Logger
	strict bool

	pendingMap *HeightMap
}

// New validates cfg and returns a renderer for it.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg, vc: cfg.VanishingCell(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.pendingMap != nil {
		m := r.pendingMap
		r.pendingMap = nil
		if err := r.SetMap(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Config returns the current scalar configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Map returns the current height map, or nil before one is set.
func (r *Renderer) Map() *HeightMap { return r.m }

// UnitSize returns the pixel size of one cell.
func (r *Renderer) UnitSize() UnitSize { return r.cfg.Unit }

// DepthFactor returns the height-to-displacement factor.
func (r *Renderer) DepthFactor() float64 { return r.cfg.DepthFactor }

// VanishingPoint returns the vanishing point in pixels.
func (r *Renderer) VanishingPoint() Point { return r.cfg.VanishingPoint }

// VanishingCell returns the grid cell containing the vanishing point.
func (r *Renderer) VanishingCell() Cell { return r.vc }

// Mode returns the projection mode.
func (r *Renderer) Mode() Mode { return r.cfg.Mode }

// Order returns a copy of the cached render order.
func (r *Renderer) Order() []Cell { return append([]Cell(nil), r.order...) }

// SetMap replaces the height map.
func (r *Renderer) SetMap(m *HeightMap) error {
	if m == nil {
		return ErrEmptyMap
	}
	return r.Apply(Patch{Map: m})
}

// SetMapRows builds a height map from rows and installs it.
func (r *Renderer) SetMapRows(rows [][]int) error {
	m, err := NewHeightMap(rows)
	if err != nil {
		return err
	}
	return r.SetMap(m)
}

// SetUnitSize changes the pixel size of a cell.
func (r *Renderer) SetUnitSize(u UnitSize) error { return r.Apply(Patch{Unit: &u}) }

// SetDepthFactor changes how far a unit of height is pushed.
func (r *Renderer) SetDepthFactor(f float64) error { return r.Apply(Patch{DepthFactor: &f}) }

// SetVanishingPoint moves the vanishing point and with it the vanishing cell.
func (r *Renderer) SetVanishingPoint(p Point) error { return r.Apply(Patch{VanishingPoint: &p}) }

// SetMode switches the projection mode.
func (r *Renderer) SetMode(m Mode) error { return r.Apply(Patch{Mode: &m}) }

// SetBaseColor changes the colour faces are shaded from.
func (r *Renderer) SetBaseColor(c color.RGBA) error { return r.Apply(Patch{BaseColor: &c}) }

// Apply validates the patched configuration as a whole and commits it, or
// returns an error and leaves the renderer unchanged.
func (r *Renderer) Apply(p Patch) error {
	next := p.merge(r.cfg)
	if err := next.Validate(); err != nil {
		return err
	}
	m := r.m
	if p.Map != nil {
		if p.Map.Width() < 1 || p.Map.Height() < 1 {
			return ErrEmptyMap
		}
		m = p.Map
	}
	vc := next.VanishingCell()
	order := r.order
	if m != nil && (r.m == nil || vc != r.vc || m.Width() != r.m.Width() || m.Height() != r.m.Height()) {
		var err error
		order, err = ComputeOrder(m.Width(), m.Height(), vc)
		if err != nil {
			return err
		}
		r.log.Debug("render order recomputed",
			zap.Int("width", m.Width()),
			zap.Int("height", m.Height()),
			zap.Int("vanishing_x", vc.X),
			zap.Int("vanishing_y", vc.Y))
	}
	r.cfg, r.m, r.vc, r.order = next, m, vc, order
	return nil
}

// Frame computes the draw commands of one frame without touching a surface.
// Cells are visited from the back of the render order; within a cuboid the
// roof is always the last command.
func (r *Renderer) Frame() ([]Command, error) {
	if r.m == nil {
		return nil, ErrNoMap
	}
	if len(r.order) != r.m.Width()*r.m.Height() {
		return nil, r.invariant(fmt.Errorf("order has %d cells for a %dx%d map: %w",
			len(r.order), r.m.Width(), r.m.Height(), ErrInvariant))
	}
	cmds := make([]Command, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		cell := r.order[i]
		h, ok := r.m.At(cell.X, cell.Y)
		if !ok {
			return nil, r.invariant(fmt.Errorf("order entry %d %v outside %dx%d map: %w",
				i, cell, r.m.Width(), r.m.Height(), ErrInvariant))
		}
		h = r.cfg.Mode.effectiveHeight(h)
		if h <= 0 {
			continue
		}
		cmds = r.appendCell(cmds, cell, h)
	}
	return cmds, nil
}

func (r *Renderer) appendCell(cmds []Command, cell Cell, h int) []Command {
	if r.cfg.Mode == Flat {
		c, _ := Project(cell, h, r.cfg.Unit, r.cfg.VanishingPoint, 0)
		return append(cmds, Command{Cell: cell, Face: FaceBase, Points: c.Base.Points(), Color: r.cfg.BaseColor})
	}
	c, _ := Project(cell, h, r.cfg.Unit, r.cfg.VanishingPoint, r.cfg.DepthFactor)
	for _, f := range SelectVisibleFaces(cell, r.vc, c, h, r.cfg.BaseColor) {
		cmds = append(cmds, Command{Cell: cell, Face: f.Face, Points: f.Quad.Points(), Color: f.Color})
	}
	return cmds
}

// RenderFrame draws one frame onto s. The frame is dropped as a whole when
// s is unavailable or an invariant fails; nothing is drawn in that case.
func (r *Renderer) RenderFrame(s Surface) error {
	if s == nil {
		return ErrSurfaceUnavailable
	}
	if rs, ok := s.(readySurface); ok && !rs.Ready() {
		return ErrSurfaceUnavailable
	}
	cmds, err := r.Frame()
	if err != nil {
		return err
	}
	Replay(s, cmds)
	return nil
}

// Replay issues cmds on s in order.
func Replay(s Surface, cmds []Command) {
	for _, cmd := range cmds {
		s.FillClosedPolygon(cmd.Points, cmd.Color)
	}
}

func (r *Renderer) invariant(err error) error {
	if r.strict {
		panic(err)
	}
	r.log.Error("frame dropped", zap.Error(err))
	return err
}
