//go:build ebiten

package app

import (
	"image/color"

	"go.uber.org/zap"

	"perspectiveview/internal/core"
	"perspectiveview/internal/maps"
	"perspectiveview/internal/render"
	"perspectiveview/internal/scene"
	"perspectiveview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Options configure the window adapter.
type Options struct {
	HUDWidth   int
	Background color.RGBA
	Recorder   FrameWriter
	Logger     *zap.Logger
}

// Game adapts a scene world to the ebiten.Game interface.
type Game struct {
	world   *scene.World
	session *Session
	surface *render.Ebiten
	overlay *ui.Overlay
	hud     *ui.HUD
	opts    Options

	paused  bool
	demos   []string
	demoIdx int
}

// New constructs a Game for the provided world.
func New(world *scene.World, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	sessOpts := []SessionOption{WithSessionLogger(opts.Logger)}
	if opts.Recorder != nil {
		sessOpts = append(sessOpts, WithRecorder(opts.Recorder))
	}
	g := &Game{
		world:   world,
		session: NewSession(world, sessOpts...),
		surface: render.NewEbiten(),
		overlay: ui.NewOverlay(world),
		opts:    opts,
		demos:   maps.DemoNames(),
	}
	if opts.HUDWidth > 0 {
		g.hud = ui.NewHUD(world, opts.HUDWidth)
	}
	for i, name := range g.demos {
		if name == maps.DefaultDemo {
			g.demoIdx = i
		}
	}
	return g
}

// Update handles per-frame input and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.nextDemo()
	}

	g.overlay.Update()
	g.hud.Update(g.world.Size().W)

	if !g.paused {
		g.session.Tick(readInput())
	}
	return nil
}

func (g *Game) nextDemo() {
	if len(g.demos) == 0 {
		return
	}
	g.demoIdx = (g.demoIdx + 1) % len(g.demos)
	m, err := maps.Demo(g.demos[g.demoIdx])
	if err != nil {
		g.opts.Logger.Warn("demo map", zap.Error(err))
		return
	}
	if err := g.world.SetMap(m); err != nil {
		g.opts.Logger.Warn("switch map", zap.String("name", m.Name), zap.Error(err))
	}
}

func readInput() core.Input {
	return core.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// Draw renders the current scene state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background)
	g.surface.Target(screen)
	_ = g.session.Draw(g.surface)
	g.surface.Target(nil)

	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.world.Size().W)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W + g.opts.HUDWidth, s.H
}
