//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"perspectiveview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD is the parameter panel drawn to the right of the scene. Each row has
// a label, the current value and -/+ buttons.
type HUD struct {
	scene  core.Scene
	width  int
	title  string
	rows   []control
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter

	offsetX int
	panel   *ebiten.Image
}

// NewHUD builds a panel of the given width for scene.
func NewHUD(scene core.Scene, width int) *HUD {
	h := &HUD{scene: scene, width: max(width, 0), title: "Controls"}
	if name := strings.TrimSpace(scene.Name()); name != "" {
		h.title = strings.ToUpper(name[:1]) + name[1:]
	}
	if p, ok := scene.(core.ParameterControlsProvider); ok {
		h.rows = newControls(p.ParameterControls(), h.width)
	}
	h.ints, _ = scene.(core.IntParameterSetter)
	h.floats, _ = scene.(core.FloatParameterSetter)
	return h
}

// Update reads the scene's parameters and applies a click on a button.
// offsetX is where the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	p, ok := h.scene.(core.ParameterProvider)
	if !ok {
		return
	}
	refresh(h.rows, p.Parameters())

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if i, dir, ok := hit(h.rows, image.Pt(x-h.offsetX, y)); ok {
		h.rows[i].adjust(dir, h.ints, h.floats)
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := h.scene.Size().H
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+18, titleColor)
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, titleHeight+24, mutedColor)
	}
	for i := range h.rows {
		c := &h.rows[i]
		baseline := c.top + 24
		text.Draw(h.panel, c.Label, face, panelPadding, baseline, textColor)

		value, col := c.label(), textColor
		if !c.known {
			col = mutedColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, baseline, col)

		_, down := c.target(-1)
		_, up := c.target(1)
		h.button(c.minus, "-", down)
		h.button(c.plus, "+", up)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(r image.Rectangle, glyph string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	b := text.BoundString(basicfont.Face7x13, glyph)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, glyph, basicfont.Face7x13, x, y, fg)
}
