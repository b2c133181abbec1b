//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"perspectiveview/internal/maps"
	"perspectiveview/internal/perspective"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type rendererProvider interface {
	Renderer() *perspective.Renderer
}

type surroundingsProvider interface {
	Surroundings(buf maps.Buffer) (perspective.Cell, [][]int)
}

// nearby is the section shown by the surroundings layer.
var nearby = maps.Buffer{Top: 2, Right: 2, Bottom: 2, Left: 2}

// Overlay draws optional debugging visuals on top of the scene.
//
//	1  grid lines
//	2  vanishing cell and point
//	3  render order indices (0 is drawn last)
//	4  heights around the character
type Overlay struct {
	src    rendererProvider
	around surroundingsProvider

	showGrid      bool
	showVanishing bool
	showOrder     bool
	showAround    bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. src is usually the scene;
// without a renderer the overlay draws nothing.
func NewOverlay(src any) *Overlay {
	o := &Overlay{}
	if p, ok := src.(rendererProvider); ok {
		o.src = p
	}
	if p, ok := src.(surroundingsProvider); ok {
		o.around = p
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVanishing = !o.showVanishing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showOrder = !o.showOrder
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showAround = !o.showAround
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.src == nil {
		return
	}
	r := o.src.Renderer()
	m := r.Map()
	if m == nil {
		return
	}
	unit := r.UnitSize()
	if o.showGrid {
		o.drawGrid(screen, m.Width(), m.Height(), unit)
	}
	if o.showVanishing {
		o.drawVanishing(screen, r.VanishingCell(), r.VanishingPoint(), unit)
	}
	if o.showOrder {
		o.drawOrder(screen, r.Order(), unit)
	}
	if o.showAround && o.around != nil {
		o.drawSurroundings(screen, unit)
	}
}

// drawSurroundings prints the height of each cell near the character in the
// cell's lower right corner; the character's own cell is boxed.
func (o *Overlay) drawSurroundings(screen *ebiten.Image, unit perspective.UnitSize) {
	centre, rows := o.around.Surroundings(nearby)
	face := basicfont.Face7x13
	col := color.RGBA{R: 140, G: 255, B: 150, A: 255}
	for ry, row := range rows {
		for rx, h := range row {
			cx := centre.X - nearby.Left + rx
			cy := centre.Y - nearby.Top + ry
			x := int(math.Round(float64(cx+1)*unit.X)) - 10
			y := int(math.Round(float64(cy+1)*unit.Y)) - 4
			text.Draw(screen, strconv.Itoa(h), face, x, y, col)
		}
	}
	left := float64(centre.X) * unit.X
	top := float64(centre.Y) * unit.Y
	o.drawLine(screen, left, top, left+unit.X, top, 1, col)
	o.drawLine(screen, left+unit.X, top, left+unit.X, top+unit.Y, 1, col)
	o.drawLine(screen, left+unit.X, top+unit.Y, left, top+unit.Y, 1, col)
	o.drawLine(screen, left, top+unit.Y, left, top, 1, col)
}

func (o *Overlay) drawGrid(screen *ebiten.Image, w, h int, unit perspective.UnitSize) {
	col := color.RGBA{R: 90, G: 90, B: 110, A: 140}
	right := float64(w) * unit.X
	bottom := float64(h) * unit.Y
	for x := 0; x <= w; x++ {
		px := float64(x) * unit.X
		o.drawLine(screen, px, 0, px, bottom, 1, col)
	}
	for y := 0; y <= h; y++ {
		py := float64(y) * unit.Y
		o.drawLine(screen, 0, py, right, py, 1, col)
	}
}

func (o *Overlay) drawVanishing(screen *ebiten.Image, vc perspective.Cell, vp perspective.Point, unit perspective.UnitSize) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(unit.X, unit.Y)
	op.GeoM.Translate(float64(vc.X)*unit.X, float64(vc.Y)*unit.Y)
	op.ColorScale.Scale(0.9, 0.8, 0.2, 0.35)
	screen.DrawImage(o.pixel, op)

	const arm = 6
	col := color.RGBA{R: 255, G: 230, B: 60, A: 255}
	o.drawLine(screen, vp.X-arm, vp.Y, vp.X+arm, vp.Y, 2, col)
	o.drawLine(screen, vp.X, vp.Y-arm, vp.X, vp.Y+arm, 2, col)
}

func (o *Overlay) drawOrder(screen *ebiten.Image, order []perspective.Cell, unit perspective.UnitSize) {
	face := basicfont.Face7x13
	col := color.RGBA{R: 170, G: 220, B: 255, A: 255}
	for i, c := range order {
		x := int(math.Round(float64(c.X)*unit.X)) + 3
		y := int(math.Round(float64(c.Y)*unit.Y)) + 14
		text.Draw(screen, strconv.Itoa(i), face, x, y, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
