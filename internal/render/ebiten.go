//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"perspectiveview/internal/perspective"
)

// Ebiten fills polygons onto an ebiten image. The target changes every
// frame, so the surface is only ready between Target and the end of Draw.
type Ebiten struct {
	dst   *ebiten.Image
	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewEbiten allocates the shared white source image.
func NewEbiten() *Ebiten {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Ebiten{white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Target sets the image polygons are drawn onto. Pass nil to detach.
func (e *Ebiten) Target(dst *ebiten.Image) { e.dst = dst }

// Ready reports whether a target image is attached.
func (e *Ebiten) Ready() bool { return e != nil && e.dst != nil }

// FillClosedPolygon tessellates the polygon and draws it in colour c.
func (e *Ebiten) FillClosedPolygon(points []perspective.Point, c color.RGBA) {
	if e.dst == nil || len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	e.vs, e.is = path.AppendVerticesAndIndicesForFilling(e.vs[:0], e.is[:0])
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range e.vs {
		e.vs[i].SrcX = 1
		e.vs[i].SrcY = 1
		e.vs[i].ColorR = r
		e.vs[i].ColorG = g
		e.vs[i].ColorB = b
		e.vs[i].ColorA = a
	}
	e.dst.DrawTriangles(e.vs, e.is, e.white, &ebiten.DrawTrianglesOptions{})
}
