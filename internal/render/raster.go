package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"perspectiveview/internal/perspective"
)

// Raster is a headless drawing surface backed by an in-memory RGBA image.
type Raster struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	fills int
}

// NewRaster allocates a w×h surface cleared to transparent black.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Ready reports whether the surface has a backing image.
func (r *Raster) Ready() bool { return r != nil && r.img != nil }

// Clear fills the whole surface with c.
func (r *Raster) Clear(c color.Color) {
	fillRGBA(r.img.Pix, c)
	r.fills = 0
}

// ClearChecker fills the surface with a checkerboard of unit-sized squares.
func (r *Raster) ClearChecker(unitW, unitH int, even, odd color.RGBA) {
	fillCheckerRGBA(r.img.Pix, r.img.Bounds().Dx(), unitW, unitH, even, odd)
	r.fills = 0
}

// FillClosedPolygon rasterizes the polygon through points with colour c.
func (r *Raster) FillClosedPolygon(points []perspective.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
	r.fills++
}

// Fills returns the number of polygons drawn since the last clear.
func (r *Raster) Fills() int { return r.fills }

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// SavePNG encodes the surface to path.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
