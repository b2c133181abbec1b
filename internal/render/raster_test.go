package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"perspectiveview/internal/perspective"
)

func square(x0, y0, x1, y1 float64) []perspective.Point {
	return []perspective.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestRasterFillsPolygonInterior(t *testing.T) {
	r := NewRaster(40, 40)
	red := color.RGBA{R: 255, A: 255}
	r.FillClosedPolygon(square(10, 10, 30, 30), red)

	if got := r.Image().RGBAAt(20, 20); got != red {
		t.Fatalf("interior pixel = %v, want %v", got, red)
	}
	if got := r.Image().RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Fatalf("exterior pixel = %v, want transparent", got)
	}
	if r.Fills() != 1 {
		t.Fatalf("fills = %d, want 1", r.Fills())
	}
}

func TestRasterIgnoresDegeneratePolygons(t *testing.T) {
	r := NewRaster(10, 10)
	r.FillClosedPolygon([]perspective.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}, color.RGBA{A: 255})
	if r.Fills() != 0 {
		t.Fatalf("fills = %d, want 0", r.Fills())
	}
}

func TestRasterLaterFillsPaintOver(t *testing.T) {
	r := NewRaster(20, 20)
	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	r.FillClosedPolygon(square(0, 0, 20, 20), blue)
	r.FillClosedPolygon(square(5, 5, 15, 15), green)
	if got := r.Image().RGBAAt(10, 10); got != green {
		t.Fatalf("centre = %v, want %v", got, green)
	}
	if got := r.Image().RGBAAt(2, 2); got != blue {
		t.Fatalf("corner = %v, want %v", got, blue)
	}
}

func TestRasterClear(t *testing.T) {
	r := NewRaster(8, 8)
	r.FillClosedPolygon(square(0, 0, 8, 8), color.RGBA{R: 9, A: 255})
	grey := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	r.Clear(grey)
	if r.Fills() != 0 {
		t.Fatalf("fills after clear = %d", r.Fills())
	}
	if got := r.Image().RGBAAt(7, 7); got != grey {
		t.Fatalf("pixel = %v, want %v", got, grey)
	}
}

func TestRasterClearChecker(t *testing.T) {
	r := NewRaster(8, 8)
	even := color.RGBA{R: 1, A: 255}
	odd := color.RGBA{R: 2, A: 255}
	r.ClearChecker(4, 4, even, odd)
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, even}, {5, 0, odd}, {0, 5, odd}, {5, 5, even},
	}
	for _, tc := range cases {
		if got := r.Image().RGBAAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRasterSavePNG(t *testing.T) {
	r := NewRaster(4, 4)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty png")
	}
}

func TestRendererDrawsOntoRaster(t *testing.T) {
	hm := perspective.MustHeightMap([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	cfg := perspective.DefaultConfig()
	cfg.VanishingPoint = perspective.Point{X: 75, Y: 75}
	pr, err := perspective.New(cfg, perspective.WithMap(hm))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r := NewRaster(150, 150)
	if err := pr.RenderFrame(r); err != nil {
		t.Fatalf("render: %v", err)
	}
	// vanishing cell equals the cuboid cell, so only the roof is drawn.
	if r.Fills() != 1 {
		t.Fatalf("fills = %d, want 1", r.Fills())
	}
	if got := r.Image().RGBAAt(75, 75); got.A != 255 {
		t.Fatalf("cuboid centre not painted: %v", got)
	}
}
