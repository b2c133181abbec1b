package render

import (
	"image/color"

	"perspectiveview/internal/perspective"
)

// Recorder is a surface that keeps every polygon it is asked to fill.
type Recorder struct {
	Commands []perspective.Command
}

// FillClosedPolygon appends a copy of the polygon.
func (r *Recorder) FillClosedPolygon(points []perspective.Point, c color.RGBA) {
	r.Commands = append(r.Commands, perspective.Command{
		Points: append([]perspective.Point(nil), points...),
		Color:  c,
	})
}

// Reset drops the recorded polygons.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Tee fans every polygon out to several surfaces.
type Tee []perspective.Surface

// FillClosedPolygon forwards to every surface in order.
func (t Tee) FillClosedPolygon(points []perspective.Point, c color.RGBA) {
	for _, s := range t {
		s.FillClosedPolygon(points, c)
	}
}
