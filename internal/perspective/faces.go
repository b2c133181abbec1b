package perspective

import (
	"image/color"
	"math"
)

// ShadedFace is a visible cuboid face with its fill colour.
type ShadedFace struct {
	Face  Face
	Quad  Quad
	Color color.RGBA
}

const shadeFactor = 2.25

// Per-face brightness steps, multiplied by shadeFactor. The roof step is
// further multiplied by the cell height.
var shadeSteps = map[Face]float64{
	FaceNorth: -10,
	FaceEast:  -8,
	FaceSouth: 10,
	FaceWest:  8,
	FaceRoof:  2,
}

// Shade derives the fill colour of face f from base. The roof brightens with
// height; the base quad keeps the base colour.
func Shade(base color.RGBA, f Face, height int) color.RGBA {
	delta := shadeFactor * shadeSteps[f]
	if f == FaceRoof {
		delta *= float64(height)
	}
	return color.RGBA{
		R: shiftChannel(base.R, delta),
		G: shiftChannel(base.G, delta),
		B: shiftChannel(base.B, delta),
		A: base.A,
	}
}

func shiftChannel(c uint8, delta float64) uint8 {
	v := math.Floor(float64(c) + delta)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// FaceVisible reports whether face f of the cell at pos can be seen from the
// vanishing cell vc. Only sides facing vc are drawn; the roof always is.
func FaceVisible(f Face, pos, vc Cell) bool {
	switch f {
	case FaceNorth:
		return pos.Y > vc.Y
	case FaceSouth:
		return pos.Y < vc.Y
	case FaceEast:
		return pos.X < vc.X
	case FaceWest:
		return pos.X > vc.X
	case FaceRoof:
		return true
	default:
		return false
	}
}

// drawSequence is the order faces of one cuboid are painted in. The roof
// comes last so it caps the sides.
var drawSequence = [...]Face{FaceNorth, FaceEast, FaceWest, FaceSouth, FaceRoof}

// SelectVisibleFaces culls the back faces of c and shades the rest. The
// result is in paint order with the roof last.
func SelectVisibleFaces(pos, vc Cell, c Cuboid, height int, base color.RGBA) []ShadedFace {
	if height <= 0 {
		return nil
	}
	faces := make([]ShadedFace, 0, 3)
	for _, f := range drawSequence {
		if !FaceVisible(f, pos, vc) {
			continue
		}
		faces = append(faces, ShadedFace{Face: f, Quad: c.Face(f), Color: Shade(base, f, height)})
	}
	return faces
}
