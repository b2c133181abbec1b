package perspective

import "math"

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p*s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Cell addresses a grid cell.
type Cell struct {
	X, Y int
}

// UnitSize is the pixel footprint of one grid cell.
type UnitSize struct {
	X, Y float64
}

func (u UnitSize) valid() bool {
	return u.X > 0 && u.Y > 0 && !math.IsInf(u.X, 0) && !math.IsInf(u.Y, 0)
}

// CellAt returns the grid cell containing the pixel position p.
func CellAt(p Point, unit UnitSize) Cell {
	return Cell{
		X: int(math.Floor(p.X / unit.X)),
		Y: int(math.Floor(p.Y / unit.Y)),
	}
}

// Quad is a closed four-point polygon.
type Quad [4]Point

// Points returns the quad as a slice suitable for a Surface.
func (q Quad) Points() []Point {
	return []Point{q[0], q[1], q[2], q[3]}
}
