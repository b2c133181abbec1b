package perspective

// Face names one of the six quads of a cuboid.
type Face uint8

const (
	FaceBase Face = iota
	FaceRoof
	FaceNorth
	FaceEast
	FaceSouth
	FaceWest
)

var faceNames = [...]string{"base", "roof", "north", "east", "south", "west"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return "unknown"
}

// ParseFace maps a face name back to its Face.
func ParseFace(s string) (Face, bool) {
	for i, name := range faceNames {
		if name == s {
			return Face(i), true
		}
	}
	return 0, false
}

// Cuboid holds the projected quads of one occupied cell. Base and Roof are
// ordered top-left, top-right, bottom-right, bottom-left. Side quads run
// base[i], base[i+1], roof[i+1], roof[i].
type Cuboid struct {
	Base, Roof               Quad
	North, East, South, West Quad
}

// Face returns the quad for f.
func (c Cuboid) Face(f Face) Quad {
	switch f {
	case FaceRoof:
		return c.Roof
	case FaceNorth:
		return c.North
	case FaceEast:
		return c.East
	case FaceSouth:
		return c.South
	case FaceWest:
		return c.West
	default:
		return c.Base
	}
}

// Project computes the cuboid for the cell at pos with the given height.
// Every roof corner is its base corner pushed along (corner - vp) by
// height*depthFactor. Heights of zero or less yield no geometry.
func Project(pos Cell, height int, unit UnitSize, vp Point, depthFactor float64) (Cuboid, bool) {
	if height <= 0 {
		return Cuboid{}, false
	}
	origin := Point{X: float64(pos.X) * unit.X, Y: float64(pos.Y) * unit.Y}
	base := Quad{
		origin,
		{X: origin.X + unit.X, Y: origin.Y},
		{X: origin.X + unit.X, Y: origin.Y + unit.Y},
		{X: origin.X, Y: origin.Y + unit.Y},
	}
	objectDepth := float64(height) * depthFactor
	var roof Quad
	for i, corner := range base {
		roof[i] = corner.Add(corner.Sub(vp).Scale(objectDepth))
	}
	side := func(i int) Quad {
		j := (i + 1) % 4
		return Quad{base[i], base[j], roof[j], roof[i]}
	}
	return Cuboid{
		Base:  base,
		Roof:  roof,
		North: side(0),
		East:  side(1),
		South: side(2),
		West:  side(3),
	}, true
}
