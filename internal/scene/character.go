package scene

import "perspectiveview/internal/perspective"

// Character is the walking box of the demo. X and Y are its centre.
type Character struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

// Centre returns the centre as a point.
func (c Character) Centre() perspective.Point {
	return perspective.Point{X: c.X, Y: c.Y}
}

// Quad returns the corners clockwise from the top-left.
func (c Character) Quad() perspective.Quad {
	l, t := c.X-c.W/2, c.Y-c.H/2
	r, b := c.X+c.W/2, c.Y+c.H/2
	return perspective.Quad{{X: l, Y: t}, {X: r, Y: t}, {X: r, Y: b}, {X: l, Y: b}}
}

// move advances c by one tick of in. Vertical and horizontal movement are
// resolved independently; up wins over down and left over right. A step is
// refused when the leading edge would enter a blocked cell.
func (c *Character) move(in moveInput, blocked func(x, y float64) bool) {
	switch {
	case in.up:
		if !blocked(c.X, c.Y-c.H/2-c.Speed) {
			c.Y -= c.Speed
		}
	case in.down:
		if !blocked(c.X, c.Y+c.H/2+c.Speed) {
			c.Y += c.Speed
		}
	}
	switch {
	case in.left:
		if !blocked(c.X-c.W/2-c.Speed, c.Y) {
			c.X -= c.Speed
		}
	case in.right:
		if !blocked(c.X+c.W/2+c.Speed, c.Y) {
			c.X += c.Speed
		}
	}
}

type moveInput struct {
	up, down, left, right bool
}
