package maps

import (
	"fmt"

	"perspectiveview/internal/perspective"
)

// Buffer sizes a section around a centre cell, in cells per direction.
type Buffer struct {
	Top, Right, Bottom, Left int
}

// Section copies the cells from (x, y) to (x+amountX, y+amountY) inclusive.
// Cells outside the grid hold m.Fallback. Negative amounts yield nil.
func (m *Map) Section(x, y, amountX, amountY int) [][]int {
	if amountX < 0 || amountY < 0 {
		return nil
	}
	out := make([][]int, amountY+1)
	for ry := range out {
		row := make([]int, amountX+1)
		for rx := range row {
			row[rx] = m.At(x+rx, y+ry)
		}
		out[ry] = row
	}
	return out
}

// SectionAt returns the section centred on (cx, cy) extended by buf in each
// direction. Buffer values are taken by magnitude.
func (m *Map) SectionAt(cx, cy int, buf Buffer) [][]int {
	top, right, bottom, left := abs(buf.Top), abs(buf.Right), abs(buf.Bottom), abs(buf.Left)
	return m.Section(cx-left, cy-top, right+left, bottom+top)
}

// SubMap is SectionAt wrapped into a Map that keeps the name, unit and
// fallback of m. A negative fallback cannot pad a height map and is reported
// as perspective.ErrNegativeHeight.
func (m *Map) SubMap(cx, cy int, buf Buffer) (*Map, error) {
	hm, err := perspective.NewHeightMap(m.SectionAt(cx, cy, buf))
	if err != nil {
		return nil, fmt.Errorf("section of %q at (%d,%d): %w", m.Name, cx, cy, err)
	}
	return &Map{
		Name:     m.Name,
		Unit:     m.Unit,
		UnitSet:  m.UnitSet,
		Fallback: m.Fallback,
		Heights:  hm,
	}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
