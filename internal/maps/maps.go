// Package maps sources height maps for the renderer: embedded demo maps, map
// files on disk, seeded random maps and fallback-padded sections.
package maps

import (
	"fmt"

	"perspectiveview/internal/perspective"
)

// Map is a named height map together with the tile size it was authored for.
// UnitSet is true when the source named its own unit rather than taking the
// default. Fallback is the height reported for cells outside the grid when a
// section is taken.
type Map struct {
	Name     string
	Unit     perspective.UnitSize
	UnitSet  bool
	Fallback int
	Heights  *perspective.HeightMap
}

// New wraps rows into a Map, validating them through perspective.NewHeightMap.
func New(name string, unit perspective.UnitSize, rows [][]int) (*Map, error) {
	hm, err := perspective.NewHeightMap(rows)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	return &Map{Name: name, Unit: unit, Heights: hm}, nil
}

// Width is the number of columns.
func (m *Map) Width() int { return m.Heights.Width() }

// Height is the number of rows.
func (m *Map) Height() int { return m.Heights.Height() }

// At returns the height at (x, y) or the fallback outside the grid.
func (m *Map) At(x, y int) int {
	if h, ok := m.Heights.At(x, y); ok {
		return h
	}
	return m.Fallback
}

// Occupied reports whether the cell at (x, y) blocks movement.
func (m *Map) Occupied(x, y int) bool {
	return m.At(x, y) > 0
}
