package perspective

import "fmt"

// HeightMap stores a rectangular grid of cell heights in row-major order.
// A height of 0 is empty ground; anything above is an occupied cell. The map
// is immutable once built, so a renderer can hold it across frames.
type HeightMap struct {
	w, h int
	data []int
}

// NewHeightMap copies rows into a HeightMap. Rows are indexed [y][x].
func NewHeightMap(rows [][]int) (*HeightMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	w, h := len(rows[0]), len(rows)
	data := make([]int, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrRaggedMap)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", x, y, v, ErrNegativeHeight)
			}
		}
		data = append(data, row...)
	}
	return &HeightMap{w: w, h: h, data: data}, nil
}

// MustHeightMap is NewHeightMap for literals known to be valid.
func MustHeightMap(rows [][]int) *HeightMap {
	m, err := NewHeightMap(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the number of columns.
func (m *HeightMap) Width() int { return m.w }

// Height returns the number of rows.
func (m *HeightMap) Height() int { return m.h }

// InBounds reports whether (x, y) addresses a cell of the map.
func (m *HeightMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.w && y < m.h
}

// At returns the height at (x, y). Out-of-range coordinates report false.
func (m *HeightMap) At(x, y int) (int, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.data[y*m.w+x], true
}

// Rows returns a deep copy of the grid in [y][x] layout.
func (m *HeightMap) Rows() [][]int {
	rows := make([][]int, m.h)
	for y := range rows {
		rows[y] = append([]int(nil), m.data[y*m.w:(y+1)*m.w]...)
	}
	return rows
}

// MaxHeight returns the tallest cell in the map.
func (m *HeightMap) MaxHeight() int {
	max := 0
	for _, v := range m.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Equal reports whether both maps have the same dimensions and heights.
func (m *HeightMap) Equal(o *HeightMap) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
