package perspective

import (
	"errors"
	"slices"
	"testing"
)

func TestHeightMapRoundTrip(t *testing.T) {
	rows := [][]int{
		{0, 1, 2},
		{3, 0, 0},
	}
	m, err := NewHeightMap(rows)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width(), m.Height())
	}
	got := m.Rows()
	for y := range rows {
		if !slices.Equal(got[y], rows[y]) {
			t.Fatalf("row %d = %v, want %v", y, got[y], rows[y])
		}
	}

	// Neither the input nor the returned copy alias the map.
	rows[0][1] = 9
	got[1][0] = 9
	if v, _ := m.At(1, 0); v != 1 {
		t.Fatalf("input mutation leaked into map: %d", v)
	}
	if v, _ := m.At(0, 1); v != 3 {
		t.Fatalf("Rows mutation leaked into map: %d", v)
	}
}

func TestHeightMapRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"nil", nil, ErrEmptyMap},
		{"empty row", [][]int{{}}, ErrEmptyMap},
		{"ragged", [][]int{{0, 1}, {0}}, ErrRaggedMap},
		{"negative", [][]int{{0, -1}}, ErrNegativeHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHeightMap(tt.rows); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHeightMapAt(t *testing.T) {
	m := MustHeightMap([][]int{{1, 2}, {3, 4}})
	if v, ok := m.At(1, 1); !ok || v != 4 {
		t.Fatalf("At(1,1) = %d,%v", v, ok)
	}
	for _, c := range []Cell{{-1, 0}, {2, 0}, {0, 2}} {
		if _, ok := m.At(c.X, c.Y); ok {
			t.Fatalf("At(%d,%d) reported in bounds", c.X, c.Y)
		}
	}
	if m.MaxHeight() != 4 {
		t.Fatalf("MaxHeight = %d", m.MaxHeight())
	}
	if !m.Equal(MustHeightMap(m.Rows())) {
		t.Fatal("map not equal to its own copy")
	}
	if m.Equal(MustHeightMap([][]int{{1, 2}, {3, 5}})) {
		t.Fatal("maps with different heights compared equal")
	}
}
