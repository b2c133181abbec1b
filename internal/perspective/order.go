package perspective

import "fmt"

// AxisOrder orders the indices 0..n-1 starting at v and counting up to n-1,
// then continuing from v-1 down to 0. A v outside [0,n) leaves one of the
// two runs empty.
func AxisOrder(n, v int) []int {
	if n <= 0 {
		return nil
	}
	if v < 0 {
		v = 0
	}
	if v > n {
		v = n
	}
	order := make([]int, 0, n)
	for i := v; i < n; i++ {
		order = append(order, i)
	}
	for i := v - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

// ComputeOrder returns every cell of a width×height grid exactly once, rows
// in AxisOrder(height, vc.Y) and columns in AxisOrder(width, vc.X).
//
// Cells next to the vanishing cell come first. Painters must walk the result
// from the end so those cells are drawn last and cover the ones behind them.
// The order is monotone per axis only; diagonal neighbours at the same
// distance from vc are not ranked against each other.
func ComputeOrder(width, height int, vc Cell) ([]Cell, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("order for %dx%d grid: %w", width, height, ErrEmptyMap)
	}
	xs := AxisOrder(width, vc.X)
	ys := AxisOrder(height, vc.Y)
	order := make([]Cell, 0, width*height)
	for _, y := range ys {
		for _, x := range xs {
			order = append(order, Cell{X: x, Y: y})
		}
	}
	return order, nil
}
