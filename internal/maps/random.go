package maps

import (
	"fmt"

	"perspectiveview/internal/core"
	"perspectiveview/internal/perspective"
)

// RandomOptions shapes a generated map.
type RandomOptions struct {
	Width, Height int
	// MaxHeight bounds the height of generated blocks (at least 1).
	MaxHeight int
	// Density is the probability that an interior cell holds a block.
	Density float64
	// Walls surrounds the map with a ring of height-1 blocks.
	Walls bool
}

// Random builds a deterministic map from seed. The same options and seed
// always produce the same map.
func Random(opts RandomOptions, seed int64) (*Map, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("random map %dx%d: %w", opts.Width, opts.Height, perspective.ErrEmptyMap)
	}
	maxH := opts.MaxHeight
	if maxH < 1 {
		maxH = 1
	}
	rng := core.NewRNG(seed)
	rows := make([][]int, opts.Height)
	for y := range rows {
		row := make([]int, opts.Width)
		for x := range row {
			edge := x == 0 || y == 0 || x == opts.Width-1 || y == opts.Height-1
			switch {
			case opts.Walls && edge:
				row[x] = 1
			case rng.Float64() < opts.Density:
				row[x] = 1 + rng.IntN(maxH)
			}
		}
		rows[y] = row
	}
	return New(fmt.Sprintf("random-%d", seed), perspective.DefaultConfig().Unit, rows)
}
