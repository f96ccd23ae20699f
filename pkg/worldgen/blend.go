package worldgen

import (
	"fmt"

	"biomegen/pkg/grid"
)

// Cascade rewrites per-biome influence grids, in place, into blend weights.
// The last biome takes whatever the second-to-last leaves (1 - w[n-2]); each
// interior biome, walking backwards, keeps only its excess over its
// predecessor (w[i] - w[i-1]); the first biome is left as is. The result is
// not a partition of unity and depends on list order.
func Cascade(weights []*grid.Grid) error {
	n := len(weights)
	if n < 2 {
		return nil
	}

	weights[n-1] = grid.SubtractScalar(1, weights[n-2])
	for i := n - 2; i > 0; i-- {
		w, err := grid.Subtract(weights[i], weights[i-1])
		if err != nil {
			return fmt.Errorf("cascade biome %d: %w", i, err)
		}
		weights[i] = w
	}
	return nil
}

// Blend multiplies each field by its weight and sums the products.
func Blend(fields, weights []*grid.Grid) (*grid.Grid, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to blend", ErrEmptyInput)
	}
	if len(fields) != len(weights) {
		return nil, fmt.Errorf("blend: %d fields but %d weights", len(fields), len(weights))
	}

	var heights *grid.Grid
	for i := range fields {
		weighted, err := grid.Multiply(fields[i], weights[i])
		if err != nil {
			return nil, fmt.Errorf("blend biome %d: %w", i, err)
		}
		if heights == nil {
			heights = weighted
			continue
		}
		if heights, err = grid.Add(heights, weighted); err != nil {
			return nil, fmt.Errorf("blend biome %d: %w", i, err)
		}
	}
	return heights, nil
}
