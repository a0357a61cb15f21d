package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNorthwestCorner_Standard replays the canonical 2×3 instance:
// supply [100,120], demand [80,70,70]. The cursor walk must yield
// {(0,0):80, (0,1):20, (1,1):50, (1,2):70} with m+n−1 = 4 basic cells.
func TestNorthwestCorner_Standard(t *testing.T) {
	alloc, b, err := northwestCorner([]float64{100, 120}, []float64{80, 70, 70}, 1e-9)
	require.NoError(t, err)

	want := [][]float64{
		{80, 20, 0},
		{0, 50, 70},
	}
	assert.Equal(t, want, alloc)
	assert.Equal(t, 4, b.size())
	for _, c := range []Cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}} {
		assert.True(t, b.has(c), "cell %v must be basic", c)
	}
	require.NoError(t, b.verify())

	cost := [][]float64{{4, 6, 8}, {5, 4, 7}}
	assert.Equal(t, 1130.0, totalCost(cost, alloc), "initial NWCM cost")
}

// TestNorthwestCorner_DegenerateTie drives the simultaneous-exhaustion
// tie at the first step: supply [10,10], demand [10,10]. The zero-valued
// phantom cell at (1,0) must keep the basis at m+n−1 = 3 cells, not 2.
func TestNorthwestCorner_DegenerateTie(t *testing.T) {
	alloc, b, err := northwestCorner([]float64{10, 10}, []float64{10, 10}, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{10, 0}, {0, 10}}, alloc)
	assert.Equal(t, 3, b.size())
	assert.True(t, b.has(Cell{Row: 1, Col: 0}), "phantom zero cell expected at (1,0)")
	require.NoError(t, b.verify())
}

// TestNorthwestCorner_RowColSums checks feasibility on a larger instance:
// every row sums to its supply and every column to its demand.
func TestNorthwestCorner_RowColSums(t *testing.T) {
	supply := []float64{30, 50, 20, 40}
	demand := []float64{25, 35, 45, 15, 20}

	alloc, b, err := northwestCorner(supply, demand, 1e-9)
	require.NoError(t, err)
	require.NoError(t, b.verify())
	assert.Equal(t, len(supply)+len(demand)-1, b.size())

	for i, s := range supply {
		var sum float64
		for j := range demand {
			sum += alloc[i][j]
			assert.GreaterOrEqual(t, alloc[i][j], 0.0)
		}
		assert.InDelta(t, s, sum, 1e-9, "row %d sum", i)
	}
	for j, d := range demand {
		var sum float64
		for i := range supply {
			sum += alloc[i][j]
		}
		assert.InDelta(t, d, sum, 1e-9, "column %d sum", j)
	}
}

// TestNorthwestCorner_SingleRow covers the m==1 edge: the walk sweeps the
// columns and every cell becomes basic (n == m+n−1).
func TestNorthwestCorner_SingleRow(t *testing.T) {
	alloc, b, err := northwestCorner([]float64{60}, []float64{10, 20, 30}, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{10, 20, 30}}, alloc)
	assert.Equal(t, 3, b.size())
	require.NoError(t, b.verify())
}

// TestNorthwestCorner_UnbalancedBypass verifies that an unbalanced
// instance smuggled past validation surfaces as ErrInvariant rather than
// a silently infeasible plan.
func TestNorthwestCorner_UnbalancedBypass(t *testing.T) {
	_, _, err := northwestCorner([]float64{10, 20}, []float64{15, 10}, 1e-9)
	assert.ErrorIs(t, err, ErrInvariant)
}
