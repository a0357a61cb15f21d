package transport_test

import "math/rand"

// newTestRNG returns a deterministic RNG for property tests; a fixed seed
// keeps failures reproducible.
func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomBalancedInstance generates an m×n instance with small integer
// costs and integer supply/demand vectors sharing the same total, so the
// balance invariant holds exactly.
func randomBalancedInstance(rng *rand.Rand, m, n int) (costs [][]float64, supply, demand []float64) {
	costs = make([][]float64, m)
	for i := range costs {
		costs[i] = make([]float64, n)
		for j := range costs[i] {
			costs[i][j] = float64(1 + rng.Intn(20))
		}
	}

	supply = make([]float64, m)
	var total int
	for i := range supply {
		q := 1 + rng.Intn(20)
		supply[i] = float64(q)
		total += q
	}

	// Distribute the same total over the demand vector unit by unit.
	demand = make([]float64, n)
	for u := 0; u < total; u++ {
		demand[rng.Intn(n)]++
	}

	return costs, supply, demand
}

// rowColSums returns per-row and per-column totals of a grid.
func rowColSums(grid [][]float64) (rows, cols []float64) {
	rows = make([]float64, len(grid))
	cols = make([]float64, len(grid[0]))
	for i := range grid {
		for j := range grid[i] {
			rows[i] += grid[i][j]
			cols[j] += grid[i][j]
		}
	}

	return rows, cols
}

// bruteForce2x2 exhaustively minimizes a balanced 2×2 integer instance:
// the allocation is fully determined by x00, which ranges over the
// feasible integer interval.
func bruteForce2x2(costs [][]float64, supply, demand []float64) float64 {
	lo := supply[0] - demand[1]
	if lo < 0 {
		lo = 0
	}
	hi := supply[0]
	if demand[0] < hi {
		hi = demand[0]
	}

	best := 0.0
	for x := lo; x <= hi; x++ {
		cost := costs[0][0]*x +
			costs[0][1]*(supply[0]-x) +
			costs[1][0]*(demand[0]-x) +
			costs[1][1]*(demand[1]-supply[0]+x)
		if x == lo || cost < best {
			best = cost
		}
	}

	return best
}
