// Package transport - opportunity cost evaluation (MODI pricing step).
//
// With potentials in hand, every non-basic cell is priced by its reduced
// cost d(i,j) = cost[i][j] − (u[i] + v[j]). A negative d means shipping
// one unit along (i,j) would lower total cost; the current allocation is
// optimal exactly when no non-basic cell prices below zero.
package transport

// selectEntering scans all non-basic cells for the most negative
// opportunity cost and returns it as the entering cell.
//
// Policy: a cell qualifies only when d < −eps (the tolerance keeps FP
// noise from triggering phantom iterations). Ties on the most negative
// value break to the lowest row, then lowest column - the strict "<"
// comparison under a row-major scan yields exactly that order.
//
// Returns found=false when every non-basic d ≥ −eps, i.e. the current
// allocation is optimal.
//
// Complexity: O(m·n) time, O(1) space.
func selectEntering(cost [][]float64, b *basis, u, v []float64, eps float64) (best Cell, bestD float64, found bool) {
	var (
		i, j int
		d    float64
	)
	for i = 0; i < b.m; i++ { // row-major for deterministic tie-breaking
		for j = 0; j < b.n; j++ {
			if b.has(Cell{Row: i, Col: j}) {
				continue // basic cells price to zero by construction
			}
			d = cost[i][j] - u[i] - v[j]
			if d < -eps && (!found || d < bestD) {
				best = Cell{Row: i, Col: j}
				bestD = d
				found = true
			}
		}
	}

	return best, bestD, found
}
