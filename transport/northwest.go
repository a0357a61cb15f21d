// Package transport - North-West Corner Method (NWCM).
//
// NWCM builds the initial basic feasible allocation by walking a cursor
// from the top-left cell to the bottom-right cell, exhausting one row or
// one column per step. The walk visits exactly m+n−1 cells, which makes
// the resulting basis a spanning tree of the bipartite row/column graph
// by construction.
package transport

import (
	"fmt"
	"math"
)

// northwestCorner produces the initial allocation and basis for a
// validated, balanced instance.
//
// Algorithm: maintain a cursor (r,c) from (0,0) plus remaining supply and
// demand copies. Each step allocates min(remaining supply[r], remaining
// demand[c]) at (r,c), marks the cell basic, and advances exactly one
// cursor: the row when its supply is exhausted, the column when its
// demand is exhausted. When both exhaust simultaneously (a degenerate
// tie) only the row advances, so the next step allocates a zero-valued
// phantom basic cell at (r+1,c) - the standard tie-break that preserves
// the m+n−1 spanning-tree cell count. The final cell (m−1,n−1) absorbs
// the remaining quantity exactly, by the balance invariant.
//
// Errors: a remaining-quantity mismatch at the final cell means the
// balance invariant did not hold - a Validator bypass - and is reported
// as a wrapped ErrInvariant.
//
// Complexity: O(m·n) for the allocation grid, O(m+n) walk steps.
func northwestCorner(supply, demand []float64, eps float64) ([][]float64, *basis, error) {
	m, n := len(supply), len(demand)

	// Remaining-quantity copies; the walk mutates these, never the inputs.
	s := make([]float64, m)
	copy(s, supply)
	d := make([]float64, n)
	copy(d, demand)

	// Zero allocation grid.
	alloc := make([][]float64, m)
	for i := range alloc {
		alloc[i] = make([]float64, n)
	}

	b := newBasis(m, n)

	var (
		r, c int     // cursor
		q    float64 // quantity allocated this step
	)
	for {
		// Allocate the feasible maximum at the cursor and mark it basic.
		q = math.Min(s[r], d[c])
		alloc[r][c] = q
		b.add(Cell{Row: r, Col: c})
		s[r] -= q
		d[c] -= q

		// Termination: the final cell must settle both remainders.
		if r == m-1 && c == n-1 {
			if math.Abs(s[r]) > eps || math.Abs(d[c]) > eps {
				return nil, nil, fmt.Errorf(
					"%w: NWCM final cell leaves supply %g / demand %g unallocated",
					ErrInvariant, s[r], d[c])
			}

			break
		}

		// Advance exactly one cursor. Note: subtracting the minimum makes
		// the exhausted side exactly zero, so == 0 comparisons are safe.
		switch {
		case s[r] == 0 && d[c] == 0:
			// Degenerate tie: advance the row only; the next step plants
			// the zero-valued phantom cell at (r+1, c).
			if r < m-1 {
				r++
			} else {
				c++
			}
		case s[r] == 0:
			if r == m-1 {
				// Last row exhausted while demand remains: unbalanced
				// input slipped past validation.
				return nil, nil, fmt.Errorf(
					"%w: NWCM exhausted supply with demand %g remaining at column %d",
					ErrInvariant, d[c], c)
			}
			r++
		default: // d[c] == 0
			if c == n-1 {
				return nil, nil, fmt.Errorf(
					"%w: NWCM exhausted demand with supply %g remaining at row %d",
					ErrInvariant, s[r], r)
			}
			c++
		}
	}

	// The walk marks one cell per step across (m−1)+(n−1)+1 steps.
	if err := b.verify(); err != nil {
		return nil, nil, err
	}

	return alloc, b, nil
}
