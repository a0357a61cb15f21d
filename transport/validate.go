// Package transport - validation utilities shared by the solver stages.
//
// This file contains small, tight helpers that:
//  1. Validate Options (tolerance, iteration bound).
//  2. Validate instance shape (matrix dims vs. vector lengths).
//  3. Validate values (finite, non-negative) and the balance invariant.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(m·n) worst case; no hidden allocations.
package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transportlp/matrix"
)

// Validate verifies that (costs, supply, demand) form a well-shaped,
// balanced transportation instance under opts.
//
// Contract:
//   - costs must be non-nil and non-empty (m > 0, n > 0) with
//     Rows()==len(supply) and Cols()==len(demand).
//   - every cost, supply and demand value must be finite and ≥ 0.
//   - |Σsupply − Σdemand| ≤ opts.Eps (balance invariant).
//
// Errors: ErrBadOptions, ErrShape, ErrBadValue, ErrNegativeValue,
// ErrUnbalanced (wrapped with both totals and their difference).
//
// Complexity: O(m·n) time, O(1) extra space.
func Validate(costs *matrix.Dense, supply, demand []float64, opts Options) error {
	// Stage 1: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: shape checks.
	if costs == nil {
		return fmt.Errorf("%w: nil cost matrix", ErrShape)
	}
	m, n := costs.Rows(), costs.Cols()
	if m == 0 || n == 0 {
		// A zero-value Dense reaches here; without rows and columns there
		// is nothing to allocate over.
		return fmt.Errorf("%w: empty instance %d×%d", ErrShape, m, n)
	}
	if len(supply) != m {
		return fmt.Errorf("%w: %d cost rows vs %d supply entries", ErrShape, m, len(supply))
	}
	if len(demand) != n {
		return fmt.Errorf("%w: %d cost columns vs %d demand entries", ErrShape, n, len(demand))
	}

	// Stage 3: value checks (finite, non-negative) + totals.
	var (
		i, j       int     // loop indices
		v          float64 // value under validation
		err        error
		sumS, sumD float64 // running supply/demand totals
	)
	for i = 0; i < m; i++ { // cost entries, row-major
		for j = 0; j < n; j++ {
			v, err = costs.At(i, j)
			if err != nil {
				// Dense.At fails only on OOB; map to the shape sentinel.
				return ErrShape
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: cost (%d,%d)", ErrBadValue, i, j)
			}
			if v < 0 {
				return fmt.Errorf("%w: cost (%d,%d) = %g", ErrNegativeValue, i, j, v)
			}
		}
	}
	for i, v = range supply { // supply vector
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: supply[%d]", ErrBadValue, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: supply[%d] = %g", ErrNegativeValue, i, v)
		}
		sumS += v
	}
	for j, v = range demand { // demand vector
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: demand[%d]", ErrBadValue, j)
		}
		if v < 0 {
			return fmt.Errorf("%w: demand[%d] = %g", ErrNegativeValue, j, v)
		}
		sumD += v
	}

	// Stage 4: balance invariant within tolerance.
	if diff := sumS - sumD; math.Abs(diff) > opts.Eps {
		return fmt.Errorf("%w: total supply %g vs total demand %g (difference %g)",
			ErrUnbalanced, sumS, sumD, diff)
	}

	return nil
}

// validateOptions checks internal consistency of Options without touching
// the instance. Complexity: O(1).
func validateOptions(opts Options) error {
	// Eps is the acceptance tolerance; a negative epsilon would invert
	// the balance and optimality tests ⇒ reject.
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return fmt.Errorf("%w: Eps must be ≥ 0", ErrBadOptions)
	}
	// The iteration cap must leave room for at least one pass.
	if opts.MaxIterFactor < 1 {
		return fmt.Errorf("%w: MaxIterFactor must be ≥ 1", ErrBadOptions)
	}

	return nil
}
