// Package transport - unified entry points and the MODI optimization loop.
//
// This file provides the canonical solver surface:
//
//   - SolveGrid: accept raw [][]float64 costs, build a matrix.Dense, then
//     delegate to Solve.
//   - Solve: validate the instance, build the NWCM starting plan, then run
//     the MODI loop as an explicit state machine until optimal or capped.
//
// Design principles:
//   - Deterministic: fixed tie-breaking everywhere; no randomness.
//   - Strict sentinels: only errors from types.go; fmt.Errorf adds context.
//   - Atomic iterations: an iteration fully commits (allocation + basis +
//     trace record) or the whole solve fails; no partial observation.
//   - Stable cost: all reported costs are rounded to 1e−9 to prevent FP drift.
package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transportlp/matrix"
)

// solveState enumerates the reoptimizer states. Evaluating and Shifting
// alternate until a terminal state (Optimal or Failed) is reached.
type solveState int

const (
	stateEvaluating solveState = iota
	stateShifting
	stateOptimal
	stateFailed
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// SolveGrid builds a matrix.Dense from raw cost rows and delegates to Solve.
//
// Errors: matrix construction sentinels (matrix.ErrInvalidDimensions,
// matrix.ErrRaggedRows, matrix.ErrNaNInf) plus everything Solve returns.
//
// Complexity: O(m·n) ingestion + Solve.
func SolveGrid(costs [][]float64, supply, demand []float64, opts Options) (Result, error) {
	dense, err := matrix.NewDenseFromRows(costs)
	if err != nil {
		return Result{}, err
	}

	return Solve(dense, supply, demand, opts)
}

// Solve computes the cost-minimal shipment plan for a balanced
// transportation instance.
//
// Pipeline: Validate → NWCM initial plan → MODI loop
// (potentials → pricing → closed loop → θ shift) until no non-basic cell
// prices below −Eps, or the iteration cap MaxIterFactor×m×n is hit.
//
// Contracts:
//   - costs is read-only: the solver works on a private snapshot.
//   - On success Result.Optimal is true and Result.Allocation satisfies
//     every row/column sum exactly.
//   - On ErrNonConvergence the returned Result still carries the best
//     (lowest-cost) allocation reached and the iteration count.
//   - ErrInvariant propagates as-is: correctness defects are never masked.
//
// Complexity: O(iterations · m·n) time, O(m·n) space.
func Solve(costs *matrix.Dense, supply, demand []float64, opts Options) (Result, error) {
	// Stage 1 - validation (shape, values, balance, options).
	if err := Validate(costs, supply, demand, opts); err != nil {
		return Result{}, err
	}

	return solveBounded(costs, supply, demand, opts,
		opts.MaxIterFactor*costs.Rows()*costs.Cols())
}

// solveBounded runs the NWCM start and the MODI loop under an explicit
// iteration budget. Inputs must already be validated.
func solveBounded(costs *matrix.Dense, supply, demand []float64, opts Options, limit int) (Result, error) {
	m, n := costs.Rows(), costs.Cols()

	// Stage 2 - private cost snapshot; the caller's matrix stays untouched
	// and immutable from the solver's point of view.
	cost := costs.Grid()

	// Stage 3 - initial basic feasible plan via NWCM.
	alloc, b, err := northwestCorner(supply, demand, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	var trace []IterationRecord
	if opts.ReturnTrace {
		trace = append(trace, IterationRecord{
			Index:      0,
			Cost:       totalCost(cost, alloc),
			Allocation: snapshot(alloc),
		})
	}

	// Stage 4 - MODI loop as an explicit state machine with a hard cap.
	var (
		iter     int
		st       = stateEvaluating
		entering Cell
	)
	for st == stateEvaluating || st == stateShifting {
		switch st {
		case stateEvaluating:
			// Basis health gates every evaluation; a defect here is fatal.
			if err = b.verify(); err != nil {
				return Result{}, err
			}
			u, v, perr := computePotentials(cost, b)
			if perr != nil {
				return Result{}, perr
			}
			cell, _, found := selectEntering(cost, b, u, v, opts.Eps)
			if !found {
				st = stateOptimal // d(i,j) ≥ −Eps everywhere: optimal

				continue
			}
			if iter >= limit {
				st = stateFailed // improving move exists but budget is spent

				continue
			}
			entering = cell
			st = stateShifting

		case stateShifting:
			loop, lerr := findLoop(entering, b)
			if lerr != nil {
				return Result{}, lerr
			}

			theta, leaving := selectLeaving(loop, alloc)

			// Commit the shift: +θ on plus cells, −θ on minus cells.
			for _, sc := range loop {
				alloc[sc.Cell.Row][sc.Cell.Col] += float64(sc.Sign) * theta
			}
			// The leaving cell is zero by construction; pin it exactly so
			// FP residue can never resurrect it.
			alloc[leaving.Row][leaving.Col] = 0

			// Basis update: entering joins, exactly one minus cell leaves.
			// Other minus cells that also hit zero stay basic at zero
			// (degenerate tie), preserving the m+n−1 count.
			b.add(entering)
			b.remove(leaving)

			iter++
			if opts.ReturnTrace {
				trace = append(trace, IterationRecord{
					Index:    iter,
					Entering: entering,
					Loop:     loop,
					Theta:    theta,
					Leaving:  leaving,
					Cost:     totalCost(cost, alloc),
				})
			}
			st = stateEvaluating
		}
	}

	// Stage 5 - materialize the result.
	final, err := matrix.NewDenseFromRows(alloc)
	if err != nil {
		// alloc is rectangular and finite by construction.
		return Result{}, fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	res := Result{
		Allocation: final,
		Cost:       totalCost(cost, alloc),
		Iterations: iter,
		Optimal:    st == stateOptimal,
		Trace:      trace,
	}

	if st == stateFailed {
		return res, fmt.Errorf("%w: %d iterations (cap %d, instance %d×%d)",
			ErrNonConvergence, iter, limit, m, n)
	}

	return res, nil
}

// PlanCost computes the total shipping cost of an allocation under a cost
// matrix: Σ allocation[i][j] × cost[i][j].
//
// Contract: both matrices non-nil with identical shape.
// Errors: ErrShape on nil or mismatched inputs.
//
// Complexity: O(m·n).
func PlanCost(costs, allocation *matrix.Dense) (float64, error) {
	if costs == nil || allocation == nil {
		return 0, fmt.Errorf("%w: nil matrix", ErrShape)
	}
	if costs.Rows() != allocation.Rows() || costs.Cols() != allocation.Cols() {
		return 0, fmt.Errorf("%w: cost %d×%d vs allocation %d×%d", ErrShape,
			costs.Rows(), costs.Cols(), allocation.Rows(), allocation.Cols())
	}

	return totalCost(costs.Grid(), allocation.Grid()), nil
}

// selectLeaving finds θ (the minimum allocation over minus-signed loop
// cells) and the leaving cell. Ties on the minimum break to the lowest
// row, then lowest column, independent of loop orientation.
func selectLeaving(loop []SignedCell, alloc [][]float64) (theta float64, leaving Cell) {
	first := true

	var q float64
	for _, sc := range loop {
		if sc.Sign != SignMinus {
			continue
		}
		q = alloc[sc.Cell.Row][sc.Cell.Col]
		switch {
		case first, q < theta:
			theta = q
			leaving = sc.Cell
			first = false
		case q == theta && lowerCell(sc.Cell, leaving):
			leaving = sc.Cell
		}
	}

	return theta, leaving
}

// lowerCell reports whether a precedes b in row-then-column order.
func lowerCell(a, b Cell) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

// totalCost sums alloc[i][j]·cost[i][j] over all cells, stabilized to 1e-9.
func totalCost(cost, alloc [][]float64) float64 {
	var sum float64
	for i := range alloc {
		for j := range alloc[i] {
			sum += alloc[i][j] * cost[i][j]
		}
	}

	return round1e9(sum)
}

// snapshot deep-copies an allocation grid for trace records.
func snapshot(alloc [][]float64) [][]float64 {
	out := make([][]float64, len(alloc))
	for i := range alloc {
		out[i] = make([]float64, len(alloc[i]))
		copy(out[i], alloc[i])
	}

	return out
}

// round1e9 rounds x to 9 decimal places for cross-platform stability.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
