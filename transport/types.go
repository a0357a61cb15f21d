// Package transport - core types, options, and sentinel errors.
//
// This file defines the public surface shared by all solver stages:
// sentinel errors (matched via errors.Is), cells and signed loop members,
// per-iteration trace records, solver options and the final Result.
package transport

import (
	"errors"

	"github.com/katalvlaran/transportlp/matrix"
)

// Sentinel errors for transportation solves.
// Wrap with fmt.Errorf("%w: ctx", ErrX) where context is essential;
// callers still match with errors.Is.
var (
	// ErrShape indicates a cost-matrix / supply / demand dimension mismatch.
	ErrShape = errors.New("transport: cost matrix and supply/demand dimensions mismatch")

	// ErrUnbalanced indicates total supply ≠ total demand beyond tolerance.
	ErrUnbalanced = errors.New("transport: total supply does not equal total demand")

	// ErrNegativeValue indicates a negative cost, supply or demand entry.
	ErrNegativeValue = errors.New("transport: negative cost, supply or demand")

	// ErrBadValue indicates a NaN or ±Inf cost, supply or demand entry.
	ErrBadValue = errors.New("transport: NaN or Inf encountered")

	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("transport: invalid options")

	// ErrInvariant indicates a violated internal invariant (disconnected
	// basic-cell tree, missing closed loop, NWCM final-cell mismatch).
	// Always fatal: it signals a degeneracy-handling defect, never a
	// normal runtime condition.
	ErrInvariant = errors.New("transport: internal invariant violated")

	// ErrNonConvergence indicates the iteration cap was exceeded before
	// reaching optimality. The accompanying Result still carries the best
	// allocation found so far.
	ErrNonConvergence = errors.New("transport: iteration limit exceeded before optimality")
)

// Loop signs. A closed loop alternates +1/−1 starting with +1 at the
// entering cell: +1 cells gain θ units, −1 cells lose θ units.
const (
	SignPlus  = 1
	SignMinus = -1
)

// Cell addresses one route: Row is the warehouse index, Col the destination index.
type Cell struct {
	Row, Col int
}

// SignedCell is one member of a closed reallocation loop.
type SignedCell struct {
	Cell Cell
	Sign int // SignPlus or SignMinus
}

// IterationRecord captures one solver step for step-by-step rendering by
// a presentation layer. Record 0 describes the NWCM starting plan
// (Allocation snapshot + Cost only); records 1..k describe the MODI
// iterations in chronological order.
type IterationRecord struct {
	// Index is 0 for the initial NWCM record, then 1, 2, … per iteration.
	Index int

	// Entering is the non-basic cell brought into the basis this
	// iteration. Zero-valued on the initial record.
	Entering Cell

	// Loop is the closed alternating loop traversed, starting with
	// {Entering, SignPlus}. Nil on the initial record.
	Loop []SignedCell

	// Theta is the quantity shifted around the loop.
	Theta float64

	// Leaving is the basic cell removed from the basis this iteration.
	Leaving Cell

	// Cost is the total shipping cost after this step.
	Cost float64

	// Allocation is a snapshot of the shipment grid; populated only on
	// the initial record to capture the NWCM starting plan.
	Allocation [][]float64
}

// Options configures a transportation solve.
//
// Fields:
//   - Eps           — numeric tolerance: the balance check accepts
//     |Σsupply − Σdemand| ≤ Eps, and a route improves only when its
//     opportunity cost is < −Eps. Must be ≥ 0.
//   - MaxIterFactor — safety bound multiplier: the MODI loop aborts with
//     ErrNonConvergence after MaxIterFactor × m × n iterations. Must be ≥ 1.
//   - ReturnTrace   — when true, Result.Trace carries the full ordered
//     sequence of IterationRecords; when false, no trace is collected.
type Options struct {
	Eps           float64
	MaxIterFactor int
	ReturnTrace   bool
}

// DefaultOptions returns Options with sane defaults:
// Eps=1e-9, MaxIterFactor=8, ReturnTrace=true.
func DefaultOptions() Options {
	return Options{
		Eps:           1e-9,
		MaxIterFactor: 8,
		ReturnTrace:   true,
	}
}

// Result holds the outcome of a transportation solve.
type Result struct {
	// Allocation is the final m×n shipment plan. Row sums equal supply,
	// column sums equal demand.
	Allocation *matrix.Dense

	// Cost is the total shipping cost of Allocation.
	Cost float64

	// Iterations counts the MODI iterations performed (0 when the NWCM
	// plan was already optimal).
	Iterations int

	// Optimal reports whether the optimality condition held on exit.
	// False only alongside ErrNonConvergence.
	Optimal bool

	// Trace is the ordered step log (see IterationRecord); nil when
	// Options.ReturnTrace is false.
	Trace []IterationRecord
}
