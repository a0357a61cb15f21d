// Package transport solves the balanced transportation problem:
// a cost-minimizing shipment plan moving goods from m supply points
// (warehouses) to n demand points (destinations), given a per-route
// unit cost matrix, per-warehouse supply and per-destination demand.
//
// 🚀 How does it work?
//
//	The solver runs the classical two-phase method:
//	  1. NWCM  — the North-West Corner Method builds an initial basic
//	     feasible allocation by walking a cursor from (0,0) to (m-1,n-1).
//	  2. MODI  — the Modified Distribution method prices every unused
//	     route with dual potentials (u, v), picks the route with the most
//	     negative opportunity cost, finds the unique closed loop through
//	     the current basic cells, and shifts θ units around it. Repeat
//	     until no improving route remains.
//
// ✨ Key features:
//   - strictly deterministic: fixed lowest-row-then-column tie-breaking
//     for entering and leaving cells; identical inputs ⇒ identical plans
//   - full step trace: every iteration is captured as an IterationRecord
//     (entering cell, signed loop, shift quantity θ, leaving cell, cost),
//     preceded by a record of the NWCM starting plan
//   - degeneracy handling: zero-valued phantom basic cells preserve the
//     m+n−1 spanning-tree invariant through NWCM ties and θ ties
//   - hard termination: an iteration cap (Options.MaxIterFactor × m × n)
//     turns pathological cycling into ErrNonConvergence instead of a hang
//
// ⚙️ Usage:
//
//	costs := [][]float64{
//	  {4, 6, 8},
//	  {5, 4, 7},
//	}
//	res, err := transport.SolveGrid(costs,
//	  []float64{100, 120}, // supply
//	  []float64{80, 70, 70}, // demand (balanced: 220 = 220)
//	  transport.DefaultOptions())
//	if err != nil {
//	  // ErrShape / ErrUnbalanced / ErrInvariant / ErrNonConvergence …
//	}
//	fmt.Println(res.Cost)       // minimal total cost
//	fmt.Println(res.Allocation) // optimal shipment matrix
//
// The instance must be balanced: Σsupply == Σdemand within Options.Eps.
// Unbalanced instances are rejected with ErrUnbalanced — the caller is
// responsible for adding a dummy row/column if it wants auto-balancing.
//
// Performance:
//
//   - NWCM:           O(m+n)
//   - each iteration: O(m·n) pricing + O(m+n) loop discovery
//   - memory:         O(m·n)
//
// See example_test.go and the examples/ directory for walkthroughs.
package transport
