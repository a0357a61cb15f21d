// Package transportlp solves the classical balanced transportation
// problem: ship goods from m warehouses to n destinations at minimum
// total cost, given per-route unit costs, per-warehouse supply and
// per-destination demand.
//
// 🚀 What is transportlp?
//
//	A small, deterministic, pure-Go solver that combines:
//		• North-West Corner Method (NWCM) — initial basic feasible plan
//		• MODI (u-v) optimization — iterative improvement to the optimum
//		• Closed-loop reallocation — the stepping-stone shift step
//		• Degeneracy handling — phantom basic cells keep the basis a tree
//
// ✨ Why choose transportlp?
//
//   - Deterministic – fixed tie-breaking, no randomness, stable results
//   - Transparent – every iteration is returned as an IterationRecord,
//     ready for step-by-step rendering by any UI layer
//   - Rock-solid guarantees – sentinel errors, hard iteration cap,
//     invariants verified on every iteration
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	matrix/    — Dense m×n float64 matrices used for costs & allocations
//	transport/ — validation, NWCM, MODI loop, closed-loop reallocation
//
// Quick ASCII example (2 warehouses × 3 destinations):
//
//	         D1   D2   D3   supply
//	  W1  [   4    6    8 ]   100
//	  W2  [   5    4    7 ]   120
//	demand   80   70   70      (balanced: 220 = 220)
//
// Dive into transport/doc.go for the algorithm walkthrough and
// examples/ for a complete delivery-planning scenario.
package transportlp
