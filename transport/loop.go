// Package transport - closed-loop discovery (the stepping-stone path).
//
// Adding a non-basic entering cell E to the basis tree creates exactly
// one cycle: the closed loop that alternates horizontal and vertical
// moves through E and existing basic cells, returning to E. Shifting θ
// units around that loop (+ at E, − at the next cell, + at the next, …)
// rebalances the allocation while preserving every row and column sum.
//
// Discovery is a depth-first search over the basic-cell structure:
// from E the first move runs along E's row, moves then alternate
// row/column, and the loop closes with a column move back into E.
// Candidates are visited in ascending index order, so the (unique) loop
// is always reported with the same orientation.
package transport

import "fmt"

// loopFinder carries the DFS state: the current path of distinct cells
// and an O(1) membership index over it.
type loopFinder struct {
	b      *basis
	enter  Cell
	path   []Cell
	onPath map[Cell]struct{}
}

// findLoop returns the unique closed loop created by adding enter to the
// basis, as signed cells starting with {enter, SignPlus} and alternating
// signs around the cycle.
//
// Contract: enter must be non-basic and the basis a spanning tree
// (b.verify() == nil). Under that contract basis ∪ {enter} contains
// exactly one cycle, so the first closure the DFS finds is the loop.
// Failure to close indicates a corrupted basis: wrapped ErrInvariant.
//
// Complexity: O(m+n) nodes on the unique cycle; the search visits each
// basic cell at most once per path, O((m+n)²) worst case, O(m+n) space.
func findLoop(enter Cell, b *basis) ([]SignedCell, error) {
	f := &loopFinder{
		b:      b,
		enter:  enter,
		path:   make([]Cell, 0, b.m+b.n),
		onPath: make(map[Cell]struct{}, b.m+b.n),
	}
	f.path = append(f.path, enter)
	f.onPath[enter] = struct{}{}

	if !f.search(enter, true) {
		return nil, fmt.Errorf(
			"%w: no closed loop through entering cell (%d,%d)",
			ErrInvariant, enter.Row, enter.Col)
	}

	// Assign alternating signs: + at the entering cell, − next, + next, …
	loop := make([]SignedCell, len(f.path))
	for i, c := range f.path {
		sign := SignPlus
		if i%2 == 1 {
			sign = SignMinus
		}
		loop[i] = SignedCell{Cell: c, Sign: sign}
	}

	return loop, nil
}

// search extends the path from cur. alongRow selects the axis of the next
// move: true walks cur's row, false walks cur's column. A column move may
// close the loop by returning to the entering cell.
func (f *loopFinder) search(cur Cell, alongRow bool) bool {
	if alongRow {
		for _, col := range f.b.rowCols[cur.Row] { // ascending columns
			if col == cur.Col {
				continue // staying put is not a move
			}
			if f.advance(Cell{Row: cur.Row, Col: col}, false) {
				return true
			}
		}

		return false
	}

	// Column axis: first try to close the loop back into the entering
	// cell. Loops alternate moves, so a valid cycle has even length ≥ 4.
	if cur.Col == f.enter.Col && len(f.path) >= 4 {
		return true
	}
	for _, row := range f.b.colRows[cur.Col] { // ascending rows
		if row == cur.Row {
			continue
		}
		if f.advance(Cell{Row: row, Col: cur.Col}, true) {
			return true
		}
	}

	return false
}

// advance pushes next onto the path, recurses, and backtracks on failure.
func (f *loopFinder) advance(next Cell, alongRow bool) bool {
	if _, seen := f.onPath[next]; seen {
		return false // each cell participates in the loop at most once
	}
	f.path = append(f.path, next)
	f.onPath[next] = struct{}{}

	if f.search(next, alongRow) {
		return true
	}

	// Backtrack.
	f.path = f.path[:len(f.path)-1]
	delete(f.onPath, next)

	return false
}
