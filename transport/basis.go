// Package transport - the basic-cell set (the "basis").
//
// The basis is the set of (row, col) positions currently carrying a
// (possibly zero) allocation. It is stored arena/index style - an explicit
// cell set plus adjacency lists by row and by column - rather than as a
// pointer-linked tree, so the bipartite row/column structure never forms
// ownership cycles. A healthy basis has exactly m+n−1 cells and spans all
// row and column nodes without a cycle (a spanning tree of the bipartite
// graph), which is what makes the dual potentials uniquely solvable.
package transport

import (
	"fmt"
	"sort"
)

// basis tracks the current basic cells with O(1) membership tests and
// sorted per-row/per-column adjacency for deterministic traversal.
type basis struct {
	m, n    int
	cells   map[Cell]struct{}
	rowCols [][]int // rowCols[i] = ascending column indices basic in row i
	colRows [][]int // colRows[j] = ascending row indices basic in column j
}

// newBasis allocates an empty basis for an m×n instance.
func newBasis(m, n int) *basis {
	return &basis{
		m:       m,
		n:       n,
		cells:   make(map[Cell]struct{}, m+n-1),
		rowCols: make([][]int, m),
		colRows: make([][]int, n),
	}
}

// has reports whether c is basic. Complexity: O(1).
func (b *basis) has(c Cell) bool {
	_, ok := b.cells[c]

	return ok
}

// size returns the number of basic cells. Complexity: O(1).
func (b *basis) size() int {
	return len(b.cells)
}

// add inserts c into the basis, keeping adjacency lists sorted so that
// every traversal visits candidates in ascending index order.
// Inserting an already-basic cell is a no-op.
// Complexity: O(m+n) worst case for the sorted inserts.
func (b *basis) add(c Cell) {
	if b.has(c) {
		return
	}
	b.cells[c] = struct{}{}
	b.rowCols[c.Row] = insertSorted(b.rowCols[c.Row], c.Col)
	b.colRows[c.Col] = insertSorted(b.colRows[c.Col], c.Row)
}

// remove deletes c from the basis. Removing a non-basic cell is a no-op.
// Complexity: O(m+n) worst case for the slice deletions.
func (b *basis) remove(c Cell) {
	if !b.has(c) {
		return
	}
	delete(b.cells, c)
	b.rowCols[c.Row] = deleteSorted(b.rowCols[c.Row], c.Col)
	b.colRows[c.Col] = deleteSorted(b.colRows[c.Col], c.Row)
}

// verify checks the spanning-tree invariant: exactly m+n−1 basic cells
// connecting all m row-nodes and n column-nodes without a cycle. It uses
// a disjoint-set (union-find) with path compression over the m+n nodes;
// a cell (i,j) is the undirected edge row-i ↔ col-j.
//
// Returns a wrapped ErrInvariant naming the defect (count, cycle, or
// disconnection); nil when the basis is a spanning tree.
//
// Complexity: O((m+n)·α(m+n)) time, O(m+n) space.
func (b *basis) verify() error {
	want := b.m + b.n - 1
	if b.size() != want {
		return fmt.Errorf("%w: basis holds %d cells, want %d", ErrInvariant, b.size(), want)
	}

	// Disjoint-set over row nodes 0..m-1 and column nodes m..m+n-1.
	parent := make([]int, b.m+b.n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path compression
			x = parent[x]
		}

		return x
	}

	// Union each basic edge; a pre-merged pair means a cycle.
	var i, j, ri, rj int
	for i = 0; i < b.m; i++ { // deterministic row-major edge order
		for _, j = range b.rowCols[i] {
			ri, rj = find(i), find(b.m+j)
			if ri == rj {
				return fmt.Errorf("%w: basic cells contain a cycle through (%d,%d)", ErrInvariant, i, j)
			}
			parent[ri] = rj
		}
	}

	// m+n nodes joined by m+n−1 acyclic edges are necessarily connected,
	// but check explicitly so a defect names itself.
	root := find(0)
	for i = 1; i < b.m+b.n; i++ {
		if find(i) != root {
			return fmt.Errorf("%w: basic-cell graph is disconnected", ErrInvariant)
		}
	}

	return nil
}

// insertSorted inserts v into ascending slice s, preserving order.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s // already present
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// deleteSorted removes v from ascending slice s, preserving order.
func deleteSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i == len(s) || s[i] != v {
		return s // not present
	}

	return append(s[:i], s[i+1:]...)
}
