// Package transport - dual potential computation (the "u-v" step of MODI).
//
// Every basic cell (i,j) pins the constraint u[i] + v[j] = cost[i][j].
// Because the basis is a spanning tree of the bipartite row/column graph,
// fixing u[0] = 0 determines every other potential uniquely: a single
// breadth-first traversal over the tree propagates the constraint from
// known endpoints to unknown ones, assigning each potential exactly once.
package transport

import "fmt"

// computePotentials solves u[i] + v[j] = cost[i][j] over the basic cells
// with u[0] fixed to 0, via BFS from row-node 0 across the basis tree.
//
// Contract: b passed verify() - m+n−1 cells, connected, acyclic. A node
// left unreached despite that signals a degeneracy-handling defect and
// returns a wrapped ErrInvariant.
//
// Complexity: O(m+n) time and space (one visit per tree node/edge).
func computePotentials(cost [][]float64, b *basis) (u, v []float64, err error) {
	m, n := b.m, b.n
	u = make([]float64, m)
	v = make([]float64, n)

	// Known flags per node; u[0] is the free choice.
	uKnown := make([]bool, m)
	vKnown := make([]bool, n)
	uKnown[0] = true

	// BFS queue over node indices: rows are 0..m-1, columns are m..m+n-1.
	queue := make([]int, 0, m+n)
	queue = append(queue, 0)

	var (
		node    int
		i, j    int
		settled = 1 // nodes assigned so far
	)
	for len(queue) > 0 {
		node = queue[0]
		queue = queue[1:]

		if node < m { // row node: propagate to its basic columns
			i = node
			for _, j = range b.rowCols[i] {
				if vKnown[j] {
					continue
				}
				v[j] = cost[i][j] - u[i]
				vKnown[j] = true
				settled++
				queue = append(queue, m+j)
			}
		} else { // column node: propagate to its basic rows
			j = node - m
			for _, i = range b.colRows[j] {
				if uKnown[i] {
					continue
				}
				u[i] = cost[i][j] - v[j]
				uKnown[i] = true
				settled++
				queue = append(queue, i)
			}
		}
	}

	// Full coverage required: every row and column potential assigned.
	if settled != m+n {
		return nil, nil, fmt.Errorf(
			"%w: basic-cell graph disconnected, %d of %d potentials assigned",
			ErrInvariant, settled, m+n)
	}

	return u, v, nil
}
