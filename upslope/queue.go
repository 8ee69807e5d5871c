// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package upslope

import "github.com/jblindsay/demterrain/structures"

// cellQueue is the frontier for the backward breadth-first walk, built on
// structures.PQueue with a monotonically increasing sequence number as the
// priority: a min-ordered heap over an always-increasing key pops in
// insertion order, giving FIFO behaviour while exercising the shared
// priority-queue implementation instead of a second hand-rolled linked list.
type cellQueue struct {
	pq   *structures.PQueue[[2]int]
	next int
}

func newCellQueue() *cellQueue {
	return &cellQueue{pq: structures.NewPQueue[[2]int](structures.MINPQ)}
}

func (q *cellQueue) push(x, y int) {
	q.pq.Push([2]int{x, y}, q.next)
	q.next++
}

func (q *cellQueue) pop() (int, int) {
	c, _ := q.pq.Pop()
	return c[0], c[1]
}

func (q *cellQueue) len() int {
	return q.pq.Len()
}
