// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file widens a per-cell-mutex counter design to sync/atomic: a target
// lacking atomic sub-word operations should widen the counter cell to a
// machine word rather than fall back to a mutex.

package raster2d

import "sync/atomic"

// DependencyCounts is the FlowAccum dependency raster: for each cell, the
// number of in-grid neighbors whose flow direction points into it. Phase 1
// of FlowAccum increments these concurrently across row-parallel workers,
// so each cell is backed by an int32 written with atomic.AddInt32 rather
// than plain arithmetic.
type DependencyCounts struct {
	Width, Height int
	counts        []int32
}

// NewDependencyCounts allocates a width x height counter grid, all zero.
func NewDependencyCounts(width, height int) *DependencyCounts {
	d := &DependencyCounts{Width: width, Height: height}
	if width > 0 && height > 0 {
		d.counts = make([]int32, width*height)
	}
	return d
}

// InGrid reports whether (x, y) is within bounds.
func (d *DependencyCounts) InGrid(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// Increment atomically adds 1 to the count at (x, y). Safe to call from
// multiple goroutines concurrently targeting disjoint or overlapping cells.
func (d *DependencyCounts) Increment(x, y int) {
	atomic.AddInt32(&d.counts[y*d.Width+x], 1)
}

// Decrement atomically subtracts 1 from the count at (x, y) and returns the
// post-decrement value, so a single-threaded drain loop can test for the
// cell becoming eligible (count == 0) without a separate read.
func (d *DependencyCounts) Decrement(x, y int) int32 {
	return atomic.AddInt32(&d.counts[y*d.Width+x], -1)
}

// Get returns the current count at (x, y). Not atomic with respect to
// concurrent Increment/Decrement calls; callers that need a consistent
// snapshot during Phase 1 must wait for that phase's goroutines to join
// first, as FlowAccum does.
func (d *DependencyCounts) Get(x, y int) int32 {
	return d.counts[y*d.Width+x]
}

// Set stores v at (x, y), used to seed or reset a dependency count outside
// of the concurrent Phase 1 increment loop.
func (d *DependencyCounts) Set(x, y int, v int32) {
	d.counts[y*d.Width+x] = v
}
