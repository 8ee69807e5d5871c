// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file runs the same three-phase dependency-count / source-enumeration
// / drain algorithm as a classic D8 flow accumulator, generalized so the
// direction raster is a caller-supplied input rather than derived from a DEM
// in the same pass, and so Phase 1's cross-cell increments are parallelized
// across row blocks with atomic adds rather than run single-threaded.

package flowaccum

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jblindsay/demterrain/raster2d"
)

// AreaNoData is the nodata sentinel FlowAccum writes into its output
// raster: a negative value, so accumulated area (always >= 0 for a data
// cell) can never collide with it.
const AreaNoData = -1.0

// Result bundles FlowAccum's output raster with an estimated cycle count: a
// diagnostic, not a failure.
type Result struct {
	Area       *raster2d.Raster2D[float64]
	CycleCount int
}

// FlowAccum computes the D8 upslope contributing area raster for a
// direction raster dir. It never fails outright: cycles in dir are reported
// via Result.CycleCount, not as an error.
func FlowAccum(dir *raster2d.Raster2D[Direction]) Result {
	width, height := dir.Width, dir.Height
	// Data cells start their contribution count at 0; phase1 overwrites
	// nodata cells with AreaNoData below. Filling the whole raster with
	// AreaNoData up front would leave data cells one short after their
	// first increment in drain.
	area := raster2d.ResizeFilled[float64](dir, AreaNoData, 0)
	dependency := raster2d.NewDependencyCounts(width, height)
	nodata := dir.NoData()

	phase1DependencyCounts(dir, area, dependency, nodata)

	queue := newCellQueue()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if dir.Get(x, y) != nodata && dependency.Get(x, y) == 0 {
				queue.push(x, y)
			}
		}
	}

	drain(dir, area, dependency, nodata, queue)

	cycles := countCycles(dir, dependency, nodata)
	if cycles > 0 {
		logrus.WithField("cycles", cycles).Info("flowaccum: detected cells whose flow direction never resolved (cycle in direction raster)")
	}

	return Result{Area: area, CycleCount: cycles}
}

// phase1DependencyCounts is Phase 1: row-parallel, writing A(c)=nodata for
// nodata input cells and incrementing the downstream neighbor's dependency
// count for every data cell with a direction. The row split follows the
// goroutine-per-row-block pattern used by the other row-parallel drivers in
// this module; the cross-row increment is the one write that must be
// atomic, so it goes through DependencyCounts.Increment.
func phase1DependencyCounts(dir *raster2d.Raster2D[Direction], area *raster2d.Raster2D[float64], dependency *raster2d.DependencyCounts, nodata Direction) {
	height := dir.Height
	numCPUs := runtime.NumCPU()
	if numCPUs < 1 {
		numCPUs = 1
	}
	rowBlockSize := height / numCPUs
	if rowBlockSize < 1 {
		rowBlockSize = 1
	}

	var wg sync.WaitGroup
	for startRow := 0; startRow < height; startRow += rowBlockSize {
		endRow := startRow + rowBlockSize
		if endRow > height {
			endRow = height
		}
		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < dir.Width; x++ {
					d := dir.Get(x, y)
					if d == nodata {
						area.Set(x, y, AreaNoData)
						continue
					}
					if d == NoFlow {
						continue
					}
					dx, dy := Offset(d)
					nx, ny := x+dx, y+dy
					if dependency.InGrid(nx, ny) {
						dependency.Increment(nx, ny)
					}
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()
}

// drain is Phase 3: single-threaded FIFO drain from the cells enumerated in
// Phase 2. Processing order does not affect the final area raster; any
// topologically valid order works.
func drain(dir *raster2d.Raster2D[Direction], area *raster2d.Raster2D[float64], dependency *raster2d.DependencyCounts, nodata Direction, queue *cellQueue) {
	for queue.len() > 0 {
		x, y := queue.pop()
		area.Set(x, y, area.Get(x, y)+1)

		d := dir.Get(x, y)
		if d == NoFlow {
			continue
		}
		dx, dy := Offset(d)
		nx, ny := x+dx, y+dy
		if !dir.InGrid(nx, ny) {
			continue
		}
		if dir.Get(nx, ny) == nodata {
			continue
		}
		area.Set(nx, ny, area.Get(nx, ny)+area.Get(x, y))
		if dependency.Decrement(nx, ny) == 0 {
			queue.push(nx, ny)
		}
	}
}

// countCycles reports the number of data cells whose dependency count never
// reached zero.
func countCycles(dir *raster2d.Raster2D[Direction], dependency *raster2d.DependencyCounts, nodata Direction) int {
	cycles := 0
	for y := 0; y < dir.Height; y++ {
		for x := 0; x < dir.Width; x++ {
			if dir.Get(x, y) != nodata && dependency.Get(x, y) > 0 {
				cycles++
			}
		}
	}
	return cycles
}

// cellQueue is FlowAccum's internal FIFO drain queue.
type cellNode struct {
	x, y int
	next *cellNode
}

type cellQueue struct {
	head, tail *cellNode
	count      int
}

func newCellQueue() *cellQueue {
	return &cellQueue{}
}

func (q *cellQueue) push(x, y int) {
	n := &cellNode{x: x, y: y}
	if q.count > 0 {
		q.tail.next = n
		q.tail = n
	} else {
		q.head, q.tail = n, n
	}
	q.count++
}

func (q *cellQueue) pop() (int, int) {
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.count--
	return n.x, n.y
}

func (q *cellQueue) len() int {
	return q.count
}
