// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package upslope implements D8 upslope tracing: rasterizing a user-supplied
// line segment, then walking backward through the flow-direction raster to
// mark every cell whose flow eventually crosses that line.
package upslope

import (
	"math"

	"github.com/jblindsay/demterrain/flowaccum"
	"github.com/jblindsay/demterrain/raster2d"
)

// Cell values Trace writes into its output raster.
const (
	LineCell    int8 = 2
	UpslopeCell int8 = 1
	traceNoData int8 = -1
)

// Trace marks every cell that drains across the line segment from (x0,y0) to
// (x1,y1) in direction raster dir. The output raster uses LineCell for the
// rasterized segment itself, UpslopeCell for cells whose downstream flow
// reaches the line, and nodata (traceNoData) everywhere else.
func Trace(dir *raster2d.Raster2D[flowaccum.Direction], x0, y0, x1, y1 int) (*raster2d.Raster2D[int8], error) {
	if !dir.InGrid(x0, y0) || !dir.InGrid(x1, y1) {
		return nil, ErrOutOfGrid
	}

	out := raster2d.ResizeFilled[int8](dir, traceNoData, traceNoData)

	queue := newCellQueue()
	rasterizeLine(out, queue, x0, y0, x1, y1)
	traverseUpslope(dir, out, queue)

	return out, nil
}

// rasterizeLine marks the initializing line with a Bresenham-style scan,
// enqueuing every marked cell for the backward traversal.
func rasterizeLine(out *raster2d.Raster2D[int8], queue *cellQueue, x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0

	mark := func(x, y int) {
		if out.InGrid(x, y) && out.Get(x, y) != LineCell {
			out.Set(x, y, LineCell)
			queue.push(x, y)
		}
	}

	if dx == 0 {
		// Degenerate Δx=0 segment: march the single column directly instead
		// of dividing by zero.
		step := 1
		if dy < 0 {
			step = -1
		}
		for y := y0; ; y += step {
			mark(x0, y)
			if y == y1 {
				break
			}
		}
		return
	}

	step := math.Abs(float64(dy)) / float64(dx)
	sgn := 0
	switch {
	case dy > 0:
		sgn = 1
	case dy < 0:
		sgn = -1
	}

	y := y0
	var err float64
	for x := x0; x <= x1; x++ {
		mark(x, y)
		err += step
		if err >= 0.5 {
			mark(x+1, y)
			y += sgn
			err -= 1
		}
	}
}

// traverseUpslope is the backward breadth-first walk: from the rasterized
// line cells, follow neighbors whose flow direction points back toward the
// cell that discovered them.
func traverseUpslope(dir *raster2d.Raster2D[flowaccum.Direction], out *raster2d.Raster2D[int8], queue *cellQueue) {
	nodata := dir.NoData()
	for queue.len() > 0 {
		x, y := queue.pop()
		for i := 1; i <= 8; i++ {
			d := flowaccum.Direction(i)
			dx, dy := flowaccum.Offset(d)
			nx, ny := x+dx, y+dy
			if !dir.InGrid(nx, ny) {
				continue
			}
			dn := dir.Get(nx, ny)
			if dn == flowaccum.NoFlow || dn == nodata {
				continue
			}
			if out.Get(nx, ny) != traceNoData {
				continue
			}
			if dn != flowaccum.Inverse[d] {
				continue
			}
			out.Set(nx, ny, UpslopeCell)
			queue.push(nx, ny)
		}
	}
}
