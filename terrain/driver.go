// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Run is the row-parallel pointwise driver: a goroutine-per-row-block,
// sync.WaitGroup shape shared by every pointwise terrain operator in this
// package. It never reads or writes rasters from/to disk — I/O is the
// caller's job — and it reports no interactive progress, since this layer
// has no terminal.
package terrain

import (
	"runtime"
	"sync"

	"github.com/jblindsay/demterrain/raster2d"
)

// CellOp computes one output value from elevation raster e at a data cell
// (x,y). Run never calls it on a nodata cell.
type CellOp func(e *raster2d.Raster2D[float64], x, y int) float64

// Run applies op to every data cell of e, split into blocks of
// Height/runtime.NumCPU() rows (at least one row each), with one goroutine per
// block. Nodata cells in e
// propagate to nodata in the output without calling op.
func Run(e *raster2d.Raster2D[float64], op CellOp) *raster2d.Raster2D[float64] {
	out := raster2d.Resize[float64](e, e.NoData())

	numCPUs := runtime.NumCPU()
	if numCPUs < 1 {
		numCPUs = 1
	}
	rowBlockSize := e.Height / numCPUs
	if rowBlockSize < 1 {
		rowBlockSize = 1
	}

	var wg sync.WaitGroup
	for startRow := 0; startRow < e.Height; startRow += rowBlockSize {
		endRow := startRow + rowBlockSize
		if endRow > e.Height {
			endRow = e.Height
		}
		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			for y := rowStart; y < rowEnd; y++ {
				for x := 0; x < e.Width; x++ {
					if e.IsNoData(x, y) {
						out.Set(x, y, out.NoData())
						continue
					}
					out.Set(x, y, op(e, x, y))
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return out
}
