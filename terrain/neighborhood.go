// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package terrain computes pointwise 3x3 differential operators over an
// elevation raster: slope, aspect, curvature, and the composite SPI/CTI
// indices built from them. The row-parallel driver (driver.go) is a direct
// descendant of tools.Aspect.Run and tools.DeviationFromMean.Run.
package terrain

import "github.com/jblindsay/demterrain/raster2d"

// neighborhood is a sampled 3x3 window, labelled to match the layout used
// throughout this package's doc comments:
//
//	a b c
//	d e f
//	g h i
//
// with e at the operator's center cell.
type neighborhood struct {
	a, b, c, d, e, f, g, h, i float64
}

// sampleNeighborhood reads the 3x3 window around (x,y) in elevation raster
// e. Any off-grid or nodata neighbor takes the center cell's value, and
// every sampled value (including the center) is scaled by zscale. Returns
// ErrNodataCenter if the center cell itself is nodata.
func sampleNeighborhood(e *raster2d.Raster2D[float64], x, y int, zscale float64) (neighborhood, error) {
	if e.IsNoData(x, y) {
		return neighborhood{}, ErrNodataCenter
	}
	center := e.Get(x, y) * zscale
	nodata := e.NoData()

	at := func(dx, dy int) float64 {
		v, ok := e.GetChecked(x+dx, y+dy)
		if !ok || v == nodata {
			return center
		}
		return v * zscale
	}

	return neighborhood{
		a: at(-1, -1), b: at(0, -1), c: at(1, -1),
		d: at(-1, 0), e: center, f: at(1, 0),
		g: at(-1, 1), h: at(0, 1), i: at(1, 1),
	}, nil
}
