// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import (
	"math"

	"github.com/jblindsay/demterrain/raster2d"
)

// hornGradient is Horn's (1981) 3x3 weighted finite-difference gradient
// estimate, shared by Slope and Aspect.
func hornGradient(n neighborhood, cellLengthX, cellLengthY float64) (dzdx, dzdy float64) {
	dzdx = ((n.c + 2*n.f + n.i) - (n.a + 2*n.d + n.g)) / (8 * cellLengthX)
	dzdy = ((n.g + 2*n.h + n.i) - (n.a + 2*n.b + n.c)) / (8 * cellLengthY)
	return
}

// SlopeResult bundles four equivalent slope expressions derived from one
// Horn gradient estimate.
type SlopeResult struct {
	RiseRun float64
	Percent float64
	Radian  float64
	Degree  float64
}

// Slope computes Horn's (1981) slope estimate at (x,y) in elevation raster
// e. cellLengthX and cellLengthY need not be equal; callers that want the
// mismatch warning logged should go through SlopeRaster instead of calling
// Slope directly per-cell.
func Slope(e *raster2d.Raster2D[float64], x, y int, cellLengthX, cellLengthY, zscale float64) (SlopeResult, error) {
	n, err := sampleNeighborhood(e, x, y, zscale)
	if err != nil {
		return SlopeResult{}, err
	}
	dzdx, dzdy := hornGradient(n, cellLengthX, cellLengthY)
	riseRun := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
	radian := math.Atan(riseRun)
	return SlopeResult{
		RiseRun: riseRun,
		Percent: 100 * riseRun,
		Radian:  radian,
		Degree:  radian * 180 / math.Pi,
	}, nil
}
