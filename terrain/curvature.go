// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import "github.com/jblindsay/demterrain/raster2d"

// CurvatureResult bundles the three Zevenbergen & Thorne (1987) curvature
// measures derived from the same D/E/F/G/H precomputation.
type CurvatureResult struct {
	Total, Planform, Profile float64
}

// Curvature computes total, planform, and profile curvature at (x,y), per
// Zevenbergen & Thorne (1987). The x100 scale factor and signs are
// load-bearing and must not be simplified away.
func Curvature(e *raster2d.Raster2D[float64], x, y int, cellLength, zscale float64) (CurvatureResult, error) {
	n, err := sampleNeighborhood(e, x, y, zscale)
	if err != nil {
		return CurvatureResult{}, err
	}

	l2 := cellLength * cellLength
	d := ((n.d + n.f) / 2 - n.e) / l2
	ez := ((n.b + n.h) / 2 - n.e) / l2
	f := (-n.a + n.c + n.g - n.i) / (4 * l2)
	g := (-n.d + n.f) / (2 * cellLength)
	h := (n.b - n.h) / (2 * cellLength)

	total := -2 * (d + ez) * 100

	var planform, profile float64
	if g == 0 && h == 0 {
		planform, profile = 0, 0
	} else {
		denom := g*g + h*h
		planform = -2 * (d*h*h + ez*g*g - f*g*h) / denom * 100
		profile = 2 * (d*g*g + ez*h*h + f*g*h) / denom * 100
	}

	return CurvatureResult{Total: total, Planform: planform, Profile: profile}, nil
}
