// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Aspect uses the exact atan2(dzdy,-dzdx) form plus a three-branch quadrant
// fixup, rather than a 180-atan(fy/fx)+90*sign(fx) shortcut, which is
// undefined at fx=0.
package terrain

import (
	"math"

	"github.com/jblindsay/demterrain/raster2d"
)

// Aspect computes Horn's (1981) aspect estimate at (x,y): degrees clockwise
// from north, following the downhill azimuth convention. A perfectly flat
// neighborhood (zero gradient) returns 0; it is not reported as -1.
func Aspect(e *raster2d.Raster2D[float64], x, y int, cellLengthX, cellLengthY, zscale float64) (float64, error) {
	n, err := sampleNeighborhood(e, x, y, zscale)
	if err != nil {
		return 0, err
	}
	dzdx, dzdy := hornGradient(n, cellLengthX, cellLengthY)
	if dzdx == 0 && dzdy == 0 {
		// atan2(+0, -0) is 180 degrees, which the quadrant fixup below
		// would turn into 270; a flat neighborhood returns 0 instead.
		return 0, nil
	}
	theta := math.Atan2(dzdy, -dzdx) * 180 / math.Pi
	switch {
	case theta < 0:
		return 90 - theta, nil
	case theta > 90:
		return 360 - theta + 90, nil
	default:
		return 90 - theta, nil
	}
}
