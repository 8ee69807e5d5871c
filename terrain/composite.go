// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import (
	"math"

	"github.com/jblindsay/demterrain/raster2d"
)

// compositeNoData is the sentinel SPI/CTI write for a nodata or
// nodata-propagated cell. A data cell whose index evaluates to exactly -1
// (a log argument of 1/e) is indistinguishable from it.
const compositeNoData = -1.0

// SPI computes the Stream Power Index raster from a flow-accumulation area
// raster and a percent-slope raster of equal shape.
func SPI(area, slopePercent *raster2d.Raster2D[float64], cellArea float64) (*raster2d.Raster2D[float64], error) {
	return compositeIndex(area, slopePercent, cellArea, func(a, s float64) float64 {
		return math.Log((a / cellArea) * (s + 0.001))
	})
}

// CTI computes the Compound Topographic (Wetness) Index raster from a
// flow-accumulation area raster and a percent-slope raster of equal shape.
func CTI(area, slopePercent *raster2d.Raster2D[float64], cellArea float64) (*raster2d.Raster2D[float64], error) {
	return compositeIndex(area, slopePercent, cellArea, func(a, s float64) float64 {
		return math.Log((a / cellArea) / (s + 0.001))
	})
}

func compositeIndex(area, slopePercent *raster2d.Raster2D[float64], cellArea float64, f func(a, s float64) float64) (*raster2d.Raster2D[float64], error) {
	if !raster2d.SameShape(area, slopePercent) {
		return nil, ErrShapeMismatch
	}
	out := raster2d.Resize[float64](area, compositeNoData)
	areaNoData, slopeNoData := area.NoData(), slopePercent.NoData()
	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			a, s := area.Get(x, y), slopePercent.Get(x, y)
			if a == areaNoData || s == slopeNoData {
				out.Set(x, y, compositeNoData)
				continue
			}
			out.Set(x, y, f(a, s))
		}
	}
	return out, nil
}
