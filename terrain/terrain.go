// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import (
	"github.com/sirupsen/logrus"

	"github.com/jblindsay/demterrain/raster2d"
)

// Options configures a terrain-operator driver run: the cell dimensions and
// elevation-to-planar scale factor.
type Options struct {
	CellLengthX, CellLengthY float64
	ZScale                   float64
}

// checkCellDimensions warns when the two cell dimensions differ; this is
// non-fatal, with cellLengthY used wherever dy appears.
func (o Options) checkCellDimensions() {
	if o.CellLengthX != o.CellLengthY {
		logrus.WithFields(logrus.Fields{
			"cellLengthX": o.CellLengthX,
			"cellLengthY": o.CellLengthY,
		}).Warn("terrain: cellLengthX and cellLengthY differ")
	}
}

// SlopeRaster produces a percent-slope raster. Callers wanting the other
// three slope expressions can derive them from slope_percent using the
// identities relating rise/run, percent, radians, and degrees, rather than
// re-running the operator.
func SlopeRaster(e *raster2d.Raster2D[float64], opt Options) *raster2d.Raster2D[float64] {
	opt.checkCellDimensions()
	return Run(e, func(e *raster2d.Raster2D[float64], x, y int) float64 {
		s, err := Slope(e, x, y, opt.CellLengthX, opt.CellLengthY, opt.ZScale)
		if err != nil {
			return e.NoData()
		}
		return s.Percent
	})
}

// AspectRaster produces an aspect raster in degrees clockwise from north.
func AspectRaster(e *raster2d.Raster2D[float64], opt Options) *raster2d.Raster2D[float64] {
	opt.checkCellDimensions()
	return Run(e, func(e *raster2d.Raster2D[float64], x, y int) float64 {
		a, err := Aspect(e, x, y, opt.CellLengthX, opt.CellLengthY, opt.ZScale)
		if err != nil {
			return e.NoData()
		}
		return a
	})
}

// CurvatureKind selects which of Curvature's three outputs a driver run
// produces.
type CurvatureKind int

const (
	TotalCurvature CurvatureKind = iota
	PlanformCurvature
	ProfileCurvature
)

// CurvatureRaster produces one of the three Zevenbergen & Thorne curvature
// rasters, selected by kind.
func CurvatureRaster(e *raster2d.Raster2D[float64], kind CurvatureKind, opt Options) *raster2d.Raster2D[float64] {
	opt.checkCellDimensions()
	return Run(e, func(e *raster2d.Raster2D[float64], x, y int) float64 {
		c, err := Curvature(e, x, y, opt.CellLengthX, opt.ZScale)
		if err != nil {
			return e.NoData()
		}
		switch kind {
		case PlanformCurvature:
			return c.Planform
		case ProfileCurvature:
			return c.Profile
		default:
			return c.Total
		}
	})
}
