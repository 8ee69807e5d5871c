// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package raster2d

import "errors"

// Usage errors, in the style of geospatialfiles/raster's rasterErrors.go:
// package-level sentinels rather than wrapped/dynamic errors.
var (
	ErrShapeMismatch    = errors.New("rasters do not share the same width and height")
	ErrNodataCenter     = errors.New("operator invoked on a nodata center cell")
	ErrEmptyRaster      = errors.New("raster has zero width or height")
	ErrIndexOutOfBounds = errors.New("cell index is outside the raster bounds")
)
