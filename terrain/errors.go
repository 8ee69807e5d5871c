// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import "errors"

var (
	// ErrNodataCenter is returned by a pointwise operator invoked on a
	// nodata center cell; callers must not do this.
	ErrNodataCenter = errors.New("terrain operator invoked on a nodata center cell")

	// ErrShapeMismatch is returned by SPI/CTI when their two input rasters
	// do not share a shape.
	ErrShapeMismatch = errors.New("SPI/CTI inputs do not share the same shape")
)
