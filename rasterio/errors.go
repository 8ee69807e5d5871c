// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Originally created by John Lindsay, Nov. 2014, as
// geospatialfiles/raster/rasterErrors.go.

package rasterio

import "errors"

var FileOpeningError = errors.New("an error occurred while opening the data file")
var FileWritingError = errors.New("an error occurred while writing the data file")
var FileDeletingError = errors.New("there were problems deleting the file")
var FileIsNotProperlyFormatted = errors.New("the file does not appear to be a well-formed Esri ASCII grid")
