// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package upslope

import "errors"

// ErrOutOfGrid is returned when a line-segment endpoint falls outside the
// direction raster; an out-of-grid seed is a usage error, not a diagnostic,
// so Trace fails outright rather than committing a partial result.
var ErrOutOfGrid = errors.New("upslope trace endpoint is outside the direction raster")
