// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file holds the D8 neighbor-offset and inverse-direction tables as
// package-level constant data rather than function-local arrays.

// Package flowaccum implements D8 flow accumulation: converting a raster of
// per-cell flow directions into a raster of upslope contributing area.
package flowaccum

// Direction is a D8 flow direction: NoFlow, or one of the eight compass
// neighbors numbered 1..8.
type Direction int8

// NoFlow marks a terminal cell (sink or outlet). By convention NoFlow is the
// zero value, distinct from nodata and from every data direction 1..8.
const NoFlow Direction = 0

const (
	// Directions 1..8, clockwise starting at northeast. The numbering is
	// internal to this package but must stay consistent with DX/DY/Inverse,
	// which it does: direction d steps by (DX[d-1], DY[d-1]).
	NE Direction = iota + 1
	E
	SE
	S
	SW
	W
	NW
	N
)

// DX and DY give the column/row offset of each direction 1..8 (index d-1).
var (
	DX = [8]int{1, 1, 1, 0, -1, -1, -1, 0}
	DY = [8]int{-1, 0, 1, 1, 1, 0, -1, -1}
)

// Inverse maps a direction 1..8 to the direction that steps back to the
// origin (index 0 is unused, matching NoFlow).
var Inverse = [9]Direction{0, 5, 6, 7, 8, 1, 2, 3, 4}

// Offset returns the (dx, dy) neighbor offset for direction d. Calling it
// with NoFlow is a programming error in any caller that checked d != NoFlow
// first, as every core algorithm does.
func Offset(d Direction) (dx, dy int) {
	return DX[d-1], DY[d-1]
}
