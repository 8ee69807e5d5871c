// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file generalizes structures.RectangularArrayFloat64 and
// structures.RectangularArrayByte (from the go-spatial lineage) into a
// single generic dense grid type, since Go generics let us monomorphize
// over the closed set of element kinds a DEM raster actually needs instead
// of hand-rolling one struct per element type.

// Package raster2d provides the dense 2D raster type that every other
// package in this module reads and writes: Raster2D, its geotransform, and
// the bounds/nodata bookkeeping described for it.
package raster2d

// Number is the closed set of element kinds a Raster2D may hold. This
// mirrors the template instantiations the original C++ source produced:
// signed integers for direction/dependency rasters, floating point for
// elevation/area/terrain-attribute rasters.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// GeoTransform carries the planar bounds and cell dimensions of a raster.
// It is adopted wholesale when a raster is built from a template (Resize),
// matching go-spatial's RasterConfig geotransform fields.
type GeoTransform struct {
	North, South, East, West float64
}

// CellSizeX returns the raster's cell width given a column count, following
// go-spatial's Raster.GetCellSizeX (pixel-is-area convention: cells evenly
// tile [West, East)).
func (gt GeoTransform) CellSizeX(columns int) float64 {
	if columns <= 0 {
		return 0
	}
	return (gt.East - gt.West) / float64(columns)
}

// CellSizeY returns the raster's cell height given a row count.
func (gt GeoTransform) CellSizeY(rows int) float64 {
	if rows <= 0 {
		return 0
	}
	return (gt.North - gt.South) / float64(rows)
}

// Raster2D is a dense, rectangular grid of width W and height H, addressed
// by (x, y) with x in [0, W) and y in [0, H). The zero value is not usable;
// construct with New or Resize.
type Raster2D[T Number] struct {
	Width, Height           int
	CellLengthX, CellLengthY float64
	GeoTransform             GeoTransform
	nodata                   T
	data                     []T
}

// New allocates a Width x Height raster with nodata as its nodata sentinel,
// every cell zero-valued, and unit cell dimensions. Use Resize/ResizeFilled
// to additionally adopt another raster's shape and geotransform.
func New[T Number](width, height int, nodata T) *Raster2D[T] {
	r := &Raster2D[T]{
		Width:       width,
		Height:      height,
		CellLengthX: 1,
		CellLengthY: 1,
		nodata:      nodata,
	}
	if width > 0 && height > 0 {
		r.data = make([]T, width*height)
	}
	return r
}

// Resize allocates width*height cells, each set to fill, adopting shape and
// cell dimensions from template. The template's element type need not
// match T; only its geometry is adopted. The new raster's nodata sentinel
// is also fill: callers that need data
// cells to start at a different value than their nodata sentinel (e.g.
// FlowAccum's running area counts) use ResizeFilled instead.
func Resize[T Number, U Number](template *Raster2D[U], fill T) *Raster2D[T] {
	return ResizeFilled(template, fill, fill)
}

// ResizeFilled is Resize's generalization: it adopts template's shape and
// geotransform but lets nodata and the initial cell fill differ, for
// operators (FlowAccum's running area counts) whose data cells must start
// at a value distinct from the sentinel that marks a nodata cell.
func ResizeFilled[T Number, U Number](template *Raster2D[U], nodata, fill T) *Raster2D[T] {
	r := &Raster2D[T]{
		Width:        template.Width,
		Height:       template.Height,
		CellLengthX:  template.CellLengthX,
		CellLengthY:  template.CellLengthY,
		GeoTransform: template.GeoTransform,
		nodata:       nodata,
	}
	n := r.Width * r.Height
	r.data = make([]T, n)
	if fill != 0 {
		for i := range r.data {
			r.data[i] = fill
		}
	}
	return r
}

// InGrid reports whether (x, y) addresses a cell within the raster.
func (r *Raster2D[T]) InGrid(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Get returns the value at (x, y). Unchecked: callers must ensure InGrid
// themselves.
func (r *Raster2D[T]) Get(x, y int) T {
	return r.data[y*r.Width+x]
}

// Set stores v at (x, y). Unchecked, same contract as Get.
func (r *Raster2D[T]) Set(x, y int, v T) {
	r.data[y*r.Width+x] = v
}

// GetChecked returns the value at (x, y) and whether (x, y) was in-grid; if
// not, it returns the nodata value and false. Use at raster edges where the
// caller cannot establish InGrid ahead of time (flow-direction neighbor
// lookups, BFS expansion).
func (r *Raster2D[T]) GetChecked(x, y int) (T, bool) {
	if !r.InGrid(x, y) {
		return r.nodata, false
	}
	return r.Get(x, y), true
}

// IsNoData reports whether the cell at (x, y) equals the nodata sentinel.
func (r *Raster2D[T]) IsNoData(x, y int) bool {
	return r.Get(x, y) == r.nodata
}

// NoData returns the raster's nodata sentinel.
func (r *Raster2D[T]) NoData() T {
	return r.nodata
}

// SetNoData changes the raster's nodata sentinel without touching existing
// cell values; callers that want existing nodata cells remapped must do so
// explicitly.
func (r *Raster2D[T]) SetNoData(v T) {
	r.nodata = v
}

// Size returns W*H, the total cell count.
func (r *Raster2D[T]) Size() int64 {
	return int64(r.Width) * int64(r.Height)
}

// CellArea returns cellLengthX * cellLengthY.
func (r *Raster2D[T]) CellArea() float64 {
	return r.CellLengthX * r.CellLengthY
}

// CountVal returns the number of cells equal to v.
func (r *Raster2D[T]) CountVal(v T) int64 {
	var n int64
	for _, c := range r.data {
		if c == v {
			n++
		}
	}
	return n
}

// NumDataCells returns the count of cells whose value is not nodata.
func (r *Raster2D[T]) NumDataCells() int64 {
	return r.Size() - r.CountVal(r.nodata)
}

// Row returns a copy of row y's values, for callers (row-parallel drivers,
// raster I/O) that want to stage a whole row at once, mirroring
// RectangularArrayFloat64.GetRowData/SetRowData.
func (r *Raster2D[T]) Row(y int) []T {
	row := make([]T, r.Width)
	copy(row, r.data[y*r.Width:(y+1)*r.Width])
	return row
}

// SetRow overwrites row y's values.
func (r *Raster2D[T]) SetRow(y int, values []T) {
	copy(r.data[y*r.Width:(y+1)*r.Width], values)
}

// SameShape reports whether r and other have identical width and height,
// the precondition SPI/CTI and other dual-raster operators require.
func SameShape[T Number, U Number](r *Raster2D[T], other *Raster2D[U]) bool {
	return r.Width == other.Width && r.Height == other.Height
}
