// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file loads and saves Esri ASCII grids directly onto
// raster2d.Raster2D[float64], skipping the RasterData-interface and
// RasterConfig plumbing a multi-format raster stack would need: raster I/O
// is an external collaborator here, and one simple, well-understood format
// is enough to exercise that boundary.

// Package rasterio loads and saves Raster2D[float64] elevation and
// attribute grids in the Esri ASCII grid format.
package rasterio

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jblindsay/demterrain/raster2d"
)

// Load reads an Esri ASCII grid file into a Raster2D[float64], adopting the
// file's declared nodata value, cell size, and geographic bounds.
func Load(path string) (*raster2d.Raster2D[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileOpeningError
	}
	defer f.Close()

	var rows, columns int
	var cellSize, nodata float64
	var xllcorner, yllcorner float64
	haveCorner := false
	var data []float64
	cellNum := 0

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		line := strings.ToLower(scanner.Text())
		lineNum++
		if lineNum <= 6 {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, FileIsNotProperlyFormatted
			}
			last := fields[len(fields)-1]
			switch {
			case strings.Contains(line, "ncols"):
				columns, err = strconv.Atoi(last)
			case strings.Contains(line, "nrows"):
				rows, err = strconv.Atoi(last)
			case strings.Contains(line, "nodata"):
				nodata, err = strconv.ParseFloat(last, 64)
			case strings.Contains(line, "cellsize"):
				cellSize, err = strconv.ParseFloat(last, 64)
			case strings.Contains(line, "xllcorner"):
				xllcorner, err = strconv.ParseFloat(last, 64)
				haveCorner = true
			case strings.Contains(line, "yllcorner"):
				yllcorner, err = strconv.ParseFloat(last, 64)
				haveCorner = true
			case strings.Contains(line, "xllcenter"):
				xllcorner, err = strconv.ParseFloat(last, 64)
			case strings.Contains(line, "yllcenter"):
				yllcorner, err = strconv.ParseFloat(last, 64)
			}
			if err != nil {
				return nil, FileIsNotProperlyFormatted
			}
			if rows > 0 && columns > 0 && data == nil {
				data = make([]float64, rows*columns)
			}
			continue
		}
		for _, v := range strings.Fields(line) {
			if cellNum >= len(data) {
				return nil, FileIsNotProperlyFormatted
			}
			val, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				return nil, FileIsNotProperlyFormatted
			}
			data[cellNum] = val
			cellNum++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, FileIsNotProperlyFormatted
	}
	if rows == 0 || columns == 0 || cellNum != rows*columns {
		return nil, FileIsNotProperlyFormatted
	}
	if !haveCorner {
		// xllcenter/yllcenter convention: shift to the corner.
		xllcorner -= 0.5 * cellSize
		yllcorner -= 0.5 * cellSize
	}

	r := raster2d.New[float64](columns, rows, nodata)
	r.CellLengthX = cellSize
	r.CellLengthY = cellSize
	r.GeoTransform = raster2d.GeoTransform{
		West:  xllcorner,
		East:  xllcorner + float64(columns)*cellSize,
		South: yllcorner,
		North: yllcorner + float64(rows)*cellSize,
	}
	for y := 0; y < rows; y++ {
		r.SetRow(y, data[y*columns:(y+1)*columns])
	}
	return r, nil
}

// Save writes r to path as an Esri ASCII grid, using r's own geotransform,
// cell size, and nodata sentinel for the header.
func Save(path string, r *raster2d.Raster2D[float64]) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return FileDeletingError
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return FileWritingError
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeLine := func(s string) error {
		_, err := w.WriteString(s + "\n")
		return err
	}

	cellSize := r.CellLengthX
	lines := []string{
		"NCOLS         " + strconv.Itoa(r.Width),
		"NROWS         " + strconv.Itoa(r.Height),
		"XLLCORNER     " + strconv.FormatFloat(r.GeoTransform.West, 'f', -1, 64),
		"YLLCORNER     " + strconv.FormatFloat(r.GeoTransform.South, 'f', -1, 64),
		"CELLSIZE      " + strconv.FormatFloat(cellSize, 'f', -1, 64),
		"NODATA_VALUE  " + strconv.FormatFloat(r.NoData(), 'f', -1, 64),
	}
	for _, line := range lines {
		if err := writeLine(line); err != nil {
			return FileWritingError
		}
	}

	for y := 0; y < r.Height; y++ {
		row := r.Row(y)
		var sb strings.Builder
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := writeLine(sb.String()); err != nil {
			return FileWritingError
		}
	}

	return w.Flush()
}
