// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package rasterio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jblindsay/demterrain/raster2d"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	r := raster2d.New[float64](3, 2, -9999)
	r.CellLengthX = 10
	r.CellLengthY = 10
	r.GeoTransform = raster2d.GeoTransform{West: 100, East: 130, South: 200, North: 220}
	r.Set(0, 0, 1.5)
	r.Set(1, 0, 2.5)
	r.Set(2, 0, -9999)
	r.Set(0, 1, 4)
	r.Set(1, 1, 5)
	r.Set(2, 1, 6)

	path := filepath.Join(t.TempDir(), "grid.asc")
	if err := Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Width != r.Width || got.Height != r.Height {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Width, got.Height, r.Width, r.Height)
	}
	if got.NoData() != r.NoData() {
		t.Errorf("NoData() = %v, want %v", got.NoData(), r.NoData())
	}
	if got.CellLengthX != r.CellLengthX || got.CellLengthY != r.CellLengthY {
		t.Errorf("cell size mismatch: got (%v,%v), want (%v,%v)", got.CellLengthX, got.CellLengthY, r.CellLengthX, r.CellLengthY)
	}
	if got.GeoTransform != r.GeoTransform {
		t.Errorf("GeoTransform = %+v, want %+v", got.GeoTransform, r.GeoTransform)
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if got.Get(x, y) != r.Get(x, y) {
				t.Errorf("Get(%d,%d) = %v, want %v", x, y, got.Get(x, y), r.Get(x, y))
			}
		}
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.asc")
	if err := os.WriteFile(path, []byte("NCOLS 3\nNROWS 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err != FileIsNotProperlyFormatted {
		t.Errorf("Load malformed file: err = %v, want FileIsNotProperlyFormatted", err)
	}
}
