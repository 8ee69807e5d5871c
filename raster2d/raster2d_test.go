// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package raster2d

import (
	"sync"
	"testing"
)

func TestInGridBounds(t *testing.T) {
	r := New[float64](3, 2, -9999)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := r.InGrid(c.x, c.y); got != c.want {
			t.Errorf("InGrid(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	r := New[float64](4, 4, -1)
	r.Set(2, 3, 42.5)
	if got := r.Get(2, 3); got != 42.5 {
		t.Errorf("Get(2,3) = %v, want 42.5", got)
	}
	if !r.IsNoData(0, 0) {
		t.Errorf("fresh cell should equal nodata")
	}
}

func TestResizeAdoptsShapeAndGeoTransform(t *testing.T) {
	template := New[float64](5, 7, -9999)
	template.CellLengthX = 30
	template.CellLengthY = 30
	template.GeoTransform = GeoTransform{North: 100, South: -110, East: 50, West: -100}

	dir := Resize[int8](template, int8(0))
	if dir.Width != 5 || dir.Height != 7 {
		t.Fatalf("Resize did not adopt shape: got %dx%d", dir.Width, dir.Height)
	}
	if dir.CellLengthX != 30 || dir.CellLengthY != 30 {
		t.Errorf("Resize did not adopt cell dimensions")
	}
	if dir.GeoTransform != template.GeoTransform {
		t.Errorf("Resize did not adopt geotransform")
	}
	for y := 0; y < dir.Height; y++ {
		for x := 0; x < dir.Width; x++ {
			if dir.Get(x, y) != 0 {
				t.Fatalf("fill value not applied at (%d,%d)", x, y)
			}
		}
	}
}

func TestCountValAndNumDataCells(t *testing.T) {
	r := New[int8](3, 3, -1)
	r.Set(0, 0, -1)
	r.Set(1, 1, -1)
	if got := r.CountVal(-1); got != 2 {
		t.Errorf("CountVal(-1) = %d, want 2", got)
	}
	if got := r.NumDataCells(); got != 7 {
		t.Errorf("NumDataCells() = %d, want 7", got)
	}
}

func TestSameShape(t *testing.T) {
	a := New[float64](4, 5, -1)
	b := New[int8](4, 5, 0)
	c := New[int8](4, 6, 0)
	if !SameShape(a, b) {
		t.Errorf("expected a and b to share shape")
	}
	if SameShape(a, c) {
		t.Errorf("expected a and c to differ in shape")
	}
}

func TestDependencyCountsConcurrentIncrement(t *testing.T) {
	d := NewDependencyCounts(2, 2)
	var wg sync.WaitGroup
	const n = 1000
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Increment(1, 1)
		}()
	}
	wg.Wait()
	if got := d.Get(1, 1); got != n {
		t.Errorf("Get(1,1) = %d, want %d", got, n)
	}
}

func TestDependencyCountsDecrementReturnsPostValue(t *testing.T) {
	d := NewDependencyCounts(1, 1)
	d.Set(0, 0, 2)
	if got := d.Decrement(0, 0); got != 1 {
		t.Errorf("Decrement = %d, want 1", got)
	}
	if got := d.Decrement(0, 0); got != 0 {
		t.Errorf("Decrement = %d, want 0", got)
	}
}
