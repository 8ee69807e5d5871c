// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package upslope

import (
	"testing"

	"github.com/jblindsay/demterrain/flowaccum"
	"github.com/jblindsay/demterrain/raster2d"
)

func TestTraceEveryCellFlowsEast(t *testing.T) {
	const size = 10
	dir := raster2d.New[flowaccum.Direction](size, size, -1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == size-1 {
				dir.Set(x, y, flowaccum.NoFlow)
			} else {
				dir.Set(x, y, flowaccum.E)
			}
		}
	}

	out, err := Trace(dir, 5, 0, 5, size-1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			got := out.Get(x, y)
			var want int8
			switch {
			case x == 5:
				want = LineCell
			case x < 5:
				want = UpslopeCell
			default:
				want = traceNoData
			}
			if got != want {
				t.Errorf("out(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestTraceIdempotence(t *testing.T) {
	const size = 8
	dir := raster2d.New[flowaccum.Direction](size, size, -1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == size-1 {
				dir.Set(x, y, flowaccum.NoFlow)
			} else {
				dir.Set(x, y, flowaccum.E)
			}
		}
	}

	first, err := Trace(dir, 3, 0, 3, size-1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	second, err := Trace(dir, 3, 0, 3, size-1)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if first.Get(x, y) != second.Get(x, y) {
				t.Errorf("out(%d,%d) differs across runs: %d vs %d", x, y, first.Get(x, y), second.Get(x, y))
			}
		}
	}
}

func TestTraceOutOfGridEndpoint(t *testing.T) {
	dir := raster2d.New[flowaccum.Direction](5, 5, -1)
	if _, err := Trace(dir, -1, 0, 3, 3); err != ErrOutOfGrid {
		t.Errorf("Trace with out-of-grid endpoint: err = %v, want ErrOutOfGrid", err)
	}
}

func TestTraceDegenerateVerticalSegment(t *testing.T) {
	// A vertical segment has dx=0 after normalization; rasterizeLine must
	// march the column directly instead of dividing by zero.
	dir := raster2d.New[flowaccum.Direction](4, 4, -1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			dir.Set(x, y, flowaccum.NoFlow)
		}
	}

	out, err := Trace(dir, 2, 3, 2, 0)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	for y := 0; y < 4; y++ {
		if got := out.Get(2, y); got != LineCell {
			t.Errorf("out(2,%d) = %d, want LineCell", y, got)
		}
	}
}
