// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package terrain

import (
	"math"
	"testing"

	"github.com/jblindsay/demterrain/raster2d"
)

func buildPlanarRaster(width, height int, alpha, beta, gamma float64) *raster2d.Raster2D[float64] {
	r := raster2d.New[float64](width, height, -9999)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.Set(x, y, alpha*float64(x)+beta*float64(y)+gamma)
		}
	}
	return r
}

func TestSlopeOnPlanarSurface(t *testing.T) {
	const alpha, beta = 3.0, 1.0
	e := buildPlanarRaster(5, 5, alpha, beta, 10)
	// Horn's operator is exact on a planar surface, so the interior cell
	// recovers the analytic gradient (alpha, beta) exactly.
	s, err := Slope(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Slope: %v", err)
	}
	want := math.Sqrt(alpha*alpha + beta*beta)
	if math.Abs(s.RiseRun-want) > 1e-9 {
		t.Errorf("RiseRun = %v, want %v", s.RiseRun, want)
	}
	if math.Abs(s.Percent-100*want) > 1e-9 {
		t.Errorf("Percent = %v, want %v", s.Percent, 100*want)
	}
}

func TestSlopeIdentities(t *testing.T) {
	e := buildPlanarRaster(5, 5, 2, 1, 0)
	s, err := Slope(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Slope: %v", err)
	}
	if math.Abs(s.Percent/s.RiseRun-100) > 1e-9 {
		t.Errorf("Percent/RiseRun = %v, want 100", s.Percent/s.RiseRun)
	}
	if math.Abs(math.Tan(s.Radian)-s.RiseRun) > 1e-9 {
		t.Errorf("tan(Radian) = %v, want RiseRun %v", math.Tan(s.Radian), s.RiseRun)
	}
	if math.Abs(s.Degree-s.Radian*180/math.Pi) > 1e-9 {
		t.Errorf("Degree = %v, want Radian*180/Pi = %v", s.Degree, s.Radian*180/math.Pi)
	}
}

func TestAspectQuadrantBranches(t *testing.T) {
	// theta = atan2(dzdy, -dzdx)*180/pi, with the sign of dzdx set by the
	// planar slope direction. Elevation rising to the east (alpha>0, beta=0)
	// puts theta at 180 (dzdx>0, dzdy=0), landing in the theta>90 branch.
	e := buildPlanarRaster(5, 5, 3, 0, 10)
	a, err := Aspect(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Aspect: %v", err)
	}
	want := 270.0 // 360 - 180 + 90
	if math.Abs(a-want) > 1e-9 {
		t.Errorf("Aspect = %v, want %v", a, want)
	}
}

func TestCurvatureZeroOnPlanarSurface(t *testing.T) {
	e := buildPlanarRaster(5, 5, 2, 3, 5)
	c, err := Curvature(e, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("Curvature: %v", err)
	}
	if math.Abs(c.Total) > 1e-9 || math.Abs(c.Planform) > 1e-9 || math.Abs(c.Profile) > 1e-9 {
		t.Errorf("Curvature on planar surface = %+v, want all zero", c)
	}
}

func TestConstantSurfaceIsFlat(t *testing.T) {
	e := buildPlanarRaster(5, 5, 0, 0, 7)

	s, err := Slope(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Slope: %v", err)
	}
	if s.RiseRun != 0 {
		t.Errorf("RiseRun = %v, want 0", s.RiseRun)
	}

	a, err := Aspect(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Aspect: %v", err)
	}
	if a != 0 {
		t.Errorf("Aspect on flat surface = %v, want 0", a)
	}

	c, err := Curvature(e, 2, 2, 1, 1)
	if err != nil {
		t.Fatalf("Curvature: %v", err)
	}
	if c.Total != 0 || c.Planform != 0 || c.Profile != 0 {
		t.Errorf("Curvature on flat surface = %+v, want all zero", c)
	}
}

func TestNodataCenterRejected(t *testing.T) {
	e := raster2d.New[float64](3, 3, -9999)
	e.Set(1, 1, -9999)
	if _, err := Slope(e, 1, 1, 1, 1, 1); err != ErrNodataCenter {
		t.Errorf("Slope on nodata center: err = %v, want ErrNodataCenter", err)
	}
}

func TestSPICTIShapeMismatch(t *testing.T) {
	area := raster2d.New[float64](3, 3, -1)
	slope := raster2d.New[float64](4, 4, -1)
	if _, err := SPI(area, slope, 1); err != ErrShapeMismatch {
		t.Errorf("SPI shape mismatch: err = %v, want ErrShapeMismatch", err)
	}
	if _, err := CTI(area, slope, 1); err != ErrShapeMismatch {
		t.Errorf("CTI shape mismatch: err = %v, want ErrShapeMismatch", err)
	}
}

func TestSPICTINodataPropagation(t *testing.T) {
	area := raster2d.New[float64](2, 1, -1)
	slope := raster2d.New[float64](2, 1, -1)
	area.Set(0, 0, 10)
	slope.Set(0, 0, 20)
	area.Set(1, 0, -1) // nodata
	slope.Set(1, 0, 20)

	spi, err := SPI(area, slope, 1)
	if err != nil {
		t.Fatalf("SPI: %v", err)
	}
	if got := spi.Get(1, 0); got != compositeNoData {
		t.Errorf("SPI(1,0) = %v, want nodata %v", got, compositeNoData)
	}
	want := math.Log(10 * 20.001)
	if got := spi.Get(0, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("SPI(0,0) = %v, want %v", got, want)
	}

	cti, err := CTI(area, slope, 1)
	if err != nil {
		t.Fatalf("CTI: %v", err)
	}
	wantCTI := math.Log(10 / 20.001)
	if got := cti.Get(0, 0); math.Abs(got-wantCTI) > 1e-9 {
		t.Errorf("CTI(0,0) = %v, want %v", got, wantCTI)
	}
}

func TestSlopeRasterDriverMatchesPointwise(t *testing.T) {
	e := buildPlanarRaster(5, 5, 2, 1, 0)
	opt := Options{CellLengthX: 1, CellLengthY: 1, ZScale: 1}
	out := SlopeRaster(e, opt)

	want, err := Slope(e, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatalf("Slope: %v", err)
	}
	if got := out.Get(2, 2); math.Abs(got-want.Percent) > 1e-9 {
		t.Errorf("SlopeRaster(2,2) = %v, want %v", got, want.Percent)
	}
}
