// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"path/filepath"
	"testing"

	"github.com/jblindsay/demterrain/flowaccum"
	"github.com/jblindsay/demterrain/raster2d"
	"github.com/jblindsay/demterrain/rasterio"
)

func newManager(t *testing.T) *PluginToolManager {
	t.Helper()
	ptm := new(PluginToolManager)
	ptm.InitializeTools()
	ptm.SetWorkingDirectory(t.TempDir())
	return ptm
}

func TestInitializeToolsRegistersAllTools(t *testing.T) {
	ptm := newManager(t)
	want := []string{"FlowAccumulation", "Slope", "Aspect", "Curvature",
		"StreamPowerIndex", "CompoundTopographicIndex", "UpslopeTrace", "Summary"}
	for _, name := range want {
		if _, err := ptm.GetToolHelp(name); err != nil {
			t.Errorf("tool %q not registered: %v", name, err)
		}
	}
	if got := len(ptm.GetListOfTools()); got != len(want) {
		t.Errorf("GetListOfTools() returned %d tools, want %d", got, len(want))
	}
}

func TestRunWithArgumentsUnrecognizedTool(t *testing.T) {
	ptm := newManager(t)
	if err := ptm.RunWithArguments("NoSuchTool", nil); err == nil {
		t.Error("RunWithArguments with an unregistered tool name should return an error")
	}
}

// writePlane writes a 4x4 DEM that rises linearly west to east, with no
// nodata cells, so that Slope and Aspect have a well-defined answer.
func writePlane(t *testing.T, dir string) string {
	t.Helper()
	r := raster2d.New[float64](4, 4, -9999)
	r.CellLengthX, r.CellLengthY = 1, 1
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r.Set(x, y, float64(x))
		}
	}
	path := filepath.Join(dir, "dem.asc")
	if err := rasterio.Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestSlopeToolProducesOutputFile(t *testing.T) {
	tmp := t.TempDir()
	dem := writePlane(t, tmp)
	outPath := filepath.Join(tmp, "slope.asc")

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("Slope", []string{dem, outPath, "1.0"}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}

	out, err := rasterio.Load(outPath)
	if err != nil {
		t.Fatalf("slope output was not written: %v", err)
	}
	if out.Width != 4 || out.Height != 4 {
		t.Errorf("slope raster shape = %dx%d, want 4x4", out.Width, out.Height)
	}
	if out.Get(1, 1) <= 0 {
		t.Errorf("slope on a tilted plane should be positive, got %v", out.Get(1, 1))
	}
}

func TestAspectToolProducesOutputFile(t *testing.T) {
	tmp := t.TempDir()
	dem := writePlane(t, tmp)
	outPath := filepath.Join(tmp, "aspect.asc")

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("Aspect", []string{dem, outPath}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}
	if _, err := rasterio.Load(outPath); err != nil {
		t.Fatalf("aspect output was not written: %v", err)
	}
}

func TestCurvatureToolAcceptsCurvatureType(t *testing.T) {
	tmp := t.TempDir()
	dem := writePlane(t, tmp)
	outPath := filepath.Join(tmp, "curv.asc")

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("Curvature", []string{dem, outPath, "profile"}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}
	out, err := rasterio.Load(outPath)
	if err != nil {
		t.Fatalf("curvature output was not written: %v", err)
	}
	// A perfectly planar surface has zero curvature everywhere.
	if v := out.Get(1, 1); v < -1e-9 || v > 1e-9 {
		t.Errorf("profile curvature on a plane = %v, want 0", v)
	}
}

// writeDirectionGrid writes a direction grid where every cell flows east,
// except the east edge column which has NoFlow.
func writeDirectionGrid(t *testing.T, dir string) string {
	t.Helper()
	d := raster2d.New[float64](4, 4, -1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 {
				d.Set(x, y, float64(flowaccum.NoFlow))
			} else {
				d.Set(x, y, float64(flowaccum.E))
			}
		}
	}
	path := filepath.Join(dir, "dir.asc")
	if err := rasterio.Save(path, d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestFlowAccumulationToolProducesOutputFile(t *testing.T) {
	tmp := t.TempDir()
	dirFile := writeDirectionGrid(t, tmp)
	outPath := filepath.Join(tmp, "area.asc")

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("FlowAccumulation", []string{dirFile, outPath}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}
	out, err := rasterio.Load(outPath)
	if err != nil {
		t.Fatalf("flow accumulation output was not written: %v", err)
	}
	if out.Get(3, 0) != 4 {
		t.Errorf("area at the east edge = %v, want 4 (every upstream cell drains there)", out.Get(3, 0))
	}
}

func TestUpslopeTraceToolProducesOutputFile(t *testing.T) {
	tmp := t.TempDir()
	dirFile := writeDirectionGrid(t, tmp)
	outPath := filepath.Join(tmp, "trace.asc")

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("UpslopeTrace", []string{dirFile, outPath, "3", "0", "3", "3"}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}
	if _, err := rasterio.Load(outPath); err != nil {
		t.Fatalf("trace output was not written: %v", err)
	}
}

func TestCompositeIndexToolsProduceOutputFile(t *testing.T) {
	tmp := t.TempDir()

	area := raster2d.New[float64](3, 3, -1)
	slope := raster2d.New[float64](3, 3, -1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			area.Set(x, y, float64(x+1))
			slope.Set(x, y, float64(y+1))
		}
	}
	area.CellLengthX, area.CellLengthY = 1, 1
	areaPath := filepath.Join(tmp, "area.asc")
	slopePath := filepath.Join(tmp, "slope.asc")
	if err := rasterio.Save(areaPath, area); err != nil {
		t.Fatalf("Save area: %v", err)
	}
	if err := rasterio.Save(slopePath, slope); err != nil {
		t.Fatalf("Save slope: %v", err)
	}

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)

	spiPath := filepath.Join(tmp, "spi.asc")
	if err := ptm.RunWithArguments("StreamPowerIndex", []string{areaPath, slopePath, spiPath}); err != nil {
		t.Fatalf("RunWithArguments SPI: %v", err)
	}
	if _, err := rasterio.Load(spiPath); err != nil {
		t.Fatalf("SPI output was not written: %v", err)
	}

	ctiPath := filepath.Join(tmp, "cti.asc")
	if err := ptm.RunWithArguments("CompoundTopographicIndex", []string{areaPath, slopePath, ctiPath}); err != nil {
		t.Fatalf("RunWithArguments CTI: %v", err)
	}
	if _, err := rasterio.Load(ctiPath); err != nil {
		t.Fatalf("CTI output was not written: %v", err)
	}
}

func TestSummaryToolOnConstantGrid(t *testing.T) {
	tmp := t.TempDir()
	r := raster2d.New[float64](2, 2, -9999)
	r.Set(0, 0, 5)
	r.Set(1, 0, 5)
	r.Set(0, 1, 5)
	r.Set(1, 1, 5)
	path := filepath.Join(tmp, "flat.asc")
	if err := rasterio.Save(path, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ptm := newManager(t)
	ptm.SetWorkingDirectory(tmp)
	if err := ptm.RunWithArguments("Summary", []string{path}); err != nil {
		t.Fatalf("RunWithArguments: %v", err)
	}
}
