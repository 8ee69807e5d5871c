// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/jblindsay/demterrain/raster2d"
	"github.com/jblindsay/demterrain/rasterio"
	"github.com/jblindsay/demterrain/terrain"
)

// compositeIndexTool shares the two-raster-in, one-raster-out argument
// handling between StreamPowerIndex and CompoundTopographicIndex; only the
// index function itself differs.
type compositeIndexTool struct {
	areaFile    string
	slopeFile   string
	outputFile  string
	toolManager *PluginToolManager
}

func (t *compositeIndexTool) argDescriptions() [][]string {
	return [][]string{
		{"AreaFile", "string", "The flow-accumulation (upslope area) grid"},
		{"SlopeFile", "string", "The percent-slope grid, same shape as AreaFile"},
		{"OutputFile", "string", "The output filename, with directory and file extension"},
	}
}

func (t *compositeIndexTool) parseArguments(tm *PluginToolManager, args []string) bool {
	if len(args) < 3 {
		println("this tool requires an area grid, a slope grid, and an output file")
		return false
	}
	t.areaFile = tm.resolvePath(args[0])
	t.slopeFile = tm.resolvePath(args[1])
	if !fileExists(t.areaFile) {
		printf("no such file or directory: %s\n", t.areaFile)
		return false
	}
	if !fileExists(t.slopeFile) {
		printf("no such file or directory: %s\n", t.slopeFile)
		return false
	}
	t.outputFile = tm.resolvePath(args[2])
	return true
}

func (t *compositeIndexTool) collectArguments(tm *PluginToolManager) bool {
	reader := bufio.NewReader(os.Stdin)

	print("Enter the flow-accumulation grid file name: ")
	areaFile, _ := reader.ReadString('\n')
	t.areaFile = tm.resolvePath(areaFile)
	if !fileExists(t.areaFile) {
		printf("no such file or directory: %s\n", t.areaFile)
		return false
	}

	print("Enter the percent-slope grid file name: ")
	slopeFile, _ := reader.ReadString('\n')
	t.slopeFile = tm.resolvePath(slopeFile)
	if !fileExists(t.slopeFile) {
		printf("no such file or directory: %s\n", t.slopeFile)
		return false
	}

	print("Enter the output file name: ")
	outputFile, _ := reader.ReadString('\n')
	t.outputFile = tm.resolvePath(outputFile)
	return true
}

func (t *compositeIndexTool) run(index func(area, slope *raster2d.Raster2D[float64], cellArea float64) (*raster2d.Raster2D[float64], error)) {
	start := time.Now()

	println("Reading input grids...")
	area, err := rasterio.Load(t.areaFile)
	if err != nil {
		println(err.Error())
		return
	}
	slope, err := rasterio.Load(t.slopeFile)
	if err != nil {
		println(err.Error())
		return
	}

	out, err := index(area, slope, area.CellArea())
	if err != nil {
		println(err.Error())
		return
	}

	println("Saving result...")
	if err := rasterio.Save(t.outputFile, out); err != nil {
		println(err.Error())
		return
	}

	println(fmt.Sprintf("Elapsed time: %s", time.Since(start)))
	println("Operation complete!")
}

// StreamPowerIndex is the PluginTool wrapper around terrain.SPI.
type StreamPowerIndex struct {
	compositeIndexTool
}

func (t *StreamPowerIndex) GetName() string { return getFormattedToolName("StreamPowerIndex") }
func (t *StreamPowerIndex) GetDescription() string {
	return getFormattedToolDescription("Calculates the Stream Power Index from area and slope grids")
}
func (t *StreamPowerIndex) GetHelpDocumentation() string {
	return "SPI(x,y) = log((area/cellArea) * (slopePercent + 0.001))"
}
func (t *StreamPowerIndex) SetToolManager(tm *PluginToolManager) { t.toolManager = tm }
func (t *StreamPowerIndex) GetArgDescriptions() [][]string       { return t.argDescriptions() }
func (t *StreamPowerIndex) ParseArguments(args []string) {
	if t.parseArguments(t.toolManager, args) {
		t.run(terrain.SPI)
	}
}
func (t *StreamPowerIndex) CollectArguments() {
	if t.collectArguments(t.toolManager) {
		t.run(terrain.SPI)
	}
}

// CompoundTopographicIndex is the PluginTool wrapper around terrain.CTI.
type CompoundTopographicIndex struct {
	compositeIndexTool
}

func (t *CompoundTopographicIndex) GetName() string {
	return getFormattedToolName("CompoundTopographicIndex")
}
func (t *CompoundTopographicIndex) GetDescription() string {
	return getFormattedToolDescription("Calculates the Compound Topographic (Wetness) Index from area and slope grids")
}
func (t *CompoundTopographicIndex) GetHelpDocumentation() string {
	return "CTI(x,y) = log((area/cellArea) / (slopePercent + 0.001))"
}
func (t *CompoundTopographicIndex) SetToolManager(tm *PluginToolManager) { t.toolManager = tm }
func (t *CompoundTopographicIndex) GetArgDescriptions() [][]string      { return t.argDescriptions() }
func (t *CompoundTopographicIndex) ParseArguments(args []string) {
	if t.parseArguments(t.toolManager, args) {
		t.run(terrain.CTI)
	}
}
func (t *CompoundTopographicIndex) CollectArguments() {
	if t.collectArguments(t.toolManager) {
		t.run(terrain.CTI)
	}
}
