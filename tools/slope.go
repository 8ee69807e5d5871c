// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file generalizes tools.Aspect.Run's shape (read raster, row-parallel
// compute, save raster) to the Slope operator, delegating the actual
// arithmetic to github.com/jblindsay/demterrain/terrain.
package tools

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jblindsay/demterrain/rasterio"
	"github.com/jblindsay/demterrain/terrain"
)

// Slope is the PluginTool wrapper around terrain.SlopeRaster.
type Slope struct {
	inputFile   string
	outputFile  string
	zFactor     float64
	toolManager *PluginToolManager
}

func (t *Slope) GetName() string {
	return getFormattedToolName("Slope")
}

func (t *Slope) GetDescription() string {
	return getFormattedToolDescription("Calculates percent slope from a DEM")
}

func (t *Slope) GetHelpDocumentation() string {
	return "Computes Horn's (1981) percent-slope raster from an elevation grid."
}

func (t *Slope) SetToolManager(tm *PluginToolManager) {
	t.toolManager = tm
}

func (t *Slope) GetArgDescriptions() [][]string {
	return [][]string{
		{"InputFile", "string", "The input DEM file, with directory and file extension"},
		{"OutputFile", "string", "The output filename, with directory and file extension"},
		{"ZFactor", "float64", "Elevation-to-planar-unit scale factor (1.0 if units already match)"},
	}
}

func (t *Slope) ParseArguments(args []string) {
	if len(args) < 2 {
		println("Slope requires an input and an output file")
		return
	}
	t.inputFile = t.toolManager.resolvePath(args[0])
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}
	t.outputFile = t.toolManager.resolvePath(args[1])
	t.zFactor = 1.0
	if len(args) >= 3 {
		if z, err := strconv.ParseFloat(args[2], 64); err == nil {
			t.zFactor = z
		}
	}
	t.run()
}

func (t *Slope) CollectArguments() {
	reader := bufio.NewReader(os.Stdin)

	print("Enter the DEM file name (incl. file extension): ")
	inputFile, _ := reader.ReadString('\n')
	t.inputFile = t.toolManager.resolvePath(inputFile)
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}

	print("Enter the output file name (incl. file extension): ")
	outputFile, _ := reader.ReadString('\n')
	t.outputFile = t.toolManager.resolvePath(outputFile)

	t.zFactor = 1.0

	t.run()
}

func (t *Slope) run() {
	start := time.Now()

	println("Reading raster data...")
	dem, err := rasterio.Load(t.inputFile)
	if err != nil {
		println(err.Error())
		return
	}

	println("Computing slope...")
	opt := terrain.Options{CellLengthX: dem.CellLengthX, CellLengthY: dem.CellLengthY, ZScale: t.zFactor}
	out := terrain.SlopeRaster(dem, opt)

	println("Saving result...")
	if err := rasterio.Save(t.outputFile, out); err != nil {
		println(err.Error())
		return
	}

	println(fmt.Sprintf("Elapsed time: %s", time.Since(start)))
	println("Operation complete!")
}
