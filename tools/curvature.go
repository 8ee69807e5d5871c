// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jblindsay/demterrain/rasterio"
	"github.com/jblindsay/demterrain/terrain"
)

// Curvature is the PluginTool wrapper around terrain.CurvatureRaster. A
// CurvatureType argument selects total, planform, or profile curvature; the
// three share the same D/E/F/G/H precomputation and are cheap enough to
// offer from one tool rather than three.
type Curvature struct {
	inputFile   string
	outputFile  string
	zFactor     float64
	kind        terrain.CurvatureKind
	toolManager *PluginToolManager
}

func (t *Curvature) GetName() string {
	return getFormattedToolName("Curvature")
}

func (t *Curvature) GetDescription() string {
	return getFormattedToolDescription("Calculates total, planform, or profile curvature from a DEM")
}

func (t *Curvature) GetHelpDocumentation() string {
	return "Computes Zevenbergen & Thorne's (1987) curvature raster from an elevation grid. CurvatureType is one of total, planform, profile."
}

func (t *Curvature) SetToolManager(tm *PluginToolManager) {
	t.toolManager = tm
}

func (t *Curvature) GetArgDescriptions() [][]string {
	return [][]string{
		{"InputFile", "string", "The input DEM file, with directory and file extension"},
		{"OutputFile", "string", "The output filename, with directory and file extension"},
		{"CurvatureType", "string", "One of total, planform, profile"},
		{"ZFactor", "float64", "Elevation-to-planar-unit scale factor (1.0 if units already match)"},
	}
}

func parseCurvatureKind(s string) terrain.CurvatureKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "planform":
		return terrain.PlanformCurvature
	case "profile":
		return terrain.ProfileCurvature
	default:
		return terrain.TotalCurvature
	}
}

func (t *Curvature) ParseArguments(args []string) {
	if len(args) < 3 {
		println("Curvature requires an input file, an output file, and a curvature type")
		return
	}
	t.inputFile = t.toolManager.resolvePath(args[0])
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}
	t.outputFile = t.toolManager.resolvePath(args[1])
	t.kind = parseCurvatureKind(args[2])
	t.zFactor = 1.0
	if len(args) >= 4 {
		if z, err := strconv.ParseFloat(args[3], 64); err == nil {
			t.zFactor = z
		}
	}
	t.run()
}

func (t *Curvature) CollectArguments() {
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

	print("Curvature type (total, planform, profile): ")
	kind, _ := reader.ReadString('\n')
	t.kind = parseCurvatureKind(kind)

	t.zFactor = 1.0

	t.run()
}

func (t *Curvature) run() {
	start := time.Now()

	println("Reading raster data...")
	dem, err := rasterio.Load(t.inputFile)
	if err != nil {
		println(err.Error())
		return
	}

	println("Computing curvature...")
	opt := terrain.Options{CellLengthX: dem.CellLengthX, CellLengthY: dem.CellLengthY, ZScale: t.zFactor}
	out := terrain.CurvatureRaster(dem, t.kind, opt)

	println("Saving result...")
	if err := rasterio.Save(t.outputFile, out); err != nil {
		println(err.Error())
		return
	}

	println(fmt.Sprintf("Elapsed time: %s", time.Since(start)))
	println("Operation complete!")
}
