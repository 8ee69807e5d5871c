// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// This file is tools.D8FlowAccumulation's CLI wrapper, generalized to call
// the core flowaccum package instead of computing flow accumulation inline;
// the dependency-count/drain algorithm itself now lives in
// github.com/jblindsay/demterrain/flowaccum, not here.
package tools

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/jblindsay/demterrain/flowaccum"
	"github.com/jblindsay/demterrain/raster2d"
	"github.com/jblindsay/demterrain/rasterio"
)

// FlowAccumulation is the PluginTool wrapper around flowaccum.FlowAccum: it
// loads a D8 direction grid, runs the core algorithm, and saves the
// resulting upslope-area grid.
type FlowAccumulation struct {
	inputFile   string
	outputFile  string
	toolManager *PluginToolManager
}

func (t *FlowAccumulation) GetName() string {
	return getFormattedToolName("FlowAccumulation")
}

func (t *FlowAccumulation) GetDescription() string {
	return getFormattedToolDescription("Computes D8 upslope contributing area from a flow-direction grid")
}

func (t *FlowAccumulation) GetHelpDocumentation() string {
	return "Input is a D8 direction grid (values 0..8, 0 = NO_FLOW). Output is the upslope-area grid."
}

func (t *FlowAccumulation) SetToolManager(tm *PluginToolManager) {
	t.toolManager = tm
}

func (t *FlowAccumulation) GetArgDescriptions() [][]string {
	return [][]string{
		{"InputFile", "string", "The input D8 direction grid, with directory and file extension"},
		{"OutputFile", "string", "The output upslope-area grid, with directory and file extension"},
	}
}

func (t *FlowAccumulation) ParseArguments(args []string) {
	if len(args) < 2 {
		println("FlowAccumulation requires an input and an output file")
		return
	}
	t.inputFile = t.toolManager.resolvePath(args[0])
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}
	t.outputFile = t.toolManager.resolvePath(args[1])
	t.run()
}

func (t *FlowAccumulation) CollectArguments() {
	reader := bufio.NewReader(os.Stdin)

	print("Enter the direction grid file name (incl. file extension): ")
	inputFile, _ := reader.ReadString('\n')
	t.inputFile = t.toolManager.resolvePath(inputFile)
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}

	print("Enter the output file name (incl. file extension): ")
	outputFile, _ := reader.ReadString('\n')
	t.outputFile = t.toolManager.resolvePath(outputFile)

	t.run()
}

func (t *FlowAccumulation) run() {
	start := time.Now()

	println("Reading direction grid...")
	raw, err := rasterio.Load(t.inputFile)
	if err != nil {
		println(err.Error())
		return
	}

	dir := raster2d.ResizeFilled[flowaccum.Direction](raw, flowaccum.Direction(raw.NoData()), 0)
	for y := 0; y < raw.Height; y++ {
		for x := 0; x < raw.Width; x++ {
			dir.Set(x, y, flowaccum.Direction(raw.Get(x, y)))
		}
	}

	println("Computing flow accumulation...")
	result := flowaccum.FlowAccum(dir)
	if result.CycleCount > 0 {
		printf("Warning: %d cells did not resolve (cycle in direction grid)\n", result.CycleCount)
	}

	println("Saving result...")
	if err := rasterio.Save(t.outputFile, result.Area); err != nil {
		println(err.Error())
		return
	}

	elapsed := time.Since(start)
	println(fmt.Sprintf("Elapsed time: %s", elapsed))
	println("Operation complete!")
}
