// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Summary replaces the deleted quantiles/elevationPercentile tools with a
// single descriptive-statistics report over a grid's valid cells, built on
// gonum/stat rather than hand-rolled percentile math.
package tools

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/jblindsay/demterrain/rasterio"
)

// Summary is the PluginTool that reports descriptive statistics (mean,
// standard deviation, min, max, median, and quartiles) over a grid's
// non-nodata cells.
type Summary struct {
	inputFile   string
	toolManager *PluginToolManager
}

func (t *Summary) GetName() string {
	return getFormattedToolName("Summary")
}

func (t *Summary) GetDescription() string {
	return getFormattedToolDescription("Reports descriptive statistics over a grid's valid cells")
}

func (t *Summary) GetHelpDocumentation() string {
	return "Prints the count of valid cells, mean, standard deviation, minimum, maximum, median, and quartiles."
}

func (t *Summary) SetToolManager(tm *PluginToolManager) {
	t.toolManager = tm
}

func (t *Summary) GetArgDescriptions() [][]string {
	return [][]string{
		{"InputFile", "string", "The input grid, with directory and file extension"},
	}
}

func (t *Summary) ParseArguments(args []string) {
	if len(args) < 1 {
		println("Summary requires an input file")
		return
	}
	t.inputFile = t.toolManager.resolvePath(args[0])
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}
	t.run()
}

func (t *Summary) CollectArguments() {
	reader := bufio.NewReader(os.Stdin)

	print("Enter the grid file name (incl. file extension): ")
	inputFile, _ := reader.ReadString('\n')
	t.inputFile = t.toolManager.resolvePath(inputFile)
	if !fileExists(t.inputFile) {
		printf("no such file or directory: %s\n", t.inputFile)
		return
	}

	t.run()
}

func (t *Summary) run() {
	start := time.Now()

	println("Reading raster data...")
	r, err := rasterio.Load(t.inputFile)
	if err != nil {
		println(err.Error())
		return
	}

	values := make([]float64, 0, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if !r.IsNoData(x, y) {
				values = append(values, r.Get(x, y))
			}
		}
	}
	if len(values) == 0 {
		println("the grid contains no valid cells")
		return
	}
	sort.Float64s(values)

	mean := stat.Mean(values, nil)
	stddev := stat.StdDev(values, nil)
	q1 := stat.Quantile(0.25, stat.Empirical, values, nil)
	median := stat.Quantile(0.5, stat.Empirical, values, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, values, nil)

	printf("N:       %d\n", len(values))
	printf("Mean:    %f\n", mean)
	printf("StdDev:  %f\n", stddev)
	printf("Min:     %f\n", values[0])
	printf("Q1:      %f\n", q1)
	printf("Median:  %f\n", median)
	printf("Q3:      %f\n", q3)
	printf("Max:     %f\n", values[len(values)-1])

	println(fmt.Sprintf("Elapsed time: %s", time.Since(start)))
	println("Operation complete!")
}
