// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// UpslopeTrace is the PluginTool wrapper around upslope.Trace. The two trace
// endpoints can be given directly as grid coordinates, or read from a
// shapefile (the first two vertices of its first polyline, or its first two
// point records) — enumeration
// watersheds are commonly dropped as point or line shapefiles produced by a
// GIS, not typed in by hand.
package tools

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	shp "github.com/jonas-p/go-shp"

	"github.com/jblindsay/demterrain/flowaccum"
	"github.com/jblindsay/demterrain/raster2d"
	"github.com/jblindsay/demterrain/rasterio"
	"github.com/jblindsay/demterrain/upslope"
)

// UpslopeTrace is the PluginTool wrapper around upslope.Trace.
type UpslopeTrace struct {
	dirFile     string
	outputFile  string
	shapeFile   string
	x0, y0      int
	x1, y1      int
	toolManager *PluginToolManager
}

func (t *UpslopeTrace) GetName() string {
	return getFormattedToolName("UpslopeTrace")
}

func (t *UpslopeTrace) GetDescription() string {
	return getFormattedToolDescription("Traces a line segment and its upslope-contributing cells through a D8 direction grid")
}

func (t *UpslopeTrace) GetHelpDocumentation() string {
	return "Rasterizes a line segment onto the direction grid and follows the D8 network backward from every cell on the line. The segment endpoints are given as column/row pairs, or read from a line/point shapefile when ShapeFile is set."
}

func (t *UpslopeTrace) SetToolManager(tm *PluginToolManager) {
	t.toolManager = tm
}

func (t *UpslopeTrace) GetArgDescriptions() [][]string {
	return [][]string{
		{"DirectionFile", "string", "The D8 direction grid, with directory and file extension"},
		{"OutputFile", "string", "The output filename, with directory and file extension"},
		{"X0", "integer", "Column of the first trace endpoint"},
		{"Y0", "integer", "Row of the first trace endpoint"},
		{"X1", "integer", "Column of the second trace endpoint"},
		{"Y1", "integer", "Row of the second trace endpoint"},
		{"ShapeFile", "string", "Optional line/point shapefile, given as shapefile=<path> in place of X0/Y0/X1/Y1; its first two vertices become the endpoints"},
	}
}

func (t *UpslopeTrace) ParseArguments(args []string) {
	if len(args) < 2 {
		println("UpslopeTrace requires at least a direction grid and an output file")
		return
	}
	t.dirFile = t.toolManager.resolvePath(args[0])
	if !fileExists(t.dirFile) {
		printf("no such file or directory: %s\n", t.dirFile)
		return
	}
	t.outputFile = t.toolManager.resolvePath(args[1])

	if len(args) >= 3 && strings.HasPrefix(strings.ToLower(strings.TrimSpace(args[2])), "shapefile=") {
		t.shapeFile = t.toolManager.resolvePath(strings.SplitN(args[2], "=", 2)[1])
	} else if len(args) >= 6 {
		t.x0, _ = strconv.Atoi(args[2])
		t.y0, _ = strconv.Atoi(args[3])
		t.x1, _ = strconv.Atoi(args[4])
		t.y1, _ = strconv.Atoi(args[5])
	} else {
		println("UpslopeTrace requires either four endpoint coordinates or shapefile=<path>")
		return
	}
	t.run()
}

func (t *UpslopeTrace) CollectArguments() {
	reader := bufio.NewReader(os.Stdin)

	print("Enter the direction grid file name (incl. file extension): ")
	dirFile, _ := reader.ReadString('\n')
	t.dirFile = t.toolManager.resolvePath(dirFile)
	if !fileExists(t.dirFile) {
		printf("no such file or directory: %s\n", t.dirFile)
		return
	}

	print("Enter the output file name (incl. file extension): ")
	outputFile, _ := reader.ReadString('\n')
	t.outputFile = t.toolManager.resolvePath(outputFile)

	print("Enter a line shapefile name, or leave blank to enter coordinates: ")
	shapeFile, _ := reader.ReadString('\n')
	shapeFile = strings.TrimSpace(shapeFile)
	if shapeFile != "" {
		t.shapeFile = t.toolManager.resolvePath(shapeFile)
		t.run()
		return
	}

	print("Enter X0 Y0 X1 Y1: ")
	line, _ := reader.ReadString('\n')
	fields := strings.Fields(line)
	if len(fields) < 4 {
		println("expected four coordinates")
		return
	}
	t.x0, _ = strconv.Atoi(fields[0])
	t.y0, _ = strconv.Atoi(fields[1])
	t.x1, _ = strconv.Atoi(fields[2])
	t.y1, _ = strconv.Atoi(fields[3])

	t.run()
}

// endpointsFromShapefile reads the first two vertices of a shapefile (from
// the first record of a polyline layer, or from the first two records of a
// point layer) and converts them to grid coordinates using dir's
// geotransform.
func endpointsFromShapefile(path string, dir *raster2d.Raster2D[flowaccum.Direction]) (x0, y0, x1, y1 int, err error) {
	reader, err := shp.Open(path)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	defer reader.Close()

	if !reader.Next() {
		return 0, 0, 0, 0, fmt.Errorf("shapefile %s contains no records", path)
	}

	_, shape := reader.Shape()
	var pts []shp.Point
	switch s := shape.(type) {
	case *shp.PolyLine:
		pts = s.Points
	case *shp.Point:
		pts = []shp.Point{*s}
		if reader.Next() {
			_, shape2 := reader.Shape()
			if p2, ok := shape2.(*shp.Point); ok {
				pts = append(pts, *p2)
			}
		}
	default:
		return 0, 0, 0, 0, fmt.Errorf("shapefile %s is not a point or polyline layer", path)
	}
	if len(pts) < 2 {
		return 0, 0, 0, 0, fmt.Errorf("shapefile %s needs at least two vertices", path)
	}

	gt := dir.GeoTransform
	toCell := func(p shp.Point) (int, int) {
		col := int((p.X - gt.West) / dir.CellLengthX)
		row := int((gt.North - p.Y) / dir.CellLengthY)
		return col, row
	}
	x0, y0 = toCell(pts[0])
	x1, y1 = toCell(pts[1])
	return x0, y0, x1, y1, nil
}

func (t *UpslopeTrace) run() {
	start := time.Now()

	println("Reading direction grid...")
	raw, err := rasterio.Load(t.dirFile)
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

	if t.shapeFile != "" {
		println("Reading trace endpoints from shapefile...")
		x0, y0, x1, y1, err := endpointsFromShapefile(t.shapeFile, dir)
		if err != nil {
			println(err.Error())
			return
		}
		t.x0, t.y0, t.x1, t.y1 = x0, y0, x1, y1
	}

	println("Tracing upslope network...")
	out, err := upslope.Trace(dir, t.x0, t.y0, t.x1, t.y1)
	if err != nil {
		println(err.Error())
		return
	}

	floatOut := raster2d.Resize[float64](out, float64(out.NoData()))
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			floatOut.Set(x, y, float64(out.Get(x, y)))
		}
	}

	println("Saving result...")
	if err := rasterio.Save(t.outputFile, floatOut); err != nil {
		println(err.Error())
		return
	}

	println(fmt.Sprintf("Elapsed time: %s", time.Since(start)))
	println("Operation complete!")
}
