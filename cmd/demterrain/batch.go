// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jblindsay/demterrain/config"
	"github.com/jblindsay/demterrain/tools"
	"github.com/spf13/cobra"
)

// runBatch drives demterrain non-interactively from a TOML configuration
// file, running one tool per invocation instead of walking the REPL's
// command loop. It builds a fresh cobra command tree on every call so that
// `batch`'s own flag set never interferes with the top-level flag.FlagSet
// main() parses for the interactive mode.
func runBatch(args []string) {
	var cfgPath string
	batchTM := &tools.PluginToolManager{}
	batchTM.InitializeTools()

	var cfg *config.Cfg
	loadConfig := func() error {
		cfg = config.New()
		return cfg.Load(cfgPath)
	}

	outputPath := func(name string) string {
		return filepath.Join(cfg.OutputDirectory(), name)
	}

	root := &cobra.Command{
		Use:   "batch",
		Short: "Run demterrain tools non-interactively from a TOML config file",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "demterrain.toml", "path to the TOML configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "flowaccum",
		Short: "Run FlowAccumulation using InputDirectionRaster and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("FlowAccumulation", []string{
				cfg.InputDirectionRaster(),
				outputPath("flow_accum.asc"),
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "slope",
		Short: "Run Slope using InputElevationRaster, ZScale, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("Slope", []string{
				cfg.InputElevationRaster(),
				outputPath("slope.asc"),
				strconv.FormatFloat(cfg.ZScale(), 'f', -1, 64),
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "aspect",
		Short: "Run Aspect using InputElevationRaster, ZScale, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("Aspect", []string{
				cfg.InputElevationRaster(),
				outputPath("aspect.asc"),
				strconv.FormatFloat(cfg.ZScale(), 'f', -1, 64),
			})
		},
	})

	var curvatureKind string
	curvatureCmd := &cobra.Command{
		Use:   "curvature",
		Short: "Run Curvature using InputElevationRaster, ZScale, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("Curvature", []string{
				cfg.InputElevationRaster(),
				outputPath(curvatureKind + "_curvature.asc"),
				curvatureKind,
				strconv.FormatFloat(cfg.ZScale(), 'f', -1, 64),
			})
		},
	}
	curvatureCmd.Flags().StringVar(&curvatureKind, "kind", "total", "curvature kind: total, planform, or profile")
	root.AddCommand(curvatureCmd)

	root.AddCommand(&cobra.Command{
		Use:   "spi",
		Short: "Run StreamPowerIndex using InputAreaRaster, InputSlopeRaster, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("StreamPowerIndex", []string{
				cfg.InputAreaRaster(),
				cfg.InputSlopeRaster(),
				outputPath("spi.asc"),
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "cti",
		Short: "Run CompoundTopographicIndex using InputAreaRaster, InputSlopeRaster, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			return batchTM.RunWithArguments("CompoundTopographicIndex", []string{
				cfg.InputAreaRaster(),
				cfg.InputSlopeRaster(),
				outputPath("cti.asc"),
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "trace",
		Short: "Run UpslopeTrace using InputDirectionRaster, the Trace coordinates or TraceShapeFile, and OutputDirectory",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if err := loadConfig(); err != nil {
				return err
			}
			traceArgs := []string{cfg.InputDirectionRaster(), outputPath("upslope_trace.asc")}
			if sf := cfg.TraceShapeFile(); sf != "" {
				traceArgs = append(traceArgs, "shapefile="+sf)
			} else {
				traceArgs = append(traceArgs,
					strconv.Itoa(cfg.TraceX0()), strconv.Itoa(cfg.TraceY0()),
					strconv.Itoa(cfg.TraceX1()), strconv.Itoa(cfg.TraceY1()),
				)
			}
			return batchTM.RunWithArguments("UpslopeTrace", traceArgs)
		},
	})

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
	}
}
