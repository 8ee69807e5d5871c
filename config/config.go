// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

// Package config wraps github.com/lnashier/viper for demterrain's batch
// mode: a TOML file (decoded through github.com/BurntSushi/toml, viper's
// underlying TOML codec) supplies the file paths and numeric options that
// would otherwise have to be typed at the interactive PluginToolManager
// prompt, one tool invocation at a time.
package config

import (
	"fmt"

	"github.com/lnashier/viper"
)

// Cfg holds the batch-mode configuration: input/output paths and numeric
// options shared by the registered tools.PluginTool wrappers. Unset string
// fields default to the empty string and unset integers to 0 (ZScale is the
// exception: it defaults to 1.0), so callers must validate the fields a given
// tool actually needs before running it.
type Cfg struct {
	*viper.Viper
}

// New returns an empty Cfg, ready to have a config file loaded into it with
// Load or have its fields set directly from bound command-line flags.
func New() *Cfg {
	return &Cfg{Viper: viper.New()}
}

// Load reads a TOML configuration file at path into cfg.
func (cfg *Cfg) Load(path string) error {
	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	return nil
}

// InputDirectionRaster is the D8 direction grid FlowAccumulation and
// UpslopeTrace read from.
func (cfg *Cfg) InputDirectionRaster() string {
	return cfg.GetString("InputDirectionRaster")
}

// InputElevationRaster is the DEM Slope, Aspect, and Curvature read from.
func (cfg *Cfg) InputElevationRaster() string {
	return cfg.GetString("InputElevationRaster")
}

// InputAreaRaster is the flow-accumulation grid SPI and CTI read from.
func (cfg *Cfg) InputAreaRaster() string {
	return cfg.GetString("InputAreaRaster")
}

// InputSlopeRaster is the percent-slope grid SPI and CTI read from.
func (cfg *Cfg) InputSlopeRaster() string {
	return cfg.GetString("InputSlopeRaster")
}

// OutputDirectory is the directory every batch-mode tool writes its output
// raster into.
func (cfg *Cfg) OutputDirectory() string {
	return cfg.GetString("OutputDirectory")
}

// ZScale is the elevation-to-planar-unit scale factor Slope, Aspect, and
// Curvature apply; it defaults to 1.0 when unset.
func (cfg *Cfg) ZScale() float64 {
	if !cfg.IsSet("ZScale") {
		return 1.0
	}
	return cfg.GetFloat64("ZScale")
}

// TraceX0, TraceY0, TraceX1, TraceY1 are the UpslopeTrace endpoint
// coordinates.
func (cfg *Cfg) TraceX0() int { return cfg.GetInt("TraceX0") }
func (cfg *Cfg) TraceY0() int { return cfg.GetInt("TraceY0") }
func (cfg *Cfg) TraceX1() int { return cfg.GetInt("TraceX1") }
func (cfg *Cfg) TraceY1() int { return cfg.GetInt("TraceY1") }

// TraceShapeFile optionally replaces the four Trace coordinates with the
// first two vertices of a line/point shapefile.
func (cfg *Cfg) TraceShapeFile() string {
	return cfg.GetString("TraceShapeFile")
}

// LogTransformArea reports the LogTransformArea key (false when unset). The
// batch flowaccum subcommand does not read it: the upslope-area raster is
// always written untransformed.
func (cfg *Cfg) LogTransformArea() bool {
	return cfg.GetBool("LogTransformArea")
}
