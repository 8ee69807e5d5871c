// Copyright 2024 the DemTerrain Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package tools

import (
	"os"
	"strings"
)

// resolvePath is the path handling every CollectArguments/ParseArguments
// method shares: a bare file name is resolved against the tool manager's
// working directory; a path containing a separator is used as-is.
func (ptm *PluginToolManager) resolvePath(name string) string {
	name = strings.TrimSpace(name)
	if !strings.Contains(name, pathSep) {
		name = ptm.workingDirectory + name
	}
	return name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
