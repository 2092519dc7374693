// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates the given files (relative path -> content) under root,
// making parent directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// MkDirs creates the given directories (relative to root).
func MkDirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
}

// FeatureFolders are the source folders of the debugging toolkit target, in
// the order its multi-path descriptor lists them.
var FeatureFolders = []string{
	"Classes",
	"Classes/BuildInfo",
	"Classes/Categories",
	"Classes/Console",
	"Classes/CoreData",
	"Classes/CoreData/Cells",
	"Classes/CrashReports",
	"Classes/Cookies",
	"Classes/CustomActions",
	"Classes/CustomVariables",
	"Classes/DeviceInfo",
	"Classes/DeviceInfo/Cells",
	"Classes/GridOverlay",
	"Classes/Location",
	"Classes/Menu",
	"Classes/Network",
	"Classes/Network/Cells",
	"Classes/Performance",
	"Classes/Performance/Widget",
	"Classes/Resources",
	"Classes/Triggers",
	"Classes/Triggers/Shake",
	"Classes/Triggers/Tap",
	"Classes/Triggers/LongPress",
	"Classes/UI",
	"Classes/UI/ColorPicker",
	"Classes/UI/Chart",
	"Classes/UserDefaults",
	"Classes/UserInterface",
	"Classes/Utils",
}
