// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package harness runs the whole planner against throwaway package trees.
package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/app"
	"github.com/specialistvlad/pkgplan/internal/loaders"
	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/specialistvlad/pkgplan/internal/registry"
	"github.com/specialistvlad/pkgplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Result captures the outcome of a single planner run.
type Result struct {
	Root   string
	Plan   *plan.Plan
	Output string
	Logs   *testutil.SafeBuffer
	Err    error
}

// Package describes a package tree to create.
type Package struct {
	Files map[string]string
	Dirs  []string
}

// Run writes pkg into a temp dir and plans it. cfg.DescriptorPath defaults
// to the temp dir; relative DescriptorPath and Root are resolved against it.
func Run(t *testing.T, pkg Package, cfg app.Config, modules ...registry.Module) *Result {
	t.Helper()

	root := t.TempDir()
	testutil.WriteTree(t, root, pkg.Files)
	testutil.MkDirs(t, root, pkg.Dirs...)

	cfg.DescriptorPath = within(root, cfg.DescriptorPath)
	if cfg.Root != "" {
		cfg.Root = within(root, cfg.Root)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv(testutil.LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	a := app.NewApp(out, logs, validated, loaders.New(), modules...)
	runErr := a.Run(context.Background())

	return &Result{
		Root:   root,
		Plan:   a.LastPlan(),
		Output: out.String(),
		Logs:   logs,
		Err:    runErr,
	}
}

func within(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

// ToolkitHCL renders the debugging toolkit descriptor in HCL.
func ToolkitHCL(minimum string, headerPaths []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `package "DBDebugToolkit" {
  tools_version = "5.3"

  platform "ios" {
    minimum = %q
  }

  product "DBDebugToolkit" {
    targets = ["DBDebugToolkit"]
  }

  product "DBDebugToolkit-Dynamic" {
    type    = "dynamic"
    targets = ["DBDebugToolkit"]
  }

  target "DBDebugToolkit" {
    path                = "DBDebugToolkit"
    dependencies        = []
    public_headers_path = ""
    header_search_paths = [`, minimum)
	for i, p := range headerPaths {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", p)
	}
	b.WriteString("]\n  }\n}\n")
	return b.String()
}

// ToolkitYAML renders the debugging toolkit descriptor in YAML.
func ToolkitYAML(minimum string, headerPaths []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `name: DBDebugToolkit
tools_version: "5.3"
platforms:
  - name: ios
    minimum: %q
products:
  - name: DBDebugToolkit
    targets: [DBDebugToolkit]
  - name: DBDebugToolkit-Dynamic
    type: dynamic
    targets: [DBDebugToolkit]
targets:
  - name: DBDebugToolkit
    path: DBDebugToolkit
    dependencies: []
    public_headers_path: ""
    header_search_paths:
`, minimum)
	if len(headerPaths) == 0 {
		b.WriteString("      []\n")
	}
	for _, p := range headerPaths {
		fmt.Fprintf(&b, "      - %q\n", p)
	}
	return b.String()
}

// ToolkitDirs lists the directories the toolkit descriptor expects.
func ToolkitDirs(headerPaths []string) []string {
	dirs := []string{"DBDebugToolkit"}
	for _, p := range headerPaths {
		dirs = append(dirs, "DBDebugToolkit/"+p)
	}
	return dirs
}
