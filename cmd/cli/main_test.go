package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/cli"
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidDescriptor(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		package "Broken" {
			target "A" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "package.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	runErr := run(context.Background(), out, logs, []string{filePath})

	require.Error(t, runErr)
	require.True(t, errors.Is(runErr, config.ErrConfiguration), "parse failures are configuration errors")
	require.Contains(t, runErr.Error(), "descriptor")
	require.Empty(t, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_PrintsPlan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Sources", "Core"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.yaml"), []byte(`
name: Core
platforms:
  - name: ios
    minimum: "12"
products:
  - name: Core
    targets: [Core]
targets:
  - name: Core
`), 0600))

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, &bytes.Buffer{}, []string{"-format", "yaml", root}))
	require.Contains(t, out.String(), "compile_order:")
	require.Contains(t, out.String(), "root: Sources/Core")
}
