package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/loaders"
	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/specialistvlad/pkgplan/internal/registry"
	"github.com/specialistvlad/pkgplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const descriptor = `
package "DBDebugToolkit" {
  platform "ios" {
    minimum = "12"
  }

  product "DBDebugToolkit" {
    targets = ["DBDebugToolkit"]
  }

  target "DBDebugToolkit" {
    path                = "DBDebugToolkit"
    public_headers_path = ""
    header_search_paths = ["Classes"]
  }
}
`

// setupPackage writes a descriptor and its source tree into a temp dir.
func setupPackage(t *testing.T, hcl string) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"package.hcl": hcl,
		"DBDebugToolkit/Classes/DBDebugToolkit.h": "",
	})
	return root
}

func newTestApp(t *testing.T, cfg Config, modules ...registry.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv(testutil.LogsEnv) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return NewApp(out, logs, validated, loaders.New(), modules...), out, logs
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{DescriptorPath: "pkg"})
	require.NoError(t, err)
	assert.Equal(t, plan.FormatText, cfg.Format)

	_, err = NewConfig(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DescriptorPath is a required")

	_, err = NewConfig(Config{Schema: true})
	require.NoError(t, err, "schema output needs no descriptor")

	_, err = NewConfig(Config{DescriptorPath: "pkg", Format: "xml"})
	require.Error(t, err)

	_, err = NewConfig(Config{DescriptorPath: "pkg", HealthcheckPort: 8080})
	require.Error(t, err)

	_, err = NewConfig(Config{DescriptorPath: "pkg", HealthcheckPort: 70000, Watch: true})
	require.Error(t, err)

	_, err = NewConfig(Config{Schema: true, Watch: true})
	require.Error(t, err)
}

func TestRun_PrintsTextPlan(t *testing.T) {
	root := setupPackage(t, descriptor)
	a, out, logs := newTestApp(t, Config{DescriptorPath: root})

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "DBDebugToolkit (tools 5.3)")
	assert.Contains(t, out.String(), "ios 12.0")
	assert.Contains(t, logs.String(), "Build: Plan construction successful.")
	require.NotNil(t, a.LastPlan())
}

func TestRun_DescriptorFileUsesItsDirectoryAsRoot(t *testing.T) {
	root := setupPackage(t, descriptor)
	a, out, _ := newTestApp(t, Config{DescriptorPath: filepath.Join(root, "package.hcl"), Format: plan.FormatJSON})

	require.NoError(t, a.Run(context.Background()))

	var p plan.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &p))
	assert.Equal(t, []string{"DBDebugToolkit"}, p.CompileOrder)
}

func TestRun_WritesOutputFile(t *testing.T) {
	root := setupPackage(t, descriptor)
	output := filepath.Join(t.TempDir(), "plan.json")
	a, out, _ := newTestApp(t, Config{DescriptorPath: root, Format: plan.FormatJSON, OutputPath: output})

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var p plan.Plan
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, a.LastPlan().Fingerprint, p.Fingerprint)
}

func TestRun_Schema(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Schema: true})
	require.NoError(t, a.Run(context.Background()))
	assert.True(t, json.Valid(out.Bytes()))
	assert.Contains(t, out.String(), "header_search_paths")
}

func TestRun_MissingHeaderPathFails(t *testing.T) {
	root := setupPackage(t, strings.Replace(descriptor, `["Classes"]`, `["Classes", "Missing"]`, 1))
	a, out, _ := newTestApp(t, Config{DescriptorPath: root})

	err := a.Run(context.Background())
	require.Error(t, err)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "targets.DBDebugToolkit.header_search_paths[1]", cfgErr.Field)
	assert.Empty(t, out.String())
}

func TestRun_ValidationErrorsAreAggregated(t *testing.T) {
	root := setupPackage(t, strings.Replace(descriptor, `targets = ["DBDebugToolkit"]`, `targets = ["Ghost"]`, 1))
	a, _, _ := newTestApp(t, Config{DescriptorPath: root})

	err := a.Run(context.Background())
	require.Error(t, err)

	var valErr *registry.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "registry validation failed:")
	assert.Contains(t, err.Error(), "products.DBDebugToolkit.targets[0]")
}

type extraTargetModule struct{}

func (extraTargetModule) Register(r *registry.Registry) error {
	return r.AddTarget(&config.Target{Name: "Extra", Path: "DBDebugToolkit"})
}

func TestRun_ModulesContributeDeclarations(t *testing.T) {
	root := setupPackage(t, descriptor)
	a, _, logs := newTestApp(t, Config{DescriptorPath: root}, extraTargetModule{})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"DBDebugToolkit", "Extra"}, a.LastPlan().CompileOrder)
	assert.Contains(t, logs.String(), "Target is not part of any product.")
}

func TestRun_WatchReplansOnChange(t *testing.T) {
	root := setupPackage(t, descriptor)
	output := filepath.Join(t.TempDir(), "plan.json")
	a, _, logs := newTestApp(t, Config{DescriptorPath: root, Format: plan.FormatJSON, OutputPath: output, Watch: true})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool { return a.LastPlan() != nil }, 5*time.Second, 10*time.Millisecond)
	first := a.LastPlan().Fingerprint

	// A broken descriptor keeps the previous plan.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.hcl"), []byte("package {"), 0644))
	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Re-planning failed, keeping previous plan.")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, first, a.LastPlan().Fingerprint)

	testutil.MkDirs(t, root, "DBDebugToolkit/Classes/Menu")
	updated := strings.Replace(descriptor, `["Classes"]`, `["Classes", "Classes/Menu"]`, 1)
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.hcl"), []byte(updated), 0644))
	require.Eventually(t, func() bool { return a.LastPlan().Fingerprint != first }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch mode did not stop")
	}

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var p plan.Plan
	require.NoError(t, json.Unmarshal(data, &p))
	tp, ok := p.Target("DBDebugToolkit")
	require.True(t, ok)
	assert.Equal(t, []string{"Classes", "Classes/Menu"}, tp.IncludePaths)
}
