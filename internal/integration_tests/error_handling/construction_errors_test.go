package integration_tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/app"
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/integration_tests/harness"
	"github.com/specialistvlad/pkgplan/internal/platform"
	"github.com/specialistvlad/pkgplan/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireConfigurationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "expected a ConfigurationError, got %T: %v", err, err)
	assert.Equal(t, field, cfgErr.Field)
}

// Test for: a declared header search path that does not exist fails construction.
func TestMissingHeaderSearchPath_Fails(t *testing.T) {
	t.Parallel()

	paths := []string{"Classes", "Classes/Menu", "Classes/Network", "Classes/Missing"}
	result := harness.Run(t, harness.Package{
		Files: map[string]string{"package.hcl": harness.ToolkitHCL("9", paths)},
		Dirs:  harness.ToolkitDirs(paths[:3]),
	}, app.Config{})

	requireConfigurationError(t, result.Err, "targets.DBDebugToolkit.header_search_paths[3]")
	assert.Nil(t, result.Plan)
	assert.Empty(t, result.Output)
}

// Test for: a header search path may not leave the target root.
func TestEscapingHeaderSearchPath_Fails(t *testing.T) {
	t.Parallel()

	paths := []string{"../Shared"}
	result := harness.Run(t, harness.Package{
		Files: map[string]string{"package.hcl": harness.ToolkitHCL("12", paths)},
		Dirs:  []string{"DBDebugToolkit", "Shared"},
	}, app.Config{})

	requireConfigurationError(t, result.Err, "targets.DBDebugToolkit.header_search_paths[0]")
}

// Test for: a product referencing a non-existent target fails construction.
func TestProductWithUnknownTarget_Fails(t *testing.T) {
	t.Parallel()

	descriptor := strings.Replace(harness.ToolkitYAML("12", nil),
		"type: dynamic\n    targets: [DBDebugToolkit]",
		"type: dynamic\n    targets: [DBDebugToolkitUI]", 1)
	result := harness.Run(t, harness.Package{
		Files: map[string]string{"package.yaml": descriptor},
		Dirs:  harness.ToolkitDirs(nil),
	}, app.Config{})

	require.Error(t, result.Err)
	var valErr *registry.ValidationError
	require.True(t, errors.As(result.Err, &valErr))
	require.Len(t, valErr.Errs, 1)
	assert.Equal(t, "products.DBDebugToolkit-Dynamic.targets[0]", valErr.Errs[0].Field)
	assert.True(t, errors.Is(result.Err, config.ErrConfiguration))
}

// Test for: an unsupported platform version fails with UnsupportedPlatformError.
func TestUnsupportedPlatform_Fails(t *testing.T) {
	t.Parallel()

	for _, minimum := range []string{"7", "12.1.3", "latest"} {
		t.Run(minimum, func(t *testing.T) {
			t.Parallel()
			result := harness.Run(t, harness.Package{
				Files: map[string]string{"package.hcl": harness.ToolkitHCL(minimum, nil)},
				Dirs:  harness.ToolkitDirs(nil),
			}, app.Config{})

			require.Error(t, result.Err)
			var platErr *platform.UnsupportedPlatformError
			require.True(t, errors.As(result.Err, &platErr), "got %T: %v", result.Err, result.Err)
			assert.Equal(t, "platforms.ios.minimum", platErr.Field)
		})
	}
}

// Test for: a dependency cycle between targets fails construction.
func TestTargetCycle_Fails(t *testing.T) {
	t.Parallel()

	result := harness.Run(t, harness.Package{
		Files: map[string]string{"package.hcl": `
package "Cyclic" {
  product "Cyclic" {
    targets = ["A"]
  }
  target "A" {
    dependencies = ["B"]
  }
  target "B" {
    dependencies = ["A"]
  }
}
`},
		Dirs: []string{"Sources/A", "Sources/B"},
	}, app.Config{})

	requireConfigurationError(t, result.Err, "targets.A.dependencies")
	assert.Contains(t, result.Err.Error(), "cycle detected: target.A -> target.B -> target.A")
}
