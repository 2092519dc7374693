package registry

import (
	"errors"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolkitModel() *config.Model {
	empty := ""
	return &config.Model{Package: &config.Package{
		Name:      "DBDebugToolkit",
		Platforms: []*config.Platform{{Name: "ios", Minimum: "12"}},
		Products: []*config.Product{
			{Name: "DBDebugToolkit", Linkage: config.LinkageStatic, Targets: []string{"DBDebugToolkit"}},
			{Name: "DBDebugToolkit-Dynamic", Linkage: config.LinkageDynamic, Targets: []string{"DBDebugToolkit"}},
		},
		Targets: []*config.Target{
			{Name: "DBDebugToolkit", PublicHeadersPath: &empty, HeaderSearchPaths: []string{"Classes"}},
		},
	}}
}

func TestPopulate(t *testing.T) {
	r := New()
	require.NoError(t, r.Populate(toolkitModel()))

	assert.Equal(t, "DBDebugToolkit", r.Name)
	assert.Equal(t, config.DefaultToolsVersion, r.ToolsVersion)
	assert.Len(t, r.Products(), 2)
	assert.Equal(t, "DBDebugToolkit-Dynamic", r.Products()[1].Name)
	_, ok := r.Target("DBDebugToolkit")
	assert.True(t, ok)
	assert.Len(t, r.Platforms(), 1)
}

func TestPopulate_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(m *config.Model)
		expectedField string
	}{
		{
			name:          "nil package",
			mutate:        func(m *config.Model) { m.Package = nil },
			expectedField: "package",
		},
		{
			name:          "invalid package name",
			mutate:        func(m *config.Model) { m.Package.Name = "Debug Toolkit" },
			expectedField: "name",
		},
		{
			name: "duplicate target",
			mutate: func(m *config.Model) {
				m.Package.Targets = append(m.Package.Targets, &config.Target{Name: "DBDebugToolkit"})
			},
			expectedField: "targets.DBDebugToolkit",
		},
		{
			name: "duplicate product",
			mutate: func(m *config.Model) {
				m.Package.Products = append(m.Package.Products, &config.Product{Name: "DBDebugToolkit", Targets: []string{"DBDebugToolkit"}})
			},
			expectedField: "products.DBDebugToolkit",
		},
		{
			name: "duplicate dependency",
			mutate: func(m *config.Model) {
				m.Package.Dependencies = []*config.Dependency{{Name: "FLEX"}, {Name: "FLEX"}}
			},
			expectedField: "dependencies.FLEX",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := toolkitModel()
			tc.mutate(m)

			err := New().Populate(m)
			var cfgErr *config.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tc.expectedField, cfgErr.Field)
		})
	}
}

func TestValidateRegistry_Passes(t *testing.T) {
	ctx, _ := testutil.Context(t)
	r := New()
	require.NoError(t, r.Populate(toolkitModel()))
	assert.NoError(t, r.ValidateRegistry(ctx))
}

func TestValidateRegistry_CollectsAllErrors(t *testing.T) {
	ctx, _ := testutil.Context(t)
	m := toolkitModel()
	m.Package.ToolsVersion = "4.0"
	m.Package.Products = append(m.Package.Products,
		&config.Product{Name: "Ghost", Targets: []string{"DoesNotExist"}},
		&config.Product{Name: "Empty"},
	)
	m.Package.Dependencies = []*config.Dependency{{Name: "FLEX", URL: "https://example.com/FLEX.git"}}
	m.Package.Targets[0].Dependencies = []string{"Missing", "FLEX/FLEX", "Other/Thing", "DBDebugToolkit", "/x"}

	r := New()
	require.NoError(t, r.Populate(m))

	err := r.ValidateRegistry(ctx)
	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	require.ErrorIs(t, err, config.ErrConfiguration)

	var fields []string
	for _, e := range valErr.Errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{
		"tools_version",
		"products.Ghost.targets[0]",
		"products.Empty.targets",
		"targets.DBDebugToolkit.dependencies[0]",
		"targets.DBDebugToolkit.dependencies[2]",
		"targets.DBDebugToolkit.dependencies[3]",
		"targets.DBDebugToolkit.dependencies[4]",
	}, fields)
	assert.Contains(t, err.Error(), "registry validation failed:\n- ")
	assert.Contains(t, err.Error(), `product references non-existent target "DoesNotExist"`)
}

func TestValidateRegistry_NoProducts(t *testing.T) {
	ctx, _ := testutil.Context(t)
	m := toolkitModel()
	m.Package.Products = nil

	r := New()
	require.NoError(t, r.Populate(m))

	err := r.ValidateRegistry(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `package "DBDebugToolkit" declares no products`)
}

func TestValidateRegistry_WarnsAboutUnusedTargets(t *testing.T) {
	ctx, logs := testutil.Context(t)
	m := toolkitModel()
	m.Package.Targets = append(m.Package.Targets, &config.Target{Name: "Orphan"})

	r := New()
	require.NoError(t, r.Populate(m))
	require.NoError(t, r.ValidateRegistry(ctx))
	assert.Contains(t, logs.String(), "Target is not part of any product.")
	assert.Contains(t, logs.String(), "target=Orphan")
}

type shakeTriggerModule struct{}

func (shakeTriggerModule) Register(r *Registry) error {
	if err := r.AddTarget(&config.Target{Name: "ShakeTrigger", Dependencies: []string{"DBDebugToolkit"}}); err != nil {
		return err
	}
	return r.AddProduct(&config.Product{Name: "ShakeTrigger", Linkage: config.LinkageStatic, Targets: []string{"ShakeTrigger"}})
}

func TestRegisterModules(t *testing.T) {
	ctx, _ := testutil.Context(t)
	r := New()
	require.NoError(t, r.Populate(toolkitModel()))
	require.NoError(t, r.RegisterModules(shakeTriggerModule{}))
	require.NoError(t, r.ValidateRegistry(ctx))

	assert.Len(t, r.Targets(), 2)
	_, ok := r.Product("ShakeTrigger")
	assert.True(t, ok)

	err := r.RegisterModules(shakeTriggerModule{})
	assert.ErrorContains(t, err, `target "ShakeTrigger" is declared more than once`)
}
