package loaders

import (
	"errors"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_PicksFormatByExtension(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
	}{
		{name: "hcl", files: map[string]string{"package.hcl": `package "Kit" {}`}},
		{name: "yaml", files: map[string]string{"package.yaml": "name: Kit\n"}},
		{name: "yml", files: map[string]string{"package.yml": "name: Kit\n"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.Context(t)
			dir := t.TempDir()
			testutil.WriteTree(t, dir, tc.files)

			model, err := New().Load(ctx, dir)
			require.NoError(t, err)
			assert.Equal(t, "Kit", model.Package.Name)
			assert.Len(t, model.Files, 1)
		})
	}
}

func TestComposite_RejectsMixedFormats(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string]string{
		"package.hcl":  `package "Kit" {}`,
		"package.yaml": "name: Kit\n",
	})

	_, err := New().Load(ctx, dir)
	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "package", cfgErr.Field)
	assert.Contains(t, err.Error(), "conflicts with package")
}

func TestComposite_NoFiles(t *testing.T) {
	ctx, _ := testutil.Context(t)

	_, err := New().Load(ctx, t.TempDir())
	require.ErrorIs(t, err, config.ErrConfiguration)
	assert.Contains(t, err.Error(), "no descriptor files (.hcl, .yaml, .yml) found")
}
