// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package loaders combines the format-specific descriptor loaders behind a
// single config.Loader that picks formats by file extension.
package loaders

import (
	"context"
	"strings"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/fsutil"
	"github.com/specialistvlad/pkgplan/internal/hcl_adapter"
	"github.com/specialistvlad/pkgplan/internal/yaml_adapter"
)

// Composite dispatches to every registered loader that has files to read.
type Composite struct {
	loaders []config.Loader
}

// New returns a Composite over the given loaders, or over the HCL and YAML
// loaders when none are given.
func New(loaders ...config.Loader) *Composite {
	if len(loaders) == 0 {
		loaders = []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
	}
	return &Composite{loaders: loaders}
}

// Extensions implements config.Loader.
func (c *Composite) Extensions() []string {
	var exts []string
	for _, l := range c.loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}

// Load implements config.Loader. A package may be described in exactly one
// format; mixing an HCL and a YAML package declaration is rejected.
func (c *Composite) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var result *config.Model
	var files []string
	for _, l := range c.loaders {
		found, err := fsutil.FindFilesByExtension(paths, l.Extensions()...)
		if err != nil {
			return nil, config.Wrap("descriptor", "failed to discover descriptor files", err)
		}
		if len(found) == 0 {
			continue
		}
		logger.Debug("Dispatching descriptor files to loader.", "extensions", strings.Join(l.Extensions(), ","), "files", len(found))

		model, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		files = append(files, model.Files...)
		if result != nil {
			return nil, config.Errorf("package",
				"package %q declared in %s conflicts with package %q declared in %s",
				model.Package.Name, model.Package.Source.FilePath,
				result.Package.Name, result.Package.Source.FilePath)
		}
		result = model
	}

	if result == nil {
		return nil, config.Errorf("descriptor", "no descriptor files (%s) found in %s",
			strings.Join(c.Extensions(), ", "), strings.Join(paths, ", "))
	}
	result.Files = files
	return result, nil
}
