// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file translates the gohcl-decoded descriptor structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/hclutil"
)

// translatePackage converts the HCL-specific package schema into the agnostic
// model. src is the file content, used to read version literals verbatim.
func (l *Loader) translatePackage(ctx context.Context, name string, p *hclPackage, file string, src []byte) (*config.Package, error) {
	logger := ctxlog.FromContext(ctx).With("package", name, "file", file)
	logger.Debug("Translating HCL package to internal config model.")

	source := config.NewFSInfo(file)
	pkg := &config.Package{
		Name:   name,
		Source: source,
	}

	if hclutil.IsExprDefined(p.ToolsVersion) {
		version, diags := hclutil.EvalVersion(p.ToolsVersion, src, "tools_version")
		if err := diagsErr(diags); err != nil {
			return nil, config.Wrap("tools_version", "invalid tools version", err)
		}
		pkg.ToolsVersion = version
	}

	for _, pl := range p.Platforms {
		minimum, diags := hclutil.EvalVersion(pl.Minimum, src, "minimum")
		if err := diagsErr(diags); err != nil {
			return nil, config.Wrap("platforms."+pl.Name+".minimum", "invalid minimum version", err)
		}
		pkg.Platforms = append(pkg.Platforms, &config.Platform{Name: pl.Name, Minimum: minimum, Source: source})
	}

	for _, pr := range p.Products {
		linkage, err := config.ParseLinkage(pr.Type)
		if err != nil {
			return nil, config.Wrap(config.ProductField(pr.Name, "type"), "invalid product type", err)
		}
		pkg.Products = append(pkg.Products, &config.Product{
			Name:    pr.Name,
			Linkage: linkage,
			Targets: pr.Targets,
		})
	}

	for _, d := range p.Dependencies {
		pkg.Dependencies = append(pkg.Dependencies, &config.Dependency{
			Name:    d.Name,
			URL:     d.URL,
			Version: d.Version,
		})
	}

	for _, t := range p.Targets {
		target, err := l.translateTarget(ctx, t)
		if err != nil {
			return nil, err
		}
		pkg.Targets = append(pkg.Targets, target)
	}

	logger.Debug("HCL package translated.", "platforms", len(pkg.Platforms), "dependencies", len(pkg.Dependencies))
	return pkg, nil
}

// translateTarget converts a single target block.
func (l *Loader) translateTarget(ctx context.Context, t *hclTarget) (*config.Target, error) {
	publicHeaders, diags := hclutil.EvalOptionalString(t.PublicHeadersPath, "public_headers_path")
	if err := diagsErr(diags); err != nil {
		return nil, config.Wrap(config.TargetField(t.Name, "public_headers_path"), "invalid public headers path", err)
	}
	if publicHeaders == nil {
		ctxlog.FromContext(ctx).Debug("Target declares no public headers path.", "target", t.Name)
	}

	return &config.Target{
		Name:              t.Name,
		Path:              t.Path,
		PublicHeadersPath: publicHeaders,
		HeaderSearchPaths: t.HeaderSearchPaths,
		Defines:           t.Defines,
		Dependencies:      t.Dependencies,
	}, nil
}
