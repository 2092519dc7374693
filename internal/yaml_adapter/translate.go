// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package yaml_adapter

import (
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/schema"
)

func translateDocument(doc *schema.Document, file string) (*config.Package, error) {
	if doc.Name == "" {
		return nil, config.Errorf("name", "package name is required (in %s)", file)
	}

	source := config.NewFSInfo(file)
	pkg := &config.Package{
		Name:         doc.Name,
		ToolsVersion: doc.ToolsVersion,
		Source:       source,
	}

	for _, p := range doc.Platforms {
		pkg.Platforms = append(pkg.Platforms, &config.Platform{Name: p.Name, Minimum: p.Minimum, Source: source})
	}

	for _, p := range doc.Products {
		linkage, err := config.ParseLinkage(p.Type)
		if err != nil {
			return nil, config.Wrap(config.ProductField(p.Name, "type"), "invalid product type", err)
		}
		pkg.Products = append(pkg.Products, &config.Product{
			Name:    p.Name,
			Linkage: linkage,
			Targets: p.Targets,
		})
	}

	for _, d := range doc.Dependencies {
		pkg.Dependencies = append(pkg.Dependencies, &config.Dependency{Name: d.Name, URL: d.URL, Version: d.Version})
	}

	for _, t := range doc.Targets {
		pkg.Targets = append(pkg.Targets, &config.Target{
			Name:              t.Name,
			Path:              t.Path,
			PublicHeadersPath: t.PublicHeadersPath,
			HeaderSearchPaths: t.HeaderSearchPaths,
			Defines:           t.Defines,
			Dependencies:      t.Dependencies,
		})
	}

	return pkg, nil
}
