// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl_adapter loads HCL package descriptors into the format-agnostic
// config model.
package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/fsutil"
	"github.com/specialistvlad/pkgplan/internal/hclutil"
)

// Extension is the file extension of HCL descriptors.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{Extension}
}

// Load parses every .hcl file under the given paths. Exactly one `package`
// block must exist across all of them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extension)
	if err != nil {
		return nil, config.Wrap("descriptor", "failed to discover HCL files", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		pkg, err := l.loadFile(ctx, parser, file)
		if err != nil {
			return nil, err
		}
		model.Files = append(model.Files, file)
		if pkg == nil {
			logger.Debug("HCL file declares no package.", "file", file)
			continue
		}
		if model.Package != nil {
			return nil, config.Errorf("package",
				"package %q declared in %s conflicts with package %q declared in %s",
				pkg.Name, file, model.Package.Name, model.Package.Source.FilePath)
		}
		model.Package = pkg
	}

	if model.Package == nil {
		return nil, config.Errorf("package", "no package declaration found in %d HCL file(s)", len(files))
	}

	logger.Debug("HCL loading complete.",
		"package", model.Package.Name,
		"products", len(model.Package.Products),
		"targets", len(model.Package.Targets),
	)
	return model, nil
}

// loadFile parses a single descriptor. It returns nil when the file holds no
// package block.
func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, file string) (*config.Package, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, config.Wrap("descriptor", fmt.Sprintf("failed to parse HCL file %s", file), diags)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, config.Wrap("descriptor", fmt.Sprintf("failed to decode HCL file %s", file), diags)
	}

	block, diags := hclutil.FindUniqueBlock(content.Blocks, "package")
	if diags.HasErrors() {
		return nil, config.Wrap("package", fmt.Sprintf("invalid HCL file %s", file), diags)
	}
	if block == nil {
		return nil, nil
	}

	var raw hclPackage
	if diags := gohcl.DecodeBody(block.Body, nil, &raw); diags.HasErrors() {
		return nil, config.Wrap("package", fmt.Sprintf("failed to decode package %q in %s", block.Labels[0], file), diags)
	}

	return l.translatePackage(ctx, block.Labels[0], &raw, file, hclFile.Bytes)
}

// diagsErr returns diags as an error only when they contain errors.
func diagsErr(diags hcl.Diagnostics) error {
	if diags.HasErrors() {
		return diags
	}
	return nil
}
