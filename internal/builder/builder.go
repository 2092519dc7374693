// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/dag"
	"github.com/specialistvlad/pkgplan/internal/inmemorytopology"
	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/specialistvlad/pkgplan/internal/platform"
	"github.com/specialistvlad/pkgplan/internal/registry"
	"github.com/specialistvlad/pkgplan/internal/topologystore"
)

// Builder holds the state of a single plan construction.
type Builder struct {
	reg   *registry.Registry
	root  string
	dag   *dag.Graph
	store topologystore.Store

	platforms []platform.Version
	// sources holds the checked source layout per target name.
	sources map[string]*targetSources
}

// New creates a builder for the registry's package rooted at root. A nil store
// selects the in-memory topology.
func New(reg *registry.Registry, root string, store topologystore.Store) (*Builder, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package root %q: %w", root, err)
	}
	if store == nil {
		store = inmemorytopology.New()
	}
	return &Builder{
		reg:     reg,
		root:    absRoot,
		dag:     dag.New(),
		store:   store,
		sources: make(map[string]*targetSources),
	}, nil
}

// Build constructs and validates the build plan of reg, checking sources
// against the package root directory.
func Build(ctx context.Context, reg *registry.Registry, root string) (*plan.Plan, error) {
	b, err := New(reg, root, nil)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx)
}

// Build runs every construction phase. A Builder must not be reused.
func (b *Builder) Build(ctx context.Context) (*plan.Plan, error) {
	logger := ctxlog.FromContext(ctx).With("package", b.reg.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Build: Starting plan construction.", "root", b.root)

	if err := b.resolvePlatforms(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Build: Platforms resolved.", "count", len(b.platforms))

	if err := b.createNodes(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", b.dag.Len())

	if err := b.linkExplicitDeps(ctx); err != nil {
		return nil, err
	}
	if err := b.linkImplicitDeps(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Build: Node linking complete.")

	if err := b.detectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Build: Cycle detection passed.")

	if err := b.checkSources(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Build: Source tree checks passed.")

	p, err := b.assemble(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Build: Plan construction successful.",
		"targets", len(p.Targets),
		"products", len(p.Products),
		"fingerprint", p.Fingerprint,
	)
	return p, nil
}
