// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// linkExplicitDeps turns a target's declared dependencies on other targets of
// the package into edges.
func (b *Builder) linkExplicitDeps(ctx context.Context) error {
	baseLogger := ctxlog.FromContext(ctx)

	for _, t := range b.reg.Targets() {
		for i, dep := range t.Dependencies {
			logger := baseLogger.With("target", t.Name, "depends_on", dep)
			field := config.Indexed(config.TargetField(t.Name, "dependencies"), i)

			if strings.Contains(dep, "/") {
				logger.Debug("Dependency refers to an external product, no edge needed.")
				continue
			}
			if dep == t.Name {
				return config.Errorf(field, "target cannot depend on itself")
			}
			if _, ok := b.reg.Target(dep); !ok {
				return config.Errorf(field, "target depends on non-existent target %q", dep)
			}

			logger.Debug("Linking explicit dependency.")
			if err := b.link(ctx, nodeid.Target(dep), nodeid.Target(t.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// link records that 'to' depends on 'from' in both the DAG and the store.
func (b *Builder) link(ctx context.Context, from, to nodeid.Address) error {
	if err := b.dag.AddEdge(from.String(), to.String()); err != nil {
		return fmt.Errorf("error linking %s to %s: %w", to, from, err)
	}
	if err := b.store.AddDependency(ctx, from, to); err != nil {
		return fmt.Errorf("error storing dependency of %s on %s: %w", to, from, err)
	}
	return nil
}
