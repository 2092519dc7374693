// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// linkImplicitDeps makes every product depend on the targets it ships.
func (b *Builder) linkImplicitDeps(ctx context.Context) error {
	baseLogger := ctxlog.FromContext(ctx)

	for _, p := range b.reg.Products() {
		if len(p.Targets) == 0 {
			return config.Errorf(config.ProductField(p.Name, "targets"), "product must name at least one target")
		}
		for i, name := range p.Targets {
			if _, ok := b.reg.Target(name); !ok {
				field := config.Indexed(config.ProductField(p.Name, "targets"), i)
				return config.Errorf(field, "product references non-existent target %q", name)
			}

			baseLogger.Debug("Linking product to target.", "product", p.Name, "target", name)
			if err := b.link(ctx, nodeid.Target(name), nodeid.Product(p.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}
