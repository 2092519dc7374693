// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/node"
)

// createNodes adds one vertex per target and per product.
func (b *Builder) createNodes(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting node creation pass.")

	for _, t := range b.reg.Targets() {
		if err := b.addNode(ctx, node.NewTarget(t)); err != nil {
			return err
		}
	}
	for _, p := range b.reg.Products() {
		if err := b.addNode(ctx, node.NewProduct(p)); err != nil {
			return err
		}
	}

	logger.Debug("Finished node creation pass.")
	return nil
}

func (b *Builder) addNode(ctx context.Context, n *node.Node) error {
	id := n.ID.String()
	ctxlog.FromContext(ctx).Debug("Creating node.", "id", id)

	if err := b.store.AddNode(ctx, n); err != nil {
		return fmt.Errorf("failed to store node %s: %w", id, err)
	}
	b.dag.AddNode(id)
	return nil
}
