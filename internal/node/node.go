// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package node defines the vertices of the build graph.
package node

import (
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// Node is a single vertex in the build graph: either a target (a compilation
// unit) or a product (an artifact that links targets).
type Node struct {
	// ID is the unique, structured identifier for the node.
	ID nodeid.Address

	// Target holds the configuration for a target node. It is nil for products.
	Target *config.Target
	// Product holds the configuration for a product node. It is nil for targets.
	Product *config.Product
}

// NewTarget creates a target node.
func NewTarget(t *config.Target) *Node {
	return &Node{ID: nodeid.Target(t.Name), Target: t}
}

// NewProduct creates a product node.
func NewProduct(p *config.Product) *Node {
	return &Node{ID: nodeid.Product(p.Name), Product: p}
}

// Kind returns the node kind.
func (n *Node) Kind() nodeid.Kind {
	return n.ID.Kind
}
