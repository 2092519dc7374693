// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package topologystore defines the interface for storing and retrieving the
// static structure of the build graph.
//
// The topology is write-once-read-many: the builder populates it while
// constructing the graph, and afterwards it is only queried to derive the
// build plan. A store lives for a single build invocation.
package topologystore

import (
	"context"

	"github.com/specialistvlad/pkgplan/internal/node"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// Store is the interface for managing the topology of the build graph.
//
// Implementations MUST be safe for concurrent use.
type Store interface {
	// AddNode registers a node. Adding the same node twice (by ID) is
	// idempotent.
	AddNode(ctx context.Context, n *node.Node) error

	// AddDependency records that the node 'to' depends on the node 'from'.
	// Both nodes must already exist.
	AddDependency(ctx context.Context, from, to nodeid.Address) error

	// GetNode retrieves a single node by its address.
	GetNode(ctx context.Context, id nodeid.Address) (*node.Node, bool)

	// AllNodes returns every node, sorted by address.
	AllNodes(ctx context.Context) []*node.Node

	// DependenciesOf returns the addresses 'id' directly depends on, sorted.
	// It fails if 'id' is unknown.
	DependenciesOf(ctx context.Context, id nodeid.Address) ([]nodeid.Address, error)
}
