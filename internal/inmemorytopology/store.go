// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inmemorytopology

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/pkgplan/internal/node"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
	"github.com/specialistvlad/pkgplan/internal/topologystore"
)

// Store implements the topologystore.Store interface using maps and a mutex
// for thread-safe concurrent access.
type Store struct {
	mu    sync.RWMutex
	nodes map[nodeid.Address]*node.Node
	deps  map[nodeid.Address]map[nodeid.Address]struct{} // node -> set of dependencies
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		nodes: make(map[nodeid.Address]*node.Node),
		deps:  make(map[nodeid.Address]map[nodeid.Address]struct{}),
	}
}

// AddNode adds a new node to the store.
func (s *Store) AddNode(ctx context.Context, n *node.Node) error {
	if n == nil {
		return fmt.Errorf("cannot add nil node")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[n.ID]; exists {
		return nil
	}
	s.nodes[n.ID] = n
	return nil
}

// AddDependency creates a dependency link from one node to another.
func (s *Store) AddDependency(ctx context.Context, from, to nodeid.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[from]; !exists {
		return fmt.Errorf("dependency source node '%s' not found in topology", from)
	}
	if _, exists := s.nodes[to]; !exists {
		return fmt.Errorf("dependency target node '%s' not found in topology", to)
	}

	if s.deps[to] == nil {
		s.deps[to] = make(map[nodeid.Address]struct{})
	}
	s.deps[to][from] = struct{}{}
	return nil
}

// GetNode retrieves a single node by its address.
func (s *Store) GetNode(ctx context.Context, id nodeid.Address) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	return n, ok
}

// AllNodes returns a snapshot of all nodes sorted by address.
func (s *Store) AllNodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*node.Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID.Less(nodes[j].ID) })
	return nodes
}

// DependenciesOf returns the addresses of all nodes that the given node depends on.
func (s *Store) DependenciesOf(ctx context.Context, id nodeid.Address) ([]nodeid.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.nodes[id]; !exists {
		return nil, fmt.Errorf("node '%s' not found in topology", id)
	}

	deps := make([]nodeid.Address, 0, len(s.deps[id]))
	for dep := range s.deps[id] {
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Less(deps[j]) })
	return deps, nil
}
