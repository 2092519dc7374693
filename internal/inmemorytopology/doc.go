// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. Build graphs are small, so maps
// guarded by a RWMutex are all the storage they need.
package inmemorytopology
