// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package dag is a small, concurrency-safe directed acyclic graph keyed by
// string IDs. The builder uses it to link targets to the targets they depend
// on and products to the targets they ship, to reject dependency cycles, and
// to derive a deterministic compile order.
//
// An edge from A to B means B depends on A. Every query returns IDs sorted so
// that two graphs built from the same descriptor are indistinguishable.
package dag
