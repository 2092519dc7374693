// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry indexes everything a package declares (products, targets,
// platforms and external dependencies) by name.
//
// Declarations arrive either from a loaded descriptor (Populate) or from Go
// code implementing Module, which lets a program contribute extra feature
// targets without touching the descriptor. Once populated, ValidateRegistry
// checks that every cross-reference resolves, so the graph builder can assume
// a consistent set of names.
package registry
