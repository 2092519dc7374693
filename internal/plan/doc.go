// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package plan holds the immutable result of graph construction: for every
// target, where its sources live, which include directories its compilation
// sees (in declared search order) and what it must be compiled after.
//
// A Plan carries a Fingerprint computed over its canonical JSON form with the
// absolute package root left out, so the same descriptor always yields the
// same fingerprint no matter where the package is checked out or which
// descriptor format described it.
package plan
