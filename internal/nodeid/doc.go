// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package nodeid provides a structured, type-safe representation for build graph
node identifiers, based on the canonical format `<kind>.<name>`, e.g.
`target.DBDebugToolkit` or `product.DBDebugToolkit-Dynamic`.

This package enforces the identifier schema and centralizes all formatting
and parsing logic.
*/
package nodeid
