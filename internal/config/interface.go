// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific descriptor loader.
type Loader interface {
	// Load reads descriptors from the given files or directories and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions this loader claims, including the
	// leading dot.
	Extensions() []string
}
