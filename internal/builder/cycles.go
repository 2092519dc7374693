// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"errors"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/dag"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// detectCycles reports a dependency cycle as a ConfigurationError on the
// dependencies of the first target in the cycle.
func (b *Builder) detectCycles() error {
	err := b.dag.DetectCycles()
	if err == nil {
		return nil
	}

	var cycle *dag.CycleError
	if !errors.As(err, &cycle) || len(cycle.Path) == 0 {
		return config.Wrap("targets", "error validating dependency graph", err)
	}

	field := "targets"
	if addr, perr := nodeid.Parse(cycle.Path[0]); perr == nil {
		field = config.TargetField(addr.Name, "dependencies")
	}
	return config.Wrap(field, "dependency cycle", err)
}
