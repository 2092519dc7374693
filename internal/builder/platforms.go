// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/platform"
)

// resolvePlatforms resolves the declared platforms in declaration order.
func (b *Builder) resolvePlatforms(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	seen := make(map[platform.Kind]struct{})

	for _, p := range b.reg.Platforms() {
		v, err := platform.Parse(p.Name, p.Minimum)
		if err != nil {
			return err
		}
		if _, dup := seen[v.Kind]; dup {
			return config.Errorf("platforms."+p.Name, "platform is declared more than once")
		}
		seen[v.Kind] = struct{}{}

		logger.Debug("Resolved platform.", "platform", v.String(), "file", p.Source.String())
		b.platforms = append(b.platforms, v)
	}
	return nil
}
