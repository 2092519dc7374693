// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/fsutil"
)

// targetSources is the checked source layout of one target. Paths are slash
// separated.
type targetSources struct {
	// root is relative to the package root.
	root string
	// publicHeaders is relative to the package root, empty when undeclared.
	publicHeaders string
	// includePaths are relative to the target root.
	includePaths []string
}

// checkSources validates every target's source tree in declaration order and
// stops at the first problem.
func (b *Builder) checkSources(ctx context.Context) error {
	for _, t := range b.reg.Targets() {
		src, err := b.checkTarget(ctx, t)
		if err != nil {
			return err
		}
		b.sources[t.Name] = src
	}
	return nil
}

func (b *Builder) checkTarget(ctx context.Context, t *config.Target) (*targetSources, error) {
	logger := ctxlog.FromContext(ctx).With("target", t.Name)

	rootField := config.TargetField(t.Name, "path")
	targetRoot, err := fsutil.ResolveWithin(b.root, t.RootPath())
	if err != nil {
		return nil, config.Wrap(rootField, "invalid target path", err)
	}
	if err := requireDir(rootField, "target root", b.root, targetRoot, t.RootPath()); err != nil {
		return nil, err
	}

	src := &targetSources{root: b.relToRoot(targetRoot)}

	if t.PublicHeadersPath != nil {
		field := config.TargetField(t.Name, "public_headers_path")
		dir, err := fsutil.ResolveWithin(targetRoot, *t.PublicHeadersPath)
		if err != nil {
			return nil, config.Wrap(field, "invalid public headers path", err)
		}
		if err := requireDir(field, "public headers path", targetRoot, dir, *t.PublicHeadersPath); err != nil {
			return nil, err
		}
		src.publicHeaders = b.relToRoot(dir)
	}

	seen := make(map[string]int)
	for i, raw := range t.HeaderSearchPaths {
		field := config.Indexed(config.TargetField(t.Name, "header_search_paths"), i)
		if raw == "" {
			return nil, config.Errorf(field, "header search path must not be empty")
		}

		dir, err := fsutil.ResolveWithin(targetRoot, raw)
		if err != nil {
			return nil, config.Wrap(field, "invalid header search path", err)
		}
		if err := requireDir(field, "header search path", targetRoot, dir, raw); err != nil {
			return nil, err
		}

		rel := path.Clean(filepath.ToSlash(raw))
		if first, dup := seen[rel]; dup {
			logger.Warn("Duplicate header search path ignored.", "path", raw, "index", i, "first_index", first)
			continue
		}
		seen[rel] = i
		src.includePaths = append(src.includePaths, rel)
	}

	logger.Debug("Target sources checked.",
		"root", src.root,
		"public_headers", src.publicHeaders,
		"include_paths", len(src.includePaths),
	)
	return src, nil
}

// requireDir fails with a ConfigurationError unless dir is an existing
// directory whose real location, after following symlinks, is inside root.
func requireDir(field, what, root, dir, declared string) error {
	ok, err := fsutil.IsDir(dir)
	if err != nil {
		return config.Wrap(field, fmt.Sprintf("cannot inspect %s %q", what, declared), err)
	}
	if !ok {
		return config.Errorf(field, "%s %q does not exist or is not a directory", what, declared)
	}
	if err := fsutil.CheckRealWithin(root, dir); err != nil {
		return config.Wrap(field, fmt.Sprintf("%s %q escapes its root", what, declared), err)
	}
	return nil
}

func (b *Builder) relToRoot(abs string) string {
	rel, err := filepath.Rel(b.root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
