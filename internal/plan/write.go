// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
)

// WriteFile writes the encoded plan to path atomically: readers either see
// the previous plan or the complete new one.
func WriteFile(ctx context.Context, path string, p *Plan, format Format) error {
	logger := ctxlog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("create pending plan file: %w", err)
	}
	defer func() {
		// A no-op once the file has been committed.
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug("Cleanup of pending plan file failed.", "error", err)
		}
	}()

	if err := Encode(pendingFile, p, format); err != nil {
		return fmt.Errorf("write plan data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace plan file: %w", err)
	}

	logger.Debug("Plan written.", "path", path, "format", format)
	return nil
}
