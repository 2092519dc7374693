// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/specialistvlad/pkgplan/internal/schema"
	"github.com/specialistvlad/pkgplan/internal/watch"
)

// Run executes the main application logic based on the app's configuration.
// In watch mode it blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Schema {
		return a.writeSchema()
	}

	p, err := a.Plan(ctx)
	if err != nil {
		if !a.config.Watch {
			return err
		}
		a.logger.Error("Planning failed, waiting for changes.", "error", err)
	} else if err := a.emit(ctx, p); err != nil {
		return err
	}

	if a.config.Watch {
		return a.watch(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// emit writes the plan unless it matches the previously emitted one.
func (a *App) emit(ctx context.Context, p *plan.Plan) error {
	if prev := a.LastPlan(); prev != nil && prev.Fingerprint == p.Fingerprint {
		a.logger.Info("Plan unchanged.", "fingerprint", p.Fingerprint)
		return nil
	}

	if a.config.OutputPath != "" {
		if err := plan.WriteFile(ctx, a.config.OutputPath, p, a.config.Format); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
		a.logger.Info("Plan written.", "path", a.config.OutputPath, "fingerprint", p.Fingerprint)
	} else if err := plan.Encode(a.outW, p, a.config.Format); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	a.mu.Lock()
	a.lastPlan = p
	a.mu.Unlock()
	return nil
}

func (a *App) watch(ctx context.Context) error {
	a.startHealthcheckServer(ctx)
	defer func() { _ = a.closeHealthcheckServer(ctx) }()

	paths := []string{a.config.DescriptorPath}
	if root, err := a.packageRoot(); err == nil && root != a.config.DescriptorPath {
		paths = append(paths, root)
	}

	w, err := watch.New(paths, watch.DefaultDebounce, a.replan)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	return w.Run(ctx)
}

// replan keeps the previous plan when the new one cannot be built.
func (a *App) replan(ctx context.Context) {
	p, err := a.Plan(ctx)
	if err != nil {
		a.logger.Error("Re-planning failed, keeping previous plan.", "error", err)
		return
	}
	if err := a.emit(ctx, p); err != nil {
		a.logger.Error("Failed to emit plan.", "error", err)
	}
}

func (a *App) writeSchema() error {
	data, err := schema.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	if _, err := a.outW.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
