// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/specialistvlad/pkgplan/internal/builder"
	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/fsutil"
	"github.com/specialistvlad/pkgplan/internal/plan"
	"github.com/specialistvlad/pkgplan/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	modules []registry.Module

	httpServer *http.Server

	mu       sync.RWMutex
	lastPlan *plan.Plan
}

// NewApp is the constructor for the main application. Plans go to outW,
// logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  loader,
		modules: modules,
	}
}

// Plan loads the descriptor, validates its declarations and builds the plan.
func (a *App) Plan(ctx context.Context) (*plan.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	model, err := a.loader.Load(ctx, a.config.DescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor: %w", err)
	}
	logger.Debug("Descriptor loaded and translated into unified model.", "files", model.Files)

	reg := registry.New()
	if err := reg.Populate(model); err != nil {
		return nil, err
	}
	if err := reg.RegisterModules(a.modules...); err != nil {
		return nil, fmt.Errorf("failed to register modules: %w", err)
	}
	logger.Debug("Registry populated.", "modules", len(a.modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	root, err := a.packageRoot()
	if err != nil {
		return nil, err
	}
	return builder.Build(ctx, reg, root)
}

// LastPlan returns the most recently emitted plan, or nil.
func (a *App) LastPlan() *plan.Plan {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastPlan
}

// packageRoot returns the configured root or the descriptor's directory.
func (a *App) packageRoot() (string, error) {
	if a.config.Root != "" {
		return a.config.Root, nil
	}
	isDir, err := fsutil.IsDir(a.config.DescriptorPath)
	if err != nil {
		return "", fmt.Errorf("failed to inspect descriptor path: %w", err)
	}
	if isDir {
		return a.config.DescriptorPath, nil
	}
	return filepath.Dir(a.config.DescriptorPath), nil
}
