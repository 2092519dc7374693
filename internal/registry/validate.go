// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"sort"
	"strings"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
)

// ValidationError aggregates every problem ValidateRegistry found.
type ValidationError struct {
	Errs []*config.ConfigurationError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "registry validation failed:\n- " + strings.Join(msgs, "\n- ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err
	}
	return out
}

// ValidateRegistry checks that every name the package references resolves.
// All problems are collected before returning so one run reports them all.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []*config.ConfigurationError

	if !isSupportedToolsVersion(r.ToolsVersion) {
		errs = append(errs, config.Errorf("tools_version", "unsupported tools version %q (supported: %s)",
			r.ToolsVersion, strings.Join(config.SupportedToolsVersions, ", ")))
	}

	if len(r.products) == 0 {
		errs = append(errs, config.Errorf("products", "package %q declares no products", r.Name))
	}

	for _, p := range r.Products() {
		if len(p.Targets) == 0 {
			errs = append(errs, config.Errorf(config.ProductField(p.Name, "targets"), "product must reference at least one target"))
		}
		seen := make(map[string]struct{})
		for i, name := range p.Targets {
			field := config.Indexed(config.ProductField(p.Name, "targets"), i)
			if _, dup := seen[name]; dup {
				errs = append(errs, config.Errorf(field, "target %q is listed more than once", name))
				continue
			}
			seen[name] = struct{}{}
			if _, ok := r.targets[name]; !ok {
				errs = append(errs, config.Errorf(field, "product references non-existent target %q", name))
			}
		}
	}

	for _, t := range r.Targets() {
		for i, dep := range t.Dependencies {
			field := config.Indexed(config.TargetField(t.Name, "dependencies"), i)
			if err := r.validateTargetDependency(t, dep, field); err != nil {
				errs = append(errs, err)
			}
		}
	}

	for _, name := range r.unusedTargets() {
		logger.Warn("Target is not part of any product.", "target", name)
	}

	if len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	logger.Debug("Registry validation passed.", "products", len(r.products), "targets", len(r.targets))
	return nil
}

func (r *Registry) validateTargetDependency(t *config.Target, dep, field string) *config.ConfigurationError {
	if pkgName, product, external := strings.Cut(dep, "/"); external {
		if pkgName == "" || product == "" {
			return config.Errorf(field, "malformed external dependency %q: expected <dependency>/<product>", dep)
		}
		if _, ok := r.dependencies[pkgName]; !ok {
			return config.Errorf(field, "target depends on product %q of undeclared package %q", product, pkgName)
		}
		return nil
	}
	if dep == t.Name {
		return config.Errorf(field, "target cannot depend on itself")
	}
	if _, ok := r.targets[dep]; !ok {
		return config.Errorf(field, "target depends on non-existent target %q", dep)
	}
	return nil
}

// unusedTargets lists targets that no product ships and no other target
// depends on.
func (r *Registry) unusedTargets() []string {
	used := make(map[string]struct{})
	for _, p := range r.products {
		for _, name := range p.Targets {
			used[name] = struct{}{}
		}
	}
	for _, t := range r.targets {
		for _, dep := range t.Dependencies {
			used[dep] = struct{}{}
		}
	}

	var unused []string
	for name := range r.targets {
		if _, ok := used[name]; !ok {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	return unused
}

func isSupportedToolsVersion(v string) bool {
	for _, s := range config.SupportedToolsVersions {
		if s == v {
			return true
		}
	}
	return false
}
