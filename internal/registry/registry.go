// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"sort"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
)

// Module contributes declarations to a Registry from Go code.
type Module interface {
	Register(r *Registry) error
}

// Registry holds every declaration of a single package, keyed by name, while
// remembering declaration order.
type Registry struct {
	Name         string
	ToolsVersion string
	Source       *config.FSInfo

	platforms    []*config.Platform
	products     map[string]*config.Product
	productOrder []string
	targets      map[string]*config.Target
	targetOrder  []string
	dependencies map[string]*config.Dependency
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		products:     make(map[string]*config.Product),
		targets:      make(map[string]*config.Target),
		dependencies: make(map[string]*config.Dependency),
	}
}

// Populate copies the declarations of the loaded model into the registry.
func (r *Registry) Populate(model *config.Model) error {
	if model == nil || model.Package == nil {
		return config.Errorf("package", "no package loaded")
	}
	pkg := model.Package

	if !nodeid.ValidName(pkg.Name) {
		return config.Errorf("name", "invalid package name %q", pkg.Name)
	}
	r.Name = pkg.Name
	r.ToolsVersion = pkg.ToolsVersion
	if r.ToolsVersion == "" {
		r.ToolsVersion = config.DefaultToolsVersion
	}
	r.Source = pkg.Source

	for _, p := range pkg.Platforms {
		r.AddPlatform(p)
	}
	for _, d := range pkg.Dependencies {
		if err := r.AddDependency(d); err != nil {
			return err
		}
	}
	for _, t := range pkg.Targets {
		if err := r.AddTarget(t); err != nil {
			return err
		}
	}
	for _, p := range pkg.Products {
		if err := r.AddProduct(p); err != nil {
			return err
		}
	}
	return nil
}

// RegisterModules lets each module add its declarations.
func (r *Registry) RegisterModules(modules ...Module) error {
	for _, m := range modules {
		if err := m.Register(r); err != nil {
			return err
		}
	}
	return nil
}

// AddPlatform records a raw platform requirement. Duplicates are detected
// when platforms are resolved.
func (r *Registry) AddPlatform(p *config.Platform) {
	r.platforms = append(r.platforms, p)
}

// AddTarget registers a target under its name.
func (r *Registry) AddTarget(t *config.Target) error {
	if !nodeid.ValidName(t.Name) {
		return config.Errorf(config.TargetField(t.Name, ""), "invalid target name %q", t.Name)
	}
	if _, exists := r.targets[t.Name]; exists {
		return config.Errorf(config.TargetField(t.Name, ""), "target %q is declared more than once", t.Name)
	}
	r.targets[t.Name] = t
	r.targetOrder = append(r.targetOrder, t.Name)
	return nil
}

// AddProduct registers a product under its name.
func (r *Registry) AddProduct(p *config.Product) error {
	if !nodeid.ValidName(p.Name) {
		return config.Errorf(config.ProductField(p.Name, ""), "invalid product name %q", p.Name)
	}
	if _, exists := r.products[p.Name]; exists {
		return config.Errorf(config.ProductField(p.Name, ""), "product %q is declared more than once", p.Name)
	}
	r.products[p.Name] = p
	r.productOrder = append(r.productOrder, p.Name)
	return nil
}

// AddDependency registers an external package.
func (r *Registry) AddDependency(d *config.Dependency) error {
	field := "dependencies." + d.Name
	if !nodeid.ValidName(d.Name) {
		return config.Errorf(field, "invalid dependency name %q", d.Name)
	}
	if _, exists := r.dependencies[d.Name]; exists {
		return config.Errorf(field, "dependency %q is declared more than once", d.Name)
	}
	r.dependencies[d.Name] = d
	return nil
}

// Target returns the named target.
func (r *Registry) Target(name string) (*config.Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Product returns the named product.
func (r *Registry) Product(name string) (*config.Product, bool) {
	p, ok := r.products[name]
	return p, ok
}

// Dependency returns the named external package.
func (r *Registry) Dependency(name string) (*config.Dependency, bool) {
	d, ok := r.dependencies[name]
	return d, ok
}

// Targets returns the targets in declaration order.
func (r *Registry) Targets() []*config.Target {
	out := make([]*config.Target, 0, len(r.targetOrder))
	for _, name := range r.targetOrder {
		out = append(out, r.targets[name])
	}
	return out
}

// Products returns the products in declaration order.
func (r *Registry) Products() []*config.Product {
	out := make([]*config.Product, 0, len(r.productOrder))
	for _, name := range r.productOrder {
		out = append(out, r.products[name])
	}
	return out
}

// Dependencies returns the external packages sorted by name.
func (r *Registry) Dependencies() []*config.Dependency {
	names := make([]string, 0, len(r.dependencies))
	for name := range r.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*config.Dependency, 0, len(names))
	for _, name := range names {
		out = append(out, r.dependencies[name])
	}
	return out
}

// Platforms returns the raw platform requirements in declaration order.
func (r *Registry) Platforms() []*config.Platform {
	return append([]*config.Platform(nil), r.platforms...)
}
