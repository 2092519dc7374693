// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

// Plan is the build plan for a single package.
type Plan struct {
	Package      string           `json:"package" yaml:"package"`
	ToolsVersion string           `json:"tools_version" yaml:"tools_version"`
	Root         string           `json:"root,omitempty" yaml:"root,omitempty"`
	Platforms    []PlatformPlan   `json:"platforms" yaml:"platforms"`
	Dependencies []DependencyPlan `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Products     []ProductPlan    `json:"products" yaml:"products"`
	Targets      []TargetPlan     `json:"targets" yaml:"targets"`
	// CompileOrder lists target names so that each target follows its dependencies.
	CompileOrder []string `json:"compile_order" yaml:"compile_order"`
	// Edges are the graph's dependency edges, sorted.
	Edges       []Edge `json:"edges" yaml:"edges"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// PlatformPlan is a resolved minimum deployment target.
type PlatformPlan struct {
	Name    string `json:"name" yaml:"name"`
	Minimum string `json:"minimum" yaml:"minimum"`
}

// DependencyPlan is an external package.
type DependencyPlan struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url" yaml:"url"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// ProductPlan is a library artifact and the targets it links.
type ProductPlan struct {
	Name    string   `json:"name" yaml:"name"`
	Linkage string   `json:"linkage" yaml:"linkage"`
	Targets []string `json:"targets" yaml:"targets"`
}

// TargetPlan describes how one target compiles.
type TargetPlan struct {
	Name string `json:"name" yaml:"name"`
	// Root is the target root relative to the package root, slash separated.
	Root string `json:"root" yaml:"root"`
	// PublicHeaders is the public headers directory relative to the package
	// root; empty when the target declares none.
	PublicHeaders string `json:"public_headers,omitempty" yaml:"public_headers,omitempty"`
	// IncludePaths are the header search paths relative to the target root,
	// in declared search order with duplicates collapsed.
	IncludePaths []string `json:"include_paths" yaml:"include_paths"`
	Defines      []Define `json:"defines,omitempty" yaml:"defines,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Define is a preprocessor definition.
type Define struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Edge states that To depends on From.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Target returns the named target plan.
func (p *Plan) Target(name string) (*TargetPlan, bool) {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i], true
		}
	}
	return nil, false
}
