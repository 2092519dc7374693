// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package schema defines the document shape of a YAML package descriptor and
// generates its JSON Schema. The same field names are used by the HCL
// descriptor, so the schema doubles as reference documentation for both.
package schema

// Document is the root of a YAML package descriptor.
type Document struct {
	Name         string       `yaml:"name" json:"name" jsonschema:"description=Package name"`
	ToolsVersion string       `yaml:"tools_version,omitempty" json:"tools_version,omitempty" jsonschema:"description=Descriptor schema revision,enum=5.3,enum=5.4,enum=5.5,enum=5.6,enum=5.7,enum=5.8,enum=5.9,enum=5.10,default=5.3"`
	Platforms    []Platform   `yaml:"platforms,omitempty" json:"platforms,omitempty" jsonschema:"description=Minimum deployment targets"`
	Products     []Product    `yaml:"products" json:"products" jsonschema:"description=Distributable libraries"`
	Dependencies []Dependency `yaml:"dependencies,omitempty" json:"dependencies,omitempty" jsonschema:"description=External packages"`
	Targets      []Target     `yaml:"targets" json:"targets" jsonschema:"description=Compilation units"`
}

// Platform is one minimum deployment target.
type Platform struct {
	Name    string `yaml:"name" json:"name" jsonschema:"enum=ios,enum=macos,enum=tvos,enum=watchos"`
	Minimum string `yaml:"minimum" json:"minimum" jsonschema:"description=Minimum OS version such as 12 or 10.15"`
}

// Product is a library built from one or more targets.
type Product struct {
	Name    string   `yaml:"name" json:"name"`
	Type    string   `yaml:"type,omitempty" json:"type,omitempty" jsonschema:"enum=static,enum=dynamic,default=static"`
	Targets []string `yaml:"targets" json:"targets" jsonschema:"minItems=1"`
}

// Dependency is an external package.
type Dependency struct {
	Name    string `yaml:"name" json:"name"`
	URL     string `yaml:"url" json:"url"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// Target is a compilation unit.
type Target struct {
	Name              string            `yaml:"name" json:"name"`
	Path              string            `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=Target root relative to the package root; defaults to Sources/<name>"`
	Dependencies      []string          `yaml:"dependencies,omitempty" json:"dependencies,omitempty" jsonschema:"description=Target names or <dependency>/<product>"`
	PublicHeadersPath *string           `yaml:"public_headers_path,omitempty" json:"public_headers_path,omitempty" jsonschema:"description=Public headers directory relative to the target root; empty means the root itself"`
	HeaderSearchPaths []string          `yaml:"header_search_paths,omitempty" json:"header_search_paths,omitempty" jsonschema:"description=Include directories relative to the target root in search order"`
	Defines           map[string]string `yaml:"defines,omitempty" json:"defines,omitempty" jsonschema:"description=Preprocessor definitions"`
}
