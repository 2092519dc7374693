// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "fmt"

// DefaultToolsVersion is assumed when a descriptor omits tools_version.
const DefaultToolsVersion = "5.3"

// SupportedToolsVersions lists the descriptor schema revisions this planner
// understands.
var SupportedToolsVersions = []string{"5.3", "5.4", "5.5", "5.6", "5.7", "5.8", "5.9", "5.10"}

// Model is the unified representation of everything loaded for one build
// invocation.
type Model struct {
	Package *Package
	// Files lists the descriptor files that contributed to the model, in load order.
	Files []string
}

// Package is the format-agnostic representation of a `package` declaration.
type Package struct {
	Name         string
	ToolsVersion string
	Platforms    []*Platform
	Products     []*Product
	Dependencies []*Dependency
	Targets      []*Target
	Source       *FSInfo
}

// Platform is a raw, unresolved platform requirement. Resolution into an
// enumerated version happens in the builder.
type Platform struct {
	Name    string
	Minimum string
	Source  *FSInfo
}

// Linkage selects how a product is linked.
type Linkage string

const (
	LinkageStatic  Linkage = "static"
	LinkageDynamic Linkage = "dynamic"
)

// ParseLinkage maps a descriptor value onto a Linkage. An empty value means static.
func ParseLinkage(s string) (Linkage, error) {
	switch s {
	case "", string(LinkageStatic):
		return LinkageStatic, nil
	case string(LinkageDynamic):
		return LinkageDynamic, nil
	default:
		return "", fmt.Errorf("unknown linkage %q: must be 'static' or 'dynamic'", s)
	}
}

// Product is a distributable library composed of one or more targets.
type Product struct {
	Name    string
	Linkage Linkage
	Targets []string
}

// Dependency is an external package the targets may pull products from.
type Dependency struct {
	Name    string
	URL     string
	Version string
}

// Target is a named set of sources compiled together under one configuration.
type Target struct {
	Name string
	// Path is the target root relative to the package root. Empty means
	// DefaultTargetPath(Name).
	Path string
	// PublicHeadersPath is nil when undeclared. A pointer to "" means the
	// target root itself.
	PublicHeadersPath *string
	// HeaderSearchPaths are relative to the target root, in declared order.
	HeaderSearchPaths []string
	Defines           map[string]string
	Dependencies      []string
}

// DefaultTargetPath is the conventional location of a target's sources.
func DefaultTargetPath(name string) string {
	return "Sources/" + name
}

// RootPath returns the declared target root or the conventional default.
func (t *Target) RootPath() string {
	if t.Path != "" {
		return t.Path
	}
	return DefaultTargetPath(t.Name)
}

// FSInfo links a declaration back to the descriptor file it came from.
type FSInfo struct {
	FilePath string
}

// String returns the descriptor file path. A nil FSInfo yields "".
func (i *FSInfo) String() string {
	if i == nil {
		return ""
	}
	return i.FilePath
}

// NewFSInfo creates FSInfo for the given descriptor file.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{FilePath: filePath}
}
