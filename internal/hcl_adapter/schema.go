// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// fileSchema admits only `package` blocks at the top level of a descriptor.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "package", LabelNames: []string{"name"}},
	},
}

// hclPackage is the body of a `package "<name>" { ... }` block. Versions are
// raw expressions so number literals keep their source text.
type hclPackage struct {
	ToolsVersion hcl.Expression   `hcl:"tools_version,optional"`
	Platforms    []*hclPlatform   `hcl:"platform,block"`
	Products     []*hclProduct    `hcl:"product,block"`
	Dependencies []*hclDependency `hcl:"dependency,block"`
	Targets      []*hclTarget     `hcl:"target,block"`
}

// hclPlatform accepts the minimum as a string or a number (`minimum = 10.10`).
type hclPlatform struct {
	Name    string         `hcl:"name,label"`
	Minimum hcl.Expression `hcl:"minimum"`
}

type hclProduct struct {
	Name    string   `hcl:"name,label"`
	Type    string   `hcl:"type,optional"`
	Targets []string `hcl:"targets"`
}

type hclDependency struct {
	Name    string `hcl:"name,label"`
	URL     string `hcl:"url"`
	Version string `hcl:"version,optional"`
}

// hclTarget keeps public_headers_path as a raw expression so an omitted
// attribute can be told apart from an explicit empty string.
type hclTarget struct {
	Name              string            `hcl:"name,label"`
	Path              string            `hcl:"path,optional"`
	Dependencies      []string          `hcl:"dependencies,optional"`
	PublicHeadersPath hcl.Expression    `hcl:"public_headers_path,optional"`
	HeaderSearchPaths []string          `hcl:"header_search_paths,optional"`
	Defines           map[string]string `hcl:"defines,optional"`
}
