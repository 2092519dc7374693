// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclutil

import (
	"github.com/hashicorp/hcl/v2"
)

// FindUniqueBlock searches a slice of blocks for all blocks of a given type.
// It returns a diagnostic error if more than one block of that type is found.
// If no block is found, it returns nil.
func FindUniqueBlock(blocks hcl.Blocks, blockType string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != blockType {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + blockType + "\" block",
				Detail:   "Only one \"" + blockType + "\" block is allowed; the first was declared at " + found.DefRange.String() + ".",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}

	return found, diags
}
