// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// IsExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional hcl.Expression fields with a
// zero-width placeholder, so a nil check alone is not enough: a real
// attribute occupies bytes in the file.
func IsExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

// EvalString evaluates expr into a string. Numbers and bools are converted
// the way HCL converts them. A null value is reported as an error.
func EvalString(expr hcl.Expression, attrName string) (string, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", hcl.Diagnostics{invalid(expr, attrName, "a string is required, but the value is null")}
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", hcl.Diagnostics{invalid(expr, attrName, fmt.Sprintf("a string is required: %s", err))}
	}

	var out string
	if err := gocty.FromCtyValue(strVal, &out); err != nil {
		return "", hcl.Diagnostics{invalid(expr, attrName, err.Error())}
	}
	return out, nil
}

// EvalOptionalString evaluates expr when it was written in the source and
// returns nil otherwise, so callers can tell "absent" from "empty".
func EvalOptionalString(expr hcl.Expression, attrName string) (*string, hcl.Diagnostics) {
	if !IsExprDefined(expr) {
		return nil, nil
	}
	s, diags := EvalString(expr, attrName)
	if diags.HasErrors() {
		return nil, diags
	}
	return &s, diags
}

// EvalVersion evaluates a version attribute. A bare number literal is taken
// verbatim from src, so `10.10` stays "10.10" instead of collapsing to the
// cty number 10.1. Everything else goes through EvalString.
func EvalVersion(expr hcl.Expression, src []byte, attrName string) (string, hcl.Diagnostics) {
	if lit, ok := expr.(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type() == cty.Number {
		rng := lit.Range()
		if rng.End.Byte > rng.Start.Byte && rng.End.Byte <= len(src) {
			return string(rng.SliceBytes(src)), nil
		}
	}
	return EvalString(expr, attrName)
}

func invalid(expr hcl.Expression, attrName, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid value for %q", attrName),
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}
}
