// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hclutil holds small helpers on top of hashicorp/hcl and go-cty that
// the descriptor loader needs: unique block lookup, detecting whether an
// optional attribute was actually written, and evaluating attribute
// expressions into plain Go values with proper diagnostics.
package hclutil
