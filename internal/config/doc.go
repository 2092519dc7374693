// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic model of a package descriptor,
// the Loader interface that concrete formats (HCL, YAML) implement, and the
// error taxonomy shared by every stage of planning.
//
// The `config.Model` is the single source of truth for the `registry` and
// `builder` packages. Concrete loaders live in separate packages and never
// leak their syntax trees into the model.
package config
