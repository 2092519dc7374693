// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yaml_adapter loads YAML package descriptors into the
// format-agnostic config model.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/ctxlog"
	"github.com/specialistvlad/pkgplan/internal/fsutil"
	"github.com/specialistvlad/pkgplan/internal/schema"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML descriptor under the given paths. Each file holds
// one package document and only one package may be declared overall.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, l.Extensions()...)
	if err != nil {
		return nil, config.Wrap("descriptor", "failed to discover YAML files", err)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, config.Wrap("descriptor", fmt.Sprintf("failed to read YAML file %s", file), err)
		}
		doc, err := Decode(data)
		if err != nil {
			return nil, config.Wrap("descriptor", fmt.Sprintf("failed to decode YAML file %s", file), err)
		}
		model.Files = append(model.Files, file)
		if doc == nil {
			logger.Debug("YAML file is empty.", "file", file)
			continue
		}

		if err := rejectNullPublicHeaders(data); err != nil {
			return nil, err
		}
		pkg, err := translateDocument(doc, file)
		if err != nil {
			return nil, err
		}
		if model.Package != nil {
			return nil, config.Errorf("package",
				"package %q declared in %s conflicts with package %q declared in %s",
				pkg.Name, file, model.Package.Name, model.Package.Source.FilePath)
		}
		model.Package = pkg
	}

	if model.Package == nil {
		return nil, config.Errorf("package", "no package declaration found in %d YAML file(s)", len(files))
	}

	logger.Debug("YAML loading complete.",
		"package", model.Package.Name,
		"products", len(model.Package.Products),
		"targets", len(model.Package.Targets),
	)
	return model, nil
}

// Decode strictly decodes a single descriptor document, rejecting unknown
// fields. An empty document yields nil.
func Decode(data []byte) (*schema.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc schema.Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("descriptor must contain exactly one YAML document")
	}
	return &doc, nil
}

// rejectNullPublicHeaders fails on `public_headers_path: ~` (or an empty
// value). The typed decode cannot tell an explicit null from an omitted key.
func rejectNullPublicHeaders(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return config.Wrap("descriptor", "failed to decode YAML document", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	targets := mappingValue(root.Content[0], "targets")
	if targets == nil || targets.Kind != yaml.SequenceNode {
		return nil
	}
	for _, t := range targets.Content {
		v := mappingValue(t, "public_headers_path")
		if v == nil || v.Kind != yaml.ScalarNode || v.ShortTag() != "!!null" {
			continue
		}
		var name string
		if n := mappingValue(t, "name"); n != nil {
			name = n.Value
		}
		return config.Errorf(config.TargetField(name, "public_headers_path"),
			"a string is required, but the value is null (line %d)", v.Line)
	}
	return nil
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
