// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the generated schema document.
const SchemaID = "https://github.com/specialistvlad/pkgplan/descriptor.schema.json"

// Generate reflects Document into an indented JSON Schema.
func Generate() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&Document{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "Package descriptor"

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor schema: %w", err)
	}
	return out, nil
}
