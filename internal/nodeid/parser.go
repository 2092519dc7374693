// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex matches names that may appear in a descriptor.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_+-]+$`)

// ValidName reports whether name can be used as a target or product name.
func ValidName(name string) bool {
	return nameRegex.MatchString(name) && name != "-"
}

// Parse creates an Address by parsing its canonical string representation.
func Parse(rawID string) (Address, error) {
	if rawID == "" {
		return Address{}, fmt.Errorf("identifier cannot be empty")
	}

	kind, name, ok := strings.Cut(rawID, ".")
	if !ok {
		return Address{}, fmt.Errorf("identifier %q must have the form <kind>.<name>", rawID)
	}

	switch Kind(kind) {
	case KindTarget, KindProduct:
	default:
		return Address{}, fmt.Errorf("unknown node kind %q in identifier %q", kind, rawID)
	}

	if !ValidName(name) {
		return Address{}, fmt.Errorf("invalid node name %q", name)
	}
	return Address{Kind: Kind(kind), Name: name}, nil
}
