// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodeid

// String serializes the Address into its canonical string representation.
func (a Address) String() string {
	return string(a.Kind) + "." + a.Name
}

// Equal reports whether two addresses name the same node.
func (a Address) Equal(other Address) bool {
	return a == other
}

// Less orders addresses by kind, then name.
func (a Address) Less(other Address) bool {
	if a.Kind != other.Kind {
		return a.Kind < other.Kind
	}
	return a.Name < other.Name
}
