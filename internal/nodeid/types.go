// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodeid

// Kind distinguishes the kinds of build graph nodes.
type Kind string

const (
	KindTarget  Kind = "target"
	KindProduct Kind = "product"
)

// Address identifies a single node in the build graph.
type Address struct {
	Kind Kind
	Name string
}

// Target returns the address of the named target.
func Target(name string) Address {
	return Address{Kind: KindTarget, Name: name}
}

// Product returns the address of the named product.
func Product(name string) Address {
	return Address{Kind: KindProduct, Name: name}
}
