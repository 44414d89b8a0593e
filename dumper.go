// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import "github.com/gaissmai/iptrie/internal/bitstr"

// DumpListNode contains CIDR, Value and Subnets, representing the trie
// in a sorted, recursive representation, especially useful for
// serialization.
type DumpListNode[V any] struct {
	CIDR    Prefix            `json:"cidr"`
	Value   V                 `json:"value"`
	Subnets []DumpListNode[V] `json:"subnets,omitempty"`
}

// DumpList returns the table as an ordered, recursive list of
// [DumpListNode], nested by coverage: the subnets of a node are the
// stored prefixes it covers that no closer stored prefix covers.
// The IPv4 entries come before the IPv6 entries, siblings are in
// ascending address order.
func (t *Table[V]) DumpList() []DumpListNode[V] {
	return t.root.directKids(bitstr.Bits{})
}
