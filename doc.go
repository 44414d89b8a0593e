// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package iptrie provides a key-value store indexed by IP network
// prefixes (CIDR, IPv4 and IPv6) with longest-prefix-match lookup,
// together with a prefix arithmetic toolkit for reasoning about the
// network and host boundaries within a prefix.
//
// The central type is [Prefix], a value of up to 32 or 128 network
// bits. Both address families are multiplexed into one shared binary
// trie by a single leading discriminator bit (see [Key]), so IPv4 and
// IPv6 entries can never alias each other, even when their raw bits
// coincide.
//
// The arithmetic functions ([Prefix.Network], [Prefix.Broadcast],
// [Prefix.Mask], [Prefix.Neighbor], [Prefix.Jump], [Prefix.Host], ...)
// are pure and total: address space arithmetic wraps silently modulo
// the size of the prefix, it never errors and never leaves the prefix
// length.
//
// Parsing errors are ordinary values of the types [AddressError],
// [LengthError] and [ArityError], each carrying the offending input.
// The string based convenience functions thread a parse error through
// unchanged instead of doing bit work on garbage; the one place an
// error escalates is [Table.Set], where a malformed write request
// fails the whole call.
package iptrie
