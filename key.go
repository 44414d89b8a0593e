// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import "github.com/gaissmai/iptrie/internal/bitstr"

// Key is the bit string a [Prefix] is stored under in the trie: a
// single leading address-family discriminator bit, 0 for IPv4 and
// 1 for IPv6, followed by the network bits.
//
// The discriminator is the only place family information enters the
// trie's keyspace. It makes the top-level branch of the shared trie
// separate the families, so one trie is logically equivalent to two
// disjoint per-family tries, even when raw network bits coincide.
//
// Key is an immutable value type and comparable with ==.
type Key struct {
	v bitstr.Bits
}

// Key returns the trie key for p.
func (p Prefix) Key() Key {
	var discriminator uint8
	if p.maxLen == maxLen6 {
		discriminator = 1
	}
	return Key{v: p.bits.PushFront(discriminator)}
}

// Prefix is the exact inverse of [Prefix.Key]: the leading bit picks
// the address family, the remainder are the network bits.
func (k Key) Prefix() Prefix {
	discriminator, bits := k.v.PopFront()
	if discriminator == 0 {
		return Prefix{bits: bits, maxLen: maxLen4}
	}
	return Prefix{bits: bits, maxLen: maxLen6}
}

// Len returns the length of the key in bits, the prefix length plus
// one discriminator bit.
func (k Key) Len() int {
	return k.v.Len()
}

// Bit returns the key bit at position i (0 or 1), i < Len().
// Bit 0 is the discriminator.
func (k Key) Bit(i int) uint8 {
	return k.v.Bit(i)
}

// String returns the key as a row of binary digits.
func (k Key) String() string {
	return k.v.String()
}
