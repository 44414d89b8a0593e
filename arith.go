// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import (
	"iter"
	"math/big"

	"github.com/gaissmai/iptrie/internal/bitstr"
)

// The typed arithmetic below is pure and total: every method returns a
// new Prefix, the receiver is never mutated and no method can fail.
// Address space arithmetic wraps silently modulo the size of the
// space, see [Prefix.Jump] and [Prefix.Host].

// Network returns "this network": the network bits padded with zeros
// to full width, as a host route.
func (p Prefix) Network() Prefix {
	return Prefix{bits: p.bits.Pad(int(p.maxLen), false), maxLen: p.maxLen}
}

// Broadcast returns the highest address in p: the network bits padded
// with ones to full width, as a host route.
func (p Prefix) Broadcast() Prefix {
	return Prefix{bits: p.bits.Pad(int(p.maxLen), true), maxLen: p.maxLen}
}

// Mask returns the subnet mask of p as a host route, e.g.
// 255.255.255.0 for a /24.
func (p Prefix) Mask() Prefix {
	m := bitstr.Bits{}.Pad(p.bits.Len(), true).Pad(int(p.maxLen), false)
	return Prefix{bits: m, maxLen: p.maxLen}
}

// InvMask returns the inverse (wildcard) mask of p as a host route,
// e.g. 0.0.0.255 for a /24.
func (p Prefix) InvMask() Prefix {
	m := bitstr.Bits{}.Pad(p.bits.Len(), false).Pad(int(p.maxLen), true)
	return Prefix{bits: m, maxLen: p.maxLen}
}

// Neighbor returns the sibling of p: the prefix of the same length
// that shares a parent at one bit less. Neighbor of the neighbor is p
// again. A zero length prefix has no parent and is its own neighbor.
func (p Prefix) Neighbor() Prefix {
	n := p.bits.Len()
	if n == 0 {
		return p
	}
	if p.bits.Bit(n-1) == 0 {
		return p.Jump(1)
	}
	return p.Jump(-1)
}

// Jump interprets the network bits as an unsigned integer of width
// Bits() and returns the prefix of the same length at value + n,
// modulo 2^Bits(). The arithmetic wraps silently in both directions,
// no error is ever raised.
func (p Prefix) Jump(n int64) Prefix {
	return Prefix{bits: p.bits.Add(n), maxLen: p.maxLen}
}

// Host returns the nth address within p as a host route: the host
// portion, the MaxLen()-Bits() bits behind the network, is set to
// nth modulo the size of the host space. Like [Prefix.Jump] the
// arithmetic wraps silently, a carry never leaves the host portion.
func (p Prefix) Host(nth int64) Prefix {
	hostLen := int(p.maxLen) - p.bits.Len()
	host := bitstr.Bits{}.Pad(hostLen, false).Add(nth)
	return Prefix{bits: p.bits.Concat(host), maxLen: p.maxLen}
}

// Hosts returns an iterator over all addresses in p in ascending
// order, [Prefix.Host] of 0 up to NumHosts-1. The sequence is finite
// and restartable; for a host route it yields exactly one address.
//
// Beware: the sequence is the full address space of p, for a short
// IPv6 prefix it is practically unbounded.
func (p Prefix) Hosts() iter.Seq[Prefix] {
	return func(yield func(Prefix) bool) {
		if !p.IsValid() {
			return
		}
		cur, last := p.Network(), p.Broadcast()
		for {
			if !yield(cur) {
				return
			}
			if cur == last {
				return
			}
			cur = cur.Jump(1)
		}
	}
}

// NumHosts returns the number of addresses in p, 2^(MaxLen()-Bits()).
// The count needs arbitrary precision, an IPv6 /0 holds 2^128
// addresses.
func (p Prefix) NumHosts() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(int(p.maxLen)-p.bits.Len()))
}

// The string based variants below parse their input first and thread a
// parse error through unchanged, no bit work is attempted on an error.

// Network is the string form of [Prefix.Network].
func Network(s string) (string, error) {
	return unary(s, Prefix.Network)
}

// Broadcast is the string form of [Prefix.Broadcast].
func Broadcast(s string) (string, error) {
	return unary(s, Prefix.Broadcast)
}

// Mask is the string form of [Prefix.Mask].
func Mask(s string) (string, error) {
	return unary(s, Prefix.Mask)
}

// InvMask is the string form of [Prefix.InvMask].
func InvMask(s string) (string, error) {
	return unary(s, Prefix.InvMask)
}

// Neighbor is the string form of [Prefix.Neighbor].
func Neighbor(s string) (string, error) {
	return unary(s, Prefix.Neighbor)
}

// Jump is the string form of [Prefix.Jump].
func Jump(s string, n int64) (string, error) {
	pfx, err := Parse(s)
	if err != nil {
		return "", err
	}
	return pfx.Jump(n).String(), nil
}

// Host is the string form of [Prefix.Host].
func Host(s string, nth int64) (string, error) {
	pfx, err := Parse(s)
	if err != nil {
		return "", err
	}
	return pfx.Host(nth).String(), nil
}

// Hosts is the string form of [Prefix.Hosts], fully materialized.
// Intended for small host ranges, use [Prefix.Hosts] for streaming.
func Hosts(s string) ([]string, error) {
	pfx, err := Parse(s)
	if err != nil {
		return nil, err
	}
	var hosts []string
	for host := range pfx.Hosts() {
		hosts = append(hosts, host.String())
	}
	return hosts, nil
}

// NumHosts is the string form of [Prefix.NumHosts].
func NumHosts(s string) (*big.Int, error) {
	pfx, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return pfx.NumHosts(), nil
}

func unary(s string, f func(Prefix) Prefix) (string, error) {
	pfx, err := Parse(s)
	if err != nil {
		return "", err
	}
	return f(pfx).String(), nil
}
