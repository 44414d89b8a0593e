// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/gaissmai/iptrie/internal/bitstr"
)

// the maxlen of a prefix fully determines its address family.
const (
	maxLen4 = 32
	maxLen6 = 128
)

// Prefix is an IP network prefix: up to 32 (IPv4) or 128 (IPv6)
// network bits. Only the network portion is part of the value, host
// bits behind the prefix length are dropped on construction, so
// 1.1.1.5/24 and 1.1.1.9/24 are the identical Prefix.
//
// Prefix is an immutable value type and comparable with ==.
// The zero Prefix is invalid.
type Prefix struct {
	bits   bitstr.Bits
	maxLen uint8
}

// Parse parses s as a network prefix in CIDR notation, "addr" or
// "addr/len". The address is dotted-decimal for IPv4 or colon-hex
// with :: compression for IPv6; a missing length defaults to the
// family's maxlen (host route).
//
// A malformed or zoned address yields an [*AddressError], a length
// that is not a decimal integer within the family's bound yields an
// [*LengthError]; both carry s.
func Parse(s string) (Prefix, error) {
	addrStr, lenStr, withLen := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrStr)
	if err != nil || addr.Zone() != "" {
		return Prefix{}, &AddressError{Input: s}
	}

	maxl := maxLen6
	if addr.Is4() {
		maxl = maxLen4
	}

	n := maxl
	if withLen {
		u, err := strconv.ParseUint(lenStr, 10, 8)
		if err != nil || int(u) > maxl {
			return Prefix{}, &LengthError{Input: s}
		}
		n = int(u)
	}

	return newPrefix(addr, n), nil
}

// MustParse is like [Parse] but panics on error. It is intended for
// use in tests with hard-coded strings.
func MustParse(s string) Prefix {
	pfx, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return pfx
}

// newPrefix packs addr into its full-width bit string and truncates
// to n bits, dropping the host portion.
func newPrefix(addr netip.Addr, n int) Prefix {
	if addr.Is4() {
		a4 := addr.As4()
		return Prefix{bits: bitstr.FromBytes(a4[:], n), maxLen: maxLen4}
	}
	a16 := addr.As16()
	return Prefix{bits: bitstr.FromBytes(a16[:], n), maxLen: maxLen6}
}

// FromTuple builds a host route from a raw address tuple: 4 elements,
// each 0..255, for IPv4 or 8 elements, each 0..65535, for IPv6.
// Any other arity or an element out of range yields an [*ArityError].
func FromTuple(tuple []int) (Prefix, error) {
	return fromTuple(tuple, 0, false)
}

// FromTupleLen is like [FromTuple] with an explicit prefix length.
// A length outside the family's bound yields an [*LengthError].
func FromTupleLen(tuple []int, length int) (Prefix, error) {
	return fromTuple(tuple, length, true)
}

func fromTuple(tuple []int, length int, withLen bool) (Prefix, error) {
	var (
		b    []byte
		maxl int
	)

	switch len(tuple) {
	case 4:
		maxl = maxLen4
		b = make([]byte, 4)
		for i, e := range tuple {
			if e < 0 || e > 0xff {
				return Prefix{}, &ArityError{Input: fmt.Sprint(tuple)}
			}
			b[i] = byte(e)
		}
	case 8:
		maxl = maxLen6
		b = make([]byte, 16)
		for i, e := range tuple {
			if e < 0 || e > 0xffff {
				return Prefix{}, &ArityError{Input: fmt.Sprint(tuple)}
			}
			b[2*i] = byte(e >> 8)
			b[2*i+1] = byte(e)
		}
	default:
		return Prefix{}, &ArityError{Input: fmt.Sprint(tuple)}
	}

	if !withLen {
		length = maxl
	}
	if length < 0 || length > maxl {
		return Prefix{}, &LengthError{Input: fmt.Sprint(tuple)}
	}

	return Prefix{bits: bitstr.FromBytes(b, length), maxLen: uint8(maxl)}, nil
}

// Bits returns the prefix length, the number of network bits.
func (p Prefix) Bits() int {
	return p.bits.Len()
}

// MaxLen returns the width of the address family, 32 or 128.
func (p Prefix) MaxLen() int {
	return int(p.maxLen)
}

// Is4 reports whether p is an IPv4 prefix.
func (p Prefix) Is4() bool {
	return p.maxLen == maxLen4
}

// IsValid reports whether p is a valid prefix, the zero Prefix is not.
func (p Prefix) IsValid() bool {
	return p.maxLen != 0
}

// Covers reports whether p contains o: same address family and the
// network bits of p are a prefix of (or equal to) those of o.
func (p Prefix) Covers(o Prefix) bool {
	return p.maxLen == o.maxLen &&
		p.bits.Len() <= o.bits.Len() &&
		o.bits.Truncate(p.bits.Len()) == p.bits
}

// addr pads the network bits with zeros to full width and returns the
// resulting address, display and arithmetic helper.
func (p Prefix) addr() netip.Addr {
	padded := p.bits.Pad(int(p.maxLen), false)
	if p.maxLen == maxLen4 {
		return netip.AddrFrom4([4]byte(padded.Bytes(4)))
	}
	return netip.AddrFrom16([16]byte(padded.Bytes(16)))
}

// String returns p in CIDR notation. The truncated bits are zero
// padded for display and the /len suffix is omitted for host routes
// (len == maxlen).
func (p Prefix) String() string {
	if !p.IsValid() {
		return "invalid Prefix"
	}
	if p.bits.Len() == int(p.maxLen) {
		return p.addr().String()
	}
	return p.addr().String() + "/" + strconv.Itoa(p.bits.Len())
}

// Terms returns the zero padded address as a raw tuple, the inverse of
// [FromTuple]: 4 elements for IPv4, 8 elements for IPv6.
func (p Prefix) Terms() []int {
	if p.maxLen == maxLen4 {
		b := p.bits.Pad(maxLen4, false).Bytes(4)
		terms := make([]int, 4)
		for i, octet := range b {
			terms[i] = int(octet)
		}
		return terms
	}
	b := p.bits.Pad(maxLen6, false).Bytes(16)
	terms := make([]int, 8)
	for i := range terms {
		terms[i] = int(b[2*i])<<8 | int(b[2*i+1])
	}
	return terms
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// The encoding is the same as returned by [Prefix.String], with one
// exception: if p is the zero Prefix, the encoding is the empty string.
func (p Prefix) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return []byte(""), nil
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It expects the form accepted by [Parse], or the empty string for the
// zero Prefix.
func (p *Prefix) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Prefix{}
		return nil
	}
	pfx, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = pfx
	return nil
}
