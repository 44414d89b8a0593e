// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import "strconv"

// AddressError is returned when the address part of the input does not
// parse as a textual IPv4 or IPv6 address. Input is the raw input.
type AddressError struct {
	Input string
}

func (e *AddressError) Error() string {
	return "invalid address: " + strconv.Quote(e.Input)
}

// LengthError is returned when a prefix length is not a decimal
// integer or lies outside the bounds of the address family,
// 0..32 for IPv4 and 0..128 for IPv6. Input is the raw input.
type LengthError struct {
	Input string
}

func (e *LengthError) Error() string {
	return "prefix length out of range: " + strconv.Quote(e.Input)
}

// ArityError is returned when an address tuple has the wrong number of
// elements or an element outside the range of its address family.
// Input is the offending tuple, formatted.
type ArityError struct {
	Input string
}

func (e *ArityError) Error() string {
	return "invalid address tuple: " + e.Input
}
