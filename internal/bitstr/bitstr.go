// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitstr implements immutable, variable-length bit strings
// of up to 129 bits, stored most significant bit first.
//
// A Bits value is the raw material of a network prefix: the leading
// Len() bits carry the value, everything behind them is zero by
// invariant, so two equal bit strings are equal with ==.
//
// All methods are pure, they return a new value and never mutate the
// receiver.
package bitstr

import "math/bits"

// capacity in bits of the backing word array.
const capacity = 192

// MaxLen is the longest representable bit string: a 128-bit address
// plus one leading discriminator bit.
const MaxLen = 129

// Bits is a bit string of Len() bits, bit 0 is the most significant.
//
// The backing array is oversized to one spare word so that a full
// 128-bit string can still grow by a leading bit without reallocation.
// Bits beyond Len() are always zero.
type Bits struct {
	words [3]uint64
	len   uint8
}

// FromBytes returns the leading n bits of the big-endian byte slice b.
// n must not exceed 8*len(b) and b must not be longer than 16 bytes.
func FromBytes(b []byte, n int) Bits {
	var v Bits
	for i, octet := range b {
		v.words[i>>3] |= uint64(octet) << (56 - 8*(i&7))
	}
	v.len = uint8(8 * len(b))
	return v.Truncate(n)
}

// Len returns the length of the bit string in bits.
func (v Bits) Len() int {
	return int(v.len)
}

// Bit returns the bit at position i (0 or 1), i < Len().
func (v Bits) Bit(i int) uint8 {
	return uint8(v.words[i>>6] >> (63 - (i & 63)) & 1)
}

// Truncate returns the leading n bits of v.
// If n >= Len(), v is returned unchanged.
func (v Bits) Truncate(n int) Bits {
	if n >= int(v.len) {
		return v
	}
	v.len = uint8(n)

	k := n >> 6
	if r := n & 63; r != 0 {
		v.words[k] &= ^uint64(0) << (64 - r)
		k++
	}
	for ; k < len(v.words); k++ {
		v.words[k] = 0
	}
	return v
}

// Pad extends v to n bits, filling with ones or zeros.
// If n <= Len(), v is returned unchanged.
func (v Bits) Pad(n int, ones bool) Bits {
	if n <= int(v.len) {
		return v
	}
	if ones {
		for i := int(v.len); i < n; i++ {
			v.words[i>>6] |= 1 << (63 - (i & 63))
		}
	}
	v.len = uint8(n)
	return v
}

// Append returns v extended by one trailing bit.
func (v Bits) Append(bit uint8) Bits {
	if bit != 0 {
		v.words[v.len>>6] |= 1 << (63 - (v.len & 63))
	}
	v.len++
	return v
}

// Concat returns v followed by all bits of o.
func (v Bits) Concat(o Bits) Bits {
	for i := range o.Len() {
		v = v.Append(o.Bit(i))
	}
	return v
}

// PushFront returns v with one bit prepended, Len() must be < MaxLen.
func (v Bits) PushFront(bit uint8) Bits {
	v.words[2] = v.words[2]>>1 | v.words[1]<<63
	v.words[1] = v.words[1]>>1 | v.words[0]<<63
	v.words[0] >>= 1
	if bit != 0 {
		v.words[0] |= 1 << 63
	}
	v.len++
	return v
}

// PopFront removes and returns the leading bit, Len() must be > 0.
func (v Bits) PopFront() (uint8, Bits) {
	bit := uint8(v.words[0] >> 63)
	v.words[0] = v.words[0]<<1 | v.words[1]>>63
	v.words[1] = v.words[1]<<1 | v.words[2]>>63
	v.words[2] <<= 1
	v.len--
	return bit, v
}

// Add interprets the leading Len() bits as an unsigned big-endian
// integer and adds n modulo 2^Len(). The arithmetic wraps silently in
// both directions, decrementing below zero wraps to the top of the
// space, incrementing past the top wraps to zero.
func (v Bits) Add(n int64) Bits {
	if v.len == 0 || n == 0 {
		return v
	}

	neg := n < 0
	m := uint64(n)
	if neg {
		m = -uint64(n)
	}

	// left-justify the delta: the L-bit integer lives in the top L bits
	// of the word array, its unit is therefore 2^(capacity-L).
	shift := capacity - int(v.len)
	var delta [3]uint64 // little-endian limbs
	k := shift >> 6
	r := shift & 63
	delta[k] = m << r
	if r != 0 && k < 2 {
		delta[k+1] = m >> (64 - r)
	}

	// 192-bit add/sub with carry chain; both operands are zero below
	// the value window and the carry out of the top bit is discarded,
	// which is exactly the mod 2^L wraparound.
	l0, l1, l2 := v.words[2], v.words[1], v.words[0]
	if neg {
		var borrow uint64
		l0, borrow = bits.Sub64(l0, delta[0], 0)
		l1, borrow = bits.Sub64(l1, delta[1], borrow)
		l2, _ = bits.Sub64(l2, delta[2], borrow)
	} else {
		var carry uint64
		l0, carry = bits.Add64(l0, delta[0], 0)
		l1, carry = bits.Add64(l1, delta[1], carry)
		l2, _ = bits.Add64(l2, delta[2], carry)
	}
	v.words[0], v.words[1], v.words[2] = l2, l1, l0
	return v
}

// Bytes returns the leading 8*n bits as a big-endian byte slice of
// length n, zero padded behind Len().
func (v Bits) Bytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(v.words[i>>3] >> (56 - 8*(i&7)))
	}
	return b
}

// String returns the bit string as a row of binary digits.
func (v Bits) String() string {
	b := make([]byte, v.len)
	for i := range b {
		b[i] = '0' + v.Bit(i)
	}
	return string(b)
}
