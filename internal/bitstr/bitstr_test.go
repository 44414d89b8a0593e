// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitstr

import "testing"

func TestFromBytesAndString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bytes []byte
		n     int
		want  string
	}{
		{[]byte{0b1010_0000}, 0, ""},
		{[]byte{0b1010_0000}, 1, "1"},
		{[]byte{0b1010_0000}, 4, "1010"},
		{[]byte{0b1010_0000}, 8, "10100000"},
		{[]byte{0xff, 0x00}, 12, "111111110000"},
		{[]byte{1, 1, 1, 0}, 24, "000000010000000100000001"},
	}

	for _, tc := range tests {
		if got := FromBytes(tc.bytes, tc.n).String(); got != tc.want {
			t.Errorf("FromBytes(%v, %d) = %q, want %q", tc.bytes, tc.n, got, tc.want)
		}
	}
}

func TestTruncateNormalizes(t *testing.T) {
	t.Parallel()

	// two strings differing only behind the truncation point must be ==
	a := FromBytes([]byte{1, 1, 1, 5}, 32).Truncate(24)
	b := FromBytes([]byte{1, 1, 1, 9}, 32).Truncate(24)

	if a != b {
		t.Errorf("truncated strings differ: %q vs %q", a, b)
	}
	if a.Len() != 24 {
		t.Errorf("Len() = %d, want 24", a.Len())
	}
}

func TestPad(t *testing.T) {
	t.Parallel()
	tests := []struct {
		start string
		n     int
		ones  bool
		want  string
	}{
		{"", 4, false, "0000"},
		{"", 4, true, "1111"},
		{"101", 8, false, "10100000"},
		{"101", 8, true, "10111111"},
		{"101", 3, true, "101"}, // n <= Len, unchanged
	}

	for _, tc := range tests {
		v := fromString(tc.start)
		if got := v.Pad(tc.n, tc.ones).String(); got != tc.want {
			t.Errorf("%q.Pad(%d, %v) = %q, want %q", tc.start, tc.n, tc.ones, got, tc.want)
		}
	}
}

func TestAppendConcat(t *testing.T) {
	t.Parallel()

	v := fromString("10")
	v = v.Append(1)
	if got := v.String(); got != "101" {
		t.Errorf("Append = %q, want %q", got, "101")
	}

	got := fromString("1100").Concat(fromString("0011")).String()
	if got != "11000011" {
		t.Errorf("Concat = %q, want %q", got, "11000011")
	}
}

func TestPushPopFront(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "0", "1111", "10101010101010101010"} {
		v := fromString(s)

		bit, rest := v.PushFront(1).PopFront()
		if bit != 1 || rest != v {
			t.Errorf("PopFront(PushFront(%q, 1)) = %d, %q", s, bit, rest)
		}

		bit, rest = v.PushFront(0).PopFront()
		if bit != 0 || rest != v {
			t.Errorf("PopFront(PushFront(%q, 0)) = %d, %q", s, bit, rest)
		}
	}

	// a full 128-bit string must survive a push/pop round trip
	full := FromBytes([]byte{
		0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
		0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef,
	}, 128)
	if _, rest := full.PushFront(1).PopFront(); rest != full {
		t.Error("128-bit push/pop round trip failed")
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		start string
		n     int64
		want  string
	}{
		{"", 42, ""},            // zero length, 2^0 address space
		{"0000", 1, "0001"},
		{"0000", -1, "1111"},    // wraps to the top
		{"1111", 1, "0000"},     // wraps to zero
		{"0101", 0, "0101"},
		{"00000000", 255, "11111111"},
		{"00000000", 256, "00000000"}, // full cycle
		{"10000000", -1, "01111111"},
		{"10000000", -129, "11111111"},
	}

	for _, tc := range tests {
		v := fromString(tc.start)
		if got := v.Add(tc.n).String(); got != tc.want {
			t.Errorf("%q.Add(%d) = %q, want %q", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestAddCarryAcrossWords(t *testing.T) {
	t.Parallel()

	// all-ones /128, +1 must ripple through both words and wrap to zero
	ones := Bits{}.Pad(128, true)
	if got := ones.Add(1); got != (Bits{}.Pad(128, false)) {
		t.Errorf("all-ones +1 = %q, want all-zeros", got)
	}

	// all-zeros /128, -1 must wrap to all-ones
	zeros := Bits{}.Pad(128, false)
	if got := zeros.Add(-1); got != ones {
		t.Errorf("all-zeros -1 = %q, want all-ones", got)
	}

	// carry across the word boundary at bit 64
	v := Bits{}.Pad(64, true).Pad(128, false) // high word ones, low word zeros
	if got := v.Add(-1).Add(1); got != v {
		t.Errorf("add/sub round trip = %q, want %q", got, v)
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	v := FromBytes([]byte{1, 1, 1, 5}, 32).Truncate(24)
	got := v.Bytes(4)
	want := []byte{1, 1, 1, 0} // host octet zero padded

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes(4) = %v, want %v", got, want)
		}
	}
}

func TestBit(t *testing.T) {
	t.Parallel()

	v := fromString("0110")
	want := []uint8{0, 1, 1, 0}
	for i, b := range want {
		if v.Bit(i) != b {
			t.Errorf("Bit(%d) = %d, want %d", i, v.Bit(i), b)
		}
	}
}

// fromString builds a Bits from a row of binary digits, test helper.
func fromString(s string) Bits {
	var v Bits
	for _, r := range s {
		if r == '1' {
			v = v.Append(1)
		} else {
			v = v.Append(0)
		}
	}
	return v
}
