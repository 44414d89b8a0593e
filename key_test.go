// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import "testing"

func TestKeyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"0.0.0.0/0", "1.2.3.4", "10.0.0.0/8", "255.255.255.255",
		"::/0", "fe80::1", "acdc:1976::/32", "2001:db8::/64",
	} {
		pfx := MustParse(s)
		key := pfx.Key()

		if key.Len() != pfx.Bits()+1 {
			t.Errorf("%q: Key.Len() = %d, want %d", s, key.Len(), pfx.Bits()+1)
		}
		if again := key.Prefix(); again != pfx {
			t.Errorf("%q: Key().Prefix() = %v, want %v", s, again, pfx)
		}
	}
}

func TestKeyDiscriminator(t *testing.T) {
	t.Parallel()

	// zero length prefixes map to the bare discriminator bit
	if got := MustParse("0.0.0.0/0").Key().String(); got != "0" {
		t.Errorf("key(0.0.0.0/0) = %q, want %q", got, "0")
	}
	if got := MustParse("::/0").Key().String(); got != "1" {
		t.Errorf("key(::/0) = %q, want %q", got, "1")
	}

	if MustParse("1.2.3.4").Key().Bit(0) != 0 {
		t.Error("v4 discriminator bit must be 0")
	}
	if MustParse("fe80::1").Key().Bit(0) != 1 {
		t.Error("v6 discriminator bit must be 1")
	}
}

func TestKeyNoAliasing(t *testing.T) {
	t.Parallel()

	// identical raw network bits, 0x01010101, in both families
	k4 := MustParse("1.1.1.1").Key()
	k6 := MustParse("101:101::/32").Key()

	if k4 == k6 {
		t.Fatal("v4 and v6 keys with coinciding raw bits must differ")
	}

	// they differ exactly in the discriminator bit
	s4, s6 := k4.String(), k6.String()
	if s4[1:] != s6[1:] {
		t.Errorf("raw bits differ: %q vs %q", s4, s6)
	}
	if s4[0] != '0' || s6[0] != '1' {
		t.Errorf("discriminators = %c, %c, want 0, 1", s4[0], s6[0])
	}
}
