// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/iptrie/internal/bitstr"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Table.Fprint].
func (t *Table[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered CIDRs
// as string, just a wrapper for [Table.Fprint].
// If Fprint returns an error, String panics.
func (t *Table[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered CIDRs
// with default formatted payload V to w. If w is nil, Fprint panics.
//
// The order from top to bottom is in ascending order of the prefix
// address and the subtree structure is determined by the CIDRs
// coverage, the IPv4 block comes before the IPv6 block.
//
//	▼
//	├─ 10.0.0.0/8 (V)
//	│  ├─ 10.0.0.0/24 (V)
//	│  └─ 10.0.1.0/24 (V)
//	├─ 127.0.0.0/8 (V)
//	│  └─ 127.0.0.1 (V)
//	└─ 192.168.0.0/16 (V)
//	   └─ 192.168.1.0/24 (V)
//	▼
//	└─ ::/0 (V)
//	   ├─ 2000::/3 (V)
//	   │  └─ 2001:db8::/32 (V)
//	   └─ fe80::/10 (V)
func (t *Table[V]) Fprint(w io.Writer) error {
	// the two top-level branches of the shared trie are the families
	for bit := range t.root.child {
		if err := t.fprint(w, uint8(bit)); err != nil {
			return err
		}
	}

	return nil
}

// fprint is the family dependent adapter to fprintRec, discriminator
// bit 0 is the IPv4 branch, bit 1 the IPv6 branch.
func (t *Table[V]) fprint(w io.Writer, discriminator uint8) error {
	n := t.root.child[discriminator]
	if n == nil {
		return nil
	}

	path := bitstr.Bits{}.Append(discriminator)

	kids := n.directKids(path)
	if n.occupied {
		// the default route covers the whole family branch
		kids = []DumpListNode[V]{{
			CIDR:    Key{v: path}.Prefix(),
			Value:   n.val,
			Subnets: kids,
		}}
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return fprintRec(w, kids, "")
}

// fprintRec, the output is a hierarchical CIDR tree starting with
// these kids.
func fprintRec[V any](w io.Writer, kids []DumpListNode[V], pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	// for all direct kids under this node ...
	for i, kid := range kids {
		// ... treat last kid special
		if i == len(kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		// print prefix and val, padded with glyphe
		if _, err := fmt.Fprintf(w, "%s%s (%v)\n", pad+glyphe, kid.CIDR, kid.Value); err != nil {
			return err
		}

		if err := fprintRec(w, kid.Subnets, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}
