// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import (
	"iter"
	"sync"
)

// Table is a key-value store indexed by network prefixes with
// longest-prefix-match lookup and payload V. IPv4 and IPv6 prefixes
// share one binary trie, multiplexed by the [Key] discriminator bit.
//
// The zero value is ready to use.
//
// The Table is safe for concurrent reads, but concurrent reads and
// writes must be externally synchronized, the trie mutates in place
// and provides no internal locking.
//
// A Table must not be copied by value; always pass by pointer.
type Table[V any] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	// the shared root, top-level branch is the family discriminator
	root bitnode[V]

	// the number of prefixes in the table
	size int
}

// Insert adds pfx with val to the table, the value of an existing
// entry with identical prefix is replaced, last write wins.
// Invalid prefixes are silently ignored.
func (t *Table[V]) Insert(pfx Prefix, val V) {
	if !pfx.IsValid() {
		return
	}
	if t.root.Insert(pfx.Key(), val) {
		t.size++
	}
}

// Set parses s and inserts the resulting prefix with val.
//
// This is the single escalation point of the package: a parse error
// fails the whole call and nothing is written, a malformed write
// request must not produce a partially applied mutation.
func (t *Table[V]) Set(s string, val V) error {
	pfx, err := Parse(s)
	if err != nil {
		return err
	}
	t.Insert(pfx, val)
	return nil
}

// Get returns the value of the entry with exactly the prefix pfx,
// no longest-prefix-match is done.
func (t *Table[V]) Get(pfx Prefix) (val V, ok bool) {
	if !pfx.IsValid() {
		return val, false
	}
	return t.root.Get(pfx.Key())
}

// Delete removes the entry with exactly the prefix pfx and reports
// whether an entry was present.
func (t *Table[V]) Delete(pfx Prefix) bool {
	if !pfx.IsValid() {
		return false
	}
	if t.root.Delete(pfx.Key()) {
		t.size--
		return true
	}
	return false
}

// Lookup parses s and does a longest-prefix-match for the resulting
// prefix, see [Table.LookupPrefix].
//
// A parse error is returned as a value, not escalated: a malformed
// query simply yields the error with ok == false.
func (t *Table[V]) Lookup(s string) (lpm Prefix, val V, ok bool, err error) {
	pfx, err := Parse(s)
	if err != nil {
		return lpm, val, false, err
	}
	lpm, val, ok = t.LookupPrefix(pfx)
	return lpm, val, ok, nil
}

// LookupPrefix returns the longest stored prefix covering pfx together
// with its value, or ok == false if none of the stored prefixes is a
// bit-prefix of or equal to pfx.
func (t *Table[V]) LookupPrefix(pfx Prefix) (lpm Prefix, val V, ok bool) {
	if !pfx.IsValid() {
		return lpm, val, false
	}
	k, val, ok := t.root.LongestPrefixMatch(pfx.Key())
	if !ok {
		return lpm, val, false
	}
	return k.Prefix(), val, true
}

// Size returns the number of prefixes in the table.
func (t *Table[V]) Size() int {
	return t.size
}

// All returns an iterator over all entries, IPv4 before IPv6, shorter
// prefixes before the prefixes they cover, siblings in address order.
// The sequence is restartable.
func (t *Table[V]) All() iter.Seq2[Prefix, V] {
	return func(yield func(Prefix, V) bool) {
		for k, val := range t.root.All() {
			if !yield(k.Prefix(), val) {
				return
			}
		}
	}
}
