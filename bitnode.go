// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iptrie

import (
	"iter"

	"github.com/gaissmai/iptrie/internal/bitstr"
)

// Trier is the storage contract between the [Table] facade and its
// trie engine. The facade assumes nothing about the internal shape of
// the trie, no balancing strategy and no collision structure, only the
// ordering semantics below:
//
//   - Insert replaces the value if the key is already present,
//     otherwise it adds a new entry.
//   - LongestPrefixMatch returns, among all stored keys that are a
//     bit-prefix of or equal to the query key, the longest one with
//     its value. Ties cannot occur, trie keys are unique.
//   - All yields every stored entry, shorter keys before the keys
//     they cover, siblings in bit order.
type Trier[V any] interface {
	Insert(k Key, val V) bool
	Get(k Key) (V, bool)
	Delete(k Key) bool
	LongestPrefixMatch(k Key) (Key, V, bool)
	All() iter.Seq2[Key, V]
}

// bitnode is a node of the shipped engine, a plain binary trie with a
// one bit stride. An entry for a key of length n lives at depth n, the
// root represents the empty key and is never occupied, every Key
// carries at least the discriminator bit.
type bitnode[V any] struct {
	child    [2]*bitnode[V]
	val      V
	occupied bool
}

var _ Trier[any] = (*bitnode[any])(nil)

// Insert stores val under k, replacing any previous value.
// It reports whether the entry is new.
func (n *bitnode[V]) Insert(k Key, val V) bool {
	for i := range k.Len() {
		bit := k.Bit(i)
		if n.child[bit] == nil {
			n.child[bit] = new(bitnode[V])
		}
		n = n.child[bit]
	}

	added := !n.occupied
	n.val, n.occupied = val, true
	return added
}

// Get returns the value stored under exactly k.
func (n *bitnode[V]) Get(k Key) (val V, ok bool) {
	for i := range k.Len() {
		n = n.child[k.Bit(i)]
		if n == nil {
			return val, false
		}
	}
	return n.val, n.occupied
}

// Delete removes the entry stored under exactly k and prunes branches
// that turned dead. It reports whether an entry was deleted.
func (n *bitnode[V]) Delete(k Key) bool {
	deleted, _ := n.del(k, 0)
	return deleted
}

func (n *bitnode[V]) del(k Key, depth int) (deleted, prune bool) {
	if depth == k.Len() {
		if !n.occupied {
			return false, false
		}
		var zero V
		n.val, n.occupied = zero, false
		return true, n.child[0] == nil && n.child[1] == nil
	}

	bit := k.Bit(depth)
	c := n.child[bit]
	if c == nil {
		return false, false
	}

	deleted, prune = c.del(k, depth+1)
	if prune {
		n.child[bit] = nil
		prune = !n.occupied && n.child[0] == nil && n.child[1] == nil
	}
	return deleted, prune
}

// LongestPrefixMatch returns the longest stored key that is a
// bit-prefix of or equal to k, with its value. The matched key is the
// query key truncated to the match depth, stored keys need no copy.
func (n *bitnode[V]) LongestPrefixMatch(k Key) (lpm Key, val V, ok bool) {
	var best *bitnode[V]
	var bestDepth int

	for i := 0; n != nil; i++ {
		if n.occupied {
			best, bestDepth = n, i
		}
		if i == k.Len() {
			break
		}
		n = n.child[k.Bit(i)]
	}

	if best == nil {
		return lpm, val, false
	}
	return Key{v: k.v.Truncate(bestDepth)}, best.val, true
}

// All returns an iterator over all entries, shorter keys first,
// siblings in bit order. The iteration order is stable, the sequence
// is restartable.
func (n *bitnode[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		n.walk(bitstr.Bits{}, yield)
	}
}

func (n *bitnode[V]) walk(path bitstr.Bits, yield func(Key, V) bool) bool {
	if n.occupied && !yield(Key{v: path}, n.val) {
		return false
	}
	for bit, c := range n.child {
		if c == nil {
			continue
		}
		if !c.walk(path.Append(uint8(bit)), yield) {
			return false
		}
	}
	return true
}

// directKids returns the immediate coverage kids below n: descending
// stops at the first occupied node on every branch, which then
// recursively collects its own kids. Shared helper for the tree
// diagram and the dump list.
func (n *bitnode[V]) directKids(path bitstr.Bits) []DumpListNode[V] {
	var kids []DumpListNode[V]

	for bit, c := range n.child {
		if c == nil {
			continue
		}
		kidPath := path.Append(uint8(bit))
		if c.occupied {
			kids = append(kids, DumpListNode[V]{
				CIDR:    Key{v: kidPath}.Prefix(),
				Value:   c.val,
				Subnets: c.directKids(kidPath),
			})
			continue
		}
		kids = append(kids, c.directKids(kidPath)...)
	}

	return kids
}
