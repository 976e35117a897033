// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// domain separation for the two kinds of tree node
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// EmptyRoot - root of a tree with no leaves
var EmptyRoot = NewDigest(nil)

// IndexKey - position key of a leaf, the uvarint of its index
func IndexKey(index uint32) []byte {
	return util.AppendUvarint(nil, uint64(index))
}

// decode a position key, the key must be in its canonical form
func indexFromKey(key []byte) (uint32, bool) {
	index, n := util.Uvarint32(key)
	if 0 == n || n != len(key) {
		return 0, false
	}
	return index, 1 == len(key) || 0 != key[len(key)-1]
}

// LeafDigest - digest of a single leaf:  H(0x00 ++ key ++ value)
func LeafDigest(key []byte, value []byte) Digest {
	b := make([]byte, 0, 1+len(key)+len(value))
	b = append(b, leafPrefix)
	b = append(b, key...)
	b = append(b, value...)
	return NewDigest(b)
}

// digest of an interior node:  H(0x01 ++ left ++ right)
func nodeDigest(left Digest, right Digest) Digest {
	b := make([]byte, 0, 1+2*DigestLength)
	b = append(b, nodePrefix)
	b = append(b, left[:]...)
	b = append(b, right[:]...)
	return NewDigest(b)
}

// Tree - all levels of an ordered binary tree
//
// structure is:
//   level 0:     N * leaf digests (leaf i is keyed by IndexKey(i))
//   level 1..m:  node digests
//   level m:     single root digest
//
// an odd node at the end of a level is paired with itself
type Tree [][]Digest

// NewTree - build the tree for an ordered list of values
func NewTree(values [][]byte) Tree {

	if 0 == len(values) {
		return Tree{[]Digest{}, []Digest{EmptyRoot}}
	}

	leaves := make([]Digest, len(values))
	for i, v := range values {
		leaves[i] = LeafDigest(IndexKey(uint32(i)), v)
	}

	tree := Tree{leaves}
	for level := leaves; len(level) > 1; {
		next := make([]Digest, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			j := i + 1
			if j == len(level) {
				j = i // compensate for odd number
			}
			next = append(next, nodeDigest(level[i], level[j]))
		}
		tree = append(tree, next)
		level = next
	}
	return tree
}

// Root - the root digest of the tree
func (tree Tree) Root() Digest {
	return tree[len(tree)-1][0]
}

// Path - sibling digests from leaf to root for the leaf at index
//
// returns nil if index is not a leaf of this tree
func (tree Tree) Path(index uint32) []Digest {
	if 0 == len(tree) || int(index) >= len(tree[0]) {
		return nil
	}

	path := make([]Digest, 0, len(tree)-1)
	n := int(index)
	for _, level := range tree[:len(tree)-1] {
		sibling := n ^ 1
		if sibling >= len(level) {
			sibling = n
		}
		path = append(path, level[sibling])
		n >>= 1
	}
	return path
}

// ChunkRoot - compute the ordered root over a sequence of chunks
func ChunkRoot(chunks [][]byte) Digest {
	return NewTree(chunks).Root()
}

// VerifyProof - check that value is the leaf at the position given
// by key in the tree with the given root
//
// the direction at each level is taken from the bits of the index
// decoded from key; malformed keys or paths simply fail
func VerifyProof(root Digest, path []Digest, key []byte, value []byte) bool {

	index, ok := indexFromKey(key)
	if !ok || len(path) > 32 {
		return false
	}

	d := LeafDigest(key, value)
	n := index
	for _, sibling := range path {
		if 0 == n&1 {
			d = nodeDigest(d, sibling)
		} else {
			d = nodeDigest(sibling, d)
		}
		n >>= 1
	}

	// index must not address a leaf beyond the depth of the path
	if 0 != n {
		return false
	}
	return d == root
}
