// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

func makeValues(n int) [][]byte {
	values := make([][]byte, n)
	for i := range values {
		values[i] = []byte(fmt.Sprintf("value-%04d", i))
	}
	return values
}

func TestKnownRoot(t *testing.T) {
	root := merkle.ChunkRoot([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	assert.Equal(t, "baf62465eaa68617e7d512d78a46d45beba7f409069cd7110efc16ff78ed9221", root.String(), "wrong root")

	root = merkle.ChunkRoot([][]byte{[]byte("single")})
	assert.Equal(t, "76720f20b4e765caec18f2c1b4cc7df8d60e04cfda1f598c7c59cf3ebe6dc4e7", root.String(), "wrong single leaf root")
}

func TestOrderSensitive(t *testing.T) {
	r1 := merkle.ChunkRoot([][]byte{[]byte("a"), []byte("b")})
	r2 := merkle.ChunkRoot([][]byte{[]byte("b"), []byte("a")})
	assert.NotEqual(t, r1, r2, "root does not depend on order")

	// duplicating the odd leaf must not reproduce the odd tree
	r3 := merkle.ChunkRoot([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	r4 := merkle.ChunkRoot([][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("c")})
	assert.NotEqual(t, r3, r4, "odd leaf duplication collides")
}

func TestProofRoundTrip(t *testing.T) {
	for n := 1; n <= 33; n += 1 {
		values := makeValues(n)
		tree := merkle.NewTree(values)
		root := tree.Root()
		for i := range values {
			path := tree.Path(uint32(i))
			key := merkle.IndexKey(uint32(i))
			assert.True(t, merkle.VerifyProof(root, path, key, values[i]), "n: %d  i: %d  proof failed", n, i)
		}
		assert.Nil(t, tree.Path(uint32(n)), "n: %d  path beyond last leaf", n)
	}
}

func TestProofRejects(t *testing.T) {
	values := makeValues(7)
	tree := merkle.NewTree(values)
	root := tree.Root()

	path := tree.Path(5)
	key := merkle.IndexKey(5)

	// bit flipped value
	flipped := append([]byte{}, values[5]...)
	flipped[0] ^= 0x01
	assert.False(t, merkle.VerifyProof(root, path, key, flipped), "flipped value verified")

	// mismatched position key
	assert.False(t, merkle.VerifyProof(root, path, merkle.IndexKey(4), values[5]), "wrong key verified")
	assert.False(t, merkle.VerifyProof(root, path, merkle.IndexKey(13), values[5]), "index beyond path verified")

	// non-canonical or garbage keys
	assert.False(t, merkle.VerifyProof(root, path, []byte{0x85, 0x00}, values[5]), "padded key verified")
	assert.False(t, merkle.VerifyProof(root, path, []byte{0x85}, values[5]), "truncated key verified")
	assert.False(t, merkle.VerifyProof(root, path, []byte{}, values[5]), "empty key verified")

	// damaged path
	assert.False(t, merkle.VerifyProof(root, path[:len(path)-1], key, values[5]), "short path verified")
	assert.False(t, merkle.VerifyProof(root, append(path, root), key, values[5]), "long path verified")
	damaged := append([]merkle.Digest{}, path...)
	damaged[1][3] ^= 0x80
	assert.False(t, merkle.VerifyProof(root, damaged, key, values[5]), "damaged path verified")

	// wrong root
	assert.False(t, merkle.VerifyProof(merkle.EmptyRoot, path, key, values[5]), "wrong root verified")
}

func TestEmptyTree(t *testing.T) {
	tree := merkle.NewTree(nil)
	assert.Equal(t, merkle.EmptyRoot, tree.Root(), "wrong empty root")
	assert.Nil(t, tree.Path(0), "path in empty tree")
}
