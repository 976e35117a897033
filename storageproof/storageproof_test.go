// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storageproof_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
)

func makeData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}

func TestNumChunks(t *testing.T) {
	tests := []struct {
		size   uint32
		chunks uint32
	}{
		{0, 0},
		{1, 1},
		{20, 1},
		{255, 1},
		{256, 1},
		{257, 2},
		{512, 2},
		{8 * 1024 * 1024, 32768},
		{0xffffffff, 16777216},
	}
	for i, test := range tests {
		assert.Equal(t, test.chunks, storageproof.NumChunks(test.size), "%d: size: %d", i, test.size)
	}
}

func TestChunks(t *testing.T) {
	data := makeData(600)
	chunks := storageproof.Chunks(data)
	assert.Equal(t, 3, len(chunks), "count")
	assert.Equal(t, storageproof.ChunkSize, len(chunks[0]))
	assert.Equal(t, storageproof.ChunkSize, len(chunks[1]))
	assert.Equal(t, 600-2*storageproof.ChunkSize, len(chunks[2]))
	assert.Equal(t, data, bytes.Join(chunks, nil), "rejoin")

	assert.Equal(t, 0, len(storageproof.Chunks(nil)), "empty")
}

func TestCommit(t *testing.T) {
	root, contentHash := storageproof.Commit(makeData(600))
	assert.Equal(t, "b894c2c2eec53012c0fd5e4be9b148b75af892a68a5bbc9cf6500b2b036daea6", root.String(), "root")
	assert.Equal(t, "6492e8b7e8ad7bf6b89553c45a458eb4b0704dd09b643e800bdc991dcf923d5a", contentHash.String(), "content hash")

	again, _ := storageproof.Commit(makeData(600))
	assert.Equal(t, root, again, "reproducible")
}

func TestRandomChunk(t *testing.T) {
	assert.Equal(t, uint32(0), storageproof.RandomChunk(nil, 1))
	assert.Equal(t, uint32(195), storageproof.RandomChunk(make([]byte, 32), 1000))
	assert.Equal(t, uint32(3), storageproof.RandomChunk(bytes.Repeat([]byte{1}, 32), 7))
	assert.Equal(t, uint32(1171239385), storageproof.RandomChunk(make([]byte, 32), 0xffffffff))

	for total := uint32(1); total < 100; total += 1 {
		assert.True(t, storageproof.RandomChunk([]byte("seed"), total) < total, "total: %d", total)
	}

	assert.Panics(t, func() { storageproof.RandomChunk(nil, 0) })
}

func TestProofRoundTrip(t *testing.T) {
	for _, size := range []int{1, 20, 256, 257, 1000, 4096, 10000} {
		data := makeData(size)
		root, _ := storageproof.Commit(data)
		n := storageproof.NumChunks(uint32(size))

		for index := uint32(0); index < n; index += 1 {
			proof, err := storageproof.NewProof(data, index)
			if !assert.Nil(t, err, "size: %d  index: %d", size, index) {
				continue
			}
			assert.True(t, storageproof.Verify(root, proof, index), "size: %d  index: %d", size, index)

			unpacked, err := storageproof.Unpack(proof.Pack())
			assert.Nil(t, err, "unpack")
			assert.Equal(t, proof, unpacked, "pack round trip")
		}
	}
}

func TestProofRejects(t *testing.T) {
	data := makeData(1000)
	root, _ := storageproof.Commit(data)

	proof, err := storageproof.NewProof(data, 2)
	assert.Nil(t, err, "proof")

	assert.False(t, storageproof.Verify(root, proof, 1), "wrong index")
	assert.False(t, storageproof.Verify(root, proof, 3), "wrong index")
	assert.False(t, storageproof.Verify(merkle.NewDigest([]byte("x")), proof, 2), "wrong root")
	assert.False(t, storageproof.Verify(root, nil, 2), "nil proof")

	for bit := 0; bit < 8*len(proof.Chunk); bit += 97 {
		flipped := &storageproof.Proof{
			Chunk: append([]byte{}, proof.Chunk...),
			Path:  proof.Path,
		}
		flipped.Chunk[bit/8] ^= 1 << uint(bit%8)
		assert.False(t, storageproof.Verify(root, flipped, 2), "bit: %d", bit)
	}

	short := &storageproof.Proof{
		Chunk: proof.Chunk,
		Path:  proof.Path[:len(proof.Path)-1],
	}
	assert.False(t, storageproof.Verify(root, short, 2), "short path")
}

func TestNewProofIndexOutOfRange(t *testing.T) {
	_, err := storageproof.NewProof(makeData(300), 2)
	assert.Equal(t, fault.InvalidChunkIndex, err)

	_, err = storageproof.NewProof(nil, 0)
	assert.Equal(t, fault.InvalidChunkIndex, err)
}

func TestUnpackInvalid(t *testing.T) {
	proof, err := storageproof.NewProof(makeData(1000), 0)
	assert.Nil(t, err, "proof")
	packed := proof.Pack()

	_, err = storageproof.Unpack(nil)
	assert.Equal(t, fault.NotTransactionPack, err, "empty")

	_, err = storageproof.Unpack(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordTruncated, err, "truncated path")

	_, err = storageproof.Unpack(append(packed, 0))
	assert.Equal(t, fault.RecordTruncated, err, "trailing byte")

	_, err = storageproof.Unpack(packed[:100])
	assert.Equal(t, fault.RecordTruncated, err, "truncated chunk")

	_, err = storageproof.Unpack([]byte{0x81, 0x04})
	assert.Equal(t, fault.InvalidCount, err, "oversized chunk")
}
