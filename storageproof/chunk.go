// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storageproof

import (
	"math"

	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// ChunkSize - the size in bytes of every chunk except possibly the last
const ChunkSize = 256

// NumChunks - ceil(size / ChunkSize)
func NumChunks(size uint32) uint32 {
	return uint32((uint64(size) + ChunkSize - 1) / ChunkSize)
}

// Chunks - split data into ChunkSize pieces, the slices share
// storage with data
func Chunks(data []byte) [][]byte {
	chunks := make([][]byte, 0, (len(data)+ChunkSize-1)/ChunkSize)
	for start := 0; start < len(data); start += ChunkSize {
		end := start + ChunkSize
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// Commit - compute the chunk root and the content hash of data
func Commit(data []byte) (root merkle.Digest, contentHash merkle.Digest) {
	return merkle.ChunkRoot(Chunks(data)), merkle.NewDigest(data)
}

// EncodeIndex - the position key of a chunk in the chunk tree
func EncodeIndex(index uint32) []byte {
	return merkle.IndexKey(index)
}

// fits in a uint32 size field
func validSize(n int) bool {
	return uint64(n) <= math.MaxUint32
}
