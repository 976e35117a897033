// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storageproof

import (
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// maximum number of siblings in a path, one per bit of a chunk index
const maxPathLength = 32

// Proof - a chunk and its merkle path to the chunk root
type Proof struct {
	Chunk []byte          `json:"chunk"`
	Path  []merkle.Digest `json:"path"`
}

// NewProof - build the proof for chunk index of data
func NewProof(data []byte, index uint32) (*Proof, error) {
	if !validSize(len(data)) {
		return nil, fault.TransactionTooLarge
	}

	chunks := Chunks(data)
	if uint64(index) >= uint64(len(chunks)) {
		return nil, fault.InvalidChunkIndex
	}

	tree := merkle.NewTree(chunks)
	chunk := make([]byte, len(chunks[index]))
	copy(chunk, chunks[index])

	return &Proof{
		Chunk: chunk,
		Path:  tree.Path(index),
	}, nil
}

// Verify - check that the proof's chunk is chunk index under root
func Verify(root merkle.Digest, proof *Proof, index uint32) bool {
	if nil == proof || len(proof.Chunk) > ChunkSize {
		return false
	}
	return merkle.VerifyProof(root, proof.Path, EncodeIndex(index), proof.Chunk)
}

// Pack - binary form:
//   uvarint(len(chunk)) ++ chunk ++ uvarint(len(path)) ++ path digests
func (proof *Proof) Pack() []byte {
	buffer := util.AppendUvarint(nil, uint64(len(proof.Chunk)))
	buffer = append(buffer, proof.Chunk...)
	buffer = util.AppendUvarint(buffer, uint64(len(proof.Path)))
	for _, d := range proof.Path {
		buffer = append(buffer, d[:]...)
	}
	return buffer
}

// Unpack - decode a packed proof, all bytes must be consumed
func Unpack(record []byte) (*Proof, error) {
	chunkLength, n := util.Uvarint(record)
	if 0 == n {
		return nil, fault.NotTransactionPack
	}
	if chunkLength > ChunkSize {
		return nil, fault.InvalidCount
	}
	record = record[n:]
	if uint64(len(record)) < chunkLength {
		return nil, fault.RecordTruncated
	}
	chunk := make([]byte, chunkLength)
	copy(chunk, record[:chunkLength])
	record = record[chunkLength:]

	pathLength, n := util.Uvarint(record)
	if 0 == n {
		return nil, fault.RecordTruncated
	}
	if pathLength > maxPathLength {
		return nil, fault.InvalidCount
	}
	record = record[n:]
	if uint64(len(record)) != pathLength*merkle.DigestLength {
		return nil, fault.RecordTruncated
	}

	path := make([]merkle.Digest, pathLength)
	for i := range path {
		copy(path[i][:], record[i*merkle.DigestLength:])
	}

	return &Proof{
		Chunk: chunk,
		Path:  path,
	}, nil
}
