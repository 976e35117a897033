// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionindex

import (
	"encoding/binary"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
)

// packed: chunk root ++ content hash ++ size(BE32) ++ block chunks(BE32)
const packedInfoLength = 2*merkle.DigestLength + 4 + 4

// TransactionInfo - the ledger record of one stored transaction
type TransactionInfo struct {
	ChunkRoot   merkle.Digest `json:"chunkRoot"`
	ContentHash merkle.Digest `json:"contentHash"`
	Size        uint32        `json:"size"`

	// total chunks of this and all earlier transactions in the block
	BlockChunks uint32 `json:"blockChunks"`
}

// Chunks - number of chunks of this transaction
func (info TransactionInfo) Chunks() uint32 {
	return storageproof.NumChunks(info.Size)
}

// FirstChunk - block chunk index of the first chunk of this transaction
func (info TransactionInfo) FirstChunk() uint32 {
	return info.BlockChunks - info.Chunks()
}

func (info TransactionInfo) pack(buffer []byte) []byte {
	buffer = append(buffer, info.ChunkRoot[:]...)
	buffer = append(buffer, info.ContentHash[:]...)

	var n [8]byte
	binary.BigEndian.PutUint32(n[:4], info.Size)
	binary.BigEndian.PutUint32(n[4:], info.BlockChunks)
	return append(buffer, n[:]...)
}

func packList(items []TransactionInfo) []byte {
	buffer := make([]byte, 0, len(items)*packedInfoLength)
	for _, item := range items {
		buffer = item.pack(buffer)
	}
	return buffer
}

func unpackList(record []byte) ([]TransactionInfo, error) {
	if 0 != len(record)%packedInfoLength {
		return nil, fault.NotTransactionPack
	}

	items := make([]TransactionInfo, len(record)/packedInfoLength)
	for i := range items {
		r := record[i*packedInfoLength:]
		copy(items[i].ChunkRoot[:], r)
		copy(items[i].ContentHash[:], r[merkle.DigestLength:])
		r = r[2*merkle.DigestLength:]
		items[i].Size = binary.BigEndian.Uint32(r[:4])
		items[i].BlockChunks = binary.BigEndian.Uint32(r[4:8])
	}
	return items, nil
}
