// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionindex

import (
	"math"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
)

// Accumulator - transactions stored by the block being built
type Accumulator struct {
	limit uint32
	items []TransactionInfo
}

// NewAccumulator - empty accumulator holding at most limit transactions
func NewAccumulator(limit uint32) *Accumulator {
	return &Accumulator{
		limit: limit,
		items: make([]TransactionInfo, 0, 16),
	}
}

// Append - add a transaction, returns its index in the block
func (a *Accumulator) Append(chunkRoot merkle.Digest, contentHash merkle.Digest, size uint32) (uint32, error) {
	if uint64(len(a.items)) >= uint64(a.limit) {
		return 0, fault.TooManyTransactions
	}

	total := uint64(a.TotalChunks()) + uint64(storageproof.NumChunks(size))
	if total > math.MaxUint32 {
		total = math.MaxUint32
	}

	index := uint32(len(a.items))
	a.items = append(a.items, TransactionInfo{
		ChunkRoot:   chunkRoot,
		ContentHash: contentHash,
		Size:        size,
		BlockChunks: uint32(total),
	})
	return index, nil
}

// Full - true if no further transaction can be appended
func (a *Accumulator) Full() bool {
	return uint64(len(a.items)) >= uint64(a.limit)
}

// Len - number of transactions
func (a *Accumulator) Len() int {
	return len(a.items)
}

// TotalChunks - chunks of all transactions so far
func (a *Accumulator) TotalChunks() uint32 {
	if 0 == len(a.items) {
		return 0
	}
	return a.items[len(a.items)-1].BlockChunks
}

// Items - a copy of the accumulated transactions
func (a *Accumulator) Items() []TransactionInfo {
	items := make([]TransactionInfo, len(a.items))
	copy(items, a.items)
	return items
}

// Reset - clear for the next block
func (a *Accumulator) Reset() {
	a.items = a.items[:0]
}
