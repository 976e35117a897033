// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionindex - per block lists of stored transactions with
// their cumulative chunk counts
package transactionindex

import (
	"sort"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// Index - committed per block transaction lists and chunk counts
type Index struct {
	transactions storage.Handle
	chunkCount   storage.Handle
}

// New - index over the given pools
func New(transactions storage.Handle, chunkCount storage.Handle) *Index {
	return &Index{
		transactions: transactions,
		chunkCount:   chunkCount,
	}
}

// Commit - move the accumulated transactions under the block number
// and reset the accumulator
//
// a block without any chunks is not stored
func (ix *Index) Commit(number uint64, acc *Accumulator) {
	total := acc.TotalChunks()
	if 0 != total {
		key := util.BlockNumberKey(number)
		ix.transactions.Put(key, packList(acc.items))
		ix.chunkCount.PutN(key, uint64(total))
	}
	acc.Reset()
}

// Prune - remove everything recorded for a block
func (ix *Index) Prune(number uint64) {
	key := util.BlockNumberKey(number)
	ix.transactions.Remove(key)
	ix.chunkCount.Remove(key)
}

// ChunkCount - total chunks stored in a block, zero if none
func (ix *Index) ChunkCount(number uint64) uint32 {
	n, found := ix.chunkCount.GetN(util.BlockNumberKey(number))
	if !found {
		return 0
	}
	return uint32(n)
}

// Transactions - all transactions of a block
func (ix *Index) Transactions(number uint64) ([]TransactionInfo, error) {
	record := ix.transactions.Get(util.BlockNumberKey(number))
	if nil == record {
		return nil, fault.TransactionNotFound
	}
	return unpackList(record)
}

// Transaction - a single transaction of a block
func (ix *Index) Transaction(number uint64, index uint32) (TransactionInfo, error) {
	items, err := ix.Transactions(number)
	if nil != err {
		return TransactionInfo{}, err
	}
	if uint64(index) >= uint64(len(items)) {
		return TransactionInfo{}, fault.TransactionNotFound
	}
	return items[index], nil
}

// LookupByChunk - the transaction that owns chunk k of a block
//
// the owner is the first entry whose BlockChunks exceeds k, i.e. the
// one whose range [FirstChunk, BlockChunks) contains k
func (ix *Index) LookupByChunk(number uint64, k uint32) (TransactionInfo, error) {
	record := ix.transactions.Get(util.BlockNumberKey(number))
	if nil == record {
		return TransactionInfo{}, fault.MissingStateData
	}
	items, err := unpackList(record)
	if nil != err {
		return TransactionInfo{}, fault.MissingStateData
	}

	i := sort.Search(len(items), func(i int) bool {
		return items[i].BlockChunks > k
	})
	if i >= len(items) {
		return TransactionInfo{}, fault.MissingStateData
	}
	return items[i], nil
}

// ChunkOffset - position of block chunk k within its owning transaction
func ChunkOffset(info TransactionInfo, k uint32) uint32 {
	return k - info.FirstChunk()
}
