// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datastore - the node's own copy of stored data
//
// each blob is kept once under its content hash with a count of the
// blocks that index it; a block's list of content hashes is used to
// release those references when the block leaves the retention window
package datastore

import (
	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// Store - blobs with reference counts and per block hash lists
type Store struct {
	log        *logger.L
	blobs      storage.Handle
	blockBlobs storage.Handle
}

// New - data store over the given pools
func New(log *logger.L, blobs storage.Handle, blockBlobs storage.Handle) *Store {
	return &Store{
		log:        log,
		blobs:      blobs,
		blockBlobs: blockBlobs,
	}
}

// Index - record that block number stores data
func (s *Store) Index(number uint64, contentHash merkle.Digest, data []byte) {
	count, blob := s.blobs.GetNB(contentHash[:])
	if nil == blob {
		blob = data
	}
	s.blobs.PutNB(contentHash[:], count+1, blob)
	s.appendToBlock(number, contentHash)

	s.log.Debugf("index: %v  block: %d  references: %d", contentHash, number, count+1)
}

// Renew - add a reference from block number to data already held
//
// returns false if the data is not held by this node
func (s *Store) Renew(number uint64, contentHash merkle.Digest) bool {
	count, blob := s.blobs.GetNB(contentHash[:])
	if nil == blob {
		s.log.Warnf("renew: %v  block: %d  data not held", contentHash, number)
		return false
	}
	s.blobs.PutNB(contentHash[:], count+1, blob)
	s.appendToBlock(number, contentHash)

	s.log.Debugf("renew: %v  block: %d  references: %d", contentHash, number, count+1)
	return true
}

// Get - the data for a content hash
func (s *Store) Get(contentHash merkle.Digest) ([]byte, bool) {
	_, blob := s.blobs.GetNB(contentHash[:])
	if nil == blob {
		return nil, false
	}
	data := make([]byte, len(blob))
	copy(data, blob)
	return data, true
}

// References - number of blocks referencing the data
func (s *Store) References(contentHash merkle.Digest) uint64 {
	count, blob := s.blobs.GetNB(contentHash[:])
	if nil == blob {
		return 0
	}
	return count
}

// Prune - release every reference made by block number
func (s *Store) Prune(number uint64) {
	key := util.BlockNumberKey(number)
	hashes := s.blockBlobs.Get(key)
	if nil == hashes {
		return
	}

	for i := 0; i+merkle.DigestLength <= len(hashes); i += merkle.DigestLength {
		var contentHash merkle.Digest
		copy(contentHash[:], hashes[i:])

		count, blob := s.blobs.GetNB(contentHash[:])
		switch {
		case nil == blob:
			s.log.Warnf("prune: %v  block: %d  missing data", contentHash, number)
		case count <= 1:
			s.blobs.Remove(contentHash[:])
			s.log.Debugf("prune: %v  block: %d  removed", contentHash, number)
		default:
			s.blobs.PutNB(contentHash[:], count-1, blob)
		}
	}
	s.blockBlobs.Remove(key)
}

func (s *Store) appendToBlock(number uint64, contentHash merkle.Digest) {
	key := util.BlockNumberKey(number)
	hashes := s.blockBlobs.Get(key)
	list := make([]byte, len(hashes), len(hashes)+merkle.DigestLength)
	copy(list, hashes)
	s.blockBlobs.Put(key, append(list, contentHash[:]...))
}
