// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prover - builds the proof of custody a block must carry
package prover

import (
	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
)

// Challenger - selects the chunk to prove
type Challenger interface {
	Challenge(uint64, merkle.Digest) (bulletin.Challenge, error)
}

// Blobs - the node's copy of stored data
type Blobs interface {
	Get(merkle.Digest) ([]byte, bool)
}

// Prover - proof source for the block producer
type Prover struct {
	log        *logger.L
	challenger Challenger
	blobs      Blobs
}

// New - create a prover
func New(log *logger.L, challenger Challenger, blobs Blobs) *Prover {
	return &Prover{
		log:        log,
		challenger: challenger,
		blobs:      blobs,
	}
}

// CreateProof - proof for the block number with the given parent hash
//
// returns nil and no error if the block does not need a proof
func (p *Prover) CreateProof(number uint64, parentHash merkle.Digest) (*storageproof.Proof, error) {
	challenge, err := p.challenger.Challenge(number, parentHash)
	if fault.UnexpectedProof == err {
		return nil, nil
	}
	if nil != err {
		p.log.Errorf("block: %d  challenge error: %s", number, err)
		return nil, err
	}

	contentHash := challenge.Info.ContentHash
	data, found := p.blobs.Get(contentHash)
	if !found {
		p.log.Criticalf("block: %d  target: %d  data: %v  not held", number, challenge.Target, contentHash)
		return nil, fault.DataNotHeld
	}
	if merkle.NewDigest(data) != contentHash {
		p.log.Criticalf("block: %d  data: %v  content hash mismatch", number, contentHash)
		return nil, fault.ChecksumMismatch
	}

	proof, err := storageproof.NewProof(data, challenge.Offset)
	if nil != err {
		return nil, err
	}

	p.log.Debugf("block: %d  target: %d  chunk: %d  data: %v  offset: %d", number, challenge.Target, challenge.Chunk, contentHash, challenge.Offset)
	return proof, nil
}
