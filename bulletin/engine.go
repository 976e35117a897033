// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bulletin - the per block lifecycle of the storage ledger
//
// a block is opened, receives store, renew, proof and authorization
// calls and is finalised; every call performs all of its checks
// before its first write so a failed call changes nothing
package bulletin

import (
	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
)

// DataIndexer - the node's copy of the data behind each transaction
type DataIndexer interface {
	Index(uint64, merkle.Digest, []byte)
	Renew(uint64, merkle.Digest) bool
	Prune(uint64)
}

// Handles - the pools used by the engine
type Handles struct {
	Transactions   storage.Handle
	ChunkCount     storage.Handle
	Authorizations storage.Handle
	Expiries       storage.Handle
}

// Challenge - the chunk a block must prove
type Challenge struct {
	Target uint64                           `json:"target"`
	Chunk  uint32                           `json:"chunk"`
	Info   transactionindex.TransactionInfo `json:"info"`
	Offset uint32                           `json:"offset"`
}

// Engine - executes calls against the index and the ledger
type Engine struct {
	log        *logger.L
	config     Configuration
	authorizer account.Account
	index      *transactionindex.Index
	ledger     *authorization.Ledger
	data       DataIndexer
}

// New - create an engine, the configuration is checked first
func New(log *logger.L, config Configuration, handles Handles, data DataIndexer) (*Engine, error) {
	authorizer, err := config.Check()
	if nil != err {
		return nil, err
	}

	return &Engine{
		log:        log,
		config:     config,
		authorizer: *authorizer,
		index:      transactionindex.New(handles.Transactions, handles.ChunkCount),
		ledger:     authorization.New(handles.Authorizations, handles.Expiries, config.MaxBlockAuthorizationExpiries),
		data:       data,
	}, nil
}

// Configuration - the active configuration
func (e *Engine) Configuration() Configuration {
	return e.config
}

// OpenBlock - start a block
//
// drops the index of the block that left the retention window and
// withdraws the authorizations expiring at this block
func (e *Engine) OpenBlock(number uint64, parentHash merkle.Digest) *Block {
	if number > e.config.StoragePeriod+1 {
		obsolete := number - (e.config.StoragePeriod + 1)
		e.index.Prune(obsolete)
		e.data.Prune(obsolete)
		e.log.Debugf("pruned block: %d", obsolete)
	}

	e.ledger.Expire(number)

	return &Block{
		number:      number,
		parentHash:  parentHash,
		state:       Open,
		accumulator: transactionindex.NewAccumulator(e.config.MaxBlockTransactions),
	}
}

// Store - register data in the block, returns its index in the block
func (e *Engine) Store(b *Block, origin Origin, data []byte) (uint32, error) {
	if err := e.checkExtrinsic(b); nil != err {
		return 0, err
	}
	if 0 == len(data) {
		return 0, fault.EmptyTransaction
	}
	if uint64(len(data)) > uint64(e.config.MaxTransactionSize) {
		return 0, fault.TransactionTooLarge
	}

	root, contentHash := storageproof.Commit(data)
	size := uint32(len(data))

	index, err := e.register(b, origin, root, contentHash, size)
	if nil != err {
		return 0, err
	}
	e.data.Index(b.number, contentHash, data)

	b.emit(Event{Type: StoredEvent, Index: index})
	e.log.Infof("stored: %v  size: %d  block: %d  index: %d", contentHash, size, b.number, index)
	return index, nil
}

// Renew - register again a transaction from an earlier block without
// supplying its data, returns its index in this block
func (e *Engine) Renew(b *Block, origin Origin, number uint64, index uint32) (uint32, error) {
	if err := e.checkExtrinsic(b); nil != err {
		return 0, err
	}

	info, err := e.index.Transaction(number, index)
	if fault.TransactionNotFound == err {
		return 0, fault.RenewedNotFound
	}
	if nil != err {
		return 0, err
	}

	newIndex, err := e.register(b, origin, info.ChunkRoot, info.ContentHash, info.Size)
	if nil != err {
		return 0, err
	}
	if !e.data.Renew(b.number, info.ContentHash) {
		e.log.Warnf("renewed: %v  data is not held by this node", info.ContentHash)
	}

	b.emit(Event{Type: RenewedEvent, Index: newIndex})
	e.log.Infof("renewed: %v  from block: %d  index: %d  to block: %d  index: %d", info.ContentHash, number, index, b.number, newIndex)
	return newIndex, nil
}

// charge the origin and append to the block
func (e *Engine) register(b *Block, origin Origin, root merkle.Digest, contentHash merkle.Digest, size uint32) (uint32, error) {
	scope, err := origin.uploadScope(contentHash)
	if nil != err {
		return 0, err
	}
	if err := e.ledger.Check(scope, uint64(size)); nil != err {
		return 0, err
	}
	if b.accumulator.Full() {
		return 0, fault.TooManyTransactions
	}

	// first write
	err = e.ledger.Consume(scope, uint64(size))
	if nil != err {
		return 0, err
	}

	index, err := b.accumulator.Append(root, contentHash, size)
	logger.PanicIfError("bulletin: append after capacity check", err)
	return index, nil
}

func (e *Engine) checkExtrinsic(b *Block) error {
	if err := b.checkOpen(); nil != err {
		return err
	}
	if _, ok := b.Extrinsic(); !ok {
		return fault.BadContext
	}
	return nil
}

// proofTarget - the block whose data must be proved in block number,
// false if there is none
func (e *Engine) proofTarget(number uint64) (uint64, bool) {
	if number <= e.config.StoragePeriod {
		return 0, false
	}
	return number - e.config.StoragePeriod, true
}

// IsProofRequired - true if block number must carry a proof
func (e *Engine) IsProofRequired(number uint64) bool {
	target, ok := e.proofTarget(number)
	return ok && 0 != e.index.ChunkCount(target)
}

// Challenge - select the chunk that block number must prove
func (e *Engine) Challenge(number uint64, parentHash merkle.Digest) (Challenge, error) {
	target, ok := e.proofTarget(number)
	if !ok {
		return Challenge{}, fault.UnexpectedProof
	}
	total := e.index.ChunkCount(target)
	if 0 == total {
		return Challenge{}, fault.UnexpectedProof
	}

	chunk := storageproof.RandomChunk(parentHash[:], total)
	info, err := e.index.LookupByChunk(target, chunk)
	if nil != err {
		return Challenge{}, err
	}

	return Challenge{
		Target: target,
		Chunk:  chunk,
		Info:   info,
		Offset: transactionindex.ChunkOffset(info, chunk),
	}, nil
}

// CheckProof - verify the block's proof of custody
func (e *Engine) CheckProof(b *Block, origin Origin, proof *storageproof.Proof) error {
	if NoneOrigin != origin.Type {
		return fault.BadOrigin
	}
	if err := b.checkOpen(); nil != err {
		return err
	}
	if b.proofChecked {
		return fault.DoubleCheck
	}

	challenge, err := e.Challenge(b.number, b.parentHash)
	if nil != err {
		return err
	}
	if nil == proof || !storageproof.Verify(challenge.Info.ChunkRoot, proof, challenge.Offset) {
		e.log.Warnf("proof failed: block: %d  target: %d  chunk: %d", b.number, challenge.Target, challenge.Chunk)
		return fault.InvalidProof
	}

	b.proofChecked = true
	b.emit(Event{Type: ProofCheckedEvent})
	e.log.Infof("proof checked: block: %d  target: %d  chunk: %d", b.number, challenge.Target, challenge.Chunk)
	return nil
}

// AuthorizeAccount - allow an account to store data
func (e *Engine) AuthorizeAccount(b *Block, origin Origin, who account.Account, transactions uint32, bytes uint64) error {
	scope := authorization.NewAccountScope(who)
	err := e.authorize(b, origin, scope, transactions, bytes)
	if nil != err {
		return err
	}
	b.emit(Event{
		Type:   AccountUploadAuthorizedEvent,
		Scope:  scope,
		Extent: authorization.Extent{Transactions: transactions, Bytes: bytes},
	})
	return nil
}

// AuthorizePreimage - allow anyone to store the data with the given
// content hash once
func (e *Engine) AuthorizePreimage(b *Block, origin Origin, contentHash merkle.Digest, bytes uint64) error {
	scope := authorization.NewPreimageScope(contentHash)
	err := e.authorize(b, origin, scope, 1, bytes)
	if nil != err {
		return err
	}
	b.emit(Event{
		Type:   PreimageUploadAuthorizedEvent,
		Scope:  scope,
		Extent: authorization.Extent{Transactions: 1, Bytes: bytes},
	})
	return nil
}

func (e *Engine) authorize(b *Block, origin Origin, scope authorization.Scope, transactions uint32, bytes uint64) error {
	switch origin.Type {
	case RootOrigin:
	case SignedOrigin:
		if !origin.Account.Equal(e.authorizer) {
			return fault.BadOrigin
		}
	default:
		return fault.BadOrigin
	}
	if err := b.checkOpen(); nil != err {
		return err
	}

	expiry, err := e.ledger.Grant(scope, transactions, bytes, b.number, e.config.AuthorizationPeriod)
	if nil != err {
		return err
	}
	e.log.Infof("authorized: %s  transactions: %d  bytes: %d  expiry: %d", scope, transactions, bytes, expiry)
	return nil
}

// FinaliseBlock - close the block and commit its transactions
//
// returns fault.ProofNotChecked, leaving the block uncommitted, when a
// required proof is missing
func (e *Engine) FinaliseBlock(b *Block) error {
	if err := b.checkOpen(); nil != err {
		return err
	}
	b.state = Finalizing
	b.inExtrinsic = false

	if !b.proofChecked && e.IsProofRequired(b.number) {
		e.log.Errorf("block: %d  finalised without a proof", b.number)
		return fault.ProofNotChecked
	}

	b.committed = b.accumulator.Items()
	b.committedChunks = b.accumulator.TotalChunks()
	e.index.Commit(b.number, b.accumulator)
	b.state = Closed
	return nil
}

// UnusedAccountExtent - rights remaining for an account
func (e *Engine) UnusedAccountExtent(who account.Account) authorization.Extent {
	return e.ledger.UnusedExtent(authorization.NewAccountScope(who))
}

// UnusedPreimageExtent - rights remaining for a content hash
func (e *Engine) UnusedPreimageExtent(contentHash merkle.Digest) authorization.Extent {
	return e.ledger.UnusedExtent(authorization.NewPreimageScope(contentHash))
}

// Usage - full usage record of a scope
func (e *Engine) Usage(scope authorization.Scope) authorization.Usage {
	return e.ledger.Usage(scope)
}

// Transactions - committed transactions of a block
func (e *Engine) Transactions(number uint64) ([]transactionindex.TransactionInfo, error) {
	return e.index.Transactions(number)
}

// Transaction - a committed transaction
func (e *Engine) Transaction(number uint64, index uint32) (transactionindex.TransactionInfo, error) {
	return e.index.Transaction(number, index)
}

// ChunkCount - committed chunk total of a block
func (e *Engine) ChunkCount(number uint64) uint32 {
	return e.index.ChunkCount(number)
}
