// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package producer - builds one block per interval from the queued calls
//
// a block is: the proof of custody if one is required, then the queued
// calls in submission order; all writes of a block are committed in a
// single database batch together with the block header
package producer

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"

	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
	"github.com/NachoPal/polkadot-bulletin-chain/blockrecord"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// defaults
const (
	DefaultBlockInterval    = 6
	DefaultMaxQueue         = 4096
	DefaultMaxCallsPerBlock = 1024
	DefaultReceiptExpiry    = 3600

	// the header holds a uint16 count including the proof
	maximumCallsPerBlock = 65534
)

// ReplayWindow - seconds a signed request timestamp may differ from the
// node clock, receipts must outlive both sides of it so a replayed call
// is still seen as a duplicate
const ReplayWindow = 300

const minimumReceiptExpiry = 2 * ReplayWindow

// Configuration - block production parameters, times in seconds
type Configuration struct {
	BlockInterval    uint64 `gluamapper:"block_interval" json:"block_interval"`
	MaxQueue         int    `gluamapper:"max_queue" json:"max_queue"`
	MaxCallsPerBlock int    `gluamapper:"max_calls_per_block" json:"max_calls_per_block"`
	ReceiptExpiry    uint64 `gluamapper:"receipt_expiry" json:"receipt_expiry"`
}

// DefaultConfiguration - production parameters at their defaults
func DefaultConfiguration() Configuration {
	return Configuration{
		BlockInterval:    DefaultBlockInterval,
		MaxQueue:         DefaultMaxQueue,
		MaxCallsPerBlock: DefaultMaxCallsPerBlock,
		ReceiptExpiry:    DefaultReceiptExpiry,
	}
}

// Check - validate the parameters
func (c *Configuration) Check() error {
	if 0 == c.BlockInterval || 0 == c.ReceiptExpiry {
		return fault.InvalidPeriod
	}
	if c.ReceiptExpiry < minimumReceiptExpiry {
		return fault.InvalidReceiptExpiry
	}
	if c.MaxQueue <= 0 || c.MaxCallsPerBlock <= 0 || c.MaxCallsPerBlock > maximumCallsPerBlock {
		return fault.LimitMustNotBeZero
	}
	return nil
}

// ProofSource - supplies the proof of custody for a block
type ProofSource interface {
	CreateProof(uint64, merkle.Digest) (*storageproof.Proof, error)
}

// Producer - the block builder
type Producer struct {
	sync.Mutex

	log            *logger.L
	config         Configuration
	engine         *bulletin.Engine
	proofs         ProofSource
	headers        storage.Handle
	newTransaction func() (storage.Transaction, error)

	queue    []queued
	receipts *cache.Cache

	head       blockrecord.Header
	headDigest merkle.Digest
}

type queued struct {
	id   merkle.Digest
	call Call
}

// New - create a producer continuing from the last stored header, a
// genesis header is written to an empty database
func New(log *logger.L, config Configuration, engine *bulletin.Engine, proofs ProofSource, headers storage.Handle, newTransaction func() (storage.Transaction, error)) (*Producer, error) {
	err := config.Check()
	if nil != err {
		return nil, err
	}

	expiry := time.Duration(config.ReceiptExpiry) * time.Second
	p := &Producer{
		log:            log,
		config:         config,
		engine:         engine,
		proofs:         proofs,
		headers:        headers,
		newTransaction: newTransaction,
		receipts:       cache.New(expiry, 2*expiry),
	}

	element, found := headers.LastElement()
	if found {
		header, digest, _, err := blockrecord.ExtractHeader(element.Value)
		if nil != err {
			log.Criticalf("last header: %x  error: %s", element.Key, err)
			return nil, err
		}
		p.head = *header
		p.headDigest = digest
		log.Infof("head: %d  digest: %v", header.Number, digest)
		return p, nil
	}

	trx, err := newTransaction()
	if nil != err {
		return nil, err
	}
	genesis := blockrecord.Genesis()
	packed := genesis.Pack()
	headers.Put(util.BlockNumberKey(genesis.Number), packed[:])
	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return nil, err
	}

	p.head = *genesis
	p.headDigest = packed.Digest()
	log.Infof("genesis: %v", p.headDigest)
	return p, nil
}

// Submit - queue a call for the next block
func (p *Producer) Submit(call Call) (merkle.Digest, error) {
	id := call.ID()

	p.Lock()
	defer p.Unlock()

	if len(p.queue) >= p.config.MaxQueue {
		return merkle.Digest{}, fault.QueueFull
	}
	err := p.receipts.Add(id.String(), Receipt{
		ID:     id,
		Type:   call.Type.String(),
		Status: Pending,
	}, cache.NoExpiration)
	if nil != err {
		return merkle.Digest{}, fault.DuplicateRequest
	}

	p.queue = append(p.queue, queued{id: id, call: call})
	p.log.Debugf("queued: %s  id: %v  origin: %s", call.Type, id, call.Origin)
	return id, nil
}

// Receipt - the outcome of a submitted call
func (p *Producer) Receipt(id merkle.Digest) (Receipt, bool) {
	r, found := p.receipts.Get(id.String())
	if !found {
		return Receipt{}, false
	}
	return r.(Receipt), true
}

// Head - the last committed header and its digest
func (p *Producer) Head() (blockrecord.Header, merkle.Digest) {
	p.Lock()
	defer p.Unlock()
	return p.head, p.headDigest
}

// Pending - number of queued calls
func (p *Producer) Pending() int {
	p.Lock()
	defer p.Unlock()
	return len(p.queue)
}

// Usage - committed usage of a scope
func (p *Producer) Usage(scope authorization.Scope) authorization.Usage {
	p.Lock()
	defer p.Unlock()
	return p.engine.Usage(scope)
}

// Transactions - committed transactions of a block
func (p *Producer) Transactions(number uint64) ([]transactionindex.TransactionInfo, error) {
	p.Lock()
	defer p.Unlock()
	return p.engine.Transactions(number)
}

// ProduceBlock - build, finalise and commit the next block
func (p *Producer) ProduceBlock(timestamp time.Time) (*blockrecord.Header, error) {
	p.Lock()
	defer p.Unlock()

	trx, err := p.newTransaction()
	if nil != err {
		p.log.Errorf("database transaction error: %s", err)
		return nil, err
	}

	number := p.head.Number + 1
	parentHash := p.headDigest
	b := p.engine.OpenBlock(number, parentHash)

	ids := make([][]byte, 0, len(p.queue)+1)
	extrinsic := uint32(0)

	proof, err := p.proofs.CreateProof(number, parentHash)
	if nil != err {
		p.log.Criticalf("block: %d  create proof error: %s", number, err)
	} else if nil != proof {
		err = b.BeginExtrinsic(extrinsic)
		if nil == err {
			err = p.engine.CheckProof(b, bulletin.None(), proof)
			b.EndExtrinsic()
		}
		if nil != err {
			p.log.Criticalf("block: %d  check proof error: %s", number, err)
		}
		id := proofID(number, proof.Pack())
		ids = append(ids, id[:])
		extrinsic += 1
	}

	n := len(p.queue)
	if n > p.config.MaxCallsPerBlock {
		n = p.config.MaxCallsPerBlock
	}
	receipts := make([]Receipt, 0, n)
	for _, q := range p.queue[:n] {
		r := p.apply(b, extrinsic, q)
		receipts = append(receipts, r)
		ids = append(ids, q.id[:])
		extrinsic += 1
	}

	err = p.engine.FinaliseBlock(b)
	if fault.ProofNotChecked == err {
		trx.Abort()
		logger.Panicf("block: %d  error: %s", number, err)
	}
	if nil != err {
		trx.Abort()
		p.log.Errorf("block: %d  finalise error: %s", number, err)
		return nil, err
	}

	header := &blockrecord.Header{
		Version:          blockrecord.Version,
		TransactionCount: uint16(extrinsic),
		Number:           number,
		ParentHash:       parentHash,
		ExtrinsicsRoot:   merkle.NewTree(ids).Root(),
		Timestamp:        uint64(timestamp.Unix()),
		ChunkCount:       b.TotalChunks(),
		ProofChecked:     b.ProofChecked(),
	}
	packed := header.Pack()
	p.headers.Put(util.BlockNumberKey(number), packed[:])

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		logger.Panicf("block: %d  commit error: %s", number, err)
	}

	p.head = *header
	p.headDigest = packed.Digest()
	p.queue = p.queue[n:]
	for _, r := range receipts {
		p.receipts.Set(r.ID.String(), r, cache.DefaultExpiration)
	}

	p.log.Infof("block: %d  digest: %v  calls: %d  chunks: %d  proof: %t", number, p.headDigest, n, header.ChunkCount, header.ProofChecked)
	for _, e := range b.Events() {
		p.log.Infof("block: %d  event: %s", number, e)
	}
	return header, nil
}

// execute one call as the extrinsic at position extrinsic
func (p *Producer) apply(b *bulletin.Block, extrinsic uint32, q queued) Receipt {
	r := Receipt{
		ID:        q.id,
		Type:      q.call.Type.String(),
		Block:     b.Number(),
		Extrinsic: extrinsic,
	}

	err := b.BeginExtrinsic(extrinsic)
	if nil != err {
		r.Status = Failed
		r.Error = err.Error()
		return r
	}
	defer b.EndExtrinsic()

	before := len(b.Events())

	call := q.call
	switch call.Type {
	case StoreCall:
		r.Index, err = p.engine.Store(b, call.Origin, call.Data)
	case RenewCall:
		r.Index, err = p.engine.Renew(b, call.Origin, call.Block, call.Index)
	case AuthorizeAccountCall:
		err = p.engine.AuthorizeAccount(b, call.Origin, call.Account, call.Transactions, call.Bytes)
	case AuthorizePreimageCall:
		err = p.engine.AuthorizePreimage(b, call.Origin, call.ContentHash, call.Bytes)
	default:
		err = fault.NotTransactionPack
	}

	if nil != err {
		r.Status = Failed
		r.Error = err.Error()
		p.log.Warnf("block: %d  extrinsic: %d  %s  error: %s", b.Number(), extrinsic, call.Type, err)
		return r
	}

	r.Status = Applied
	r.Events = b.Events()[before:]
	return r
}
