// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - RPC calls to queue data storage and follow its outcome
package store

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/ratelimit"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/signed"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
)

const (
	rateLimitStorage = 100
	rateBurstStorage = 50
)

// Submitter - the block producer as seen by this service
type Submitter interface {
	Submit(producer.Call) (merkle.Digest, error)
	Receipt(merkle.Digest) (producer.Receipt, bool)
	Transactions(uint64) ([]transactionindex.TransactionInfo, error)
}

// Storage - type for RPC calls
type Storage struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Producer  Submitter
	MaxSize   uint32
	timestamp func() time.Time
}

// New - create the storage service
func New(log *logger.L, p Submitter, maxSize uint32) *Storage {
	return &Storage{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitStorage, rateBurstStorage),
		Producer:  p,
		MaxSize:   maxSize,
		timestamp: time.Now,
	}
}

// SubmitReply - identifier of a queued call
type SubmitReply struct {
	ID merkle.Digest `json:"id"`
}

// ---

// StoreArguments - data to store, unsigned requests are charged to
// the preimage authorization of the data
type StoreArguments struct {
	Account   *account.Account  `json:"account"`
	Data      []byte            `json:"data"`
	Timestamp uint64            `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// Store - queue data for storage in the next block
func (storage *Storage) Store(arguments *StoreArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(storage.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Data) {
		return fault.EmptyTransaction
	}
	if uint64(len(arguments.Data)) > uint64(storage.MaxSize) {
		return fault.TransactionTooLarge
	}

	call := producer.Call{
		Type:  producer.StoreCall,
		Nonce: arguments.Timestamp,
		Data:  arguments.Data,
	}
	storage.Log.Infof("store: %d bytes from: %v", len(arguments.Data), arguments.Account)
	return storage.submit(&call, arguments.Account, arguments.Signature, reply)
}

// ---

// RenewArguments - a stored transaction to keep for another period
type RenewArguments struct {
	Account   *account.Account  `json:"account"`
	Block     uint64            `json:"block,string"`
	Index     uint32            `json:"index"`
	Timestamp uint64            `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// Renew - queue a renewal for the next block
func (storage *Storage) Renew(arguments *RenewArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(storage.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	call := producer.Call{
		Type:  producer.RenewCall,
		Nonce: arguments.Timestamp,
		Block: arguments.Block,
		Index: arguments.Index,
	}
	storage.Log.Infof("renew: block: %d  index: %d", arguments.Block, arguments.Index)
	return storage.submit(&call, arguments.Account, arguments.Signature, reply)
}

func (storage *Storage) submit(call *producer.Call, signer *account.Account, signature account.Signature, reply *SubmitReply) error {
	if err := signed.Verify(call, signer, signature, storage.timestamp()); nil != err {
		storage.Log.Warnf("%s: rejected signature: %s", call.Type, err)
		return err
	}
	id, err := storage.Producer.Submit(*call)
	if nil != err {
		return err
	}
	reply.ID = id
	return nil
}

// ---

// StatusArguments - identifier returned by Store or Renew
type StatusArguments struct {
	ID merkle.Digest `json:"id"`
}

// Status - receipt of a submitted call
func (storage *Storage) Status(arguments *StatusArguments, reply *producer.Receipt) error {

	if err := ratelimit.Limit(storage.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	r, found := storage.Producer.Receipt(arguments.ID)
	if !found {
		return fault.TransactionNotFound
	}
	*reply = r
	return nil
}

// ---

// TransactionsArguments - block to list
type TransactionsArguments struct {
	Block uint64 `json:"block,string"`
}

// TransactionsReply - the stored transactions of a block
type TransactionsReply struct {
	Transactions []transactionindex.TransactionInfo `json:"transactions"`
}

// Transactions - list the transactions recorded for a block
func (storage *Storage) Transactions(arguments *TransactionsArguments, reply *TransactionsReply) error {

	if err := ratelimit.Limit(storage.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	items, err := storage.Producer.Transactions(arguments.Block)
	if nil != err {
		return err
	}
	reply.Transactions = items
	return nil
}
