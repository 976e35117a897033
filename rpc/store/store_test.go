// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/fixtures"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/signed"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store/mocks"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
)

const seed = "5XEECrKGPRR2qmTEcM9m4uaCs6NqdxXNYAUy6pCqQY4o7Q7mUUeW1Ly"

func privateKey(t *testing.T) *account.PrivateKey {
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed error: %s", err)
	}
	return key
}

func TestStoreSigned(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	key := privateKey(t)
	call := producer.Call{
		Type: producer.StoreCall,
		Data: []byte("hello"),
	}
	signature := signed.Sign(&call, key, time.Now())

	id := merkle.NewDigest([]byte("id"))
	m.EXPECT().Submit(call).Return(id, nil).Times(1)

	signer := key.Account()
	args := store.StoreArguments{
		Account:   &signer,
		Data:      []byte("hello"),
		Timestamp: call.Nonce,
		Signature: signature,
	}
	var reply store.SubmitReply
	err := s.Store(&args, &reply)
	assert.Nil(t, err, "wrong Store")
	assert.Equal(t, id, reply.ID, "wrong id")
}

func TestStoreUnsigned(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	expected := producer.Call{
		Type:   producer.StoreCall,
		Origin: bulletin.None(),
		Nonce:  7,
		Data:   []byte("preimage"),
	}
	m.EXPECT().Submit(expected).Return(expected.ID(), nil).Times(1)

	var reply store.SubmitReply
	err := s.Store(&store.StoreArguments{Data: []byte("preimage"), Timestamp: 7}, &reply)
	assert.Nil(t, err, "wrong Store")
	assert.Equal(t, expected.ID(), reply.ID, "wrong id")
}

func TestStoreRejected(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	m.EXPECT().Submit(gomock.Any()).Times(0)
	s := store.New(logger.New(fixtures.LogCategory), m, 4)

	var reply store.SubmitReply
	assert.Equal(t, fault.EmptyTransaction, s.Store(&store.StoreArguments{}, &reply), "wrong empty")
	assert.Equal(t, fault.TransactionTooLarge, s.Store(&store.StoreArguments{Data: []byte("12345")}, &reply), "wrong size")

	key := privateKey(t)
	signer := key.Account()
	args := store.StoreArguments{
		Account:   &signer,
		Data:      []byte("1234"),
		Timestamp: signed.Timestamp(time.Now()),
		Signature: key.Sign([]byte("something else")),
	}
	assert.Equal(t, fault.InvalidSignature, s.Store(&args, &reply), "wrong signature")

	args.Timestamp = signed.Timestamp(time.Now().Add(-time.Hour))
	assert.Equal(t, fault.InvalidTimestamp, s.Store(&args, &reply), "wrong timestamp")
}

func TestRenew(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	key := privateKey(t)
	call := producer.Call{
		Type:  producer.RenewCall,
		Block: 12,
		Index: 3,
	}
	signature := signed.Sign(&call, key, time.Now())
	m.EXPECT().Submit(call).Return(call.ID(), nil).Times(1)

	signer := key.Account()
	var reply store.SubmitReply
	err := s.Renew(&store.RenewArguments{
		Account:   &signer,
		Block:     12,
		Index:     3,
		Timestamp: call.Nonce,
		Signature: signature,
	}, &reply)
	assert.Nil(t, err, "wrong Renew")
	assert.Equal(t, call.ID(), reply.ID, "wrong id")
}

func TestSubmitError(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	m.EXPECT().Submit(gomock.Any()).Return(merkle.Digest{}, fault.QueueFull).Times(1)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	var reply store.SubmitReply
	err := s.Store(&store.StoreArguments{Data: []byte("x")}, &reply)
	assert.Equal(t, fault.QueueFull, err, "wrong error")
}

func TestStatus(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	known := merkle.NewDigest([]byte("known"))
	receipt := producer.Receipt{
		ID:     known,
		Type:   "store",
		Status: producer.Applied,
		Block:  5,
	}
	m.EXPECT().Receipt(known).Return(receipt, true).Times(1)
	m.EXPECT().Receipt(gomock.Not(known)).Return(producer.Receipt{}, false).Times(1)

	var reply producer.Receipt
	err := s.Status(&store.StatusArguments{ID: known}, &reply)
	assert.Nil(t, err, "wrong Status")
	assert.Equal(t, receipt, reply, "wrong receipt")

	err = s.Status(&store.StatusArguments{ID: merkle.NewDigest([]byte("unknown"))}, &reply)
	assert.Equal(t, fault.TransactionNotFound, err, "wrong unknown status")
}

func TestTransactions(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSubmitter(ctl)
	s := store.New(logger.New(fixtures.LogCategory), m, 100)

	items := []transactionindex.TransactionInfo{
		{Size: 300, BlockChunks: 2},
	}
	m.EXPECT().Transactions(uint64(9)).Return(items, nil).Times(1)

	var reply store.TransactionsReply
	err := s.Transactions(&store.TransactionsArguments{Block: 9}, &reply)
	assert.Nil(t, err, "wrong Transactions")
	assert.Equal(t, items, reply.Transactions, "wrong items")
}
