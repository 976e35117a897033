// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
	"github.com/NachoPal/polkadot-bulletin-chain/blockrecord"
	"github.com/NachoPal/polkadot-bulletin-chain/counter"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/authorize"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/node"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
)

// Producer - everything the services need from the block producer
type Producer interface {
	Submit(producer.Call) (merkle.Digest, error)
	Receipt(merkle.Digest) (producer.Receipt, bool)
	Transactions(uint64) ([]transactionindex.TransactionInfo, error)
	Usage(authorization.Scope) authorization.Usage
	Head() (blockrecord.Header, merkle.Digest)
	Pending() int
}

// Create - an rpc server with the Storage, Authorize and Node services
func Create(log *logger.L, version string, rpcCount *counter.Counter, p Producer, maxTransactionSize uint32) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(store.New(log, p, maxTransactionSize))
	_ = server.Register(authorize.New(log, p))
	_ = server.Register(node.New(log, p, start, version, rpcCount))

	return server
}
