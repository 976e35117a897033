// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/blockrecord"
	"github.com/NachoPal/polkadot-bulletin-chain/counter"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Chain - block production state
type Chain interface {
	Head() (blockrecord.Header, merkle.Digest)
	Pending() int
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   Chain
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, chain Chain, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Block   BlockInfo `json:"block"`
	Pending int       `json:"pending"`
	RPCs    uint64    `json:"rpcs"`
	Version string    `json:"version"`
	Uptime  string    `json:"uptime"`
}

// BlockInfo - the highest block produced by the node
type BlockInfo struct {
	Height       uint64        `json:"height,string"`
	Hash         merkle.Digest `json:"hash"`
	ChunkCount   uint32        `json:"chunkCount"`
	ProofChecked bool          `json:"proofChecked"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Chain {
		return fault.NotInitialised
	}

	header, digest := node.Chain.Head()
	reply.Block = BlockInfo{
		Height:       header.Number,
		Hash:         digest,
		ChunkCount:   header.ChunkCount,
		ProofChecked: header.ProofChecked,
	}
	reply.Pending = node.Chain.Pending()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
