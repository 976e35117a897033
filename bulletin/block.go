// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletin

import (
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/transactionindex"
)

// State - position of a block in its lifecycle
type State int

// block states
const (
	Open State = iota
	Finalizing
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Finalizing:
		return "finalizing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Block - context of the block being built
//
// created by Engine.OpenBlock and closed by Engine.FinaliseBlock
type Block struct {
	number       uint64
	parentHash   merkle.Digest
	state        State
	accumulator  *transactionindex.Accumulator
	proofChecked bool

	// set when the block closes, the accumulator is reset by the commit
	committed       []transactionindex.TransactionInfo
	committedChunks uint32

	inExtrinsic bool
	extrinsic   uint32

	events []Event
}

// Number - the block number
func (b *Block) Number() uint64 {
	return b.number
}

// ParentHash - hash of the previous block, the challenge seed
func (b *Block) ParentHash() merkle.Digest {
	return b.parentHash
}

// State - current lifecycle state
func (b *Block) State() State {
	return b.state
}

// ProofChecked - true once a proof was accepted in this block
func (b *Block) ProofChecked() bool {
	return b.proofChecked
}

// Transactions - the transactions accumulated so far, or those
// committed once the block is closed
func (b *Block) Transactions() []transactionindex.TransactionInfo {
	if Closed == b.state {
		items := make([]transactionindex.TransactionInfo, len(b.committed))
		copy(items, b.committed)
		return items
	}
	return b.accumulator.Items()
}

// TotalChunks - chunks accumulated so far, or committed once the
// block is closed
func (b *Block) TotalChunks() uint32 {
	if Closed == b.state {
		return b.committedChunks
	}
	return b.accumulator.TotalChunks()
}

// BeginExtrinsic - mark the start of the extrinsic at position index
func (b *Block) BeginExtrinsic(index uint32) error {
	if Open != b.state || b.inExtrinsic {
		return fault.BadContext
	}
	b.inExtrinsic = true
	b.extrinsic = index
	return nil
}

// EndExtrinsic - mark the end of the current extrinsic
func (b *Block) EndExtrinsic() {
	b.inExtrinsic = false
}

// Extrinsic - position of the current extrinsic
func (b *Block) Extrinsic() (uint32, bool) {
	return b.extrinsic, b.inExtrinsic
}

// Events - events of successful calls in order
func (b *Block) Events() []Event {
	events := make([]Event, len(b.events))
	copy(events, b.events)
	return events
}

func (b *Block) emit(e Event) {
	b.events = append(b.events, e)
}

func (b *Block) checkOpen() error {
	if Open != b.state {
		return fault.BadContext
	}
	return nil
}
