// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package producer

import (
	"encoding/binary"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// CallType - the operation to apply
type CallType byte

// the call types
const (
	StoreCall             CallType = 1
	RenewCall             CallType = 2
	AuthorizeAccountCall  CallType = 3
	AuthorizePreimageCall CallType = 4
)

func (t CallType) String() string {
	switch t {
	case StoreCall:
		return "store"
	case RenewCall:
		return "renew"
	case AuthorizeAccountCall:
		return "authorize-account"
	case AuthorizePreimageCall:
		return "authorize-preimage"
	default:
		return "unknown"
	}
}

// Call - a queued operation waiting for the next block
//
// only the fields of the call type are used:
//   store:              Data
//   renew:              Block, Index
//   authorize-account:  Account, Transactions, Bytes
//   authorize-preimage: ContentHash, Bytes
type Call struct {
	Type         CallType
	Origin       bulletin.Origin
	Nonce        uint64
	Data         []byte
	Block        uint64
	Index        uint32
	Account      account.Account
	ContentHash  merkle.Digest
	Transactions uint32
	Bytes        uint64
}

// Pack - binary form identifying the call, data is represented by its
// content hash
func (call *Call) Pack() []byte {
	buffer := []byte{byte(call.Type), byte(call.Origin.Type)}
	if bulletin.SignedOrigin == call.Origin.Type {
		buffer = appendBytes(buffer, call.Origin.Account.Bytes())
	}
	buffer = util.AppendUvarint(buffer, call.Nonce)

	switch call.Type {
	case StoreCall:
		contentHash := merkle.NewDigest(call.Data)
		buffer = append(buffer, contentHash[:]...)
		buffer = util.AppendUvarint(buffer, uint64(len(call.Data)))
	case RenewCall:
		buffer = util.AppendUvarint(buffer, call.Block)
		buffer = util.AppendUvarint(buffer, uint64(call.Index))
	case AuthorizeAccountCall:
		buffer = appendBytes(buffer, call.Account.Bytes())
		buffer = util.AppendUvarint(buffer, uint64(call.Transactions))
		buffer = util.AppendUvarint(buffer, call.Bytes)
	case AuthorizePreimageCall:
		buffer = append(buffer, call.ContentHash[:]...)
		buffer = util.AppendUvarint(buffer, call.Bytes)
	}
	return buffer
}

// ID - digest of the packed call
func (call *Call) ID() merkle.Digest {
	return merkle.NewDigest(call.Pack())
}

func appendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendUvarint(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// identifier of the proof extrinsic in the extrinsics root
func proofID(number uint64, packedProof []byte) merkle.Digest {
	buffer := make([]byte, 8, 8+len(packedProof))
	binary.BigEndian.PutUint64(buffer, number)
	return merkle.NewDigest(append(buffer, packedProof...))
}
