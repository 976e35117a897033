// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - ed25519 signatures over packed calls
//
// the signer puts a nanosecond timestamp into the call nonce and signs
// the packed call; the node rebuilds the same call from the request
// arguments, checks the timestamp is recent and verifies the signature
package signed

import (
	"time"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
)

// Window - accepted distance between a request timestamp and the node clock
const Window = producer.ReplayWindow * time.Second

// Timestamp - nonce value for a request made at t
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixNano())
}

// Sign - set the origin and nonce of the call and sign it
func Sign(call *producer.Call, key *account.PrivateKey, now time.Time) account.Signature {
	call.Origin = bulletin.Signed(key.Account())
	call.Nonce = Timestamp(now)
	return key.Sign(call.Pack())
}

// Verify - set the origin of the call from the request signer
//
// a nil account gives an unsigned call
func Verify(call *producer.Call, signer *account.Account, signature account.Signature, now time.Time) error {
	if nil == signer {
		call.Origin = bulletin.None()
		return nil
	}

	ts := time.Unix(0, int64(call.Nonce))
	if call.Nonce > uint64(1<<63-1) || ts.Before(now.Add(-Window)) || ts.After(now.Add(Window)) {
		return fault.InvalidTimestamp
	}

	call.Origin = bulletin.Signed(*signer)
	return signer.CheckSignature(call.Pack(), signature)
}
