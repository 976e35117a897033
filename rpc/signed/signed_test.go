// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/signed"
)

const seed = "5XEECrKGPRR2qmTEcM9m4uaCs6NqdxXNYAUy6pCqQY4o7Q7mUUeW1Ly"

func signedStore(t *testing.T, now time.Time) (producer.Call, account.Account, account.Signature) {
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("seed error: %s", err)
	}
	call := producer.Call{
		Type: producer.StoreCall,
		Data: []byte("some data"),
	}
	signature := signed.Sign(&call, key, now)
	return call, key.Account(), signature
}

func TestSignAndVerify(t *testing.T) {
	now := time.Now()
	call, signer, signature := signedStore(t, now)

	received := producer.Call{
		Type:  producer.StoreCall,
		Nonce: call.Nonce,
		Data:  []byte("some data"),
	}
	err := signed.Verify(&received, &signer, signature, now.Add(time.Second))
	assert.Nil(t, err, "wrong verify")
	assert.Equal(t, bulletin.SignedOrigin, received.Origin.Type, "wrong origin")
	assert.Equal(t, call.ID(), received.ID(), "wrong call identity")
}

func TestVerifyTamperedCall(t *testing.T) {
	now := time.Now()
	call, signer, signature := signedStore(t, now)

	call.Data = []byte("other data")
	err := signed.Verify(&call, &signer, signature, now)
	assert.Equal(t, fault.InvalidSignature, err, "wrong tampered data")
}

func TestVerifyStaleTimestamp(t *testing.T) {
	now := time.Now()
	call, signer, signature := signedStore(t, now)

	err := signed.Verify(&call, &signer, signature, now.Add(signed.Window+time.Second))
	assert.Equal(t, fault.InvalidTimestamp, err, "wrong stale request")

	err = signed.Verify(&call, &signer, signature, now.Add(-signed.Window-time.Second))
	assert.Equal(t, fault.InvalidTimestamp, err, "wrong future request")
}

func TestVerifyUnsigned(t *testing.T) {
	call := producer.Call{
		Type:   producer.StoreCall,
		Origin: bulletin.Root(),
		Data:   []byte("anonymous"),
	}
	err := signed.Verify(&call, nil, nil, time.Now())
	assert.Nil(t, err, "wrong unsigned verify")
	assert.Equal(t, bulletin.NoneOrigin, call.Origin.Type, "wrong origin")
}
