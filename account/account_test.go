// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"),
		base58Account: "bgVveHWnmV5qmrw5cgfKv4sZH4naUnpfBcDuEm6Sf9oyZbnFVM",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"),
		base58Account: "fZzH7BaVcqY7R2LtmvfEZGRPWJDstUaETkSPY8tRyAaxoftYMj",
	},
}

var testInvalidAccount = []struct {
	str string
	err error
}{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount},
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},
	{"28nQkMU2RaJhzuADatceb3fGD6vGykGqFQjwodmSM9G1sXScKoF", fault.InvalidKeyType},
	{"ZjkkQqUwLorhxHEB34fNbU6eAT4vmwwsYY7f65CT19RUx12wRC", fault.NotPublicKey},
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.NotPublicKey},
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.Test, "%d: testnet", index)
		assert.Equal(t, test.publicKey, []byte(acc.PublicKey), "%d: public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: to base58", index)

		fromBytes, err := account.FromBytes(acc.Bytes())
		assert.Nil(t, err, "%d: from bytes", index)
		assert.True(t, acc.Equal(*fromBytes), "%d: bytes round trip", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		assert.Nil(t, err, "%d: from JSON", index)

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccount {
		_, err := account.FromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %s", index, test.str)
	}
}

func TestFromBytesInvalid(t *testing.T) {
	_, err := account.FromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key")

	_, err = account.FromBytes([]byte{0x10})
	assert.Equal(t, fault.NotPublicKey, err, "private variant")

	_, err = account.FromBytes(nil)
	assert.Equal(t, fault.NotPublicKey, err, "empty")
}

func TestIsZero(t *testing.T) {
	zero := account.Account{PublicKey: make([]byte, 32)}
	assert.True(t, zero.IsZero())

	acc, err := account.FromBase58(testAccount[0].base58Account)
	assert.Nil(t, err)
	assert.False(t, acc.IsZero())
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
