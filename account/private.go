// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
)

const (
	seedHeaderLength   = 3
	seedPrefixLength   = 1
	secretKeyLength    = ed25519.SeedSize
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedPrefixLength + secretKeyLength + seedChecksumLength
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromBase58Seed - decode a base58 seed into a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed := util.FromBase58(seedBase58Encoded)
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	// first byte of prefix is test/live indication
	prefix := seed[seedHeaderLength]
	if prefix > 0x01 {
		return nil, fault.CannotDecodeSeed
	}

	secretStart := seedHeaderLength + seedPrefixLength
	return &PrivateKey{
		Test:       0x01 == prefix,
		PrivateKey: ed25519.NewKeyFromSeed(seed[secretStart:checksumStart]),
	}, nil
}

// NewBase58EncodedSeed - generate a random base58 seed
func NewBase58EncodedSeed(testnet bool) (string, error) {
	sk := make([]byte, secretKeyLength)
	n, err := rand.Read(sk)
	if nil != err {
		return "", err
	}
	if secretKeyLength != n {
		return "", fmt.Errorf("got: %d bytes, expected: %d bytes", n, secretKeyLength)
	}
	return encodeSeed(testnet, sk), nil
}

func encodeSeed(testnet bool, sk []byte) string {
	net := byte(0x00)
	if testnet {
		net = 0x01
	}
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, net)
	seed = append(seed, sk...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed)
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() Account {
	return Account{
		Test:      privateKey.Test,
		PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
