// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the public identity of a signed origin
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// FromBase58 - convert a base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.Uvarint(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	if keyVariant>>algorithmShift != ED25519 {
		return nil, fault.InvalidKeyType
	}

	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if ed25519.PublicKeySize != keyLength {
		return nil, fault.NotPublicKey
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountDecoded[keyVariantLength:checksumStart])

	return &Account{
		Test:      keyVariant&testKeyCode == testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// FromBytes - convert the packed key variant and public key to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.Uvarint(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	if keyVariant>>algorithmShift != ED25519 {
		return nil, fault.InvalidKeyType
	}

	key := accountBytes[keyVariantLength:]
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, key)

	return &Account{
		Test:      keyVariant&testKeyCode == testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// IsZero - true if the public key is all zero bytes
func (account Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// Equal - same network and key
func (account Account) Equal(other Account) bool {
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// CheckSignature - verify an ed25519 signature over message
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - key variant followed by the public key
func (account Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding with a checksum
func (account Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its base58 text form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
