// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
)

// Signature - a detached ed25519 signature
type Signature []byte

// SignatureFromHex - decode and length check a hex signature
func SignatureFromHex(s string) (Signature, error) {
	sig, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if ed25519.SignatureSize != len(sig) {
		return nil, fault.InvalidSignature
	}
	return sig, nil
}

// String - hex for the fmt package (%s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - hex for the fmt package (%#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
