// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorization

import (
	"bytes"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// ScopeType - the kind of subject rights are granted to
type ScopeType byte

// scope tags, the first byte of a scope key
const (
	AccountScope  ScopeType = 0x01
	PreimageScope ScopeType = 0x02
)

func (t ScopeType) String() string {
	switch t {
	case AccountScope:
		return "account"
	case PreimageScope:
		return "preimage"
	default:
		return "unknown"
	}
}

// Scope - an account or the content hash of pre-authorized data
type Scope struct {
	Type     ScopeType
	Account  account.Account
	Preimage merkle.Digest
}

// NewAccountScope - rights of a signing account
func NewAccountScope(acc account.Account) Scope {
	return Scope{
		Type:    AccountScope,
		Account: acc,
	}
}

// NewPreimageScope - rights to store the data with this content hash
func NewPreimageScope(contentHash merkle.Digest) Scope {
	return Scope{
		Type:     PreimageScope,
		Preimage: contentHash,
	}
}

// Key - tag byte ++ payload, identical scopes have identical keys
func (s Scope) Key() []byte {
	switch s.Type {
	case AccountScope:
		return append([]byte{byte(AccountScope)}, s.Account.Bytes()...)
	case PreimageScope:
		return append([]byte{byte(PreimageScope)}, s.Preimage[:]...)
	default:
		return []byte{byte(s.Type)}
	}
}

// ScopeFromKey - decode a scope key
func ScopeFromKey(key []byte) (Scope, error) {
	if 0 == len(key) {
		return Scope{}, fault.InvalidScope
	}
	switch ScopeType(key[0]) {
	case AccountScope:
		acc, err := account.FromBytes(key[1:])
		if nil != err {
			return Scope{}, err
		}
		return NewAccountScope(*acc), nil

	case PreimageScope:
		var d merkle.Digest
		err := merkle.DigestFromBytes(&d, key[1:])
		if nil != err {
			return Scope{}, err
		}
		return NewPreimageScope(d), nil

	default:
		return Scope{}, fault.InvalidScope
	}
}

// Equal - same tag and payload
func (s Scope) Equal(other Scope) bool {
	return bytes.Equal(s.Key(), other.Key())
}

// Less - ordering by key
func (s Scope) Less(other Scope) bool {
	return bytes.Compare(s.Key(), other.Key()) < 0
}

func (s Scope) String() string {
	switch s.Type {
	case AccountScope:
		return "account:" + s.Account.String()
	case PreimageScope:
		return "preimage:" + s.Preimage.String()
	default:
		return s.Type.String()
	}
}
