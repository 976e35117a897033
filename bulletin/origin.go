// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletin

import (
	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// OriginType - who is making a call
type OriginType int

// the kinds of caller
const (
	NoneOrigin OriginType = iota
	SignedOrigin
	RootOrigin
)

// Origin - the caller of an operation
type Origin struct {
	Type    OriginType
	Account account.Account
}

// None - an unsigned call, e.g. the block's proof or an anonymous upload
func None() Origin {
	return Origin{Type: NoneOrigin}
}

// Signed - a call signed by an account
func Signed(acc account.Account) Origin {
	return Origin{
		Type:    SignedOrigin,
		Account: acc,
	}
}

// Root - a call made by the node itself
func Root() Origin {
	return Origin{Type: RootOrigin}
}

func (o Origin) String() string {
	switch o.Type {
	case NoneOrigin:
		return "none"
	case SignedOrigin:
		return "signed(" + o.Account.String() + ")"
	case RootOrigin:
		return "root"
	default:
		return "unknown"
	}
}

// scope charged for an upload of contentHash by this origin
func (o Origin) uploadScope(contentHash merkle.Digest) (authorization.Scope, error) {
	switch o.Type {
	case SignedOrigin:
		return authorization.NewAccountScope(o.Account), nil
	case NoneOrigin:
		return authorization.NewPreimageScope(contentHash), nil
	default:
		return authorization.Scope{}, fault.BadOrigin
	}
}
