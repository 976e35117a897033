// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorize - RPC calls for the authorizer to grant upload
// rights and for anyone to query them
package authorize

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/ratelimit"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/signed"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store"
)

const (
	rateLimitAuthorize = 100
	rateBurstAuthorize = 100

	// limit for scopes in one Unused request
	maximumScopes = 100
)

// Ledger - the block producer as seen by this service
type Ledger interface {
	Submit(producer.Call) (merkle.Digest, error)
	Usage(authorization.Scope) authorization.Usage
}

// Authorize - type for RPC calls
type Authorize struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Producer Ledger
}

// New - create the authorization service
func New(log *logger.L, p Ledger) *Authorize {
	return &Authorize{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAuthorize, rateBurstAuthorize),
		Producer: p,
	}
}

// ---

// AccountArguments - grant for an account, signed by the authorizer
type AccountArguments struct {
	Authorizer   *account.Account  `json:"authorizer"`
	Account      *account.Account  `json:"account"`
	Transactions uint32            `json:"transactions"`
	Bytes        uint64            `json:"bytes,string"`
	Timestamp    uint64            `json:"timestamp,string"`
	Signature    account.Signature `json:"signature"`
}

// Account - queue an account authorization
func (auth *Authorize) Account(arguments *AccountArguments, reply *store.SubmitReply) error {

	if err := ratelimit.Limit(auth.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Authorizer || nil == arguments.Account {
		return fault.MissingParameters
	}

	call := producer.Call{
		Type:         producer.AuthorizeAccountCall,
		Nonce:        arguments.Timestamp,
		Account:      *arguments.Account,
		Transactions: arguments.Transactions,
		Bytes:        arguments.Bytes,
	}
	auth.Log.Infof("authorize account: %s  transactions: %d  bytes: %d", arguments.Account, arguments.Transactions, arguments.Bytes)
	return auth.submit(&call, arguments.Authorizer, arguments.Signature, reply)
}

// ---

// PreimageArguments - grant for a content hash, signed by the authorizer
type PreimageArguments struct {
	Authorizer  *account.Account  `json:"authorizer"`
	ContentHash merkle.Digest     `json:"contentHash"`
	Bytes       uint64            `json:"bytes,string"`
	Timestamp   uint64            `json:"timestamp,string"`
	Signature   account.Signature `json:"signature"`
}

// Preimage - queue a preimage authorization
func (auth *Authorize) Preimage(arguments *PreimageArguments, reply *store.SubmitReply) error {

	if err := ratelimit.Limit(auth.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Authorizer {
		return fault.MissingParameters
	}

	call := producer.Call{
		Type:        producer.AuthorizePreimageCall,
		Nonce:       arguments.Timestamp,
		ContentHash: arguments.ContentHash,
		Bytes:       arguments.Bytes,
	}
	auth.Log.Infof("authorize preimage: %v  bytes: %d", arguments.ContentHash, arguments.Bytes)
	return auth.submit(&call, arguments.Authorizer, arguments.Signature, reply)
}

func (auth *Authorize) submit(call *producer.Call, authorizer *account.Account, signature account.Signature, reply *store.SubmitReply) error {
	if err := signed.Verify(call, authorizer, signature, time.Now()); nil != err {
		auth.Log.Warnf("%s: rejected signature: %s", call.Type, err)
		return err
	}
	id, err := auth.Producer.Submit(*call)
	if nil != err {
		return err
	}
	reply.ID = id
	return nil
}

// ---

// UnusedArguments - scopes to query
type UnusedArguments struct {
	Accounts  []*account.Account `json:"accounts"`
	Preimages []merkle.Digest    `json:"preimages"`
}

// UsageEntry - usage of one scope
type UsageEntry struct {
	Scope  string               `json:"scope"`
	Used   authorization.Extent `json:"used"`
	Unused authorization.Extent `json:"unused"`
}

// UnusedReply - entries in request order, accounts first
type UnusedReply struct {
	Usage []UsageEntry `json:"usage"`
}

// Unused - remaining authorizations of accounts and preimages
func (auth *Authorize) Unused(arguments *UnusedArguments, reply *UnusedReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}
	count := len(arguments.Accounts) + len(arguments.Preimages)
	if err := ratelimit.LimitN(auth.Limiter, count, maximumScopes); nil != err {
		return err
	}

	scopes := make([]authorization.Scope, 0, count)
	for _, acc := range arguments.Accounts {
		if nil == acc {
			return fault.MissingParameters
		}
		scopes = append(scopes, authorization.NewAccountScope(*acc))
	}
	for _, contentHash := range arguments.Preimages {
		scopes = append(scopes, authorization.NewPreimageScope(contentHash))
	}

	reply.Usage = make([]UsageEntry, len(scopes))
	for i, scope := range scopes {
		u := auth.Producer.Usage(scope)
		reply.Usage[i] = UsageEntry{
			Scope:  scope.String(),
			Used:   u.Used,
			Unused: u.Unused,
		}
	}
	return nil
}
