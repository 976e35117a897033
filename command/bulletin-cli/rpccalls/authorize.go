// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/authorize"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store"
)

// AuthorizeAccount - grant transactions and bytes to an account, the
// client key must be the authorizer
func (client *Client) AuthorizeAccount(who account.Account, transactions uint32, bytes uint64) (*store.SubmitReply, error) {

	if nil == client.key {
		return nil, fault.MissingPrivateKey
	}

	call := producer.Call{
		Type:         producer.AuthorizeAccountCall,
		Account:      who,
		Transactions: transactions,
		Bytes:        bytes,
	}
	authorizer, signature := client.sign(&call)

	accountArgs := authorize.AccountArguments{
		Authorizer:   authorizer,
		Account:      &who,
		Transactions: transactions,
		Bytes:        bytes,
		Timestamp:    call.Nonce,
		Signature:    signature,
	}

	client.printJson("Authorize Account Request", accountArgs)

	var reply store.SubmitReply
	if err := client.client.Call("Authorize.Account", accountArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Authorize Account Reply", reply)

	return &reply, nil
}

// AuthorizePreimage - grant one unsigned store of the content hash
func (client *Client) AuthorizePreimage(contentHash merkle.Digest, bytes uint64) (*store.SubmitReply, error) {

	if nil == client.key {
		return nil, fault.MissingPrivateKey
	}

	call := producer.Call{
		Type:        producer.AuthorizePreimageCall,
		ContentHash: contentHash,
		Bytes:       bytes,
	}
	authorizer, signature := client.sign(&call)

	preimageArgs := authorize.PreimageArguments{
		Authorizer:  authorizer,
		ContentHash: contentHash,
		Bytes:       bytes,
		Timestamp:   call.Nonce,
		Signature:   signature,
	}

	client.printJson("Authorize Preimage Request", preimageArgs)

	var reply store.SubmitReply
	if err := client.client.Call("Authorize.Preimage", preimageArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Authorize Preimage Reply", reply)

	return &reply, nil
}

// GetUnused - remaining authorization of the scopes
func (client *Client) GetUnused(accounts []*account.Account, preimages []merkle.Digest) (*authorize.UnusedReply, error) {

	unusedArgs := authorize.UnusedArguments{
		Accounts:  accounts,
		Preimages: preimages,
	}

	client.printJson("Unused Request", unusedArgs)

	var reply authorize.UnusedReply
	if err := client.client.Call("Authorize.Unused", unusedArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Unused Reply", reply)

	return &reply, nil
}
