// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/signed"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/store"
)

// sign the call with the client key, or only stamp it when there
// is no key
func (client *Client) sign(call *producer.Call) (*account.Account, account.Signature) {
	now := client.now()
	if nil == client.key {
		call.Nonce = signed.Timestamp(now)
		return nil, nil
	}
	signature := signed.Sign(call, client.key, now)
	acc := client.key.Account()
	return &acc, signature
}

// Store - queue data for storage
func (client *Client) Store(data []byte) (*store.SubmitReply, error) {

	call := producer.Call{
		Type: producer.StoreCall,
		Data: data,
	}
	signer, signature := client.sign(&call)

	storeArgs := store.StoreArguments{
		Account:   signer,
		Data:      data,
		Timestamp: call.Nonce,
		Signature: signature,
	}

	client.printJson("Store Request", storeArgs)

	var reply store.SubmitReply
	if err := client.client.Call("Storage.Store", storeArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Store Reply", reply)

	return &reply, nil
}

// Renew - queue a renewal of a stored transaction
func (client *Client) Renew(block uint64, index uint32) (*store.SubmitReply, error) {

	call := producer.Call{
		Type:  producer.RenewCall,
		Block: block,
		Index: index,
	}
	signer, signature := client.sign(&call)

	renewArgs := store.RenewArguments{
		Account:   signer,
		Block:     block,
		Index:     index,
		Timestamp: call.Nonce,
		Signature: signature,
	}

	client.printJson("Renew Request", renewArgs)

	var reply store.SubmitReply
	if err := client.client.Call("Storage.Renew", renewArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Renew Reply", reply)

	return &reply, nil
}

// GetStatus - receipt of a submitted call
func (client *Client) GetStatus(id merkle.Digest) (*producer.Receipt, error) {

	statusArgs := store.StatusArguments{
		ID: id,
	}

	client.printJson("Status Request", statusArgs)

	var reply producer.Receipt
	if err := client.client.Call("Storage.Status", statusArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}

// GetTransactions - the stored transactions of a block
func (client *Client) GetTransactions(block uint64) (*store.TransactionsReply, error) {

	transactionsArgs := store.TransactionsArguments{
		Block: block,
	}

	var reply store.TransactionsReply
	if err := client.client.Call("Storage.Transactions", transactionsArgs, &reply); err != nil {
		return nil, err
	}

	client.printJson("Transactions Reply", reply)

	return &reply, nil
}
