// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/command/bulletin-cli/rpccalls"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

func runAuthorizeAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if nil == m.key {
		return fault.MissingPrivateKey
	}

	who, err := checkAccount(c.String("account"))
	if nil != err {
		return err
	}
	transactions := c.Uint("transactions")
	bytes := c.Uint64("bytes")
	if 0 == bytes {
		return ErrRequiredBytes
	}

	if m.verbose {
		fmt.Fprintf(m.e, "authorize: %s  transactions: %d  bytes: %d\n", who, transactions, bytes)
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AuthorizeAccount(*who, uint32(transactions), bytes)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAuthorizePreimage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if nil == m.key {
		return fault.MissingPrivateKey
	}

	contentHash, bytes, err := preimageOf(c.String("hash"), c.String("file"), c.Uint64("bytes"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "authorize preimage: %s  bytes: %d\n", contentHash, bytes)
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AuthorizePreimage(contentHash, bytes)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// content hash and byte limit from either a hex hash or a file, a
// file without an explicit limit allows exactly its own size
func preimageOf(hash string, fileName string, bytes uint64) (merkle.Digest, uint64, error) {
	if "" != fileName {
		data, err := checkFile(fileName)
		if nil != err {
			return merkle.Digest{}, 0, err
		}
		if 0 == bytes {
			bytes = uint64(len(data))
		}
		return merkle.NewDigest(data), bytes, nil
	}

	contentHash, err := checkDigest(hash, ErrRequiredHash)
	if nil != err {
		return merkle.Digest{}, 0, err
	}
	if 0 == bytes {
		return merkle.Digest{}, 0, ErrRequiredBytes
	}
	return contentHash, bytes, nil
}

func runUnused(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	accounts := make([]*account.Account, 0)
	for _, s := range c.StringSlice("account") {
		a, err := checkAccount(s)
		if nil != err {
			return err
		}
		accounts = append(accounts, a)
	}
	preimages := make([]merkle.Digest, 0)
	for _, s := range c.StringSlice("preimage") {
		d, err := checkDigest(s, ErrRequiredHash)
		if nil != err {
			return err
		}
		preimages = append(preimages, d)
	}
	if 0 == len(accounts)+len(preimages) {
		return ErrRequiredScope
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetUnused(accounts, preimages)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
