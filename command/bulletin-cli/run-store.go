// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/NachoPal/polkadot-bulletin-chain/command/bulletin-cli/rpccalls"
)

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkFile(c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "store: %d bytes\n", len(data))
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Store(data)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRenew(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	block := c.Uint64("block")
	if 0 == block {
		return ErrRequiredBlock
	}
	index := c.Uint("index")

	if m.verbose {
		fmt.Fprintf(m.e, "renew: block: %d  index: %d\n", block, index)
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Renew(block, uint32(index))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkDigest(c.String("id"), ErrRequiredID)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetStatus(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransactions(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	block := c.Uint64("block")
	if 0 == block {
		return ErrRequiredBlock
	}

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTransactions(block)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.key, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
