// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
)

type generateReply struct {
	Seed    string          `json:"seed"`
	Account account.Account `json:"account"`
	Testnet bool            `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58EncodedSeed(m.testnet)
	if nil != err {
		return err
	}
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Seed:    seed,
		Account: key.Account(),
		Testnet: key.Test,
	})
}
