// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
)

type metadata struct {
	connect string
	key     *account.PrivateKey
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bulletin-cli"
	app.Usage = "store data on a bulletind node and check storage proofs"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate test network keys",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " bulletind JSON-RPC `HOST:PORT`",
			EnvVar: "BULLETIN_CONNECT",
		},
		cli.StringFlag{
			Name:   "seed, s",
			Value:  "",
			Usage:  " base58 `SEED` that signs requests",
			EnvVar: "BULLETIN_SEED",
		},
		cli.StringFlag{
			Name:  "key-file, k",
			Value: "",
			Usage: " read the signing seed from `FILE` (SEED:... line)",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "new random seed and its account",
			Action: runGenerate,
		},
		{
			Name:      "store",
			Usage:     "store the contents of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data to store",
				},
			},
			Action: runStore,
		},
		{
			Name:      "renew",
			Usage:     "keep a stored transaction for another period",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*`NUMBER` of the block holding the transaction",
				},
				cli.UintFlag{
					Name:  "index, i",
					Value: 0,
					Usage: " `INDEX` of the transaction in the block",
				},
			},
			Action: runRenew,
		},
		{
			Name:      "authorize-account",
			Usage:     "grant storage to an account (authorizer seed)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*`ACCOUNT` to authorize",
				},
				cli.UintFlag{
					Name:  "transactions, n",
					Value: 1,
					Usage: " number of `TRANSACTIONS`",
				},
				cli.Uint64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: "*total `BYTES`",
				},
			},
			Action: runAuthorizeAccount,
		},
		{
			Name:      "authorize-preimage",
			Usage:     "grant one unsigned store of some content (authorizer seed)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " content `HASH` in hex",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " `FILE` to take the content hash and size from",
				},
				cli.Uint64Flag{
					Name:  "bytes, b",
					Value: 0,
					Usage: " maximum `BYTES` (default: size of file)",
				},
			},
			Action: runAuthorizePreimage,
		},
		{
			Name:      "unused",
			Usage:     "remaining authorization of accounts and content hashes",
			ArgsUsage: "\n   (* = at least one)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "account, a",
					Usage: "*`ACCOUNT` scope, may be repeated",
				},
				cli.StringSliceFlag{
					Name:  "preimage, p",
					Usage: "*content `HASH` scope, may be repeated",
				},
			},
			Action: runUnused,
		},
		{
			Name:      "status",
			Usage:     "outcome of a submitted request",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*request `ID` returned on submission",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "transactions",
			Usage:     "stored transactions of a block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "block, b",
					Value: 0,
					Usage: "*block `NUMBER`",
				},
			},
			Action: runTransactions,
		},
		{
			Name:   "info",
			Usage:  "display bulletind status",
			Action: runInfo,
		},
		{
			Name:      "commit",
			Usage:     "chunk root and content hash of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data",
				},
			},
			Action: runCommit,
		},
		{
			Name:      "prove",
			Usage:     "storage proof of one chunk of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data",
				},
				cli.UintFlag{
					Name:  "chunk, n",
					Value: 0,
					Usage: " chunk `INDEX`",
				},
			},
			Action: runProve,
		},
		{
			Name:      "verify",
			Usage:     "check a storage proof against a chunk root",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "root, r",
					Value: "",
					Usage: "*chunk `ROOT` in hex",
				},
				cli.UintFlag{
					Name:  "chunk, n",
					Value: 0,
					Usage: " chunk `INDEX`",
				},
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*packed `PROOF` in hex",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display bulletin-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// decode the signing key
	app.Before = func(c *cli.Context) error {
		verbose := c.GlobalBool("verbose")

		key, err := signingKey(c.GlobalString("seed"), c.GlobalString("key-file"))
		if nil != err {
			return err
		}

		testnet := c.GlobalBool("testnet")
		if nil != key {
			testnet = key.Test
			if verbose {
				fmt.Fprintf(c.App.ErrWriter, "signing account: %s\n", key.Account())
			}
		}

		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			key:     key,
			testnet: testnet,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
