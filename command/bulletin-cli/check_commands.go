// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

var (
	ErrRequiredAccount  = fault.InvalidError("account is required")
	ErrRequiredBlock    = fault.InvalidError("block number is required")
	ErrRequiredBytes    = fault.InvalidError("byte count is required")
	ErrRequiredFileName = fault.InvalidError("file name is required")
	ErrRequiredHash     = fault.InvalidError("content hash or file is required")
	ErrRequiredID       = fault.InvalidError("request id is required")
	ErrRequiredProof    = fault.InvalidError("proof is required")
	ErrRequiredRoot     = fault.InvalidError("chunk root is required")
	ErrRequiredScope    = fault.InvalidError("at least one account or preimage is required")
	ErrSeedAndKeyFile   = fault.InvalidError("only one of seed or key file is allowed")
)

const seedTag = "SEED:"

// decode the seed given directly or read from a key file, no seed
// gives a nil key
func signingKey(seed string, keyFile string) (*account.PrivateKey, error) {
	if "" != seed && "" != keyFile {
		return nil, ErrSeedAndKeyFile
	}

	if "" != keyFile {
		data, err := ioutil.ReadFile(keyFile)
		if nil != err {
			return nil, err
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, seedTag) {
				seed = strings.TrimPrefix(line, seedTag)
				break
			}
		}
		if "" == seed {
			return nil, fault.CannotDecodeSeed
		}
	}

	if "" == seed {
		return nil, nil
	}
	return account.PrivateKeyFromBase58Seed(seed)
}

// check for non-blank file name and read it
func checkFile(fileName string) ([]byte, error) {
	if "" == fileName {
		return nil, ErrRequiredFileName
	}
	return ioutil.ReadFile(fileName)
}

// account is required
func checkAccount(s string) (*account.Account, error) {
	if "" == s {
		return nil, ErrRequiredAccount
	}
	return account.FromBase58(s)
}

// hex digest, empty gives the missing error
func checkDigest(s string, missing error) (merkle.Digest, error) {
	var d merkle.Digest
	if "" == s {
		return d, missing
	}
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// hex bytes
func checkHex(s string, missing error) ([]byte, error) {
	if "" == s {
		return nil, missing
	}
	return hex.DecodeString(s)
}
