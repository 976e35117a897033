// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletin

import (
	"github.com/NachoPal/polkadot-bulletin-chain/account"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
)

// defaults for a new node
const (
	DefaultAuthorizationPeriod           = 100800
	DefaultStoragePeriod                 = 100800
	DefaultMaxBlockTransactions          = 512
	DefaultMaxTransactionSize            = 8 * 1024 * 1024
	DefaultMaxBlockAuthorizationExpiries = 100000
)

// Configuration - the ledger parameters
type Configuration struct {
	AuthorizationPeriod           uint64 `gluamapper:"authorization_period" json:"authorization_period"`
	StoragePeriod                 uint64 `gluamapper:"storage_period" json:"storage_period"`
	MaxBlockTransactions          uint32 `gluamapper:"max_block_transactions" json:"max_block_transactions"`
	MaxTransactionSize            uint32 `gluamapper:"max_transaction_size" json:"max_transaction_size"`
	MaxBlockAuthorizationExpiries uint32 `gluamapper:"max_block_authorization_expiries" json:"max_block_authorization_expiries"`
	Authorizer                    string `gluamapper:"authorizer" json:"authorizer"`
}

// DefaultConfiguration - configuration with every limit at its default
// and no authorizer
func DefaultConfiguration() Configuration {
	return Configuration{
		AuthorizationPeriod:           DefaultAuthorizationPeriod,
		StoragePeriod:                 DefaultStoragePeriod,
		MaxBlockTransactions:          DefaultMaxBlockTransactions,
		MaxTransactionSize:            DefaultMaxTransactionSize,
		MaxBlockAuthorizationExpiries: DefaultMaxBlockAuthorizationExpiries,
	}
}

// Check - reject a configuration under which the node is not useful
//
// returns the decoded authorizer account
func (c *Configuration) Check() (*account.Account, error) {
	if 0 == c.AuthorizationPeriod || 0 == c.StoragePeriod {
		return nil, fault.InvalidPeriod
	}
	if 0 == c.MaxBlockTransactions || 0 == c.MaxTransactionSize || 0 == c.MaxBlockAuthorizationExpiries {
		return nil, fault.LimitMustNotBeZero
	}
	if "" == c.Authorizer {
		return nil, fault.MissingAuthorizer
	}
	return account.FromBase58(c.Authorizer)
}
