// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
)

func TestConfigurationCheck(t *testing.T) {
	c := bulletin.DefaultConfiguration()
	_, err := c.Check()
	assert.Equal(t, fault.MissingAuthorizer, err, "no authorizer")

	c.Authorizer = "not-an-account"
	_, err = c.Check()
	assert.NotNil(t, err, "bad authorizer")

	c.Authorizer = authorizerAccount
	acc, err := c.Check()
	assert.Nil(t, err, "valid")
	assert.Equal(t, authorizerAccount, acc.String(), "authorizer")

	zeroes := []func(*bulletin.Configuration){
		func(c *bulletin.Configuration) { c.AuthorizationPeriod = 0 },
		func(c *bulletin.Configuration) { c.StoragePeriod = 0 },
	}
	for i, f := range zeroes {
		c := bulletin.DefaultConfiguration()
		c.Authorizer = authorizerAccount
		f(&c)
		_, err := c.Check()
		assert.Equal(t, fault.InvalidPeriod, err, "period: %d", i)
	}

	limits := []func(*bulletin.Configuration){
		func(c *bulletin.Configuration) { c.MaxBlockTransactions = 0 },
		func(c *bulletin.Configuration) { c.MaxTransactionSize = 0 },
		func(c *bulletin.Configuration) { c.MaxBlockAuthorizationExpiries = 0 },
	}
	for i, f := range limits {
		c := bulletin.DefaultConfiguration()
		c.Authorizer = authorizerAccount
		f(&c)
		_, err := c.Check()
		assert.Equal(t, fault.LimitMustNotBeZero, err, "limit: %d", i)
	}
}
