// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorization

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

// Ledger - usage per scope and grants per expiry block
type Ledger struct {
	usage       storage.Handle
	expiries    storage.Handle
	maxExpiries int
}

// New - ledger over the given pools, at most maxExpiries grants may
// expire in any one block
func New(usage storage.Handle, expiries storage.Handle, maxExpiries uint32) *Ledger {
	return &Ledger{
		usage:       usage,
		expiries:    expiries,
		maxExpiries: int(maxExpiries),
	}
}

// Grant - add rights to a scope until block currentBlock + period
//
// returns the expiry block
func (l *Ledger) Grant(scope Scope, transactions uint32, bytes uint64, currentBlock uint64, period uint64) (uint64, error) {
	if math.MaxUint64-currentBlock < period {
		return 0, fault.ArithmeticOverflow
	}
	expiry := currentBlock + period

	expiryKey := util.BlockNumberKey(expiry)
	list := l.expiryList(expiryKey)
	if len(list) >= l.maxExpiries {
		return 0, fault.TooManyAuthorizations
	}

	extent := Extent{
		Transactions: transactions,
		Bytes:        bytes,
	}

	usage := l.Usage(scope)
	usage.Unused = usage.Unused.SaturatingAdd(extent)
	l.putUsage(scope, usage)

	list = append(list, Authorization{
		Scope:  scope,
		Extent: extent,
	})
	l.expiries.Put(expiryKey, packAuthorizations(list))

	return expiry, nil
}

// Check - the error Consume would return, without consuming
func (l *Ledger) Check(scope Scope, bytes uint64) error {
	_, ok := l.UnusedExtent(scope).CheckedSub(uploadExtent(bytes))
	if !ok {
		return fault.NotAuthorized
	}
	return nil
}

// Consume - use one transaction and the given bytes from a scope
func (l *Ledger) Consume(scope Scope, bytes uint64) error {
	extent := uploadExtent(bytes)

	usage := l.Usage(scope)
	unused, ok := usage.Unused.CheckedSub(extent)
	if !ok {
		return fault.NotAuthorized
	}
	usage.Unused = unused
	usage.Used = usage.Used.SaturatingAdd(extent)
	l.putUsage(scope, usage)
	return nil
}

// a single upload of the given size
func uploadExtent(bytes uint64) Extent {
	return Extent{
		Transactions: 1,
		Bytes:        bytes,
	}
}

// Expire - withdraw every grant expiring at the block
//
// an expiring grant first reclaims what of it was already used, then
// what remains unused
func (l *Ledger) Expire(number uint64) {
	expiryKey := util.BlockNumberKey(number)
	list := l.expiryList(expiryKey)
	if 0 == len(list) {
		return
	}

	for _, a := range list {
		usage := l.Usage(a.Scope)
		unusedPortion := a.Extent.SaturatingSub(usage.Used)
		usage.Used = usage.Used.SaturatingSub(a.Extent)
		usage.Unused = usage.Unused.SaturatingSub(unusedPortion)
		l.putUsage(a.Scope, usage)
	}
	l.expiries.Remove(expiryKey)
}

// Expiring - the grants recorded for a block
func (l *Ledger) Expiring(number uint64) []Authorization {
	return l.expiryList(util.BlockNumberKey(number))
}

// UnusedExtent - rights still available to a scope
func (l *Ledger) UnusedExtent(scope Scope) Extent {
	return l.Usage(scope).Unused
}

// Usage - the usage record of a scope, zero if none
func (l *Ledger) Usage(scope Scope) Usage {
	record := l.usage.Get(scope.Key())
	if nil == record {
		return Usage{}
	}
	usage, err := unpackUsage(record)
	if nil != err {
		logger.Panicf("authorization: corrupt usage for: %s  error: %s", scope, err)
	}
	return usage
}

func (l *Ledger) putUsage(scope Scope, usage Usage) {
	if usage.IsZero() {
		l.usage.Remove(scope.Key())
		return
	}
	l.usage.Put(scope.Key(), usage.pack())
}

func (l *Ledger) expiryList(expiryKey []byte) []Authorization {
	record := l.expiries.Get(expiryKey)
	if nil == record {
		return nil
	}
	list, err := unpackAuthorizations(record)
	if nil != err {
		logger.Panicf("authorization: corrupt expiry list for: %x  error: %s", expiryKey, err)
	}
	return list
}
