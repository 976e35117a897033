// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authorization - upload rights granted to accounts and to
// pre-authorized content, with expiry
//
// all accumulation is saturating; a scope that receives more rights
// than fit in an extent is silently capped, and expiry of such a
// scope may then reclaim less than was granted
package authorization

import (
	"math"
)

// Extent - an amount of upload rights
type Extent struct {
	Transactions uint32 `json:"transactions"`
	Bytes        uint64 `json:"bytes"`
}

// IsZero - no transactions and no bytes
func (e Extent) IsZero() bool {
	return 0 == e.Transactions && 0 == e.Bytes
}

// SaturatingAdd - component-wise addition capped at the maximum
func (e Extent) SaturatingAdd(other Extent) Extent {
	result := e
	if math.MaxUint32-result.Transactions < other.Transactions {
		result.Transactions = math.MaxUint32
	} else {
		result.Transactions += other.Transactions
	}
	if math.MaxUint64-result.Bytes < other.Bytes {
		result.Bytes = math.MaxUint64
	} else {
		result.Bytes += other.Bytes
	}
	return result
}

// SaturatingSub - component-wise subtraction floored at zero
func (e Extent) SaturatingSub(other Extent) Extent {
	result := Extent{}
	if e.Transactions > other.Transactions {
		result.Transactions = e.Transactions - other.Transactions
	}
	if e.Bytes > other.Bytes {
		result.Bytes = e.Bytes - other.Bytes
	}
	return result
}

// CheckedSub - component-wise subtraction, false if either
// component would be negative
func (e Extent) CheckedSub(other Extent) (Extent, bool) {
	if e.Transactions < other.Transactions || e.Bytes < other.Bytes {
		return Extent{}, false
	}
	return Extent{
		Transactions: e.Transactions - other.Transactions,
		Bytes:        e.Bytes - other.Bytes,
	}, true
}
