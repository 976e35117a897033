// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - bounded counters shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - number of resources in use
type Counter uint64

// Acquire - take one unit if fewer than limit are in use
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - return one unit, never goes below zero
func (c *Counter) Release() {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n-1) {
			return
		}
	}
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - nothing in use
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
