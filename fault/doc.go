// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - the ledger and node errors
//
// every failure is one exported value of a class (exists, invalid,
// length, not found, process, record) so callers compare with == and
// classify with the IsErrX functions
package fault
