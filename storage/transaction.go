// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the database batch of the block being built
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

type transaction struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

// Begin - fails if a batch is already open
func (t *transaction) Begin() error {
	return t.access.Begin()
}

// Commit - write all pending changes
func (t *transaction) Commit() error {
	return t.access.Commit()
}

// Abort - drop all pending changes
func (t *transaction) Abort() {
	t.access.Abort()
}

func (t *transaction) InUse() bool {
	return t.access.InUse()
}
