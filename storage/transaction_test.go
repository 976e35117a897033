// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/storage/mocks"
)

func setupTestTransaction(t *testing.T) (storage.Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)
	return storage.NewTransaction(mock), mock, ctl
}

func TestTransactionBegin(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	gomock.InOrder(
		mock.EXPECT().Begin().Return(nil).Times(1),
		mock.EXPECT().Begin().Return(fault.TransactionAlreadyInUse).Times(1),
	)

	err := trx.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")

	err = trx.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second time Begin should return error")
}

func TestTransactionCommit(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().InUse().Return(false).Times(1)

	assert.Nil(t, trx.Commit(), "commit")
	assert.False(t, trx.InUse(), "in use")
}

func TestTransactionAbort(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Abort().Times(1)
	trx.Abort()
}
