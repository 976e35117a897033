// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
	"github.com/NachoPal/polkadot-bulletin-chain/storage/mocks"
)

const (
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func setupTestDB(t *testing.T) (*leveldb.DB, func()) {
	dir, err := ioutil.TempDir("", "access")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	db, err := leveldb.OpenFile(dir, nil)
	if nil != err {
		t.Fatalf("open leveldb error: %s", err)
	}
	return db, func() {
		_ = db.Close()
		_ = os.RemoveAll(dir)
	}
}

func setupDummyMockCache(ctl *gomock.Controller) *mocks.MockCache {
	mockCache := mocks.NewMockCache(ctl)
	mockCache.EXPECT().Get(gomock.Any()).Return(nil, false).AnyTimes()
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockCache.EXPECT().Clear().AnyTimes()
	return mockCache
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second time Begin should return error")
}

func TestCommitReleasesAccess(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	err := da.Commit()
	assert.Nil(t, err, "commit")

	assert.False(t, da.InUse(), "still in use")
	assert.Equal(t, 0, len(da.DumpTx()), "batch not reset")

	err = da.Begin()
	assert.Nil(t, err, "did not release access")
}

func TestCommitWriteToDB(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	da := storage.NewDA(db, new(leveldb.Batch), setupDummyMockCache(ctl))

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, err := db.Get([]byte(defaultKey), nil)
	assert.Nil(t, err, "db get")
	assert.Equal(t, defaultValue, actual, "commit did not write to db")
}

func TestPutActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBPut, defaultKey, defaultValue).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)
	da.Put([]byte(defaultKey), defaultValue)
}

func TestDeleteActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(storage.DBDelete, defaultKey, nil).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)
	da.Delete([]byte(defaultKey))
}

func TestGetActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(defaultKey).Return([]byte{'b'}, true).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)
	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte{'b'}, actual, "not read from cache")
}

func TestGetActionReadDBIfNotInCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, teardown := setupTestDB(t)
	defer teardown()

	_ = db.Put([]byte(defaultKey), defaultValue, nil)

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(defaultKey).Return(nil, false).Times(1)

	da := storage.NewDA(db, new(leveldb.Batch), mc)
	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get")
	assert.Equal(t, defaultValue, actual, "not read from db")
}

func TestDeletedKeyHidesDB(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	_ = db.Put([]byte(defaultKey), defaultValue, nil)

	da := storage.NewDA(db, new(leveldb.Batch), storage.NewCache())
	_ = da.Begin()
	da.Delete([]byte(defaultKey))

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "deleted key read from db")

	found, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has")
	assert.False(t, found, "deleted key found")

	da.Abort()
	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get after abort")
	assert.Equal(t, defaultValue, actual, "abort did not restore view")
}

func TestAbortResetsEverything(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()

	da := storage.NewDA(db, new(leveldb.Batch), storage.NewCache())
	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)

	found, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has")
	assert.True(t, found, "pending put not visible")

	da.Abort()
	assert.False(t, da.InUse(), "abort did not release")
	assert.Equal(t, 0, len(da.DumpTx()), "abort did not reset batch")

	found, err = da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has")
	assert.False(t, found, "aborted put still visible")
}
