// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datastore_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/datastore"
	"github.com/NachoPal/polkadot-bulletin-chain/fixtures"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storage"
)

func newStore() *datastore.Store {
	return datastore.New(logger.New(fixtures.LogCategory), storage.Pool.Blobs, storage.Pool.BlockBlobs)
}

func TestIndexAndGet(t *testing.T) {
	dir := fixtures.SetupStorage(t)
	defer fixtures.TeardownStorage(dir)

	s := newStore()
	data := []byte("hello world")
	h := merkle.NewDigest(data)

	_, found := s.Get(h)
	assert.False(t, found, "found before index")

	s.Index(1, h, data)
	actual, found := s.Get(h)
	assert.True(t, found, "not found after index")
	assert.Equal(t, data, actual, "data")
	assert.Equal(t, uint64(1), s.References(h), "references")
}

func TestReferenceCounting(t *testing.T) {
	dir := fixtures.SetupStorage(t)
	defer fixtures.TeardownStorage(dir)

	s := newStore()
	data := []byte("shared")
	h := merkle.NewDigest(data)

	s.Index(1, h, data)
	s.Index(2, h, data)
	assert.True(t, s.Renew(3, h), "renew")
	assert.Equal(t, uint64(3), s.References(h), "references")

	s.Prune(1)
	assert.Equal(t, uint64(2), s.References(h), "after first prune")
	s.Prune(1)
	assert.Equal(t, uint64(2), s.References(h), "prune twice is a no-op")

	s.Prune(2)
	_, found := s.Get(h)
	assert.True(t, found, "still referenced by block 3")

	s.Prune(3)
	_, found = s.Get(h)
	assert.False(t, found, "not removed after last reference")
	assert.Equal(t, uint64(0), s.References(h), "references after removal")
}

func TestRenewMissing(t *testing.T) {
	dir := fixtures.SetupStorage(t)
	defer fixtures.TeardownStorage(dir)

	s := newStore()
	assert.False(t, s.Renew(5, merkle.NewDigest([]byte("absent"))), "renew of data not held")
}

func TestSameBlockTwice(t *testing.T) {
	dir := fixtures.SetupStorage(t)
	defer fixtures.TeardownStorage(dir)

	s := newStore()
	data := []byte("twice")
	h := merkle.NewDigest(data)

	s.Index(7, h, data)
	s.Index(7, h, data)
	assert.Equal(t, uint64(2), s.References(h), "references")

	s.Prune(7)
	_, found := s.Get(h)
	assert.False(t, found, "both references released")
}
