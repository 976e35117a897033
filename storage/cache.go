// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - view of the writes pending in the open batch, keyed by the
// raw database key
//
// a key deleted in the batch reads back as found with a nil value so
// the database below it is not consulted
type Cache interface {
	Get(string) ([]byte, bool)
	Set(int, string, []byte)
	Clear()
}

// operations recorded in the overlay
const (
	dbPut = iota
	dbDelete
)

// entries never expire, Clear drops them on commit or abort
type overlay struct {
	pending *cache.Cache
}

type pendingWrite struct {
	deleted bool
	value   []byte
}

func newCache() Cache {
	return &overlay{
		pending: cache.New(cache.NoExpiration, 0),
	}
}

func (o *overlay) Get(key string) ([]byte, bool) {
	item, found := o.pending.Get(key)
	if !found {
		return nil, false
	}

	w := item.(pendingWrite)
	if w.deleted {
		return nil, true
	}
	return w.value, true
}

// a put keeps its own copy, the batch does the same
func (o *overlay) Set(op int, key string, value []byte) {
	w := pendingWrite{}
	switch op {
	case dbPut:
		w.value = append([]byte{}, value...)
	case dbDelete:
		w.deleted = true
	default:
		return
	}
	o.pending.Set(key, w, cache.NoExpiration)
}

func (o *overlay) Clear() {
	o.pending.Flush()
}
