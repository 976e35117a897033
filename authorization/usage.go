// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authorization

import (
	"encoding/binary"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

const packedExtentLength = 4 + 8

// Usage - consumed and still available rights of a scope
type Usage struct {
	Used   Extent `json:"used"`
	Unused Extent `json:"unused"`
}

// IsZero - the record can be deleted
func (u Usage) IsZero() bool {
	return u.Used.IsZero() && u.Unused.IsZero()
}

// Authorization - a grant recorded under its expiry block
type Authorization struct {
	Scope  Scope  `json:"scope"`
	Extent Extent `json:"extent"`
}

func (e Extent) pack(buffer []byte) []byte {
	var b [packedExtentLength]byte
	binary.BigEndian.PutUint32(b[:4], e.Transactions)
	binary.BigEndian.PutUint64(b[4:], e.Bytes)
	return append(buffer, b[:]...)
}

func unpackExtent(record []byte) (Extent, error) {
	if len(record) < packedExtentLength {
		return Extent{}, fault.RecordTruncated
	}
	return Extent{
		Transactions: binary.BigEndian.Uint32(record[:4]),
		Bytes:        binary.BigEndian.Uint64(record[4:packedExtentLength]),
	}, nil
}

func (u Usage) pack() []byte {
	buffer := make([]byte, 0, 2*packedExtentLength)
	buffer = u.Used.pack(buffer)
	return u.Unused.pack(buffer)
}

func unpackUsage(record []byte) (Usage, error) {
	if 2*packedExtentLength != len(record) {
		return Usage{}, fault.RecordTruncated
	}
	used, _ := unpackExtent(record)
	unused, _ := unpackExtent(record[packedExtentLength:])
	return Usage{
		Used:   used,
		Unused: unused,
	}, nil
}

// packed: count ++ [ extent ++ scope length ++ scope key ]
func packAuthorizations(list []Authorization) []byte {
	buffer := util.AppendUvarint(nil, uint64(len(list)))
	for _, a := range list {
		buffer = a.Extent.pack(buffer)
		key := a.Scope.Key()
		buffer = util.AppendUvarint(buffer, uint64(len(key)))
		buffer = append(buffer, key...)
	}
	return buffer
}

func unpackAuthorizations(record []byte) ([]Authorization, error) {
	count, n := util.Uvarint(record)
	if 0 == n {
		return nil, fault.RecordTruncated
	}
	record = record[n:]

	// each entry is at least an extent and a scope length
	if count > uint64(len(record))/(packedExtentLength+1) {
		return nil, fault.InvalidCount
	}

	list := make([]Authorization, 0, count)
	for i := uint64(0); i < count; i += 1 {
		extent, err := unpackExtent(record)
		if nil != err {
			return nil, err
		}
		record = record[packedExtentLength:]

		keyLength, n := util.Uvarint(record)
		if 0 == n || uint64(len(record)-n) < keyLength {
			return nil, fault.RecordTruncated
		}
		record = record[n:]

		scope, err := ScopeFromKey(record[:keyLength])
		if nil != err {
			return nil, err
		}
		record = record[keyLength:]

		list = append(list, Authorization{
			Scope:  scope,
			Extent: extent,
		})
	}
	if 0 != len(record) {
		return nil, fault.RecordTruncated
	}
	return list, nil
}
