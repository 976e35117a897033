// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes made while a block is being built go into one batch
// that is written when the block is closed; reads see the pending
// writes through an in-memory overlay.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. block number = big endian uint64 (8 bytes)
// 4. digest       = 32 byte BLAKE2b-256
// 5. count        = big endian uint64 (8 bytes)
// 6. scope        = scope tag byte ++ account bytes or digest
//
// Blocks:
//
//   B ++ block number          - block headers
//                                data: packed header
//
// Transaction index:
//
//   T ++ block number          - stored transactions of a block
//                                data: [ chunk root ++ content hash ++ size(BE32) ++ block chunks(BE32) ]
//   C ++ block number          - total chunks stored in a block
//                                data: count
//
// Authorizations:
//
//   A ++ scope                 - authorization usage
//                                data: used transactions(BE32) ++ used bytes(BE64) ++ unused transactions(BE32) ++ unused bytes(BE64)
//   E ++ block number          - authorizations expiring at the block
//                                data: count(varint) ++ [ extent ++ scope length(varint) ++ scope ]
//
// Data store:
//
//   D ++ content hash          - off-chain copy of stored data
//                                data: reference count ++ data
//   X ++ block number          - content hashes indexed by a block
//                                data: [ content hash ]
//
// Testing:
//   Z ++ key                   - testing data
package storage
