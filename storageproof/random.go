// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storageproof

import (
	"encoding/binary"

	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// RandomChunk - select a chunk index in [0, total) from a block seed
//
// index = BigEndianUint64(H(seed ++ BE32(total))[0:8]) mod total
//
// total must not be zero
func RandomChunk(seed []byte, total uint32) uint32 {
	if 0 == total {
		panic("storageproof: RandomChunk with zero total")
	}

	buffer := make([]byte, len(seed), len(seed)+4)
	copy(buffer, seed)
	buffer = append(buffer, 0, 0, 0, 0)
	binary.BigEndian.PutUint32(buffer[len(seed):], total)

	digest := merkle.NewDigest(buffer)
	return uint32(binary.BigEndian.Uint64(digest[:8]) % uint64(total))
}
