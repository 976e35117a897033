// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"math"
)

// AppendUvarint - append value as an unsigned varint, seven bits per
// byte, low group first
func AppendUvarint(buffer []byte, value uint64) []byte {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], value)
	return append(buffer, b[:n]...)
}

// Uvarint - decode the varint at the start of buffer
//
// returns the value and the number of bytes read, or 0, 0 when the
// buffer is truncated or the value overflows 64 bits
func Uvarint(buffer []byte) (uint64, int) {
	value, n := binary.Uvarint(buffer)
	if n <= 0 {
		return 0, 0
	}
	return value, n
}

// Uvarint32 - Uvarint limited to 32 bit values
func Uvarint32(buffer []byte) (uint32, int) {
	value, n := Uvarint(buffer)
	if 0 == n || value > math.MaxUint32 {
		return 0, 0
	}
	return uint32(value), n
}
