// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// BLAKE2b-256 of the empty string
const emptyDigest = "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"

func TestEmptyDigest(t *testing.T) {
	d := merkle.NewDigest([]byte{})
	assert.Equal(t, emptyDigest, d.String(), "wrong empty digest")
	assert.Equal(t, "<BLAKE2b-256:"+emptyDigest+">", fmt.Sprintf("%#v", d), "wrong Go string")
	assert.Equal(t, d, merkle.EmptyRoot, "wrong empty root")
}

func TestScanFmt(t *testing.T) {
	var d merkle.Digest
	n, err := fmt.Sscan(emptyDigest, &d)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "wrong scan count")
	assert.Equal(t, merkle.NewDigest(nil), d, "wrong scanned digest")
}

func TestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("some data"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, "\""+d.String()+"\"", string(buffer), "wrong JSON")

	var d2 merkle.Digest
	err = json.Unmarshal(buffer, &d2)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, d2, "digest changed")

	err = json.Unmarshal([]byte("\"0e5751\""), &d2)
	assert.Equal(t, fault.InvalidDigest, err, "short digest accepted")
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	err := merkle.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.InvalidDigest, err, "short buffer accepted")

	b := merkle.NewDigest([]byte("x"))
	err = merkle.DigestFromBytes(&d, b[:])
	assert.Nil(t, err, "valid buffer rejected")
	assert.Equal(t, b, d, "wrong digest")
	assert.False(t, d.IsZero(), "digest is zero")
	assert.True(t, merkle.Digest{}.IsZero(), "zero digest not zero")
}
