// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/blockrecord"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

const genesisDigest = "b2e121bdd9ab2a748e3ac28cb3bff733365e846760227bc2241ec1ea2dd0756d"

func TestGenesisDigest(t *testing.T) {
	var expected merkle.Digest
	_, err := fmt.Sscan(genesisDigest, &expected)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}

	packed := blockrecord.Genesis().Pack()
	assert.Equal(t, 89, len(packed), "packed size")
	assert.Equal(t, expected, packed.Digest(), "genesis digest")
}

func TestPackUnpack(t *testing.T) {
	header := &blockrecord.Header{
		Version:          blockrecord.Version,
		TransactionCount: 3,
		Number:           0x0102030405,
		ParentHash:       merkle.NewDigest([]byte("parent")),
		ExtrinsicsRoot:   merkle.NewDigest([]byte("calls")),
		Timestamp:        1600000000,
		ChunkCount:       77,
		ProofChecked:     true,
	}

	packed := header.Pack()
	assert.Equal(t, byte(0x05), packed[4], "number is little endian")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, header, unpacked, "round trip")

	block := append(packed[:], []byte("rest")...)
	extracted, digest, rest, err := blockrecord.ExtractHeader(block)
	assert.Nil(t, err, "extract")
	assert.Equal(t, header, extracted, "extracted")
	assert.Equal(t, packed.Digest(), digest, "digest")
	assert.Equal(t, []byte("rest"), rest, "rest")
}

func TestUnpackErrors(t *testing.T) {
	_, _, _, err := blockrecord.ExtractHeader([]byte{1, 0})
	assert.Equal(t, fault.InvalidBlockHeaderSize, err, "short")

	header := blockrecord.Genesis()
	header.Version = 7
	_, err = header.Pack().Unpack()
	assert.Equal(t, fault.InvalidBlockHeaderVersion, err, "version")

	header = blockrecord.Genesis()
	header.Timestamp = uint64(time.Now().Add(time.Hour).Unix())
	_, err = header.Pack().Unpack()
	assert.Equal(t, fault.InvalidBlockHeaderTimestamp, err, "future timestamp")

	packed := blockrecord.Genesis().Pack()
	packed[len(packed)-1] = 2
	_, err = packed.Unpack()
	assert.Equal(t, fault.NotTransactionPack, err, "flag")
}

func TestHeaderJSON(t *testing.T) {
	header := blockrecord.Genesis()
	header.Number = 12
	header.Timestamp = 99

	buffer, err := json.Marshal(header)
	assert.Nil(t, err, "marshal")

	var decoded blockrecord.Header
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, *header, decoded, "decoded")
	assert.Contains(t, string(buffer), `"number":"12"`, "number as string")
}
