// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - fixed size block headers
package blockrecord

import (
	"encoding/binary"
	"time"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// currently supported header version
const (
	Version            = 1
	GenesisBlockNumber = 0
)

// byte sizes for various fields
const (
	VersionSize          = 2                   // Header version number
	TransactionCountSize = 2                   // Count of calls applied
	NumberSize           = 8                   // This block's number
	ParentHashSize       = merkle.DigestLength // BLAKE2b-256 hash of the parent header
	ExtrinsicsRootSize   = merkle.DigestLength // root over the applied calls
	TimestampSize        = 8                   // seconds since 1970-01-01T00:00 UTC
	ChunkCountSize       = 4                   // chunks stored by this block
	ProofCheckedSize     = 1                   // 1 if a proof of custody was accepted
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + VersionSize
	numberOffset           = transactionCountOffset + TransactionCountSize
	parentHashOffset       = numberOffset + NumberSize
	extrinsicsRootOffset   = parentHashOffset + ParentHashSize
	timestampOffset        = extrinsicsRootOffset + ExtrinsicsRootSize
	chunkCountOffset       = timestampOffset + TimestampSize
	proofCheckedOffset     = chunkCountOffset + ChunkCountSize

	// to set size of header array
	totalHeaderSize = proofCheckedOffset + ProofCheckedSize
)

// allowed clock skew for a header timestamp
const maximumFutureTime = 5 * time.Minute

// Header - the unpacked header structure
type Header struct {
	Version          uint16        `json:"version"`
	TransactionCount uint16        `json:"transactionCount"`
	Number           uint64        `json:"number,string"`
	ParentHash       merkle.Digest `json:"parentHash"`
	ExtrinsicsRoot   merkle.Digest `json:"extrinsicsRoot"`
	Timestamp        uint64        `json:"timestamp,string"`
	ChunkCount       uint32        `json:"chunkCount"`
	ProofChecked     bool          `json:"proofChecked"`
}

// Genesis - the header every chain starts from
func Genesis() *Header {
	return &Header{
		Version:        Version,
		Number:         GenesisBlockNumber,
		ExtrinsicsRoot: merkle.EmptyRoot,
	}
}

// ExtractHeader - split a header from the front of a []byte
func ExtractHeader(block []byte) (*Header, merkle.Digest, []byte, error) {
	if len(block) < totalHeaderSize {
		return nil, merkle.Digest{}, nil, fault.InvalidBlockHeaderSize
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:totalHeaderSize])

	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, merkle.Digest{}, nil, err
	}
	return header, packedHeader.Digest(), block[totalHeaderSize:], nil
}

// Unpack - turn a byte array into a header
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	if Version != header.Version {
		return nil, fault.InvalidBlockHeaderVersion
	}
	header.TransactionCount = binary.LittleEndian.Uint16(record[transactionCountOffset:])
	header.Number = binary.LittleEndian.Uint64(record[numberOffset:])

	err := merkle.DigestFromBytes(&header.ParentHash, record[parentHashOffset:extrinsicsRootOffset])
	if nil != err {
		return nil, err
	}
	err = merkle.DigestFromBytes(&header.ExtrinsicsRoot, record[extrinsicsRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:chunkCountOffset])
	if header.Timestamp > uint64(time.Now().Add(maximumFutureTime).Unix()) {
		return nil, fault.InvalidBlockHeaderTimestamp
	}

	header.ChunkCount = binary.LittleEndian.Uint32(record[chunkCountOffset:proofCheckedOffset])

	switch record[proofCheckedOffset] {
	case 0:
	case 1:
		header.ProofChecked = true
	default:
		return nil, fault.NotTransactionPack
	}

	return header, nil
}

// Digest - hash of a packed header
func (record PackedHeader) Digest() merkle.Digest {
	return merkle.NewDigest(record[:])
}

// Pack - turn a header into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint16(buffer[versionOffset:], header.Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], header.TransactionCount)
	binary.LittleEndian.PutUint64(buffer[numberOffset:], header.Number)

	copy(buffer[parentHashOffset:], header.ParentHash[:])
	copy(buffer[extrinsicsRootOffset:], header.ExtrinsicsRoot[:])

	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[chunkCountOffset:], header.ChunkCount)
	if header.ProofChecked {
		buffer[proofCheckedOffset] = 1
	}

	return buffer
}
