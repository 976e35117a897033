// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/storageproof"
)

type commitReply struct {
	Size        int           `json:"size"`
	Chunks      uint32        `json:"chunks"`
	ChunkRoot   merkle.Digest `json:"chunkRoot"`
	ContentHash merkle.Digest `json:"contentHash"`
}

type proveReply struct {
	ChunkRoot merkle.Digest       `json:"chunkRoot"`
	Chunk     uint32              `json:"chunk"`
	Proof     string              `json:"proof"`
	Decoded   *storageproof.Proof `json:"decoded,omitempty"`
}

type verifyReply struct {
	ChunkRoot merkle.Digest `json:"chunkRoot"`
	Chunk     uint32        `json:"chunk"`
	Valid     bool          `json:"valid"`
}

func runCommit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkFile(c.String("file"))
	if nil != err {
		return err
	}
	if 0 == len(data) {
		return fault.EmptyTransaction
	}

	root, contentHash := storageproof.Commit(data)

	return printJson(m.w, commitReply{
		Size:        len(data),
		Chunks:      storageproof.NumChunks(uint32(len(data))),
		ChunkRoot:   root,
		ContentHash: contentHash,
	})
}

func runProve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkFile(c.String("file"))
	if nil != err {
		return err
	}
	index := uint32(c.Uint("chunk"))

	proof, err := storageproof.NewProof(data, index)
	if nil != err {
		return err
	}
	root, _ := storageproof.Commit(data)

	reply := proveReply{
		ChunkRoot: root,
		Chunk:     index,
		Proof:     hex.EncodeToString(proof.Pack()),
	}
	if m.verbose {
		reply.Decoded = proof
	}
	return printJson(m.w, reply)
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	root, err := checkDigest(c.String("root"), ErrRequiredRoot)
	if nil != err {
		return err
	}
	packed, err := checkHex(c.String("proof"), ErrRequiredProof)
	if nil != err {
		return err
	}
	index := uint32(c.Uint("chunk"))

	proof, err := storageproof.Unpack(packed)
	if nil != err {
		return err
	}

	valid := storageproof.Verify(root, proof, index)
	if err := printJson(m.w, verifyReply{
		ChunkRoot: root,
		Chunk:     index,
		Valid:     valid,
	}); nil != err {
		return err
	}
	if !valid {
		return fault.InvalidProof
	}
	return nil
}
