// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storageproof - chunking, commitments and the chunk
// challenge/response used to prove continued custody of stored data
//
// a blob is split into ChunkSize pieces (the last may be shorter);
// the commitment is the merkle root over the chunks and a separate
// content hash of the whole blob
//
// once per retention window a single chunk is selected from the seed
// of the parent block and the prover must supply that chunk together
// with its merkle path
package storageproof
