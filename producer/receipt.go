// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package producer

import (
	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
)

// Status - progress of a submitted call
type Status string

// call status values
const (
	Pending Status = "pending"
	Applied Status = "applied"
	Failed  Status = "failed"
)

// Receipt - outcome of a submitted call
type Receipt struct {
	ID        merkle.Digest    `json:"id"`
	Type      string           `json:"type"`
	Status    Status           `json:"status"`
	Block     uint64           `json:"block,string,omitempty"`
	Extrinsic uint32           `json:"extrinsic,omitempty"`
	Index     uint32           `json:"index"`
	Error     string           `json:"error,omitempty"`
	Events    []bulletin.Event `json:"events,omitempty"`
}
