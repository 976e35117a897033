// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bulletin

import (
	"fmt"

	"github.com/NachoPal/polkadot-bulletin-chain/authorization"
)

// EventType - what happened
type EventType int

// event types
const (
	StoredEvent EventType = iota
	RenewedEvent
	ProofCheckedEvent
	AccountUploadAuthorizedEvent
	PreimageUploadAuthorizedEvent
)

// Event - result of a successful call
//
// Index is set for stored and renewed, Scope and Extent for the
// authorizations
type Event struct {
	Type   EventType            `json:"type"`
	Index  uint32               `json:"index"`
	Scope  authorization.Scope  `json:"-"`
	Extent authorization.Extent `json:"extent"`
}

func (t EventType) String() string {
	switch t {
	case StoredEvent:
		return "Stored"
	case RenewedEvent:
		return "Renewed"
	case ProofCheckedEvent:
		return "ProofChecked"
	case AccountUploadAuthorizedEvent:
		return "AccountUploadAuthorized"
	case PreimageUploadAuthorizedEvent:
		return "PreimageUploadAuthorized"
	default:
		return "Unknown"
	}
}

// MarshalText - event type as its name
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (e Event) String() string {
	switch e.Type {
	case StoredEvent, RenewedEvent:
		return fmt.Sprintf("%s{index: %d}", e.Type, e.Index)
	case AccountUploadAuthorizedEvent, PreimageUploadAuthorizedEvent:
		return fmt.Sprintf("%s{scope: %s  transactions: %d  bytes: %d}", e.Type, e.Scope, e.Extent.Transactions, e.Extent.Bytes)
	default:
		return e.Type.String()
	}
}
