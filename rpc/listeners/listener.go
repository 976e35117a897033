// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS servers for the JSON-RPC services
package listeners

// Listener - a server started on all configured addresses
type Listener interface {
	Serve() error
	Close() error
}
