// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/counter"
)

// connect an HTTP request body and response to the rpc codec
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *internalConnection) Write(d []byte) (int, error) { return c.out.Write(d) }
func (c *internalConnection) Close() error                { return nil }

type handler struct {
	log                *logger.L
	server             *rpc.Server
	count              *counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
	details            func() (interface{}, error)
}

func (h *handler) root(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "not found", http.StatusNotFound)
}

// one JSON-RPC request per POST
func (h *handler) rpc(w http.ResponseWriter, r *http.Request) {
	if !h.count.Acquire(h.maximumConnections) {
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}
	defer h.count.Release()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	codec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	if err := h.server.ServeRequest(codec); nil != err {
		h.log.Warnf("%s: serve request error: %s", httpsLogName, err)
	}
}

func (h *handler) showDetails(w http.ResponseWriter, r *http.Request) {
	if !h.allowed("details", r.RemoteAddr) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	reply, err := h.details()
	if nil != err {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reply); nil != err {
		h.log.Errorf("%s: details encode error: %s", httpsLogName, err)
	}
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, n := range h.allow[path] {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}
