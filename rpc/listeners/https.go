// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/rpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"

	"github.com/NachoPal/polkadot-bulletin-chain/counter"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
)

const (
	httpsLogName     = "http_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
//
// Allow maps a path name ("details") to the CIDRs that may use it
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	addresses []string
	tlsConfig *tls.Config
	router    *mux.Router
	servers   []*http.Server
}

// NewHTTPS - JSON-RPC over HTTPS POST plus a details page
//
// returns a nil listener when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	details func() (interface{}, error),
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	_, addresses, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	allow := make(map[string][]*net.IPNet)
	for path, cidrs := range configuration.Allow {
		set := make([]*net.IPNet, len(cidrs))
		for i, c := range cidrs {
			_, n, err := net.ParseCIDR(strings.TrimSpace(c))
			if nil != err {
				log.Errorf("%s: invalid allow: %q  error: %s", httpsLogName, c, err)
				return nil, err
			}
			set[i] = n
		}
		allow[path] = set
	}

	h := &handler{
		log:                log,
		server:             server,
		count:              count,
		maximumConnections: configuration.MaximumConnections,
		allow:              allow,
		details:            details,
	}

	router := mux.NewRouter()
	router.HandleFunc("/bulletind/rpc", h.rpc).Methods(http.MethodPost)
	router.HandleFunc("/bulletind/details", h.showDetails).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(h.root)

	tlsConfig = tlsConfig.Clone()
	tlsConfig.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: tlsConfig,
		router:    router,
	}, nil
}

// Serve - listen on every address and serve in the background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen("tcp", listen)
		if nil != err {
			h.log.Errorf("%s: listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Addr:           listen,
			Handler:        h.router,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, h.tlsConfig)
		go func() {
			err := s.Serve(tlsListener)
			h.log.Infof("%s: stopped: %s", httpsLogName, err)
		}()
	}
	return nil
}

// Close - shut down all servers
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	var result *multierror.Error
	for _, s := range h.servers {
		if err := s.Close(); nil != err {
			result = multierror.Append(result, err)
		}
	}
	h.servers = nil
	return result.ErrorOrNil()
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}
