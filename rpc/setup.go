// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/hashicorp/go-multierror"

	"github.com/NachoPal/polkadot-bulletin-chain/counter"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/certificate"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/listeners"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/node"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections shared by the RPC and HTTPS listeners
var connectionCount counter.Counter

// Initialise - start the RPC listeners over the block producer
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	p server.Producer,
	maxTransactionSize uint32,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCount,
		server.Create(log, version, &connectionCount, p, maxTransactionSize),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	httpsListener, err := newHTTPS(log, httpsConfiguration, version, p, maxTransactionSize)
	if nil != err {
		return err
	}

	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = []listeners.Listener{rpcListener}

	if nil != httpsListener {
		if err := httpsListener.Serve(); nil != err {
			_ = rpcListener.Close()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func newHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, p server.Producer, maxTransactionSize uint32) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	n := node.New(log, p, time.Now(), version, &connectionCount)
	details := func() (interface{}, error) {
		var reply node.InfoReply
		err := n.Info(&node.InfoArguments{}, &reply)
		return reply, err
	}

	return listeners.NewHTTPS(
		configuration,
		log,
		&connectionCount,
		server.Create(log, version, &connectionCount, p, maxTransactionSize),
		tlsConfig,
		details,
	)
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	var result *multierror.Error
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			result = multierror.Append(result, err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return result.ErrorOrNil()
}
