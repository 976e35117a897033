// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/blockrecord"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/fixtures"
	"github.com/NachoPal/polkadot-bulletin-chain/merkle"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/listeners"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/node"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/server/mocks"
)

func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	address := l.Addr().String()
	_ = l.Close()
	return address
}

func TestInitialiseFinalise(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockProducer(ctl)
	m.EXPECT().Head().Return(blockrecord.Header{Number: 3}, merkle.Digest{}).AnyTimes()
	m.EXPECT().Pending().Return(0).AnyTimes()

	cert, key, err := certgen.NewTLSCertPair("setup test", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	address := freeAddress(t)
	rpcConfiguration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{address},
		Certificate:        string(cert),
		PrivateKey:         string(key),
	}
	httpsConfiguration := listeners.HTTPSConfiguration{}

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "0.1", m, 1000)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&rpcConfiguration, &httpsConfiguration, "0.1", m, 1000)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, uint64(3), info.Block.Height, "wrong height")
	assert.Equal(t, "0.1", info.Version, "wrong version")
	_ = client.Close()

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "wrong second Finalise")
}
