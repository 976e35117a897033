// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/counter"
	"github.com/NachoPal/polkadot-bulletin-chain/fixtures"
	"github.com/NachoPal/polkadot-bulletin-chain/rpc/listeners"
)

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	},
}

func serveHTTPS(t *testing.T, allow string) (string, listeners.Listener) {
	address := freeAddress(t)
	tlsConfig, _ := testTLS(t)
	count := counter.Counter(0)

	details := func() (interface{}, error) {
		return map[string]string{"version": "test"}, nil
	}

	l, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 5,
			Listen:             []string{address},
			Allow: map[string][]string{
				"details": {allow},
			},
		},
		logger.New(fixtures.LogCategory),
		&count,
		testServer(t),
		tlsConfig,
		details,
	)
	if nil != err {
		t.Fatalf("NewHTTPS error: %s", err)
	}
	if err := l.Serve(); nil != err {
		t.Fatalf("Serve error: %s", err)
	}
	return "https://" + address, l
}

func TestHTTPSDisabled(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	count := counter.Counter(0)
	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &count, testServer(t), &tls.Config{}, nil)
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "wrong listener")
}

func TestHTTPSRPC(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	url, l := serveHTTPS(t, "127.0.0.1/32")
	defer l.Close()

	request := []byte(`{"method":"Add.Add","params":[{"A":3,"B":4}],"id":1}`)
	resp, err := client.Post(url+"/bulletind/rpc", "application/json", bytes.NewReader(request))
	if nil != err {
		t.Fatalf("post error: %s", err)
	}
	defer resp.Body.Close()

	var reply struct {
		ID     int         `json:"id"`
		Result int         `json:"result"`
		Error  interface{} `json:"error"`
	}
	err = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, 1, reply.ID, "wrong id")
	assert.Equal(t, 7, reply.Result, "wrong result")
	assert.Nil(t, reply.Error, "wrong error")

	resp, err = client.Get(url + "/bulletind/rpc")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, "wrong method status")
}

func TestHTTPSDetails(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	url, l := serveHTTPS(t, "127.0.0.1/32")
	defer l.Close()

	resp, err := client.Get(url + "/bulletind/details")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	defer resp.Body.Close()

	var reply map[string]string
	err = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status")
	assert.Equal(t, "test", reply["version"], "wrong details")
}

func TestHTTPSDetailsDenied(t *testing.T) {
	dir := fixtures.SetupTestLogger(t)
	defer fixtures.TeardownTestLogger(dir)

	url, l := serveHTTPS(t, "10.0.0.0/8")
	defer l.Close()

	resp, err := client.Get(url + "/bulletind/details")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "wrong status")

	resp, err = client.Get(url + "/nothing")
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "wrong status")
}
