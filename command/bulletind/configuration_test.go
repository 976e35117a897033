// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/bulletin"
	"github.com/NachoPal/polkadot-bulletin-chain/fault"
	"github.com/NachoPal/polkadot-bulletin-chain/producer"
)

const testConfiguration = `
local M = {}
M.data_directory = "."
M.pidfile = "bulletind.pid"
M.bulletin = {
    authorizer = "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
    storage_period = 20,
}
M.producer = {
    block_interval = 2,
}
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
M.logging = {
    levels = { main = "debug", ["*"] = "critical" },
}
return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "bulletind")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "bulletind.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong configuration")

	dir, _ = filepath.Abs(dir)
	assert.Equal(t, filepath.Join(dir, "bulletind.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "bulletin.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, "debug", options.Logging.Levels["main"], "wrong log level")

	// given values override the defaults, the rest remain
	assert.Equal(t, uint64(20), options.Bulletin.StoragePeriod, "wrong storage period")
	assert.Equal(t, uint64(bulletin.DefaultAuthorizationPeriod), options.Bulletin.AuthorizationPeriod, "wrong authorization period")
	assert.Equal(t, uint64(2), options.Producer.BlockInterval, "wrong interval")
	assert.Equal(t, producer.DefaultMaxQueue, options.Producer.MaxQueue, "wrong queue")

	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "wrong database directory type")
}

func TestGetConfigurationMissingAuthorizer(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.MissingAuthorizer, err, "wrong error")
}

func TestGetConfigurationBadDataDirectory(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "" }`)
	defer os.RemoveAll(dir)

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "wrong empty directory")
}

func TestLoadCertificates(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfiguration)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	assert.NotNil(t, loadCertificates(options), "wrong missing certificate")

	err = makeSelfSignedCertificate("test", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey, false, nil)
	assert.Nil(t, err, "wrong certificate generation")
	assert.Equal(t, fault.CertificateFileExists, makeSelfSignedCertificate("test", options.ClientRPC.Certificate, options.ClientRPC.PrivateKey, false, nil), "wrong overwrite")

	assert.Nil(t, loadCertificates(options), "wrong load")
	assert.Contains(t, options.ClientRPC.Certificate, "BEGIN CERTIFICATE", "wrong certificate content")
	assert.Contains(t, options.ClientRPC.PrivateKey, "PRIVATE KEY", "wrong key content")
}

func TestMakeAuthorizerKey(t *testing.T) {
	dir, err := ioutil.TempDir("", "bulletind")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, authorizerKeyFilename)
	acc, err := makeAuthorizerKey(false, fileName)
	assert.Nil(t, err, "wrong key")
	assert.False(t, acc.IsZero(), "wrong account")

	data, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "wrong key file")
	assert.Contains(t, string(data), "SEED:", "wrong key file content")

	_, err = makeAuthorizerKey(false, fileName)
	assert.Equal(t, fault.KeyFileExists, err, "wrong overwrite")
}
