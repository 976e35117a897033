// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for tests that need a logger or a
// database
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/NachoPal/polkadot-bulletin-chain/storage"
)

// LogCategory - logger channel for tests
const LogCategory = "testing"

// SetupTestLogger - log to a fresh temporary directory at critical level
func SetupTestLogger(t *testing.T) string {
	dir, err := ioutil.TempDir("", "bulletin-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	return dir
}

// TeardownTestLogger - stop logging and remove the directory
func TeardownTestLogger(dir string) {
	logger.Finalise()
	_ = os.RemoveAll(dir)
}

// SetupStorage - logger plus an empty database in the same directory
func SetupStorage(t *testing.T) string {
	dir := SetupTestLogger(t)
	err := storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		TeardownTestLogger(dir)
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

// TeardownStorage - close the database, stop logging and remove files
func TeardownStorage(dir string) {
	storage.Finalise()
	TeardownTestLogger(dir)
}
