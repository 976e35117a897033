// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NachoPal/polkadot-bulletin-chain/util"
)

func TestAbsolutePath(t *testing.T) {
	assert.Equal(t, "/data/bulletin.leveldb", util.AbsolutePath("/data", "bulletin.leveldb"), "relative path")
	assert.Equal(t, "/data/keys/node.private", util.AbsolutePath("/data", "./keys/../keys/node.private"), "relative path cleaned")
	assert.Equal(t, "/var/log/bulletind.log", util.AbsolutePath("/data", "/var/log/../log/bulletind.log"), "absolute path")
}

func TestFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	assert.False(t, util.FileExists(dir), "directory reported as file")

	name := filepath.Join(dir, "present")
	assert.False(t, util.FileExists(name), "file before write")

	if err := ioutil.WriteFile(name, []byte("x"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	assert.True(t, util.FileExists(name), "file after write")
}
