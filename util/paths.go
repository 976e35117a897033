// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// AbsolutePath - resolve a configured path against the data directory,
// an already absolute path is only cleaned
func AbsolutePath(dataDirectory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dataDirectory, path)
}

// FileExists - true when name is present and is not a directory
func FileExists(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return !info.IsDir()
}
