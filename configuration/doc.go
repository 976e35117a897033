// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a Lua configuration file into a struct
//
// the file returns a table whose keys match the "gluamapper" struct
// tags; base Lua (os.getenv, io, string) is available to compute values
package configuration
