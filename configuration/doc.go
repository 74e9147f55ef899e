// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files into tagged
// structures
//
// The script must return a table, its fields are matched to structure
// fields by the "gluamapper" tag.  The global "arg" table holds the
// file name in arg[0] followed by any extra arguments.
package configuration
