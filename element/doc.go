// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package element - fixed size element encodings and their compare
// functions for use with avl trees
//
// Integers are stored big endian (signed values with the sign bit
// inverted) so that plain byte order is numeric order and the same
// trees can be checked against LevelDB's default comparer.
package element
