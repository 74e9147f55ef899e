// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an avl tree with a deterministic stream of
// random operations and compare every result against a LevelDB
// reference, either the in-memory skip list or an on-disk database
//
// The tree holds element.Layout records of an eight byte key and a
// value, so it behaves as a map in the same way as the reference.
package workload
