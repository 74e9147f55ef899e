// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlstress - run random workloads against avl trees in parallel,
// checking every tree against a LevelDB reference
//
// Each worker owns one tree and one reference so no locking is
// required; the first failing worker stops the rest.
//
// usage: avlstress [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]
package main
