// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build, display and inspect avl trees from the command line
//
//   avl-cli build --insert=6,7,8,9 --delete=6 --data
//   avl-cli build --count=100000 --json
//   avl-cli scan --database=DIR --key-size=8 --value-size=8 --start=HEX --limit=HEX
package main
