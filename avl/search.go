// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a node whose data compares equal to key, nil if none
func (tree *Tree) Search(key []byte, compare Compare) *Node {
	if nil == compare {
		panic(fault.ErrNilCompare)
	}
	p := tree.root
	for nil != p {
		switch c := compare(key, p.data); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
