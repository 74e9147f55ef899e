// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one element comparing equal to key, returns false
// if there is no such element
//
// if the removed node had two children then the data of its in-order
// neighbour is moved into it, so a *Node previously obtained for that
// neighbour must not be used afterwards
func (tree *Tree) Delete(key []byte, compare Compare) bool {
	p := tree.Search(key, compare)
	if nil == p {
		return false
	}

	// a removal can shorten a sub-tree even after a rotation, so
	// every ancestor must be checked
	for up := tree.detach(p, false); nil != up; {
		up = tree.rebalance(up).up
	}
	return true
}
