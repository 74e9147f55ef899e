// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - the data of an element comparing equal to key
func (tree *Tree) Get(key []byte, compare Compare) ([]byte, bool) {
	p := tree.Search(key, compare)
	if nil == p {
		return nil, false
	}
	return p.data, true
}

// Smallest - data of the lowest element, the tree must not be empty
func (tree *Tree) Smallest() []byte {
	if nil == tree.root {
		panic(fault.ErrEmptyTree)
	}
	return tree.root.first().data
}

// Largest - data of the highest element, the tree must not be empty
func (tree *Tree) Largest() []byte {
	if nil == tree.root {
		panic(fault.ErrEmptyTree)
	}
	return tree.root.last().data
}
