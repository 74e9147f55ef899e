// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add a copy of element to the tree
//
// an element equal to existing ones is placed after them; the only
// possible errors are a wrong element length or an allocation
// failure, in both cases the tree is unchanged
func (tree *Tree) Insert(element []byte, compare Compare) error {
	if nil == compare {
		panic(fault.ErrNilCompare)
	}
	if len(element) != tree.elementSize {
		return fault.ErrInvalidElementLength
	}

	parent := (*Node)(nil)
	isLeft := false
	for p := tree.root; nil != p; {
		parent = p
		if compare(element, p.data) < 0 {
			p = p.left
			isLeft = true
		} else {
			p = p.right
			isLeft = false
		}
	}

	p, err := tree.attach(parent, isLeft)
	if nil != err {
		return err
	}
	copy(p.data, element)

	// a single (possibly double) rotation restores the height the
	// sub-tree had before the insert, so nothing above it can be
	// unbalanced
	for up := parent; nil != up; up = up.up {
		if tree.rebalance(up) != up {
			break
		}
	}
	return nil
}

// Set - overwrite the data of an element comparing equal to element,
// or insert it if there is none; returns true if an existing element
// was overwritten
func (tree *Tree) Set(element []byte, compare Compare) (bool, error) {
	if len(element) != tree.elementSize {
		return false, fault.ErrInvalidElementLength
	}
	if p := tree.Search(element, compare); nil != p {
		copy(p.data, element)
		return true, nil
	}
	return false, tree.Insert(element, compare)
}
