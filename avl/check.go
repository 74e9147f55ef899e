// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkUp(p.left, p) && checkUp(p.right, p)
}

// Check - verify the structure of the tree and its buffer, returning
// the first inconsistency found
//
// element order is only checked if compare is not nil
func (tree *Tree) Check(compare Compare) error {
	n, err := tree.check(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return tree.failed(fault.ErrCount, "count: %d  reachable: %d", tree.count, n)
	}

	if nil != compare && nil != tree.root {
		previous := tree.First()
		for p := previous.Next(); nil != p; p = p.Next() {
			if compare(p.data, previous.data) < 0 {
				return tree.failed(fault.ErrOrder, "%x follows %x", p.data, previous.data)
			}
			previous = p
		}
	}

	if tree.bufferLen > tree.bufferLimit {
		return tree.failed(fault.ErrBufferOverflow, "buffer: %d  limit: %d", tree.bufferLen, tree.bufferLimit)
	}
	buffered := 0
	for p := tree.buffer; nil != p; p = p.left {
		buffered += 1
	}
	if buffered != tree.bufferLen {
		return tree.failed(fault.ErrBufferLength, "buffer: %d  linked: %d", tree.bufferLen, buffered)
	}
	return nil
}

// internal: returns the number of nodes in the sub-tree
func (tree *Tree) check(p *Node, up *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, tree.failed(fault.ErrParentLink, "node: %x", p.data)
	}
	nl, err := tree.check(p.left, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.check(p.right, p)
	if nil != err {
		return 0, err
	}

	h := 1 + height(p.left)
	if hr := 1 + height(p.right); hr > h {
		h = hr
	}
	if h != p.height {
		return 0, tree.failed(fault.ErrHeight, "node: %x  height: %d  expected: %d", p.data, p.height, h)
	}
	if bf := p.balanceFactor(); bf < -1 || bf > 1 {
		return 0, tree.failed(fault.ErrBalance, "node: %x  balance: %d", p.data, bf)
	}
	return 1 + nl + nr, nil
}

func (tree *Tree) failed(err error, format string, arguments ...interface{}) error {
	if nil != tree.log {
		tree.log.Errorf("check: %s: "+format, append([]interface{}{err}, arguments...)...)
	}
	return err
}
