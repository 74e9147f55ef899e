// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the buffer is a stack of detached nodes linked through left

// remove the top node from the buffer, nil if the buffer is empty
func (tree *Tree) bufferPop() *Node {
	p := tree.buffer
	if nil == p {
		return nil
	}
	tree.buffer = p.left
	tree.bufferLen -= 1

	p.up = nil
	p.left = nil
	p.right = nil
	p.height = 1
	return p
}

// push a detached node onto the buffer
//
// when the buffer is full: if force is set the node on top of the
// buffer is released to make room, otherwise the push is rejected and
// the caller must release the node
func (tree *Tree) bufferTryPush(p *Node, force bool) bool {
	if tree.bufferLen >= tree.bufferLimit {
		if !force || 0 == tree.bufferLen {
			return false
		}
		head := tree.bufferPop()
		tree.releaseNode(head)
		if nil != tree.log {
			tree.log.Tracef("buffer full: evicted one node, limit: %d", tree.bufferLimit)
		}
	}
	p.up = nil
	p.right = nil
	p.height = 0
	p.left = tree.buffer
	tree.buffer = p
	tree.bufferLen += 1
	return true
}

// FreeBuffer - release every node held for reuse, the tree content
// is not affected
func (tree *Tree) FreeBuffer() {
	n := 0
	for p := tree.bufferPop(); nil != p; p = tree.bufferPop() {
		tree.releaseNode(p)
		n += 1
	}
	if nil != tree.log {
		tree.log.Debugf("free buffer: released: %d nodes", n)
	}
}

// BufferLen - number of nodes currently held for reuse
func (tree *Tree) BufferLen() int {
	return tree.bufferLen
}

// BufferLimit - maximum number of nodes held for reuse
func (tree *Tree) BufferLimit() int {
	return tree.bufferLimit
}
