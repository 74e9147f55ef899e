// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// UnlimitedBuffer - buffer limit that never rejects a detached node
const UnlimitedBuffer = int(^uint(0) >> 1)

// Tree - type to hold the root node of a tree
type Tree struct {
	root        *Node
	count       int
	elementSize int

	// detached nodes kept for reuse
	bufferLimit int
	bufferLen   int
	buffer      *Node

	allocator  Allocator
	log        *logger.L
	statistics Statistics
}

// Statistics - node allocation counters for a tree
type Statistics struct {
	Allocated int // nodes created by the allocator
	Reused    int // nodes taken from the buffer
	Released  int // nodes returned to the allocator
}

// New - create an initially empty tree holding elements of
// elementSize bytes, keeping at most bufferLimit deleted nodes for
// reuse
func New(elementSize int, bufferLimit int) (*Tree, error) {
	return NewWithAllocator(elementSize, bufferLimit, HeapAllocator{})
}

// NewWithAllocator - create an initially empty tree whose element
// storage comes from the given allocator
func NewWithAllocator(elementSize int, bufferLimit int, allocator Allocator) (*Tree, error) {
	if elementSize <= 0 {
		return nil, fault.ErrInvalidElementSize
	}
	if bufferLimit < 0 {
		return nil, fault.ErrInvalidBufferLimit
	}
	if nil == allocator {
		allocator = HeapAllocator{}
	}
	return &Tree{
		root:        nil,
		count:       0,
		elementSize: elementSize,
		bufferLimit: bufferLimit,
		allocator:   allocator,
	}, nil
}

// SetLog - attach a logger channel, nil to detach
func (tree *Tree) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of elements currently in the tree
func (tree *Tree) Len() int {
	return tree.count
}

// Height - height of the tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// ElementSize - the fixed size of every element
func (tree *Tree) ElementSize() int {
	return tree.elementSize
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Statistics - allocation counters
func (tree *Tree) Statistics() Statistics {
	return tree.statistics
}

// Clear - detach every node, placing as many as fit into the buffer
// and releasing the rest
func (tree *Tree) Clear() {
	n := tree.count
	tree.clear(tree.root)
	if nil != tree.log {
		tree.log.Debugf("clear: detached: %d  buffered: %d", n, tree.bufferLen)
	}
}

// post-order so every detached node is a leaf
func (tree *Tree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.detach(p, false)
}

// Free - release all nodes, both in the tree and in the buffer; the
// tree is left empty and can still be used
func (tree *Tree) Free() {
	n := tree.count
	tree.releaseAll(tree.root)
	tree.root = nil
	tree.count = 0
	tree.FreeBuffer()
	if nil != tree.log {
		tree.log.Debugf("free: released: %d nodes", n)
	}
}

func (tree *Tree) releaseAll(p *Node) {
	if nil == p {
		return
	}
	tree.releaseAll(p.left)
	tree.releaseAll(p.right)
	tree.releaseNode(p)
}
