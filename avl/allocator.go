// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/allocator.go -package=mocks github.com/bitmark-inc/avltree/avl Allocator

// Allocator - provides element storage for newly created nodes
//
// Release is called when a node is permanently discarded; storage of
// nodes kept in the tree's buffer is not released until the buffer
// is freed.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Release(data []byte)
}

// HeapAllocator - allocate directly from the Go heap, never fails
type HeapAllocator struct{}

// Allocate - a new zeroed slice
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Release - nothing to do, the garbage collector reclaims storage
func (HeapAllocator) Release(data []byte) {}

// LimitedAllocator - heap allocator with a bound on the number of
// outstanding allocations; it can be shared between trees
type LimitedAllocator struct {
	limit       uint64
	outstanding counter.Counter
}

// NewLimitedAllocator - allow at most limit outstanding allocations
func NewLimitedAllocator(limit int) *LimitedAllocator {
	if limit < 0 {
		limit = 0
	}
	return &LimitedAllocator{
		limit: uint64(limit),
	}
}

// Allocate - a new zeroed slice or fault.ErrAllocationFailed if the
// limit has been reached
func (a *LimitedAllocator) Allocate(size int) ([]byte, error) {
	if !a.outstanding.IncrementBelow(a.limit) {
		return nil, fault.ErrAllocationFailed
	}
	return make([]byte, size), nil
}

// Release - return one allocation to the limit
func (a *LimitedAllocator) Release(data []byte) {
	a.outstanding.Decrement()
}

// Outstanding - number of allocations not yet released
func (a *LimitedAllocator) Outstanding() int {
	return int(a.outstanding.Uint64())
}

// allocate a new node, reuses a buffered node if any are available
func (tree *Tree) newNode() (*Node, error) {
	if p := tree.bufferPop(); nil != p {
		tree.statistics.Reused += 1
		return p, nil
	}
	data, err := tree.allocator.Allocate(tree.elementSize)
	if nil != err {
		if nil != tree.log {
			tree.log.Warnf("allocate %d bytes error: %s", tree.elementSize, err)
		}
		return nil, err
	}
	if len(data) != tree.elementSize {
		tree.allocator.Release(data)
		return nil, fault.ErrAllocationFailed
	}
	tree.statistics.Allocated += 1
	return &Node{
		height: 1,
		data:   data,
	}, nil
}

// permanently discard a node
func (tree *Tree) releaseNode(p *Node) {
	tree.allocator.Release(p.data)
	p.up = nil
	p.left = nil
	p.right = nil
	p.data = nil
	tree.statistics.Released += 1
}
