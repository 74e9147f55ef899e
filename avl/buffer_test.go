// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestBufferReuse(t *testing.T) {
	tree := newTree(t, 2)
	insertKeys(t, tree, 1, 2, 3, 4, 5)
	deleteKeys(t, tree, 1, 2, 3)
	checkTree(t, tree)

	assert.Equal(t, 2, tree.BufferLen(), "buffer not bounded")
	assert.Equal(t, 2, tree.BufferLimit(), "wrong limit")
	s := tree.Statistics()
	assert.Equal(t, 5, s.Allocated, "allocated")
	assert.Equal(t, 1, s.Released, "released")
	assert.Equal(t, 0, s.Reused, "reused")

	insertKeys(t, tree, 10, 11, 12)
	checkTree(t, tree)
	assert.Equal(t, 0, tree.BufferLen(), "buffer not drained")
	s = tree.Statistics()
	assert.Equal(t, 6, s.Allocated, "allocated")
	assert.Equal(t, 2, s.Reused, "reused")
	assert.Equal(t, []int{4, 5, 10, 11, 12}, contents(tree), "wrong content")
}

// the node removed in place of a two child node is always buffered,
// evicting the top of a full buffer
func TestBufferForcedEviction(t *testing.T) {
	tree := newTree(t, 1)
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7)

	deleteKeys(t, tree, 1)
	assert.Equal(t, 1, tree.BufferLen(), "leaf not buffered")
	assert.Equal(t, 0, tree.Statistics().Released, "released")

	deleteKeys(t, tree, 4)
	checkTree(t, tree)
	assert.Equal(t, 1, tree.BufferLen(), "buffer exceeds limit")
	assert.Equal(t, 1, tree.Statistics().Released, "head not evicted")

	deleteKeys(t, tree, 7)
	checkTree(t, tree)
	assert.Equal(t, 1, tree.BufferLen(), "buffer exceeds limit")
	assert.Equal(t, 2, tree.Statistics().Released, "unforced push not rejected")
	assert.Equal(t, []int{2, 3, 5, 6}, contents(tree), "wrong content")
}

func TestBufferDisabled(t *testing.T) {
	tree := newTree(t, 0)
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7)
	deleteKeys(t, tree, 4, 1, 7)
	checkTree(t, tree)

	assert.Equal(t, 0, tree.BufferLen(), "zero limit buffered a node")
	assert.Equal(t, 3, tree.Statistics().Released, "released")
}

func TestClear(t *testing.T) {
	tree := newTree(t, 3)
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	tree.Clear()
	checkTree(t, tree)
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Len(), "wrong count")
	assert.Equal(t, 3, tree.BufferLen(), "buffer")
	assert.Equal(t, 7, tree.Statistics().Released, "released")

	insertKeys(t, tree, 3, 2, 1, 4)
	checkTree(t, tree)
	s := tree.Statistics()
	assert.Equal(t, 3, s.Reused, "reused")
	assert.Equal(t, 11, s.Allocated, "allocated")
	assert.Equal(t, []int{1, 2, 3, 4}, contents(tree), "wrong content")
}

func TestFree(t *testing.T) {
	tree := newTree(t, avl.UnlimitedBuffer)
	insertKeys(t, tree, 1, 2, 3, 4, 5, 6, 7, 8)
	deleteKeys(t, tree, 2, 5)
	assert.Equal(t, 2, tree.BufferLen(), "buffer")

	tree.FreeBuffer()
	checkTree(t, tree)
	assert.Equal(t, 0, tree.BufferLen(), "buffer not freed")
	assert.Equal(t, 6, tree.Len(), "content changed")
	assert.Equal(t, 2, tree.Statistics().Released, "released")

	tree.Free()
	checkTree(t, tree)
	assert.True(t, tree.IsEmpty(), "not empty")
	s := tree.Statistics()
	assert.Equal(t, s.Allocated, s.Released, "not everything released")

	// still usable
	insertKeys(t, tree, 9)
	assert.Equal(t, []int{9}, contents(tree), "wrong content")
}
