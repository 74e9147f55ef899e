// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of fixed size elements with the
// addition of parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node keeps a cached sub-tree height and the tree is
// rebalanced by rotations after each insert and delete, so the height
// never exceeds about 1.44·log2(n+1).
//
// Elements are byte slices of the size given when the tree is
// created; each node holds its own copy.  The compare function is
// passed to every call rather than stored, so the caller must use the
// same ordering for every call on a particular tree.  Equal elements
// are permitted and are kept in insertion order.
//
// Deleted nodes are kept in a per-tree buffer of limited size so that
// later inserts can reuse them instead of allocating.
package avl
