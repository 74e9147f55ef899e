// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// structural insert and remove, without any rebalancing

// link a new node as the left or right child of parent, or as the
// root of an empty tree; the caller fills in the element data
func (tree *Tree) attach(parent *Node, isLeft bool) (*Node, error) {
	p, err := tree.newNode()
	if nil != err {
		return nil, err
	}
	p.up = parent
	if nil == parent {
		tree.root = p
	} else {
		if isLeft {
			parent.left = p
		} else {
			parent.right = p
		}
		parent.updateHeight(updateAll)
	}
	tree.count += 1
	return p, nil
}

// remove p from the tree and return its former parent, which is
// where rebalancing must start
//
// a node with two children is not unlinked: the in-order neighbour
// lying deeper in the tree is removed instead and its data copied
// into p
func (tree *Tree) detach(p *Node, force bool) *Node {
	if nil != p.left && nil != p.right {
		prev := p.left.last()
		next := p.right.first()
		selected := next
		if prev.Depth() > next.Depth() {
			selected = prev
		}
		copy(p.data, selected.data)
		return tree.detach(selected, true)
	}

	up := p.up
	child := p.left
	if nil == child {
		child = p.right
	}
	if nil != child {
		child.up = up
	}
	tree.replaceChild(up, p, child)
	if nil != up {
		up.updateHeight(updateAll)
	}

	tree.count -= 1
	if !tree.bufferTryPush(p, force) {
		tree.releaseNode(p)
	}
	return up
}

// point the link that referred to old (from up, or the root) at p
func (tree *Tree) replaceChild(up *Node, old *Node, p *Node) {
	switch {
	case nil == up:
		tree.root = p
	case old == up.left:
		up.left = p
	default:
		up.right = p
	}
}
