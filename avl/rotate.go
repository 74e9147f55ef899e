// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// left rotation: p.right must not be nil
//
//      |                  |
//      p                  p1
//     / \                / \
//    a   p1     =>      p   c
//       / \            / \
//      p2  c          a   p2
//
func (tree *Tree) rotateLeft(p *Node) *Node {
	p1 := p.right
	p2 := p1.left

	tree.replaceChild(p.up, p, p1)
	p1.up = p.up
	p1.left = p
	p.up = p1
	p.right = p2
	if nil != p2 {
		p2.up = p
	}

	p.updateHeight(updateSelf)
	p1.updateHeight(updateSelf)
	if nil != p1.up {
		p1.up.updateHeight(updateLazy)
	}
	return p1
}

// right rotation: p.left must not be nil
//
//        |              |
//        p              p1
//       / \            / \
//      p1  c   =>     a   p
//     / \                / \
//    a   p2             p2  c
//
func (tree *Tree) rotateRight(p *Node) *Node {
	p1 := p.left
	p2 := p1.right

	tree.replaceChild(p.up, p, p1)
	p1.up = p.up
	p1.right = p
	p.up = p1
	p.left = p2
	if nil != p2 {
		p2.up = p
	}

	p.updateHeight(updateSelf)
	p1.updateHeight(updateSelf)
	if nil != p1.up {
		p1.up.updateHeight(updateLazy)
	}
	return p1
}

// restore the balance of p, returns the root of the sub-tree which is
// p itself when no rotation was needed
//
//   RR: +2/+1 or 0   rotate left at p
//   LL: -2/-1 or 0   rotate right at p
//   RL: +2/-1        rotate right at p.right, then left at p
//   LR: -2/+1        rotate left at p.left, then right at p
func (tree *Tree) rebalance(p *Node) *Node {
	switch bf := p.balanceFactor(); {
	case bf > 1:
		if p.right.balanceFactor() < 0 {
			tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)
	case bf < -1:
		if p.left.balanceFactor() > 0 {
			tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	}
	return p
}
