// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Compare - three way comparison: negative if a < b, zero if a == b
// and positive if a > b.  The first argument is always the element or
// key supplied by the caller, the second is the data of a tree node.
type Compare func(a []byte, b []byte) int

// Node - a node in the tree
type Node struct {
	up     *Node  // points to parent node
	left   *Node  // left sub-tree; buffer link when detached
	right  *Node  // right sub-tree
	height int    // sub-tree height: leaf = 1
	data   []byte // element storage
}

// controls how far a height change is propagated towards the root
type propagation int

const (
	updateAll  propagation = iota // recompute every ancestor
	updateLazy                    // stop at the first unchanged height
	updateSelf                    // only this node
)

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// height(right) - height(left)
func (p *Node) balanceFactor() int {
	return height(p.right) - height(p.left)
}

// recompute the cached height of p from its children and, depending
// on mode, of its ancestors
func (p *Node) updateHeight(mode propagation) {
	for nil != p {
		previous := p.height
		hl := height(p.left)
		hr := height(p.right)
		if hl > hr {
			p.height = 1 + hl
		} else {
			p.height = 1 + hr
		}
		if updateSelf == mode || (updateLazy == mode && previous == p.height) {
			return
		}
		p = p.up
	}
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Data - the element bytes stored in the node
//
// The slice refers to the node's own storage: it must not be modified
// in a way that changes its ordering, and its content changes if a
// delete moves another element into this node.
func (p *Node) Data() []byte {
	return p.data
}

// Left - left child, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balanceFactor()
}

// Depth - get the depth of a node, the root has depth zero
func (p *Node) Depth() int {
	count := 0
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth
// below this node, in order
func (p *Node) ChildrenByDepth(depth int) []*Node {
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
	}
	return nodes
}
