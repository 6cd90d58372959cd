// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly missing branch
func height[T Item[T]](p *node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from both branches
func setHeight[T Item[T]](p *node[T]) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// rotate p to the left, promoting its right child
//
// only the two nodes whose branches change are recomputed, the
// demoted node first as it becomes a child of the promoted one
func rotateLeft[T Item[T]](p *node[T]) *node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	setHeight(p)
	setHeight(p1)
	return p1
}

// rotate p to the right, promoting its left child
func rotateRight[T Item[T]](p *node[T]) *node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	setHeight(p)
	setHeight(p1)
	return p1
}

// rebalance - restore the AVL height condition at p after a change
// somewhere below it
//
// the caller must already have refreshed the cached height of p;
// returns the possibly changed subtree root
//
// a single change below an AVL tree can put a node out of balance by
// at most one unit, so one rotation step here always suffices
func rebalance[T Item[T]](p *node[T]) *node[T] {
	balance := height(p.left) - height(p.right)
	if balance > 1 { // left branch too tall
		p1 := p.left
		if height(p1.left) >= height(p1.right) {
			// single LL rotation
			p = rotateRight(p)
		} else {
			// double LR rotation
			p.left = rotateLeft(p1)
			p = rotateRight(p)
		}
	} else if balance < -1 { // right branch too tall
		p1 := p.right
		if height(p1.right) >= height(p1.left) {
			// single RR rotation
			p = rotateLeft(p)
		} else {
			// double RL rotation
			p.right = rotateRight(p1)
			p = rotateLeft(p)
		}
	}
	return p
}
