// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Each tree keeps its own free list of reclaimed nodes, chained
// through the right pointer.  A tree belongs to a single caller so
// no locking is needed and nodes never migrate between trees.

// allocate a node, reusing a reclaimed node if any are available
func (tree *Tree[T]) newNode(value T) *node[T] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("avl: pool corrupt")
		}
		return &node[T]{
			value:  value,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.right
	tree.freeNodes -= 1
	p.value = value
	p.height = 0
	p.left = nil
	p.right = nil // ensure free list pointer is cleared
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(p *node[T]) {
	var empty T
	p.value = empty // drop any references held by the value
	p.left = nil
	p.height = 0

	p.right = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}
